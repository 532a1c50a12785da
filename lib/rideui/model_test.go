// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package rideui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ridelinehq/rideline/lib/api"
	"github.com/ridelinehq/rideline/lib/authorize"
	"github.com/ridelinehq/rideline/lib/credential"
	"github.com/ridelinehq/rideline/lib/session"
)

func TestNewRefusesUnauthenticatedSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	store, err := session.New(session.Config{
		BaseURL:     server.URL,
		Credentials: credential.NewStore(filepath.Join(t.TempDir(), "session.json")),
	})
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	store.Initialize(context.Background())

	if _, err := New(store); err == nil {
		t.Error("New accepted an unauthenticated session")
	}
}

func TestStaleLoadResultIsDropped(t *testing.T) {
	t.Parallel()

	model := Model{generation: 2}

	updated, _ := model.Update(riderDataMsg{
		generation: 1,
		bookings:   []api.Booking{{ID: 7}},
	})
	if got := updated.(Model); len(got.bookings) != 0 {
		t.Error("stale load result was applied")
	}

	updated, _ = model.Update(riderDataMsg{
		generation: 2,
		bookings:   []api.Booking{{ID: 7}},
	})
	if got := updated.(Model); len(got.bookings) != 1 || got.bookings[0].ID != 7 {
		t.Error("current load result was not applied")
	}
}

func TestRefreshOrphansInFlightLoad(t *testing.T) {
	t.Parallel()

	model := Model{keys: DefaultKeyMap, generation: 1, loading: true}

	updated, cmd := model.updateKeys(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	refreshed := updated.(Model)
	if refreshed.generation != 2 {
		t.Errorf("generation = %d, want 2 after refresh", refreshed.generation)
	}
	if cmd == nil {
		t.Error("refresh produced no load command")
	}

	// The load dispatched before the refresh now carries a stale tag.
	final, _ := refreshed.Update(loadErrorMsg{generation: 1, err: context.DeadlineExceeded})
	if got := final.(Model); got.errorNotice != "" {
		t.Error("stale load error surfaced in the status bar")
	}
}

func TestCursorClampsToShorterList(t *testing.T) {
	t.Parallel()

	model := Model{
		cursor: 4,
		bookings: []api.Booking{
			{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5},
		},
		generation: 1,
	}

	updated, _ := model.Update(riderDataMsg{
		generation: 1,
		bookings:   []api.Booking{{ID: 1}, {ID: 2}},
	})
	if got := updated.(Model); got.cursor != 1 {
		t.Errorf("cursor = %d, want clamped to 1", got.cursor)
	}
}

func TestDriverActionRequiresMatchingStatus(t *testing.T) {
	t.Parallel()

	model := Model{
		keys:     DefaultKeyMap,
		role:     authorize.RoleDriver,
		requests: []api.Booking{{ID: 9, Status: api.BookingInProgress}},
	}

	// "start" needs an accepted booking; the selected one is already
	// in progress, so no command may be dispatched.
	_, cmd := model.driverAction(api.BookingAccepted, (*api.Client).StartTrip)
	if cmd != nil {
		t.Error("lifecycle action dispatched against the wrong status")
	}
}

func TestDriverActionIgnoredForRiders(t *testing.T) {
	t.Parallel()

	model := Model{
		keys:     DefaultKeyMap,
		role:     authorize.RoleRider,
		bookings: []api.Booking{{ID: 9, Status: api.BookingPending}},
	}

	_, cmd := model.driverAction(api.BookingPending, (*api.Client).AcceptBooking)
	if cmd != nil {
		t.Error("driver lifecycle action dispatched from a rider session")
	}
}

func TestCancelSkipsFinishedBookings(t *testing.T) {
	t.Parallel()

	model := Model{
		keys:     DefaultKeyMap,
		bookings: []api.Booking{{ID: 3, Status: api.BookingCompleted}},
	}

	_, cmd := model.cancelSelected()
	if cmd != nil {
		t.Error("cancel dispatched against a completed booking")
	}
}

func TestErrorNoticeFades(t *testing.T) {
	t.Parallel()

	model := Model{generation: 1}

	updated, cmd := model.Update(loadErrorMsg{
		generation: 1,
		err:        &api.APIError{StatusCode: 500, Message: "database unavailable"},
	})
	withNotice := updated.(Model)
	if withNotice.errorNotice != "database unavailable" {
		t.Errorf("errorNotice = %q, want the server message", withNotice.errorNotice)
	}
	if cmd == nil {
		t.Error("no fade timer scheduled")
	}

	cleared, _ := withNotice.Update(errorFadeMsg{})
	if got := cleared.(Model); got.errorNotice != "" {
		t.Error("error notice survived the fade")
	}
}

func TestTabSwitchResetsCursorAndReloads(t *testing.T) {
	t.Parallel()

	model := Model{
		keys:       DefaultKeyMap,
		cursor:     3,
		generation: 1,
		bookings:   []api.Booking{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}},
	}

	updated, cmd := model.updateKeys(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	switched := updated.(Model)
	if switched.activeTab != TabBookings {
		t.Errorf("activeTab = %v, want TabBookings", switched.activeTab)
	}
	if switched.cursor != 0 {
		t.Errorf("cursor = %d, want 0 after tab switch", switched.cursor)
	}
	if switched.generation != 2 {
		t.Errorf("generation = %d, want 2 after tab switch", switched.generation)
	}
	if cmd == nil {
		t.Error("tab switch produced no load command")
	}
}
