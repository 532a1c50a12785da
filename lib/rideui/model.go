// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package rideui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ridelinehq/rideline/lib/api"
	"github.com/ridelinehq/rideline/lib/authorize"
	"github.com/ridelinehq/rideline/lib/session"
)

// Tab identifies which data view is active.
type Tab int

const (
	// TabOverview is the role-specific landing view: rider summary,
	// driver trip panel, or admin platform overview.
	TabOverview Tab = iota
	// TabBookings is the full booking list for the account.
	TabBookings
)

// Refresh cadence and error notice lifetime.
const (
	autoRefreshInterval = 30 * time.Second
	errorFadeDelay      = 5 * time.Second
	requestTimeout      = 15 * time.Second
)

// riderDataMsg delivers the rider's bookings.
type riderDataMsg struct {
	generation int
	bookings   []api.Booking
}

// driverDataMsg delivers the driver panels in one message so the view
// never renders a half-loaded mix of old and new data.
type driverDataMsg struct {
	generation int
	trip       *api.Booking
	requests   []api.Booking
	earnings   *api.Earnings
}

// adminDataMsg delivers the platform overview.
type adminDataMsg struct {
	generation int
	cabs       []api.Cab
	bookings   []api.Booking
}

// loadErrorMsg reports a failed load. Stale generations are dropped
// like any other load result.
type loadErrorMsg struct {
	generation int
	err        error
}

// actionResultMsg reports a completed driver or rider mutation. A nil
// err triggers a refresh so the view reflects the server's state.
type actionResultMsg struct {
	err error
}

// errorFadeMsg clears the error notice from the status bar.
type errorFadeMsg struct{}

// refreshTickMsg drives periodic background refresh.
type refreshTickMsg struct{}

// Model is the top-level bubbletea model for the dashboard.
type Model struct {
	store *session.Store
	theme Theme
	keys  KeyMap

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	role     authorize.Role
	identity api.User

	activeTab Tab
	cursor    int

	// generation tags every load request. A result message carrying a
	// stale generation is dropped: a refresh or tab switch issued after
	// the request must not be overwritten by its late reply.
	generation int
	loading    bool

	errorNotice string

	// Driver availability as last toggled from the dashboard. The
	// server does not expose a read endpoint for it.
	available bool

	// Loaded data. Which fields are populated depends on the role.
	bookings []api.Booking
	trip     *api.Booking
	requests []api.Booking
	earnings *api.Earnings
	cabs     []api.Cab
}

// New builds a dashboard model for an initialized session. The
// authorization gate decides the landing: an unauthenticated session
// is refused here rather than rendering an empty dashboard.
func New(store *session.Store) (Model, error) {
	decision, err := authorize.Resolve(store.AuthState(), authorize.ViewDashboard)
	if err != nil {
		return Model{}, err
	}
	if decision.Outcome == authorize.Redirect && decision.Target == authorize.ViewLogin {
		return Model{}, fmt.Errorf("not logged in (run 'rideline login' first)")
	}

	identity, _ := store.Identity()
	state := store.AuthState()

	return Model{
		store:    store,
		theme:    DefaultTheme,
		keys:     DefaultKeyMap,
		role:     state.Role,
		identity: identity,
	}, nil
}

// Init starts the first load and the auto-refresh timer.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), refreshTick())
}

func refreshTick() tea.Cmd {
	return tea.Tick(autoRefreshInterval, func(time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}

// Update is the bubbletea update function.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)

	case riderDataMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		m.loading = false
		m.bookings = msg.bookings
		m.clampCursor()
		return m, nil

	case driverDataMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		m.loading = false
		m.trip = msg.trip
		m.requests = msg.requests
		m.earnings = msg.earnings
		m.clampCursor()
		return m, nil

	case adminDataMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		m.loading = false
		m.cabs = msg.cabs
		m.bookings = msg.bookings
		m.clampCursor()
		return m, nil

	case loadErrorMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		m.loading = false
		return m.notifyError(msg.err)

	case actionResultMsg:
		if msg.err != nil {
			model, cmd := m.notifyError(msg.err)
			return model, cmd
		}
		return m.refresh()

	case errorFadeMsg:
		m.errorNotice = ""
		return m, nil

	case refreshTickMsg:
		model, cmd := m.refresh()
		return model, tea.Batch(cmd, refreshTick())
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.listLength()-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.TabOverview):
		m.activeTab = TabOverview
		m.cursor = 0
		return m.refresh()

	case key.Matches(msg, m.keys.TabBookings):
		m.activeTab = TabBookings
		m.cursor = 0
		return m.refresh()

	case key.Matches(msg, m.keys.Refresh):
		return m.refresh()

	case key.Matches(msg, m.keys.Availability):
		if m.role != authorize.RoleDriver {
			return m, nil
		}
		m.available = !m.available
		return m, m.availabilityCmd(m.available)

	case key.Matches(msg, m.keys.Accept):
		return m.driverAction(api.BookingPending, (*api.Client).AcceptBooking)

	case key.Matches(msg, m.keys.Start):
		return m.driverAction(api.BookingAccepted, (*api.Client).StartTrip)

	case key.Matches(msg, m.keys.Complete):
		return m.driverAction(api.BookingInProgress, (*api.Client).CompleteTrip)

	case key.Matches(msg, m.keys.Cancel):
		return m.cancelSelected()
	}

	return m, nil
}

// refresh bumps the generation (orphaning any in-flight load) and
// starts a fresh one.
func (m Model) refresh() (Model, tea.Cmd) {
	m.generation++
	m.loading = true
	return m, m.loadCmd()
}

// notifyError records the failure in the status bar and schedules its
// removal.
func (m Model) notifyError(err error) (Model, tea.Cmd) {
	m.errorNotice = api.ErrorMessage(err, "request failed")
	return m, tea.Tick(errorFadeDelay, func(time.Time) tea.Msg {
		return errorFadeMsg{}
	})
}

// loadCmd fetches the data for the current role and tab. The returned
// command runs on its own goroutine; the result comes back tagged with
// the generation current at dispatch time.
func (m Model) loadCmd() tea.Cmd {
	generation := m.generation
	store := m.store
	userID := m.identity.ID

	if m.activeTab == TabBookings {
		driver := m.role == authorize.RoleDriver
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			list := store.Client().UserBookings
			if driver {
				list = store.Client().DriverBookings
			}
			bookings, err := list(ctx)
			if err != nil {
				return loadErrorMsg{generation, err}
			}
			return riderDataMsg{generation, bookings}
		}
	}

	switch m.role {
	case authorize.RoleDriver:
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()

			client := store.Client()
			trip, err := client.CurrentTrip(ctx, userID)
			if err != nil {
				return loadErrorMsg{generation, err}
			}
			requests, err := client.DriverBookings(ctx)
			if err != nil {
				return loadErrorMsg{generation, err}
			}
			earnings, err := client.Earnings(ctx, userID)
			if err != nil {
				return loadErrorMsg{generation, err}
			}
			return driverDataMsg{generation, trip, pendingOnly(requests), earnings}
		}

	case authorize.RoleAdmin:
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()

			client := store.Client()
			cabs, err := client.AvailableCabs(ctx)
			if err != nil {
				return loadErrorMsg{generation, err}
			}
			bookings, err := client.UserBookings(ctx)
			if err != nil {
				return loadErrorMsg{generation, err}
			}
			return adminDataMsg{generation, cabs, bookings}
		}

	default:
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			bookings, err := store.Client().UserBookings(ctx)
			if err != nil {
				return loadErrorMsg{generation, err}
			}
			return riderDataMsg{generation, bookings}
		}
	}
}

// pendingOnly keeps the requests a driver can act on.
func pendingOnly(bookings []api.Booking) []api.Booking {
	actionable := bookings[:0]
	for _, booking := range bookings {
		switch booking.Status {
		case api.BookingPending, api.BookingAccepted, api.BookingInProgress:
			actionable = append(actionable, booking)
		}
	}
	return actionable
}

// driverAction runs a lifecycle transition on the selected request if
// its status matches the transition's precondition.
func (m Model) driverAction(requiredStatus string,
	action func(*api.Client, context.Context, int64) (*api.Booking, error)) (Model, tea.Cmd) {

	if m.role != authorize.RoleDriver {
		return m, nil
	}
	booking, ok := m.selectedBooking()
	if !ok || booking.Status != requiredStatus {
		return m, nil
	}

	store := m.store
	bookingID := booking.ID
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		_, err := action(store.Client(), ctx, bookingID)
		return actionResultMsg{err}
	}
}

// cancelSelected cancels the selected booking. Riders cancel their own
// bookings; drivers cancel requests they hold.
func (m Model) cancelSelected() (Model, tea.Cmd) {
	booking, ok := m.selectedBooking()
	if !ok {
		return m, nil
	}
	switch booking.Status {
	case api.BookingCompleted, api.BookingCancelled:
		return m, nil
	}

	store := m.store
	bookingID := booking.ID
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		_, err := store.Client().CancelBooking(ctx, bookingID)
		return actionResultMsg{err}
	}
}

// availabilityCmd pushes the driver availability toggle.
func (m Model) availabilityCmd(available bool) tea.Cmd {
	store := m.store
	userID := m.identity.ID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return actionResultMsg{store.Client().SetAvailability(ctx, userID, available)}
	}
}

// selectedBooking resolves the cursor to a booking in the active list.
func (m Model) selectedBooking() (api.Booking, bool) {
	list := m.activeList()
	if m.cursor < 0 || m.cursor >= len(list) {
		return api.Booking{}, false
	}
	return list[m.cursor], true
}

// activeList is the booking slice the cursor navigates.
func (m Model) activeList() []api.Booking {
	if m.activeTab == TabOverview && m.role == authorize.RoleDriver {
		return m.requests
	}
	return m.bookings
}

func (m Model) listLength() int {
	return len(m.activeList())
}

func (m *Model) clampCursor() {
	if length := m.listLength(); m.cursor >= length {
		m.cursor = max(0, length-1)
	}
}
