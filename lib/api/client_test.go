// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestClient creates a Client backed by the given httptest.Server.
func newTestClient(t *testing.T, server *httptest.Server, config Config) *Client {
	t.Helper()
	config.BaseURL = server.URL
	config.HTTPClient = server.Client()
	client, err := NewClient(config)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	t.Parallel()

	if _, err := NewClient(Config{}); err == nil {
		t.Fatal("expected error for empty BaseURL")
	}
	if _, err := NewClient(Config{BaseURL: "ftp://example.com"}); err == nil {
		t.Fatal("expected error for non-http URL")
	}
}

func TestClientAttachesBearerToken(t *testing.T) {
	t.Parallel()

	var receivedAuth string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		receivedAuth = request.Header.Get("Authorization")
		writer.Header().Set("Content-Type", "application/json")
		writer.Write([]byte(`{"id":1,"name":"Ada","role":"rider"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server, Config{Tokens: StaticToken("T1")})
	if _, err := client.Profile(context.Background()); err != nil {
		t.Fatalf("Profile: %v", err)
	}

	if receivedAuth != "Bearer T1" {
		t.Errorf("Authorization = %q, want %q", receivedAuth, "Bearer T1")
	}
}

func TestClientUnauthenticatedWithoutToken(t *testing.T) {
	t.Parallel()

	var receivedAuth string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		receivedAuth = request.Header.Get("Authorization")
		writer.Write([]byte(`{"token":"T1","user":{"id":1}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server, Config{Tokens: StaticToken("")})
	_, err := client.Login(context.Background(), Credentials{Email: "a@b.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if receivedAuth != "" {
		t.Errorf("Authorization = %q, want unauthenticated request", receivedAuth)
	}
}

func TestClientSetsRequestID(t *testing.T) {
	t.Parallel()

	requestIDs := map[string]bool{}
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requestIDs[request.Header.Get("X-Request-ID")] = true
		writer.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(t, server, Config{})
	for range 3 {
		if _, err := client.AvailableCabs(context.Background()); err != nil {
			t.Fatalf("AvailableCabs: %v", err)
		}
	}

	if len(requestIDs) != 3 {
		t.Errorf("got %d distinct request IDs, want 3", len(requestIDs))
	}
	if requestIDs[""] {
		t.Error("a request was dispatched without an X-Request-ID")
	}
}

func TestClientUnauthorizedHookFiresForEveryEndpoint(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusUnauthorized)
		writer.Write([]byte(`{"message":"token expired"}`))
	}))
	defer server.Close()

	hookCalls := 0
	client := newTestClient(t, server, Config{
		Tokens:         StaticToken("stale"),
		OnUnauthorized: func() { hookCalls++ },
	})

	ctx := context.Background()
	calls := []func() error{
		func() error { _, err := client.Profile(ctx); return err },
		func() error { _, err := client.UserBookings(ctx); return err },
		func() error { _, err := client.AcceptBooking(ctx, 7); return err },
		func() error { return client.SetAvailability(ctx, 3, true) },
		func() error { _, err := client.Earnings(ctx, 3); return err },
	}

	for index, call := range calls {
		err := call()
		if err == nil {
			t.Fatalf("call %d: expected error", index)
		}
		if !IsUnauthorized(err) {
			t.Errorf("call %d: IsUnauthorized = false for %v", index, err)
		}
	}

	if hookCalls != len(calls) {
		t.Errorf("OnUnauthorized fired %d times, want %d", hookCalls, len(calls))
	}
}

func TestClientHookNotFiredForOtherErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusConflict)
		writer.Write([]byte(`{"message":"booking already accepted"}`))
	}))
	defer server.Close()

	hookCalls := 0
	client := newTestClient(t, server, Config{
		Tokens:         StaticToken("T1"),
		OnUnauthorized: func() { hookCalls++ },
	})

	_, err := client.AcceptBooking(context.Background(), 9)
	if err == nil {
		t.Fatal("expected error")
	}
	if hookCalls != 0 {
		t.Errorf("OnUnauthorized fired %d times for a 409, want 0", hookCalls)
	}
	if got := ErrorMessage(err, "fallback"); got != "booking already accepted" {
		t.Errorf("ErrorMessage = %q, want server text", got)
	}
}

func TestClientBookingLifecyclePaths(t *testing.T) {
	t.Parallel()

	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		paths = append(paths, request.Method+" "+request.URL.Path)
		writer.Write([]byte(`{"id":42,"status":"accepted"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server, Config{Tokens: StaticToken("T1")})
	ctx := context.Background()

	if _, err := client.AcceptBooking(ctx, 42); err != nil {
		t.Fatalf("AcceptBooking: %v", err)
	}
	if _, err := client.StartTrip(ctx, 42); err != nil {
		t.Fatalf("StartTrip: %v", err)
	}
	if _, err := client.CompleteTrip(ctx, 42); err != nil {
		t.Fatalf("CompleteTrip: %v", err)
	}
	if _, err := client.CancelBooking(ctx, 42); err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}

	want := []string{
		"POST /bookings/42/accept",
		"POST /bookings/42/start",
		"POST /bookings/42/complete",
		"POST /bookings/42/cancel",
	}
	if len(paths) != len(want) {
		t.Fatalf("got %d requests, want %d", len(paths), len(want))
	}
	for index := range want {
		if paths[index] != want[index] {
			t.Errorf("request %d = %q, want %q", index, paths[index], want[index])
		}
	}
}

func TestClientCurrentTripEmpty(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(t, server, Config{Tokens: StaticToken("T1")})
	trip, err := client.CurrentTrip(context.Background(), 5)
	if err != nil {
		t.Fatalf("CurrentTrip: %v", err)
	}
	if trip != nil {
		t.Errorf("trip = %+v, want nil for an idle driver", trip)
	}
}
