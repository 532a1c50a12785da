// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package authorize

import "testing"

func TestParseRole(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  Role
	}{
		{"rider", RoleRider},
		{"driver", RoleDriver},
		{"admin", RoleAdmin},
		{"", RoleRider},
		{"superuser", RoleRider},
		{"Driver", RoleRider}, // wire roles are lowercase; anything else is untrusted
	}

	for _, testCase := range cases {
		if got := ParseRole(testCase.input); got != testCase.want {
			t.Errorf("ParseRole(%q) = %v, want %v", testCase.input, got, testCase.want)
		}
	}
}

func TestLanding(t *testing.T) {
	t.Parallel()

	if got := Landing(RoleDriver); got != ViewDriverDashboard {
		t.Errorf("Landing(driver) = %v", got)
	}
	if got := Landing(RoleAdmin); got != ViewAdminDashboard {
		t.Errorf("Landing(admin) = %v", got)
	}
	if got := Landing(RoleRider); got != ViewRiderDashboard {
		t.Errorf("Landing(rider) = %v", got)
	}
}

func TestResolveRequiresSettledSession(t *testing.T) {
	t.Parallel()

	_, err := Resolve(State{Ready: false}, ViewHome)
	if err == nil {
		t.Fatal("Resolve should refuse a not-ready session")
	}
}

func TestResolveUnauthenticated(t *testing.T) {
	t.Parallel()

	state := State{Ready: true, Authenticated: false}

	// Public views render as requested.
	for _, view := range []View{ViewHome, ViewLogin, ViewRegister} {
		decision, err := Resolve(state, view)
		if err != nil {
			t.Fatalf("Resolve(%v): %v", view, err)
		}
		if decision.Outcome != Allow || decision.Target != view {
			t.Errorf("Resolve(%v) = %+v, want allow in place", view, decision)
		}
	}

	// Everything else redirects to login.
	for _, view := range []View{ViewDashboard, ViewRiderDashboard, ViewDriverDashboard, ViewAdminDashboard, ViewProfile, ViewBook, ViewHistory} {
		decision, err := Resolve(state, view)
		if err != nil {
			t.Fatalf("Resolve(%v): %v", view, err)
		}
		if decision.Outcome != Redirect || decision.Target != ViewLogin {
			t.Errorf("Resolve(%v) = %+v, want redirect to login", view, decision)
		}
	}
}

func TestResolveDashboardByRole(t *testing.T) {
	t.Parallel()

	cases := []struct {
		role Role
		want View
	}{
		{RoleDriver, ViewDriverDashboard},
		{RoleAdmin, ViewAdminDashboard},
		{RoleRider, ViewRiderDashboard},
	}

	for _, testCase := range cases {
		state := State{Ready: true, Authenticated: true, Role: testCase.role}
		decision, err := Resolve(state, ViewDashboard)
		if err != nil {
			t.Fatalf("Resolve(dashboard, %v): %v", testCase.role, err)
		}
		if decision.Outcome != Redirect || decision.Target != testCase.want {
			t.Errorf("Resolve(dashboard, %v) = %+v, want redirect to %v", testCase.role, decision, testCase.want)
		}
	}
}

func TestResolveAuthenticatedDirectViews(t *testing.T) {
	t.Parallel()

	state := State{Ready: true, Authenticated: true, Role: RoleRider}
	for _, view := range []View{ViewProfile, ViewBook, ViewHistory, ViewRiderDashboard} {
		decision, err := Resolve(state, view)
		if err != nil {
			t.Fatalf("Resolve(%v): %v", view, err)
		}
		if decision.Outcome != Allow || decision.Target != view {
			t.Errorf("Resolve(%v) = %+v, want allow in place", view, decision)
		}
	}
}
