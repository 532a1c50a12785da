// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package authorize

import "fmt"

// View identifies a navigable view in the client.
type View int

const (
	// ViewHome is the public landing page.
	ViewHome View = iota
	// ViewLogin is the login form.
	ViewLogin
	// ViewRegister is the registration form.
	ViewRegister
	// ViewDashboard is the generic authenticated entry point. It is
	// never rendered itself — the gate resolves it to the role
	// landing view.
	ViewDashboard
	// ViewRiderDashboard shows the rider's bookings and totals.
	ViewRiderDashboard
	// ViewDriverDashboard shows trip lifecycle and earnings.
	ViewDriverDashboard
	// ViewAdminDashboard shows aggregate platform statistics.
	ViewAdminDashboard
	// ViewProfile shows and edits the current profile.
	ViewProfile
	// ViewBook is the booking form.
	ViewBook
	// ViewHistory is the ride history listing.
	ViewHistory
)

// String returns a stable name for logging and tests.
func (view View) String() string {
	switch view {
	case ViewHome:
		return "home"
	case ViewLogin:
		return "login"
	case ViewRegister:
		return "register"
	case ViewDashboard:
		return "dashboard"
	case ViewRiderDashboard:
		return "rider-dashboard"
	case ViewDriverDashboard:
		return "driver-dashboard"
	case ViewAdminDashboard:
		return "admin-dashboard"
	case ViewProfile:
		return "profile"
	case ViewBook:
		return "book"
	case ViewHistory:
		return "history"
	default:
		return fmt.Sprintf("view(%d)", int(view))
	}
}

// Public reports whether a view is reachable without a credential.
func Public(view View) bool {
	switch view {
	case ViewHome, ViewLogin, ViewRegister:
		return true
	default:
		return false
	}
}

// State is the session snapshot the gate consults. The session store
// produces it; the gate never reaches back into the store or the
// network.
type State struct {
	// Ready is true once Initialize has settled (success or failure).
	Ready bool

	// Authenticated is true when a credential is present.
	Authenticated bool

	// Role is the resolved identity's role. Meaningless unless
	// Authenticated.
	Role Role
}

// Outcome describes how a navigation request resolves.
type Outcome int

const (
	// Allow means the requested view renders as-is.
	Allow Outcome = iota
	// Redirect means the client must navigate to Decision.Target
	// instead.
	Redirect
)

// Decision is the gate's answer for a requested view.
type Decision struct {
	Outcome Outcome
	// Target is the view to navigate to when Outcome is Redirect.
	// Equal to the requested view when Outcome is Allow.
	Target View
}

// Resolve maps a navigation request to a decision:
//
//   - Unauthenticated sessions reach only public views; anything else
//     redirects to login.
//   - The generic dashboard entry point redirects to the role landing
//     view.
//
// Resolving before the session has settled is a programmer error —
// it would render role-gated content from an unvalidated identity.
func Resolve(state State, requested View) (Decision, error) {
	if !state.Ready {
		return Decision{}, fmt.Errorf("authorize: gate consulted before session initialization settled")
	}

	if !state.Authenticated {
		if Public(requested) {
			return Decision{Outcome: Allow, Target: requested}, nil
		}
		return Decision{Outcome: Redirect, Target: ViewLogin}, nil
	}

	if requested == ViewDashboard {
		return Decision{Outcome: Redirect, Target: Landing(state.Role)}, nil
	}

	return Decision{Outcome: Allow, Target: requested}, nil
}
