// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

// Package authorize decides which views a session can reach and which
// role-specific landing view an authenticated user is routed to.
//
// The gate is pure: it consults only the already-resolved session
// state snapshot, never the server. It must not run before the
// session store's Initialize has settled — resolving a not-ready
// state is a programmer error and is reported as such, so callers
// cannot accidentally flash unauthenticated content and then redirect.
package authorize
