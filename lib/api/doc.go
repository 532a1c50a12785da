// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

// Package api is the typed HTTP client for the Rideline REST API.
//
// The client attaches the current bearer credential to every request
// (when one is available from its TokenSource), decodes structured
// error bodies into [*APIError], and reports every authorization
// failure (HTTP 401) through a single OnUnauthorized hook before
// propagating the error to the caller. The hook is how the session
// layer learns that the credential has been rejected — the client
// itself holds no session state and performs no navigation.
//
// Failures are never retried and no timeout policy is imposed here;
// callers bound requests with context deadlines.
package api
