// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

// Package rideui implements the rideline terminal dashboard on
// bubbletea. The dashboard lands on a role-specific view — riders see
// their bookings, drivers their trip and earnings, admins a platform
// overview — with data loaded asynchronously through the session's
// API client.
package rideui
