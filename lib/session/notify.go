// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package session

// Notifier receives the user-facing outcome of session operations.
// Every mutating store operation emits exactly one notification —
// success or failure — so a notifier can double as an audit trail of
// what the user was told.
//
// The CLI prints notifications to stderr; the dashboard shows them in
// its status bar; tests record them.
type Notifier interface {
	// Success reports a completed operation.
	Success(message string)
	// Error reports a failed operation. The message is the server's
	// text when available, a generic fallback otherwise.
	Error(message string)
	// Info reports a neutral state change (e.g., logged out).
	Info(message string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

// Success implements Notifier.
func (NopNotifier) Success(string) {}

// Error implements Notifier.
func (NopNotifier) Error(string) {}

// Info implements Notifier.
func (NopNotifier) Info(string) {}
