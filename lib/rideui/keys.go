// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package rideui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the dashboard.
type KeyMap struct {
	Up   key.Binding
	Down key.Binding

	// Tab switching.
	TabOverview key.Binding
	TabBookings key.Binding

	// Refresh the active view from the server.
	Refresh key.Binding

	// Driver actions on the selected ride request.
	Accept   key.Binding
	Start    key.Binding
	Complete key.Binding
	Cancel   key.Binding

	// Driver availability toggle.
	Availability key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k) alongside standard arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	TabOverview: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "overview"),
	),
	TabBookings: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "bookings"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Accept: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "accept"),
	),
	Start: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "start"),
	),
	Complete: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "complete"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "cancel"),
	),
	Availability: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "online/offline"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
