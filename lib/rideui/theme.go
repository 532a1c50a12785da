// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package rideui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ridelinehq/rideline/lib/api"
)

// Theme defines the color palette for the dashboard. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Booking status colors.
	StatusPending    lipgloss.Color
	StatusAccepted   lipgloss.Color
	StatusInProgress lipgloss.Color
	StatusCompleted  lipgloss.Color
	StatusCancelled  lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Accents.
	EarningsAccent lipgloss.Color // Earnings figures.
	OnlineAccent   lipgloss.Color // Driver availability indicator.
	ErrorText      lipgloss.Color // Status bar error notices.
}

// StatusColor returns the color for a booking status string.
// Unknown values return FaintText.
func (theme Theme) StatusColor(status string) lipgloss.Color {
	switch status {
	case api.BookingPending:
		return theme.StatusPending
	case api.BookingAccepted:
		return theme.StatusAccepted
	case api.BookingInProgress:
		return theme.StatusInProgress
	case api.BookingCompleted:
		return theme.StatusCompleted
	case api.BookingCancelled:
		return theme.StatusCancelled
	default:
		return theme.FaintText
	}
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	StatusPending:    lipgloss.Color("220"), // amber
	StatusAccepted:   lipgloss.Color("75"),  // blue
	StatusInProgress: lipgloss.Color("114"), // green
	StatusCompleted:  lipgloss.Color("245"), // gray
	StatusCancelled:  lipgloss.Color("196"), // red

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	EarningsAccent: lipgloss.Color("114"), // green
	OnlineAccent:   lipgloss.Color("114"), // green
	ErrorText:      lipgloss.Color("196"), // red
}
