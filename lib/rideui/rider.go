// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package rideui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ridelinehq/rideline/lib/api"
)

// renderRiderOverview shows the rider's recent bookings and trip
// totals.
func (m Model) renderRiderOverview() string {
	faint := lipgloss.NewStyle().Foreground(m.theme.FaintText)

	if len(m.bookings) == 0 {
		return faint.Render("No trips yet. Book one with 'rideline book'.")
	}

	var sections []string
	sections = append(sections, m.renderSummaryLine(m.bookings))
	sections = append(sections, "")
	sections = append(sections, m.renderBookingList())
	return strings.Join(sections, "\n")
}

// renderSummaryLine computes trip totals over the booking list.
func (m Model) renderSummaryLine(bookings []api.Booking) string {
	var completed int
	var spent float64
	var active *api.Booking
	for i, booking := range bookings {
		switch booking.Status {
		case api.BookingCompleted:
			completed++
			spent += booking.Fare
		case api.BookingAccepted, api.BookingInProgress:
			if active == nil {
				active = &bookings[i]
			}
		}
	}

	accent := lipgloss.NewStyle().Foreground(m.theme.EarningsAccent)
	line := fmt.Sprintf("%d trips completed · %s spent", completed, accent.Render(fmt.Sprintf("$%.2f", spent)))

	if active != nil {
		statusStyle := lipgloss.NewStyle().Foreground(m.theme.StatusColor(active.Status))
		line += fmt.Sprintf(" · current: #%d %s → %s (%s)",
			active.ID, active.PickupLocation, active.Destination,
			statusStyle.Render(active.Status))
	}
	return line
}
