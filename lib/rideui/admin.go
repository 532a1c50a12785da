// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package rideui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ridelinehq/rideline/lib/api"
)

// renderAdminOverview shows platform aggregates: fleet availability
// and booking volume by status.
func (m Model) renderAdminOverview() string {
	header := lipgloss.NewStyle().Foreground(m.theme.HeaderForeground).Bold(true)
	faint := lipgloss.NewStyle().Foreground(m.theme.FaintText)

	var sections []string

	sections = append(sections, header.Render("Fleet"))
	if len(m.cabs) == 0 {
		sections = append(sections, faint.Render("  no cabs available"))
	} else {
		byType := map[string]int{}
		for _, cab := range m.cabs {
			byType[cab.CabType]++
		}
		var parts []string
		for _, cabType := range []string{"economy", "comfort", "premium"} {
			if byType[cabType] > 0 {
				parts = append(parts, fmt.Sprintf("%d %s", byType[cabType], cabType))
			}
		}
		sections = append(sections, fmt.Sprintf("  %d cabs available (%s)", len(m.cabs), strings.Join(parts, ", ")))
	}

	sections = append(sections, "")
	sections = append(sections, header.Render("Bookings"))
	if len(m.bookings) == 0 {
		sections = append(sections, faint.Render("  none"))
	} else {
		counts := map[string]int{}
		var revenue float64
		for _, booking := range m.bookings {
			counts[booking.Status]++
			if booking.Status == api.BookingCompleted {
				revenue += booking.Fare
			}
		}

		var parts []string
		for _, status := range []string{
			api.BookingPending, api.BookingAccepted, api.BookingInProgress,
			api.BookingCompleted, api.BookingCancelled,
		} {
			if counts[status] > 0 {
				statusStyle := lipgloss.NewStyle().Foreground(m.theme.StatusColor(status))
				parts = append(parts, fmt.Sprintf("%d %s", counts[status], statusStyle.Render(status)))
			}
		}
		accent := lipgloss.NewStyle().Foreground(m.theme.EarningsAccent)
		sections = append(sections, "  "+strings.Join(parts, " · "))
		sections = append(sections, fmt.Sprintf("  completed revenue %s", accent.Render(fmt.Sprintf("$%.2f", revenue))))
	}

	return strings.Join(sections, "\n")
}
