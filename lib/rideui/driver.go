// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package rideui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderDriverOverview shows the current trip, actionable ride
// requests, and the earnings panel.
func (m Model) renderDriverOverview() string {
	var sections []string
	sections = append(sections, m.renderAvailability())
	sections = append(sections, "")
	sections = append(sections, m.renderCurrentTrip())
	sections = append(sections, "")
	sections = append(sections, m.renderRequests())
	if m.earnings != nil {
		sections = append(sections, "")
		sections = append(sections, m.renderEarnings())
	}
	return strings.Join(sections, "\n")
}

func (m Model) renderAvailability() string {
	if m.available {
		return lipgloss.NewStyle().Foreground(m.theme.OnlineAccent).Bold(true).
			Render("● ONLINE — accepting ride requests")
	}
	return lipgloss.NewStyle().Foreground(m.theme.FaintText).
		Render("○ offline — press o to go online")
}

func (m Model) renderCurrentTrip() string {
	header := lipgloss.NewStyle().Foreground(m.theme.HeaderForeground).Bold(true)
	faint := lipgloss.NewStyle().Foreground(m.theme.FaintText)

	if m.trip == nil {
		return header.Render("Current trip") + "\n" + faint.Render("  none")
	}

	statusStyle := lipgloss.NewStyle().Foreground(m.theme.StatusColor(m.trip.Status))
	return header.Render("Current trip") + "\n" +
		fmt.Sprintf("  #%d %s → %s · $%.2f · %s",
			m.trip.ID, m.trip.PickupLocation, m.trip.Destination,
			m.trip.Fare, statusStyle.Render(m.trip.Status))
}

func (m Model) renderRequests() string {
	header := lipgloss.NewStyle().Foreground(m.theme.HeaderForeground).Bold(true)
	faint := lipgloss.NewStyle().Foreground(m.theme.FaintText)

	if len(m.requests) == 0 {
		return header.Render("Ride requests") + "\n" + faint.Render("  none")
	}

	var rows []string
	rows = append(rows, header.Render("Ride requests"))
	for i, request := range m.requests {
		statusStyle := lipgloss.NewStyle().Foreground(m.theme.StatusColor(request.Status))
		row := fmt.Sprintf("  #%-5d %-24s → %-24s $%-8.2f %s",
			request.ID,
			truncate(request.PickupLocation, 24),
			truncate(request.Destination, 24),
			request.Fare,
			statusStyle.Render(request.Status))

		if i == m.cursor {
			row = lipgloss.NewStyle().
				Foreground(m.theme.SelectedForeground).
				Background(m.theme.SelectedBackground).
				Render(row)
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderEarnings() string {
	header := lipgloss.NewStyle().Foreground(m.theme.HeaderForeground).Bold(true)
	accent := lipgloss.NewStyle().Foreground(m.theme.EarningsAccent)

	return header.Render("Earnings") + "\n" +
		fmt.Sprintf("  today %s · week %s · month %s · all time %s\n  %d trips · rating %.1f · %.1f h online",
			accent.Render(fmt.Sprintf("$%.2f", m.earnings.TodayEarnings)),
			accent.Render(fmt.Sprintf("$%.2f", m.earnings.WeeklyEarnings)),
			accent.Render(fmt.Sprintf("$%.2f", m.earnings.MonthlyEarnings)),
			accent.Render(fmt.Sprintf("$%.2f", m.earnings.TotalEarnings)),
			m.earnings.CompletedTrips, m.earnings.Rating, m.earnings.OnlineHours)
}
