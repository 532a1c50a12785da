// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package rideui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ridelinehq/rideline/lib/authorize"
)

// View renders the dashboard.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	if m.activeTab == TabBookings {
		sections = append(sections, m.renderBookingList())
	} else {
		switch m.role {
		case authorize.RoleDriver:
			sections = append(sections, m.renderDriverOverview())
		case authorize.RoleAdmin:
			sections = append(sections, m.renderAdminOverview())
		default:
			sections = append(sections, m.renderRiderOverview())
		}
	}

	sections = append(sections, m.renderFooter())
	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	headerStyle := lipgloss.NewStyle().
		Foreground(m.theme.HeaderForeground).
		Bold(true)
	faint := lipgloss.NewStyle().Foreground(m.theme.FaintText)

	title := headerStyle.Render("Rideline")
	who := faint.Render(fmt.Sprintf("  %s (%s)", m.identity.Name, m.role))

	tabs := []string{m.renderTab("1 Overview", TabOverview), m.renderTab("2 Bookings", TabBookings)}
	tabBar := strings.Join(tabs, "  ")

	loading := ""
	if m.loading {
		loading = faint.Render("  refreshing…")
	}

	line := title + who + "    " + tabBar + loading
	divider := lipgloss.NewStyle().Foreground(m.theme.BorderColor).
		Render(strings.Repeat("─", max(1, m.width)))
	return line + "\n" + divider
}

func (m Model) renderTab(label string, tab Tab) string {
	style := lipgloss.NewStyle().Foreground(m.theme.FaintText)
	if m.activeTab == tab {
		style = lipgloss.NewStyle().
			Foreground(m.theme.SelectedForeground).
			Background(m.theme.SelectedBackground).
			Bold(true)
	}
	return style.Render(" " + label + " ")
}

func (m Model) renderFooter() string {
	helpStyle := lipgloss.NewStyle().Foreground(m.theme.HelpText)

	help := "j/k move · 1/2 tabs · x cancel · r refresh · q quit"
	if m.role == authorize.RoleDriver {
		help = "j/k move · a accept · s start · c complete · x cancel · o online/offline · r refresh · q quit"
	}

	line := helpStyle.Render(help)
	if m.errorNotice != "" {
		errorStyle := lipgloss.NewStyle().Foreground(m.theme.ErrorText)
		line = errorStyle.Render(m.errorNotice) + "  " + line
	}
	return line
}

// renderBookingList renders the full booking table shared by every
// role's bookings tab.
func (m Model) renderBookingList() string {
	if len(m.bookings) == 0 {
		return lipgloss.NewStyle().Foreground(m.theme.FaintText).Render("No bookings.")
	}

	var rows []string
	for i, booking := range m.bookings {
		statusStyle := lipgloss.NewStyle().Foreground(m.theme.StatusColor(booking.Status))
		row := fmt.Sprintf("#%-5d %-24s → %-24s %-8s $%-8.2f %s",
			booking.ID,
			truncate(booking.PickupLocation, 24),
			truncate(booking.Destination, 24),
			booking.CabType,
			booking.Fare,
			statusStyle.Render(booking.Status))

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

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	if limit <= 1 {
		return s[:limit]
	}
	return s[:limit-1] + "…"
}
