// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

// Package dashboard implements the interactive terminal dashboard
// command.
package dashboard

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ridelinehq/rideline/cmd/rideline/cli"
	"github.com/ridelinehq/rideline/lib/rideui"
)

type dashboardParams struct {
	cli.ConnectParams
}

// Command returns the "dashboard" command. The dashboard lands on the
// view matching the session's role: riders see their trips, drivers
// their requests and earnings, admins a platform overview.
func Command() *cli.Command {
	var params dashboardParams

	return &cli.Command{
		Name:    "dashboard",
		Summary: "Open the interactive dashboard",
		Usage:   "rideline dashboard [flags]",
		Examples: []cli.Example{
			{
				Description: "Open the dashboard for the logged-in account",
				Command:     "rideline dashboard",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			store, _, err := params.Connect(ctx, logger)
			if err != nil {
				return err
			}

			model, err := rideui.New(store)
			if err != nil {
				return cli.Forbidden("%s", err)
			}

			program := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return cli.Internal("dashboard: %w", err)
			}
			return nil
		},
	}
}
