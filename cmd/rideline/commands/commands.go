// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete rideline CLI command tree.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	authcmd "github.com/ridelinehq/rideline/cmd/rideline/auth"
	bookingcmd "github.com/ridelinehq/rideline/cmd/rideline/booking"
	"github.com/ridelinehq/rideline/cmd/rideline/cli"
	dashboardcmd "github.com/ridelinehq/rideline/cmd/rideline/dashboard"
	drivercmd "github.com/ridelinehq/rideline/cmd/rideline/driver"
	"github.com/ridelinehq/rideline/lib/version"
)

// Root builds and returns the complete rideline CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "rideline",
		Description: `Rideline: book rides, drive, and track trips from the terminal.

Authenticate once with "rideline login"; every other command uses the
saved session transparently.`,
		Subcommands: []*cli.Command{
			authcmd.LoginCommand(),
			authcmd.RegisterCommand(),
			authcmd.LogoutCommand(),
			authcmd.WhoAmICommand(),
			authcmd.ProfileCommand(),
			bookingcmd.BookCommand(),
			bookingcmd.ListCommand(),
			bookingcmd.CancelCommand(),
			bookingcmd.CabsCommand(),
			drivercmd.Command(),
			dashboardcmd.Command(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					fmt.Printf("rideline %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Authenticate (saves the session locally)",
				Command:     "rideline login dana@example.com",
			},
			{
				Description: "Book a ride",
				Command:     `rideline book "Central Station" "Airport Terminal 2" --cab-type comfort`,
			},
			{
				Description: "See your bookings",
				Command:     "rideline list",
			},
			{
				Description: "Go online as a driver and watch requests",
				Command:     "rideline driver available on && rideline dashboard",
			},
			{
				Description: "Check today's earnings",
				Command:     "rideline driver earnings",
			},
		},
	}
}
