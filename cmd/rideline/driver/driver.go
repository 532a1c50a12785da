// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package driver

import (
	"github.com/ridelinehq/rideline/cmd/rideline/cli"
	"github.com/ridelinehq/rideline/lib/session"
)

// Command returns the "driver" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "driver",
		Summary: "Driver operations: availability, requests, trips, earnings",
		Subcommands: []*cli.Command{
			availableCommand(),
			requestsCommand(),
			tripCommand(),
			acceptCommand(),
			startCommand(),
			completeCommand(),
			earningsCommand(),
		},
	}
}

// requireDriver checks that the session belongs to a driver account.
// Admins pass too: they can operate on any driver surface.
func requireDriver(store *session.Store) error {
	if err := cli.RequireAuth(store); err != nil {
		return err
	}
	if !store.IsDriver() && !store.IsAdmin() {
		return cli.Forbidden("this command requires a driver account")
	}
	return nil
}
