// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"log/slog"

	"github.com/ridelinehq/rideline/cmd/rideline/cli"
)

type logoutParams struct {
	cli.ConnectParams
}

// LogoutCommand returns the "logout" command. Logout is local only:
// it discards the saved credential and identity without a server
// round trip, and succeeds even when no session is saved.
func LogoutCommand() *cli.Command {
	var params logoutParams

	return &cli.Command{
		Name:    "logout",
		Summary: "Discard the saved session",
		Usage:   "rideline logout",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			store, _, err := params.Connect(ctx, logger)
			if err != nil {
				return err
			}

			store.Logout()
			return nil
		},
	}
}
