// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package driver

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ridelinehq/rideline/cmd/rideline/cli"
)

type availableParams struct {
	cli.ConnectParams
}

func availableCommand() *cli.Command {
	var params availableParams

	return &cli.Command{
		Name:    "available",
		Summary: "Toggle whether you accept new ride requests",
		Usage:   "rideline driver available <on|off>",
		Examples: []cli.Example{
			{
				Description: "Go online",
				Command:     "rideline driver available on",
			},
			{
				Description: "Go offline",
				Command:     "rideline driver available off",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
				return cli.Validation("expected 'on' or 'off'\n\nUsage: rideline driver available <on|off>")
			}
			available := args[0] == "on"

			store, _, err := params.Connect(ctx, logger)
			if err != nil {
				return err
			}
			if err := requireDriver(store); err != nil {
				return err
			}

			user, _ := store.Identity()

			ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()

			if err := store.Client().SetAvailability(ctx, user.ID, available); err != nil {
				return cli.APIFailure("set availability", err)
			}

			if available {
				fmt.Fprintln(os.Stdout, "You are online and accepting ride requests.")
			} else {
				fmt.Fprintln(os.Stdout, "You are offline.")
			}
			return nil
		},
	}
}
