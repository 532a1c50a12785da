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

type earningsParams struct {
	cli.ConnectParams
	cli.JSONOutput
}

func earningsCommand() *cli.Command {
	var params earningsParams

	return &cli.Command{
		Name:    "earnings",
		Summary: "Show your earnings summary",
		Usage:   "rideline driver earnings",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

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

			earnings, err := store.Client().Earnings(ctx, user.ID)
			if err != nil {
				return cli.APIFailure("fetch earnings", err)
			}

			if done, err := params.EmitJSON(earnings); done {
				return err
			}

			fmt.Fprintf(os.Stdout, "Today:     $%.2f\n", earnings.TodayEarnings)
			fmt.Fprintf(os.Stdout, "This week: $%.2f\n", earnings.WeeklyEarnings)
			fmt.Fprintf(os.Stdout, "This month: $%.2f\n", earnings.MonthlyEarnings)
			fmt.Fprintf(os.Stdout, "All time:  $%.2f\n", earnings.TotalEarnings)
			fmt.Fprintf(os.Stdout, "Trips:     %d completed\n", earnings.CompletedTrips)
			fmt.Fprintf(os.Stdout, "Rating:    %.1f\n", earnings.Rating)
			fmt.Fprintf(os.Stdout, "Online:    %.1f h\n", earnings.OnlineHours)
			return nil
		},
	}
}
