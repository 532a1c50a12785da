// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package driver

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/ridelinehq/rideline/cmd/rideline/cli"
	"github.com/ridelinehq/rideline/lib/api"
)

type requestsParams struct {
	cli.ConnectParams
	cli.JSONOutput
	All bool `json:"-" flag:"all,a" desc:"include completed and cancelled bookings"`
}

func requestsCommand() *cli.Command {
	var params requestsParams

	return &cli.Command{
		Name:    "requests",
		Summary: "List ride requests and assigned bookings",
		Usage:   "rideline driver requests [flags]",
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

			ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()

			bookings, err := store.Client().DriverBookings(ctx)
			if err != nil {
				return cli.APIFailure("list ride requests", err)
			}

			if !params.All {
				active := bookings[:0]
				for _, booking := range bookings {
					switch booking.Status {
					case api.BookingPending, api.BookingAccepted, api.BookingInProgress:
						active = append(active, booking)
					}
				}
				bookings = active
			}

			if done, err := params.EmitJSON(bookings); done {
				return err
			}

			if len(bookings) == 0 {
				fmt.Fprintln(os.Stdout, "No ride requests.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "ID\tFROM\tTO\tCAB\tFARE\tSTATUS\tREQUESTED")
			for _, booking := range bookings {
				fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t$%.2f\t%s\t%s\n",
					booking.ID, booking.PickupLocation, booking.Destination,
					booking.CabType, booking.Fare, booking.Status,
					booking.CreatedAt.Format("15:04"))
			}
			writer.Flush()
			return nil
		},
	}
}
