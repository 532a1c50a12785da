// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package booking

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/ridelinehq/rideline/cmd/rideline/cli"
)

type cancelParams struct {
	cli.ConnectParams
	cli.JSONOutput
}

// CancelCommand returns the "cancel" command for cancelling a booking
// that has not completed yet.
func CancelCommand() *cli.Command {
	var params cancelParams

	return &cli.Command{
		Name:    "cancel",
		Summary: "Cancel a booking",
		Usage:   "rideline cancel <booking-id>",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			bookingID, err := parseBookingID(args)
			if err != nil {
				return err
			}

			store, _, err := params.Connect(ctx, logger)
			if err != nil {
				return err
			}
			if err := cli.RequireAuth(store); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()

			booking, err := store.Client().CancelBooking(ctx, bookingID)
			if err != nil {
				return cli.APIFailure("cancel booking", err)
			}

			if done, err := params.EmitJSON(booking); done {
				return err
			}

			fmt.Fprintf(os.Stdout, "Booking #%d cancelled\n", booking.ID)
			return nil
		},
	}
}

// parseBookingID extracts the single booking ID argument.
func parseBookingID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, cli.Validation("a booking ID is required")
	}
	bookingID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, cli.Validation("invalid booking ID %q", args[0])
	}
	return bookingID, nil
}
