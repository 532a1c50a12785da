// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package driver

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/ridelinehq/rideline/cmd/rideline/cli"
	"github.com/ridelinehq/rideline/lib/api"
)

type tripParams struct {
	cli.ConnectParams
	cli.JSONOutput
}

func tripCommand() *cli.Command {
	var params tripParams

	return &cli.Command{
		Name:    "trip",
		Summary: "Show your current trip",
		Usage:   "rideline driver trip",
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

			trip, err := store.Client().CurrentTrip(ctx, user.ID)
			if err != nil {
				return cli.APIFailure("fetch current trip", err)
			}

			if trip == nil {
				if done, err := params.EmitJSON(struct{}{}); done {
					return err
				}
				fmt.Fprintln(os.Stdout, "No trip in progress.")
				return nil
			}

			if done, err := params.EmitJSON(trip); done {
				return err
			}

			printBooking(trip)
			return nil
		},
	}
}

// lifecycleCommand builds accept/start/complete: they differ only in
// name, the API call, and the confirmation line.
func lifecycleCommand(name, summary, confirmation string,
	action func(*api.Client, context.Context, int64) (*api.Booking, error)) *cli.Command {

	type lifecycleParams struct {
		cli.ConnectParams
		cli.JSONOutput
	}
	var params lifecycleParams

	return &cli.Command{
		Name:    name,
		Summary: summary,
		Usage:   fmt.Sprintf("rideline driver %s <booking-id>", name),
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 1 {
				return cli.Validation("a booking ID is required")
			}
			bookingID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return cli.Validation("invalid booking ID %q", args[0])
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

			booking, err := action(store.Client(), ctx, bookingID)
			if err != nil {
				return cli.APIFailure(name+" booking", err)
			}

			if done, err := params.EmitJSON(booking); done {
				return err
			}

			fmt.Fprintf(os.Stdout, confirmation+"\n", booking.ID)
			printBooking(booking)
			return nil
		},
	}
}

func acceptCommand() *cli.Command {
	return lifecycleCommand("accept", "Accept a pending ride request", "Booking #%d accepted",
		func(client *api.Client, ctx context.Context, id int64) (*api.Booking, error) {
			return client.AcceptBooking(ctx, id)
		})
}

func startCommand() *cli.Command {
	return lifecycleCommand("start", "Start an accepted trip", "Trip #%d started",
		func(client *api.Client, ctx context.Context, id int64) (*api.Booking, error) {
			return client.StartTrip(ctx, id)
		})
}

func completeCommand() *cli.Command {
	return lifecycleCommand("complete", "Complete the trip in progress", "Trip #%d completed",
		func(client *api.Client, ctx context.Context, id int64) (*api.Booking, error) {
			return client.CompleteTrip(ctx, id)
		})
}

func printBooking(booking *api.Booking) {
	fmt.Fprintf(os.Stdout, "  From:   %s\n", booking.PickupLocation)
	fmt.Fprintf(os.Stdout, "  To:     %s\n", booking.Destination)
	fmt.Fprintf(os.Stdout, "  Cab:    %s\n", booking.CabType)
	fmt.Fprintf(os.Stdout, "  Fare:   $%.2f\n", booking.Fare)
	fmt.Fprintf(os.Stdout, "  Status: %s\n", booking.Status)
}
