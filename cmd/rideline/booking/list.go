// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package booking

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

type listParams struct {
	cli.ConnectParams
	cli.JSONOutput
	Status string `json:"-" flag:"status,s" desc:"filter by status (pending, accepted, in_progress, completed, cancelled)"`
}

// ListCommand returns the "list" command for showing the rider's
// booking history, newest first.
func ListCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List your bookings",
		Usage:   "rideline list [flags]",
		Examples: []cli.Example{
			{
				Description: "Show all bookings",
				Command:     "rideline list",
			},
			{
				Description: "Show only active trips",
				Command:     "rideline list --status in_progress",
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
			if err := cli.RequireAuth(store); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()

			bookings, err := store.Client().UserBookings(ctx)
			if err != nil {
				return cli.APIFailure("list bookings", err)
			}

			if params.Status != "" {
				filtered := bookings[:0]
				for _, booking := range bookings {
					if booking.Status == params.Status {
						filtered = append(filtered, booking)
					}
				}
				bookings = filtered
			}

			if done, err := params.EmitJSON(bookings); done {
				return err
			}

			if len(bookings) == 0 {
				fmt.Fprintln(os.Stdout, "No bookings.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "ID\tFROM\tTO\tCAB\tFARE\tSTATUS\tDRIVER\tCREATED")
			for _, booking := range bookings {
				driver := "-"
				if booking.Driver != nil {
					driver = booking.Driver.Name
				}
				fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t$%.2f\t%s\t%s\t%s\n",
					booking.ID, booking.PickupLocation, booking.Destination,
					booking.CabType, booking.Fare, booking.Status, driver,
					booking.CreatedAt.Format("2006-01-02 15:04"))
			}
			writer.Flush()

			fmt.Fprintf(os.Stdout, "\n%s\n", summarize(bookings))
			return nil
		},
	}
}

// summarize renders a one-line count by status.
func summarize(bookings []api.Booking) string {
	counts := map[string]int{}
	for _, booking := range bookings {
		counts[booking.Status]++
	}

	line := fmt.Sprintf("%d booking(s)", len(bookings))
	for _, status := range []string{
		api.BookingPending, api.BookingAccepted, api.BookingInProgress,
		api.BookingCompleted, api.BookingCancelled,
	} {
		if counts[status] > 0 {
			line += fmt.Sprintf(", %d %s", counts[status], status)
		}
	}
	return line
}
