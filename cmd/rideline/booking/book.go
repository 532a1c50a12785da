// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package booking

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ridelinehq/rideline/cmd/rideline/cli"
	"github.com/ridelinehq/rideline/lib/api"
	"github.com/ridelinehq/rideline/lib/fare"
	"github.com/ridelinehq/rideline/lib/form"
)

type bookParams struct {
	cli.ConnectParams
	cli.JSONOutput
	CabType       string `json:"-" flag:"cab-type,c" desc:"cab type: economy, comfort, or premium"`
	PaymentMethod string `json:"-" flag:"payment,p"  desc:"payment method: cash, card, or digital"`
}

// BookCommand returns the "book" command for creating a booking.
func BookCommand() *cli.Command {
	var params bookParams

	return &cli.Command{
		Name:    "book",
		Summary: "Book a ride",
		Description: `Book a ride from a pickup location to a destination.

A fare quote is computed before the booking is submitted. The cab type
and payment method default to the values in the config file
(~/.config/rideline/config.yaml) when the flags are omitted.`,
		Usage: "rideline book <pickup> <destination> [flags]",
		Examples: []cli.Example{
			{
				Description: "Book an economy ride",
				Command:     `rideline book "Central Station" "Airport Terminal 2"`,
			},
			{
				Description: "Book a premium ride paid by card",
				Command:     `rideline book "Harbor St 12" "Opera House" --cab-type premium --payment card`,
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 2 {
				return cli.Validation("pickup and destination are required\n\nUsage: rideline book <pickup> <destination> [flags]")
			}

			store, cfg, err := params.Connect(ctx, logger)
			if err != nil {
				return err
			}
			if err := cli.RequireAuth(store); err != nil {
				return err
			}

			cabType := params.CabType
			if cabType == "" {
				cabType = cfg.Booking.CabType
			}
			paymentMethod := params.PaymentMethod
			if paymentMethod == "" {
				paymentMethod = cfg.Booking.PaymentMethod
			}

			request := form.Booking{
				PickupLocation: args[0],
				Destination:    args[1],
				CabType:        cabType,
				PaymentMethod:  paymentMethod,
			}
			if err := form.Validate(request); err != nil {
				return cli.Validation("%s", err)
			}

			quote, err := fare.EstimateTrip(cabType)
			if err != nil {
				return cli.Validation("%s", err)
			}

			ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()

			booking, err := store.Client().CreateBooking(ctx, api.CreateBookingRequest{
				PickupLocation: request.PickupLocation,
				Destination:    request.Destination,
				CabType:        request.CabType,
				PaymentMethod:  request.PaymentMethod,
				EstimatedFare:  quote.Fare,
			})
			if err != nil {
				return cli.APIFailure("create booking", err)
			}

			if done, err := params.EmitJSON(booking); done {
				return err
			}

			fmt.Fprintf(os.Stdout, "Booking #%d created\n", booking.ID)
			fmt.Fprintf(os.Stdout, "  From:     %s\n", booking.PickupLocation)
			fmt.Fprintf(os.Stdout, "  To:       %s\n", booking.Destination)
			fmt.Fprintf(os.Stdout, "  Cab:      %s (%s)\n", quote.CabType.Name, quote.CabType.Description)
			fmt.Fprintf(os.Stdout, "  Distance: %.1f km (~%d min)\n", quote.DistanceKm, quote.Minutes)
			fmt.Fprintf(os.Stdout, "  Fare:     $%.2f\n", bookingFare(booking, quote))
			fmt.Fprintf(os.Stdout, "  Status:   %s\n", booking.Status)
			return nil
		},
	}
}

// bookingFare prefers the server's fare when it set one; the local
// quote is a fallback for servers that defer fare calculation.
func bookingFare(booking *api.Booking, quote fare.Quote) float64 {
	if booking.Fare > 0 {
		return booking.Fare
	}
	return quote.Fare
}
