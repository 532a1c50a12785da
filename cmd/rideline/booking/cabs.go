// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package booking

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/ridelinehq/rideline/cmd/rideline/cli"
	"github.com/ridelinehq/rideline/lib/fare"
)

type cabsParams struct {
	cli.ConnectParams
	cli.JSONOutput
	Rates bool `json:"-" flag:"rates" desc:"show the fare table instead of live availability"`
}

// CabsCommand returns the "cabs" command: live cab availability from
// the server, or the static fare table with --rates (no login needed
// for the latter).
func CabsCommand() *cli.Command {
	var params cabsParams

	return &cli.Command{
		Name:    "cabs",
		Summary: "Show available cabs and fare rates",
		Usage:   "rideline cabs [flags]",
		Examples: []cli.Example{
			{
				Description: "Show cabs currently available",
				Command:     "rideline cabs",
			},
			{
				Description: "Show the fare table",
				Command:     "rideline cabs --rates",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			if params.Rates {
				return printRates(&params.JSONOutput)
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

			cabs, err := store.Client().AvailableCabs(ctx)
			if err != nil {
				return cli.APIFailure("list cabs", err)
			}

			if done, err := params.EmitJSON(cabs); done {
				return err
			}

			if len(cabs) == 0 {
				fmt.Fprintln(os.Stdout, "No cabs available right now.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "ID\tTYPE\tPLATE\tRATING")
			for _, cab := range cabs {
				fmt.Fprintf(writer, "%d\t%s\t%s\t%.1f\n",
					cab.ID, cab.CabType, cab.LicensePlate, cab.Rating)
			}
			writer.Flush()
			return nil
		},
	}
}

func printRates(output *cli.JSONOutput) error {
	types := fare.Types()

	if done, err := output.EmitJSON(types); done {
		return err
	}

	writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
	fmt.Fprintln(writer, "TYPE\tBASE\tPER KM\tFEATURES")
	for _, cabType := range types {
		fmt.Fprintf(writer, "%s\t$%.2f\t$%.2f\t%s\n",
			cabType.Name, cabType.BasePrice, cabType.PerKmPrice,
			strings.Join(cabType.Features, ", "))
	}
	writer.Flush()
	return nil
}
