// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ridelinehq/rideline/cmd/rideline/cli"
	"github.com/ridelinehq/rideline/lib/api"
	"github.com/ridelinehq/rideline/lib/form"
)

type registerParams struct {
	cli.ConnectParams
	Name         string `json:"-" flag:"name"          desc:"full name"`
	Phone        string `json:"-" flag:"phone"         desc:"phone number"`
	Role         string `json:"-" flag:"role"          desc:"account role: rider or driver" default:"rider"`
	PasswordFile string `json:"-" flag:"password-file" desc:"path to file containing password, or - to prompt interactively (default: prompt)"`
}

// RegisterCommand returns the "register" command for creating an
// account. The server logs the new account in immediately, so the
// session is saved just as with login.
func RegisterCommand() *cli.Command {
	var params registerParams

	return &cli.Command{
		Name:    "register",
		Summary: "Create an account and save the session",
		Description: `Create a Rideline account as a rider or driver.

Registration logs the new account in immediately and saves the session
locally, exactly like "rideline login". Admin accounts cannot be
created this way; they are provisioned server-side.`,
		Usage: "rideline register <email> --name <name> --phone <phone> [flags]",
		Examples: []cli.Example{
			{
				Description: "Register as a rider",
				Command:     `rideline register dana@example.com --name "Dana Cruz" --phone "+1 555-0100"`,
			},
			{
				Description: "Register as a driver",
				Command:     `rideline register leo@example.com --name "Leo Marsh" --phone "+1 555-0101" --role driver`,
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) < 1 {
				return cli.Validation("email is required\n\nUsage: rideline register <email> [flags]")
			}
			email := args[0]
			if len(args) > 1 {
				return cli.Validation("unexpected argument: %s", args[1])
			}

			password, err := readPassword(params.PasswordFile)
			if err != nil {
				return err
			}

			registration := form.Registration{
				Name:     params.Name,
				Email:    email,
				Phone:    params.Phone,
				Password: password,
				Role:     params.Role,
			}
			if err := form.Validate(registration); err != nil {
				return cli.Validation("%s", err)
			}

			ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()

			store, _, err := params.Connect(ctx, logger)
			if err != nil {
				return err
			}

			request := api.Registration{
				Name:     registration.Name,
				Email:    registration.Email,
				Phone:    registration.Phone,
				Password: registration.Password,
				Role:     registration.Role,
			}
			if err := store.Register(ctx, request); err != nil {
				// The notifier already reported the failure.
				return &cli.ExitError{Code: 1}
			}

			if user, ok := store.Identity(); ok {
				fmt.Fprintf(os.Stderr, "Registered as %s (%s)\n", user.Name, user.Role)
			}
			return nil
		},
	}
}
