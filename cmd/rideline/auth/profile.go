// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/ridelinehq/rideline/cmd/rideline/cli"
	"github.com/ridelinehq/rideline/lib/api"
	"github.com/ridelinehq/rideline/lib/form"
)

// ProfileCommand returns the "profile" command group.
func ProfileCommand() *cli.Command {
	return &cli.Command{
		Name:    "profile",
		Summary: "Show or update the account profile",
		Subcommands: []*cli.Command{
			profileShowCommand(),
			profileUpdateCommand(),
		},
	}
}

type profileShowParams struct {
	cli.ConnectParams
	cli.JSONOutput
}

func profileShowCommand() *cli.Command {
	var params profileShowParams

	return &cli.Command{
		Name:    "show",
		Summary: "Show the account profile",
		Usage:   "rideline profile show [flags]",
		Params:  func() any { return &params },
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

			user, _ := store.Identity()

			if done, err := params.EmitJSON(user); done {
				return err
			}

			fmt.Fprintf(os.Stdout, "Name:    %s\n", user.Name)
			fmt.Fprintf(os.Stdout, "Email:   %s\n", user.Email)
			fmt.Fprintf(os.Stdout, "Phone:   %s\n", user.Phone)
			fmt.Fprintf(os.Stdout, "Role:    %s\n", user.Role)
			if !user.CreatedAt.IsZero() {
				fmt.Fprintf(os.Stdout, "Member since: %s\n", user.CreatedAt.Format("Jan 2, 2006"))
			}
			return nil
		},
	}
}

type profileUpdateParams struct {
	cli.ConnectParams
	Name           string `json:"-" flag:"name"            desc:"new full name"`
	Email          string `json:"-" flag:"email"           desc:"new email address"`
	Phone          string `json:"-" flag:"phone"           desc:"new phone number"`
	ChangePassword bool   `json:"-" flag:"change-password" desc:"prompt for a password change"`
}

func profileUpdateCommand() *cli.Command {
	var params profileUpdateParams

	return &cli.Command{
		Name:    "update",
		Summary: "Update the account profile",
		Description: `Update the account profile.

Fields not given as flags keep their current values. With
--change-password, the current and new passwords are prompted
interactively (never passed on the command line).`,
		Usage: "rideline profile update [flags]",
		Examples: []cli.Example{
			{
				Description: "Change the phone number",
				Command:     `rideline profile update --phone "+1 555-0199"`,
			},
			{
				Description: "Change the password",
				Command:     "rideline profile update --change-password",
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

			current, _ := store.Identity()

			// Unset flags keep the current values.
			update := form.ProfileUpdate{
				Name:  current.Name,
				Email: current.Email,
				Phone: current.Phone,
			}
			if params.Name != "" {
				update.Name = params.Name
			}
			if params.Email != "" {
				update.Email = params.Email
			}
			if params.Phone != "" {
				update.Phone = params.Phone
			}

			if params.ChangePassword {
				update.CurrentPassword, update.NewPassword, update.ConfirmPassword, err = promptPasswordChange()
				if err != nil {
					return err
				}
			}

			if err := form.Validate(update); err != nil {
				return cli.Validation("%s", err)
			}

			ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()

			request := api.ProfileUpdate{
				Name:            update.Name,
				Email:           update.Email,
				Phone:           update.Phone,
				CurrentPassword: update.CurrentPassword,
				NewPassword:     update.NewPassword,
			}
			if err := store.UpdateProfile(ctx, request); err != nil {
				// The notifier already reported the failure.
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}

// promptPasswordChange reads the current, new, and confirmation
// passwords from the terminal with echo disabled.
func promptPasswordChange() (current, updated, confirm string, err error) {
	stdinFileDescriptor := int(os.Stdin.Fd())
	if !term.IsTerminal(stdinFileDescriptor) {
		return "", "", "", cli.Validation("no terminal available for password prompts")
	}

	prompt := func(label string) (string, error) {
		fmt.Fprintf(os.Stderr, "%s: ", label)
		raw, err := term.ReadPassword(stdinFileDescriptor)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", cli.Internal("reading password: %w", err)
		}
		return string(raw), nil
	}

	if current, err = prompt("Current password"); err != nil {
		return "", "", "", err
	}
	if updated, err = prompt("New password"); err != nil {
		return "", "", "", err
	}
	if confirm, err = prompt("Confirm new password"); err != nil {
		return "", "", "", err
	}
	return current, updated, confirm, nil
}
