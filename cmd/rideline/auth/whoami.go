// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ridelinehq/rideline/cmd/rideline/cli"
	"github.com/ridelinehq/rideline/lib/credential"
)

type whoamiParams struct {
	cli.ConnectParams
	cli.JSONOutput
	Verify bool `json:"verify" flag:"verify" desc:"verify the session against the server"`
}

// whoamiOutput is the JSON output for the whoami command.
type whoamiOutput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	SessionFile string `json:"session_file"`
	TokenExpiry string `json:"token_expiry,omitempty"`
	Status      string `json:"status,omitempty"`
}

// WhoAmICommand returns the "whoami" command for displaying the
// current identity. Without --verify it reports the identity restored
// during session initialization; with --verify it re-fetches the
// profile so an expired or revoked token is detected explicitly.
func WhoAmICommand() *cli.Command {
	var params whoamiParams

	return &cli.Command{
		Name:    "whoami",
		Summary: "Show the current identity",
		Description: `Display the currently logged-in identity.

Shows the account name, email, role, and session file path from the
saved session (created by "rideline login"). When the saved token is a
JWT, its expiry time is decoded locally and shown too.

With --verify, the saved token is checked against the server to
confirm the session is still valid.`,
		Usage: "rideline whoami [flags]",
		Examples: []cli.Example{
			{
				Description: "Show current identity",
				Command:     "rideline whoami",
			},
			{
				Description: "Verify the session is still valid",
				Command:     "rideline whoami --verify",
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

			user, ok := store.Identity()
			if !ok {
				return cli.Forbidden("not logged in (run 'rideline login' first)")
			}

			output := whoamiOutput{
				Name:        user.Name,
				Email:       user.Email,
				Role:        user.Role,
				SessionFile: credential.DefaultPath(),
				TokenExpiry: tokenExpiry(store.Token()),
			}

			if params.Verify {
				ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
				defer cancel()

				verified, err := store.Client().Profile(ctx)
				if err != nil {
					output.Status = "invalid"
					if done, err := params.EmitJSON(output); done {
						return err
					}
					printWhoami(output)
					fmt.Fprintf(os.Stdout, "Status:       INVALID (token rejected by server)\n")
					return &cli.ExitError{Code: 1}
				}
				output.Status = fmt.Sprintf("valid (verified as %s)", verified.Email)
			}

			if done, err := params.EmitJSON(output); done {
				return err
			}

			printWhoami(output)
			if output.Status != "" {
				fmt.Fprintf(os.Stdout, "Status:       %s\n", output.Status)
			}
			return nil
		},
	}
}

func printWhoami(output whoamiOutput) {
	fmt.Fprintf(os.Stdout, "Name:         %s\n", output.Name)
	fmt.Fprintf(os.Stdout, "Email:        %s\n", output.Email)
	fmt.Fprintf(os.Stdout, "Role:         %s\n", output.Role)
	fmt.Fprintf(os.Stdout, "Session file: %s\n", output.SessionFile)
	if output.TokenExpiry != "" {
		fmt.Fprintf(os.Stdout, "Token expiry: %s\n", output.TokenExpiry)
	}
}

// tokenExpiry decodes the exp claim of a JWT bearer token without
// verifying its signature (the server holds the key; this is display
// only). Returns "" for opaque tokens or tokens without an expiry.
func tokenExpiry(token string) string {
	if token == "" {
		return ""
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return ""
	}

	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return ""
	}

	remaining := time.Until(expiry.Time).Round(time.Minute)
	if remaining < 0 {
		return fmt.Sprintf("%s (expired)", expiry.Format(time.RFC3339))
	}
	return fmt.Sprintf("%s (in %s)", expiry.Format(time.RFC3339), remaining)
}
