// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/ridelinehq/rideline/cmd/rideline/cli"
	"github.com/ridelinehq/rideline/lib/form"
)

// loginParams holds the parameters for the login command.
type loginParams struct {
	cli.ConnectParams
	PasswordFile string `json:"-" flag:"password-file" desc:"path to file containing password, or - to prompt interactively (default: prompt)"`
}

// LoginCommand returns the "login" command for authenticating a rider,
// driver, or admin account. On success the bearer token is saved to
// the well-known session file; subsequent commands (book, list,
// driver, dashboard) load it transparently.
func LoginCommand() *cli.Command {
	var params loginParams

	return &cli.Command{
		Name:    "login",
		Summary: "Authenticate and save the session",
		Description: `Log in to Rideline and save the session locally.

After login, commands like "rideline book" and "rideline driver trip"
use the saved session transparently — no flags needed.

The session file is stored at ~/.config/rideline/session.json (or
$RIDELINE_SESSION_FILE if set, or $XDG_CONFIG_HOME/rideline/session.json).
The file is written with mode 0600 (owner-only read/write) since it
contains an access token.

The password can be provided via --password-file (a path to a file
containing the password) or prompted interactively if --password-file
is "-" or omitted.`,
		Usage: "rideline login <email> [flags]",
		Examples: []cli.Example{
			{
				Description: "Log in interactively (prompts for password)",
				Command:     "rideline login dana@example.com",
			},
			{
				Description: "Log in against a different deployment",
				Command:     "rideline login dana@example.com --api-url https://api.rideline.example",
			},
			{
				Description: "Log in with password from file",
				Command:     "rideline login dana@example.com --password-file /path/to/password",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) < 1 {
				return cli.Validation("email is required\n\nUsage: rideline login <email> [flags]")
			}
			email := args[0]
			if len(args) > 1 {
				return cli.Validation("unexpected argument: %s", args[1])
			}

			password, err := readPassword(params.PasswordFile)
			if err != nil {
				return err
			}

			if err := form.Validate(form.Login{Email: email, Password: password}); err != nil {
				return cli.Validation("%s", err)
			}

			ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()

			store, _, err := params.Connect(ctx, logger)
			if err != nil {
				return err
			}

			if err := store.Login(ctx, email, password); err != nil {
				// The notifier already reported the failure.
				return &cli.ExitError{Code: 1}
			}

			if user, ok := store.Identity(); ok {
				fmt.Fprintf(os.Stderr, "Logged in as %s (%s)\n", user.Name, user.Role)
			}
			return nil
		},
	}
}

// readPassword reads a password for the login and register commands.
// If passwordFile is empty or "-", prompts interactively on the
// terminal with echo disabled. Otherwise reads from the file path,
// stripping trailing newlines.
func readPassword(passwordFile string) (string, error) {
	if passwordFile != "" && passwordFile != "-" {
		data, err := os.ReadFile(passwordFile)
		if err != nil {
			return "", cli.Internal("reading %s: %w", passwordFile, err)
		}
		password := strings.TrimRight(string(data), "\r\n")
		if password == "" {
			return "", cli.Validation("file %s is empty (after stripping trailing newlines)", passwordFile)
		}
		return password, nil
	}

	stdinFileDescriptor := int(os.Stdin.Fd())
	if !term.IsTerminal(stdinFileDescriptor) {
		return "", cli.Validation("no terminal available for interactive password prompt (use --password-file)")
	}

	fmt.Fprint(os.Stderr, "Password: ")
	passwordBytes, err := term.ReadPassword(stdinFileDescriptor)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", cli.Internal("reading password: %w", err)
	}
	return string(passwordBytes), nil
}
