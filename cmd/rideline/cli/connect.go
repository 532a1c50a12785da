// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"log/slog"

	"github.com/ridelinehq/rideline/lib/config"
	"github.com/ridelinehq/rideline/lib/credential"
	"github.com/ridelinehq/rideline/lib/session"
)

// ConnectParams holds the connection flags shared by every command
// that talks to the Rideline API. Embed it in a command's params
// struct to pick up --api-url and --config.
type ConnectParams struct {
	APIURL     string `json:"-" flag:"api-url" desc:"Rideline API base URL (overrides config file)"`
	ConfigPath string `json:"-" flag:"config"  desc:"path to config file (default: ~/.config/rideline/config.yaml)"`
}

// Connect loads configuration, restores any saved session, and returns
// a ready session store. The store is always ready on return; whether
// it is authenticated depends on the saved credential. Commands that
// require authentication should check [session.Store.Authenticated]
// and return a Forbidden error directing the user to "rideline login".
func (p *ConnectParams) Connect(ctx context.Context, logger *slog.Logger) (*session.Store, *config.Config, error) {
	cfg, err := config.Load(p.ConfigPath)
	if err != nil {
		return nil, nil, Internal("load config: %w", err)
	}
	if p.APIURL != "" {
		cfg.APIURL = p.APIURL
	}

	store, err := session.New(session.Config{
		BaseURL:     cfg.APIURL,
		Credentials: credential.NewStore(""),
		Notifier:    StderrNotifier{},
		Logger:      logger,
	})
	if err != nil {
		return nil, nil, Internal("create session: %w", err)
	}

	store.Initialize(ctx)
	return store, cfg, nil
}

// RequireAuth returns a Forbidden error unless the store holds an
// authenticated session.
func RequireAuth(store *session.Store) error {
	if !store.Authenticated() {
		return Forbidden("not logged in (run 'rideline login' first)")
	}
	return nil
}
