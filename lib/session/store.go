// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/ridelinehq/rideline/lib/api"
	"github.com/ridelinehq/rideline/lib/authorize"
	"github.com/ridelinehq/rideline/lib/credential"
)

// Config holds configuration for creating a session Store.
type Config struct {
	// BaseURL is the Rideline API root. Required.
	BaseURL string

	// Credentials persists the bearer token. Defaults to a store at
	// the standard session file path.
	Credentials *credential.Store

	// Notifier receives user-facing operation outcomes. Defaults to
	// NopNotifier.
	Notifier Notifier

	// HTTPClient is used for all API requests. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// Logger is used for structured logging. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// Store owns the session: the bearer credential, the resolved
// identity, and the readiness flag. All mutation goes through its
// methods; no other component writes session state.
//
// The store is the API client's TokenSource, so every request picks
// up the current credential, and its unauthorized hook, so any 401
// purges the credential and records a forced redirect to login.
type Store struct {
	credentials *credential.Store
	client      *api.Client
	notifier    Notifier
	logger      *slog.Logger

	mu            sync.Mutex
	token         string
	identity      *api.User
	ready         bool
	loginRedirect bool
}

// New creates a session store and its API client. The store starts
// not ready; call Initialize before consulting role-gated state.
func New(config Config) (*Store, error) {
	credentials := config.Credentials
	if credentials == nil {
		credentials = credential.NewStore("")
	}

	notifier := config.Notifier
	if notifier == nil {
		notifier = NopNotifier{}
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	store := &Store{
		credentials: credentials,
		notifier:    notifier,
		logger:      logger,
	}

	client, err := api.NewClient(api.Config{
		BaseURL:        config.BaseURL,
		Tokens:         store,
		OnUnauthorized: store.handleUnauthorized,
		HTTPClient:     config.HTTPClient,
		Logger:         logger,
	})
	if err != nil {
		return nil, err
	}
	store.client = client

	return store, nil
}

// Client returns the API client bound to this session. Commands use
// it for resource calls (bookings, cabs, driver operations) so that
// every request shares the credential and the 401 handling.
func (store *Store) Client() *api.Client {
	return store.client
}

// Token returns the current bearer credential, or "" when
// unauthenticated. Implements [api.TokenSource].
func (store *Store) Token() string {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.token
}

// handleUnauthorized is the API client's 401 hook: purge the
// persisted credential, drop the in-memory session, and record the
// forced navigation to the login view. Runs once per 401 response,
// whichever endpoint produced it. Notification is left to the
// operation that observed the failure.
func (store *Store) handleUnauthorized() {
	store.mu.Lock()
	store.token = ""
	store.identity = nil
	store.loginRedirect = true
	store.mu.Unlock()

	if err := store.credentials.Clear(); err != nil {
		store.logger.Warn("clearing rejected credential", "error", err)
	}
}

// Initialize seeds the session from the persisted credential and
// validates it against the server. It always settles: on any failure
// the credential is cleared and the session ends ready but
// unauthenticated. Role-gated views must not render before this
// returns.
func (store *Store) Initialize(ctx context.Context) {
	defer func() {
		store.mu.Lock()
		store.ready = true
		store.mu.Unlock()
	}()

	token, err := store.credentials.Load()
	if err != nil {
		store.logger.Warn("reading persisted credential", "error", err)
		if clearErr := store.credentials.Clear(); clearErr != nil {
			store.logger.Warn("clearing corrupt credential", "error", clearErr)
		}
		return
	}
	if token == "" {
		return
	}

	store.mu.Lock()
	store.token = token
	store.mu.Unlock()

	identity, err := store.client.Profile(ctx)
	if err != nil {
		// Invalid or expired credential. The 401 hook already purged
		// state for authorization failures; clear explicitly for
		// everything else (network failure, server error) so a
		// never-validated identity cannot leak into this process.
		store.logger.Warn("credential validation failed", "error", err)
		store.mu.Lock()
		store.token = ""
		store.identity = nil
		store.mu.Unlock()
		if clearErr := store.credentials.Clear(); clearErr != nil {
			store.logger.Warn("clearing invalid credential", "error", clearErr)
		}
		return
	}

	store.mu.Lock()
	store.identity = identity
	store.mu.Unlock()
}

// Login exchanges the email/password pair for a credential and
// identity. Fails closed: on any error the prior state is untouched
// and no partial credential is stored. Emits exactly one
// notification.
func (store *Store) Login(ctx context.Context, email, password string) error {
	response, err := store.client.Login(ctx, api.Credentials{Email: email, Password: password})
	if err != nil {
		store.notifier.Error(api.ErrorMessage(err, "Login failed"))
		return err
	}

	if err := store.adopt(response); err != nil {
		store.notifier.Error("Login failed")
		return err
	}

	store.notifier.Success("Login successful!")
	return nil
}

// Register creates an account. The server supplies credential and
// identity atomically; the contract otherwise matches Login.
func (store *Store) Register(ctx context.Context, registration api.Registration) error {
	response, err := store.client.Register(ctx, registration)
	if err != nil {
		store.notifier.Error(api.ErrorMessage(err, "Registration failed"))
		return err
	}

	if err := store.adopt(response); err != nil {
		store.notifier.Error("Registration failed")
		return err
	}

	store.notifier.Success("Registration successful!")
	return nil
}

// adopt persists and installs a credential/identity pair. The
// credential is written to disk before any in-memory state changes,
// so a persistence failure leaves the session exactly as it was.
func (store *Store) adopt(response *api.AuthResponse) error {
	if response.Token == "" {
		return fmt.Errorf("session: server returned no token")
	}
	if err := store.credentials.Save(response.Token); err != nil {
		return fmt.Errorf("session: persisting credential: %w", err)
	}

	identity := response.User
	store.mu.Lock()
	store.token = response.Token
	store.identity = &identity
	store.loginRedirect = false
	store.mu.Unlock()
	return nil
}

// Logout clears the credential and identity unconditionally. It
// never fails: a credential file that cannot be removed is logged,
// and the in-memory session is dropped regardless.
func (store *Store) Logout() {
	if err := store.credentials.Clear(); err != nil {
		store.logger.Warn("clearing credential on logout", "error", err)
	}

	store.mu.Lock()
	store.token = ""
	store.identity = nil
	store.mu.Unlock()

	store.notifier.Info("Logged out successfully")
}

// UpdateProfile updates the current identity's profile. On success
// the identity is replaced wholesale with the server's record; on
// failure it is left byte-for-byte unchanged and the server's error
// text (or a generic fallback) is surfaced.
func (store *Store) UpdateProfile(ctx context.Context, update api.ProfileUpdate) error {
	store.mu.Lock()
	identity := store.identity
	store.mu.Unlock()

	if identity == nil {
		store.notifier.Error("Profile update failed")
		return fmt.Errorf("session: no authenticated identity to update")
	}

	updated, err := store.client.UpdateProfile(ctx, identity.ID, update)
	if err != nil {
		store.notifier.Error(api.ErrorMessage(err, "Profile update failed"))
		return err
	}

	store.mu.Lock()
	store.identity = updated
	store.mu.Unlock()

	store.notifier.Success("Profile updated successfully!")
	return nil
}

// Ready reports whether Initialize has settled.
func (store *Store) Ready() bool {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.ready
}

// Authenticated reports whether a credential is present. Recomputed
// from current state on every call — absence of a credential means
// unauthenticated regardless of any cached identity.
func (store *Store) Authenticated() bool {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.token != ""
}

// IsDriver reports whether the resolved identity is a driver.
func (store *Store) IsDriver() bool {
	return store.role() == authorize.RoleDriver
}

// IsAdmin reports whether the resolved identity is an admin.
func (store *Store) IsAdmin() bool {
	return store.role() == authorize.RoleAdmin
}

func (store *Store) role() authorize.Role {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.token == "" || store.identity == nil {
		return authorize.RoleRider
	}
	return authorize.ParseRole(store.identity.Role)
}

// Identity returns a copy of the resolved identity. The second
// return is false when no identity has been resolved.
func (store *Store) Identity() (api.User, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.identity == nil {
		return api.User{}, false
	}
	return *store.identity, true
}

// AuthState snapshots the session for the authorize gate.
func (store *Store) AuthState() authorize.State {
	store.mu.Lock()
	defer store.mu.Unlock()

	state := authorize.State{
		Ready:         store.ready,
		Authenticated: store.token != "",
	}
	if store.identity != nil {
		state.Role = authorize.ParseRole(store.identity.Role)
	}
	return state
}

// ConsumeLoginRedirect reports whether an authorization failure has
// forced navigation to the login view since the last call, and
// clears the flag. The view layer polls this after API calls.
func (store *Store) ConsumeLoginRedirect() bool {
	store.mu.Lock()
	defer store.mu.Unlock()
	pending := store.loginRedirect
	store.loginRedirect = false
	return pending
}
