// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package credential

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// sessionFile is the on-disk shape of the persisted credential. The
// token is opaque to the client — it is stored and attached to
// requests verbatim, never interpreted.
type sessionFile struct {
	Token string `json:"token"`
}

// Store persists the bearer credential for the current profile. At
// most one credential exists at a time: Save overwrites, Clear
// removes. The absence of the file means unauthenticated — it is not
// an error.
type Store struct {
	path string
}

// NewStore creates a credential store backed by the file at path.
// An empty path selects the default location (see DefaultPath).
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	return &Store{path: path}
}

// DefaultPath returns the credential file location. Checks the
// RIDELINE_SESSION_FILE environment variable first, then falls back
// to ~/.config/rideline/session.json (honoring XDG_CONFIG_HOME).
func DefaultPath() string {
	if envPath := os.Getenv("RIDELINE_SESSION_FILE"); envPath != "" {
		return envPath
	}

	configDirectory := os.Getenv("XDG_CONFIG_HOME")
	if configDirectory == "" {
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			// Fallback — this should rarely happen.
			return filepath.Join("/tmp", "rideline-session.json")
		}
		configDirectory = filepath.Join(homeDirectory, ".config")
	}
	return filepath.Join(configDirectory, "rideline", "session.json")
}

// Path returns the file path this store reads and writes.
func (store *Store) Path() string {
	return store.path
}

// Load reads the persisted credential. Returns "" with no error when
// the file does not exist (unauthenticated state). A file that exists
// but holds no token is corrupt and reported as an error.
func (store *Store) Load() (string, error) {
	data, err := os.ReadFile(store.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading session file %s: %w", store.path, err)
	}

	var session sessionFile
	if err := json.Unmarshal(data, &session); err != nil {
		return "", fmt.Errorf("parsing session file %s: %w", store.path, err)
	}
	if session.Token == "" {
		return "", fmt.Errorf("session file %s has no token", store.path)
	}

	return session.Token, nil
}

// Save writes the credential to disk. Creates the parent directory
// with mode 0700 if it doesn't exist. The session file is written
// with mode 0600 (owner-only read/write) since it contains a bearer
// token.
func (store *Store) Save(token string) error {
	if token == "" {
		return fmt.Errorf("refusing to save an empty token")
	}

	data, err := json.MarshalIndent(sessionFile{Token: token}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	data = append(data, '\n')

	directory := filepath.Dir(store.path)
	if err := os.MkdirAll(directory, 0700); err != nil {
		return fmt.Errorf("creating session directory %s: %w", directory, err)
	}

	if err := os.WriteFile(store.path, data, 0600); err != nil {
		return fmt.Errorf("writing session file %s: %w", store.path, err)
	}

	return nil
}

// Clear removes the persisted credential. Removing an already-absent
// file is not an error — Clear is idempotent.
func (store *Store) Clear() error {
	if err := os.Remove(store.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file %s: %w", store.path, err)
	}
	return nil
}
