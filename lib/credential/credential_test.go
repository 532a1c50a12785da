// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package credential

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path)

	if err := store.Save("tok_abc123"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	token, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if token != "tok_abc123" {
		t.Errorf("token = %q, want %q", token, "tok_abc123")
	}
}

func TestStoreLoadMissingFile(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "does-not-exist.json"))
	token, err := store.Load()
	if err != nil {
		t.Fatalf("Load of a missing file should not error, got: %v", err)
	}
	if token != "" {
		t.Errorf("token = %q, want empty", token)
	}
}

func TestStoreFilePermissions(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "subdir", "session.json")
	store := NewStore(path)

	if err := store.Save("secret-token"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if mode := info.Mode().Perm(); mode != 0600 {
		t.Errorf("session file mode = %o, want 0600", mode)
	}

	dirInfo, err := os.Stat(filepath.Dir(path))
	if err != nil {
		t.Fatalf("Stat directory: %v", err)
	}
	if mode := dirInfo.Mode().Perm(); mode != 0700 {
		t.Errorf("directory mode = %o, want 0700", mode)
	}
}

func TestStoreFileFormat(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path)

	if err := store.Save("T1"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		t.Error("session file does not end with a newline")
	}

	var parsed map[string]string
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("JSON parse: %v", err)
	}
	if parsed["token"] != "T1" {
		t.Errorf("token = %q, want T1", parsed["token"])
	}
}

func TestStoreSaveEmptyToken(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "session.json"))
	if err := store.Save(""); err == nil {
		t.Fatal("Save should reject an empty token")
	}
}

func TestStoreLoadEmptyToken(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte(`{"token":""}`), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := NewStore(path).Load()
	if err == nil {
		t.Fatal("Load should reject a session file with no token")
	}
	if !strings.Contains(err.Error(), "no token") {
		t.Errorf("error = %q, should mention the missing token", err)
	}
}

func TestStoreLoadMalformedJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("not json"), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := NewStore(path).Load(); err == nil {
		t.Fatal("Load should reject malformed JSON")
	}
}

func TestStoreClear(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path)

	if err := store.Save("tok"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("session file still exists after Clear")
	}

	// Clearing again is a no-op, not an error.
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
}

func TestDefaultPathEnvOverride(t *testing.T) {
	// Cannot use t.Parallel() — t.Setenv modifies process environment.
	customPath := filepath.Join(t.TempDir(), "custom-session.json")
	t.Setenv("RIDELINE_SESSION_FILE", customPath)

	if got := DefaultPath(); got != customPath {
		t.Errorf("DefaultPath() = %q, want %q", got, customPath)
	}
}

func TestDefaultPathXDGConfigHome(t *testing.T) {
	// Cannot use t.Parallel() — t.Setenv modifies process environment.
	t.Setenv("RIDELINE_SESSION_FILE", "")

	configDirectory := filepath.Join(t.TempDir(), "xdg-config")
	t.Setenv("XDG_CONFIG_HOME", configDirectory)

	expected := filepath.Join(configDirectory, "rideline", "session.json")
	if got := DefaultPath(); got != expected {
		t.Errorf("DefaultPath() = %q, want %q", got, expected)
	}
}
