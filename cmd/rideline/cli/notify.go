// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"os"
)

// StderrNotifier writes session operation outcomes to stderr, keeping
// stdout clean for command output (text tables, --json payloads).
type StderrNotifier struct {
	// Writer defaults to os.Stderr.
	Writer io.Writer
}

func (n StderrNotifier) writer() io.Writer {
	if n.Writer != nil {
		return n.Writer
	}
	return os.Stderr
}

// Success prints a success message.
func (n StderrNotifier) Success(message string) {
	fmt.Fprintln(n.writer(), message)
}

// Error prints a failure message.
func (n StderrNotifier) Error(message string) {
	fmt.Fprintf(n.writer(), "error: %s\n", message)
}

// Info prints an informational message.
func (n StderrNotifier) Info(message string) {
	fmt.Fprintln(n.writer(), message)
}
