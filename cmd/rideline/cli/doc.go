// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command framework shared by every rideline
// subcommand: the command tree with help and suggestion support,
// struct-tag flag binding on pflag, categorized errors, JSON output
// helpers, and the session bootstrap used by authenticated commands.
package cli
