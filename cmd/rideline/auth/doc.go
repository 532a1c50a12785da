// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

// Package auth implements the account commands: login, register,
// logout, whoami, and profile. These manage the saved session that
// every other command uses transparently.
package auth
