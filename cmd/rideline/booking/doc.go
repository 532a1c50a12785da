// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

// Package booking implements the rider commands: book, list, and cabs.
package booking
