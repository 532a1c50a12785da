// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

// Package driver implements the driver command group: availability,
// ride requests, trip lifecycle, and earnings.
package driver
