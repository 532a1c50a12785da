// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

// Package session is the single source of truth for "who is the
// current user and are they logged in".
//
// Exactly one [Store] exists per running client. It owns the
// persisted credential and the resolved identity: consumers read
// derived state (Authenticated, IsDriver, IsAdmin) and mutate only
// through the store's operations — login, register, logout, profile
// update. The store wires itself into the API client's unauthorized
// hook, so a 401 from any endpoint purges the credential and forces
// the client back to the login view.
//
// Initialize must settle (success or failure) before any role-gated
// view renders; the authorize gate enforces this by refusing a
// not-ready state snapshot.
package session
