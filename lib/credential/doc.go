// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

// Package credential persists the bearer token that identifies an
// authenticated Rideline session. The token is stored in a single
// JSON file under the user's config directory (0600, like SSH keys)
// and is read once at process start to seed the session. Logout and
// any authorization failure from the API delete it.
package credential
