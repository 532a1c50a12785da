// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
)

// Credentials carries the login form fields.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration carries the registration form fields. Role is "rider"
// or "driver" — admin accounts are provisioned server-side.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// AuthResponse is the server's reply to login and registration: the
// bearer credential plus the resolved profile, supplied atomically.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ProfileUpdate carries the profile-update form fields. The password
// fields are optional; the server requires CurrentPassword whenever
// NewPassword is set.
type ProfileUpdate struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	CurrentPassword string `json:"currentPassword,omitempty"`
	NewPassword     string `json:"newPassword,omitempty"`
}

// Login exchanges credentials for a bearer token and profile.
func (client *Client) Login(ctx context.Context, credentials Credentials) (*AuthResponse, error) {
	var response AuthResponse
	if err := client.post(ctx, "/auth/login", credentials, &response); err != nil {
		return nil, fmt.Errorf("logging in: %w", err)
	}
	return &response, nil
}

// Register creates an account and returns its bearer token and
// profile.
func (client *Client) Register(ctx context.Context, registration Registration) (*AuthResponse, error) {
	var response AuthResponse
	if err := client.post(ctx, "/auth/register", registration, &response); err != nil {
		return nil, fmt.Errorf("registering: %w", err)
	}
	return &response, nil
}

// Profile fetches the profile owned by the current credential.
func (client *Client) Profile(ctx context.Context) (*User, error) {
	var user User
	if err := client.get(ctx, "/auth/profile", &user); err != nil {
		return nil, fmt.Errorf("fetching profile: %w", err)
	}
	return &user, nil
}

// UpdateProfile updates the profile with the given user ID and
// returns the server's replacement record.
func (client *Client) UpdateProfile(ctx context.Context, userID int64, update ProfileUpdate) (*User, error) {
	var user User
	path := fmt.Sprintf("/user/profile/%d", userID)
	if err := client.put(ctx, path, update, &user); err != nil {
		return nil, fmt.Errorf("updating profile %d: %w", userID, err)
	}
	return &user, nil
}
