// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseAPIErrorStructuredBody(t *testing.T) {
	t.Parallel()

	apiError := parseAPIError(400, []byte(`{"message":"pickup location is required"}`))
	if apiError.Message != "pickup location is required" {
		t.Errorf("Message = %q", apiError.Message)
	}
	if got := apiError.Error(); got != "rideline: HTTP 400: pickup location is required" {
		t.Errorf("Error() = %q", got)
	}
}

func TestParseAPIErrorRawBody(t *testing.T) {
	t.Parallel()

	apiError := parseAPIError(502, []byte("Bad Gateway\n"))
	if apiError.Message != "Bad Gateway" {
		t.Errorf("Message = %q, want raw body", apiError.Message)
	}
}

func TestErrorMessageFallback(t *testing.T) {
	t.Parallel()

	// Wrapped API errors surface the server text.
	wrapped := fmt.Errorf("logging in: %w", &APIError{StatusCode: 401, Message: "invalid credentials"})
	if got := ErrorMessage(wrapped, "Login failed"); got != "invalid credentials" {
		t.Errorf("ErrorMessage = %q, want server text", got)
	}

	// Non-API errors (network failures) fall back to the generic text.
	if got := ErrorMessage(errors.New("dial tcp: connection refused"), "Login failed"); got != "Login failed" {
		t.Errorf("ErrorMessage = %q, want fallback", got)
	}

	// An API error with no message also falls back.
	if got := ErrorMessage(&APIError{StatusCode: 500}, "Something went wrong"); got != "Something went wrong" {
		t.Errorf("ErrorMessage = %q, want fallback", got)
	}
}

func TestStatusHelpers(t *testing.T) {
	t.Parallel()

	if !IsUnauthorized(fmt.Errorf("x: %w", &APIError{StatusCode: 401})) {
		t.Error("IsUnauthorized should see through wrapping")
	}
	if !IsNotFound(&APIError{StatusCode: 404}) {
		t.Error("IsNotFound(404) = false")
	}
	if !IsValidation(&APIError{StatusCode: 422}) {
		t.Error("IsValidation(422) = false")
	}
	if !IsValidation(&APIError{StatusCode: 400}) {
		t.Error("IsValidation(400) = false")
	}
	if IsUnauthorized(&APIError{StatusCode: 403}) {
		t.Error("IsUnauthorized(403) = true")
	}
	if IsUnauthorized(errors.New("plain")) {
		t.Error("IsUnauthorized(plain error) = true")
	}
}
