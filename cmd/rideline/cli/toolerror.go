// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"

	"github.com/ridelinehq/rideline/lib/api"
)

// ErrorCategory classifies command errors so that scripts wrapping the
// CLI can make programmatic decisions (retry, fix input, re-login)
// without parsing error message text.
type ErrorCategory string

const (
	// CategoryValidation indicates the caller provided invalid input:
	// missing required arguments, wrong argument count, unparseable
	// values. The caller should fix the input and retry.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound indicates a referenced resource does not exist:
	// unknown booking ID, missing profile. Retrying with the same
	// parameters will not help.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryForbidden indicates the caller lacks permission or a
	// valid session for the requested operation. The caller should
	// log in again or use an account with the required role.
	CategoryForbidden ErrorCategory = "forbidden"

	// CategoryConflict indicates the operation conflicts with existing
	// state: booking already accepted, availability already set.
	CategoryConflict ErrorCategory = "conflict"

	// CategoryTransient indicates a temporary failure: network error,
	// timeout, server overload. The caller should back off and retry.
	CategoryTransient ErrorCategory = "transient"

	// CategoryInternal indicates an unexpected error: bugs, I/O
	// failures, malformed server responses. The caller should report
	// the error rather than retry.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError is a categorized error returned by CLI commands. It wraps
// an inner error, preserving the full chain for debugging while adding
// category metadata. Use the category-specific constructors
// (Validation, NotFound, etc.) rather than constructing it directly.
type ToolError struct {
	// Category classifies the error for programmatic handling.
	Category ErrorCategory

	// Err is the underlying error with the human-readable message.
	Err error
}

// Error returns the underlying error message. The category is not
// included in the string.
func (e *ToolError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error, allowing errors.Is and
// errors.As to walk the full chain through the ToolError wrapper.
func (e *ToolError) Unwrap() error { return e.Err }

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error: a referenced resource does not exist.
func NotFound(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Forbidden creates a forbidden error: the caller lacks permission.
func Forbidden(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryForbidden, Err: fmt.Errorf(format, args...)}
}

// Conflict creates a conflict error: the operation conflicts with existing state.
func Conflict(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryConflict, Err: fmt.Errorf(format, args...)}
}

// Transient creates a transient error: a temporary failure that may succeed on retry.
func Transient(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryTransient, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure, bug, or I/O error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}

// APIFailure categorizes an error returned by the Rideline API client.
// The server's status code determines the category; the server's own
// message is preserved in the error text with the given operation as
// a prefix.
func APIFailure(operation string, err error) *ToolError {
	wrapped := fmt.Errorf("%s: %w", operation, err)

	var apiErr *api.APIError
	if !errors.As(err, &apiErr) {
		// No HTTP response at all: connection refused, timeout, DNS.
		return &ToolError{Category: CategoryTransient, Err: wrapped}
	}

	switch {
	case api.IsValidation(err):
		return &ToolError{Category: CategoryValidation, Err: wrapped}
	case api.IsUnauthorized(err) || apiErr.StatusCode == 403:
		return &ToolError{Category: CategoryForbidden, Err: wrapped}
	case api.IsNotFound(err):
		return &ToolError{Category: CategoryNotFound, Err: wrapped}
	case apiErr.StatusCode == 409:
		return &ToolError{Category: CategoryConflict, Err: wrapped}
	case apiErr.StatusCode >= 500:
		return &ToolError{Category: CategoryTransient, Err: wrapped}
	default:
		return &ToolError{Category: CategoryInternal, Err: wrapped}
	}
}
