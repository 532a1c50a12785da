// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError represents a non-2xx response from the Rideline API. The
// server returns JSON error bodies with a human-readable message;
// that message is surfaced to the user verbatim for business/domain
// failures.
type APIError struct {
	// StatusCode is the HTTP response status code.
	StatusCode int

	// Message is the server-provided error description. Falls back
	// to the raw response body when the body is not the structured
	// error shape.
	Message string
}

func (err *APIError) Error() string {
	if err.Message == "" {
		return fmt.Sprintf("rideline: HTTP %d", err.StatusCode)
	}
	return fmt.Sprintf("rideline: HTTP %d: %s", err.StatusCode, err.Message)
}

// ErrorMessage extracts the server-provided message from err, or
// returns fallback when err carries none (network failures, empty
// bodies). This implements the error-surfacing contract: server text
// verbatim, generic message otherwise.
func ErrorMessage(err error, fallback string) string {
	var apiError *APIError
	if errors.As(err, &apiError) && apiError.Message != "" {
		return apiError.Message
	}
	return fallback
}

// IsUnauthorized reports whether err is an HTTP 401 response.
func IsUnauthorized(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == http.StatusUnauthorized
}

// IsNotFound reports whether err is an HTTP 404 response.
func IsNotFound(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == http.StatusNotFound
}

// IsValidation reports whether err is an HTTP 400 or 422 response —
// the server rejected the request's content.
func IsValidation(err error) bool {
	var apiError *APIError
	if !errors.As(err, &apiError) {
		return false
	}
	return apiError.StatusCode == http.StatusBadRequest ||
		apiError.StatusCode == http.StatusUnprocessableEntity
}

// parseAPIError decodes a Rideline API error from a status code and
// response body. The server's error shape is {"message": "..."}; any
// other body is carried as-is so diagnostics are never lost.
func parseAPIError(statusCode int, body []byte) *APIError {
	apiError := &APIError{StatusCode: statusCode}

	var wireError struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &wireError) == nil && wireError.Message != "" {
		apiError.Message = wireError.Message
	} else {
		apiError.Message = strings.TrimSpace(string(body))
	}

	return apiError
}
