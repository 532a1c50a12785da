// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ridelinehq/rideline/lib/api"
)

func TestToolError_PreservesChain(t *testing.T) {
	t.Parallel()

	inner := errors.New("boom")
	wrapped := Internal("doing thing: %w", inner)

	if !errors.Is(wrapped, inner) {
		t.Error("errors.Is does not reach the inner error")
	}

	var toolErr *ToolError
	if !errors.As(error(wrapped), &toolErr) {
		t.Fatal("errors.As failed on ToolError")
	}
	if toolErr.Category != CategoryInternal {
		t.Errorf("Category = %q, want internal", toolErr.Category)
	}
	if strings.Contains(wrapped.Error(), "internal") {
		t.Errorf("category leaked into message: %q", wrapped.Error())
	}
}

func TestAPIFailure_Categories(t *testing.T) {
	t.Parallel()

	cases := []struct {
		status int
		want   ErrorCategory
	}{
		{400, CategoryValidation},
		{401, CategoryForbidden},
		{403, CategoryForbidden},
		{404, CategoryNotFound},
		{409, CategoryConflict},
		{422, CategoryValidation},
		{500, CategoryTransient},
		{503, CategoryTransient},
		{418, CategoryInternal},
	}

	for _, testCase := range cases {
		apiErr := &api.APIError{StatusCode: testCase.status, Message: "nope"}
		toolErr := APIFailure("accept booking", apiErr)
		if toolErr.Category != testCase.want {
			t.Errorf("status %d: category = %q, want %q", testCase.status, toolErr.Category, testCase.want)
		}
		if !strings.Contains(toolErr.Error(), "accept booking") {
			t.Errorf("status %d: message %q missing operation prefix", testCase.status, toolErr.Error())
		}
	}
}

func TestAPIFailure_NetworkError(t *testing.T) {
	t.Parallel()

	toolErr := APIFailure("list cabs", fmt.Errorf("dial tcp: connection refused"))
	if toolErr.Category != CategoryTransient {
		t.Errorf("category = %q, want transient for network failure", toolErr.Category)
	}
}
