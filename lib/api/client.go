// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// maxResponseSize bounds API response body reads: 8 MB. Rideline API
// responses are small JSON documents; the limit only exists to keep a
// misbehaving server from exhausting memory.
const maxResponseSize int64 = 8 << 20

// TokenSource supplies the bearer credential for outbound requests.
// The session store implements this; a nil or empty token means the
// request is dispatched unauthenticated.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource holding a fixed token. Useful in tests
// and one-shot scripts.
type StaticToken string

// Token returns the fixed token value.
func (token StaticToken) Token() string { return string(token) }

// Config holds configuration for creating a Client.
type Config struct {
	// BaseURL is the root URL for API requests
	// (e.g., "https://api.rideline.example"). Required.
	BaseURL string

	// Tokens supplies the bearer credential per request. Optional —
	// a nil source dispatches every request unauthenticated.
	Tokens TokenSource

	// OnUnauthorized is invoked once per response that carries HTTP
	// 401, before the error is returned to the caller. The session
	// store uses it to purge the persisted credential and force
	// navigation to the login view. Optional.
	OnUnauthorized func()

	// HTTPClient is used for all HTTP requests. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// Logger is used for structured logging. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// Client is a typed Rideline API client. Methods are grouped by
// resource across auth.go, booking.go, cab.go, and driver.go.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenSource
	onUnauthorized func()
	logger         *slog.Logger
}

// NewClient creates a Rideline API client from the given configuration.
func NewClient(config Config) (*Client, error) {
	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("api: BaseURL is required")
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("api: BaseURL must be an http or https URL (got %q)", config.BaseURL)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:        baseURL,
		httpClient:     httpClient,
		tokens:         config.Tokens,
		onUnauthorized: config.OnUnauthorized,
		logger:         logger,
	}, nil
}

// do executes an API request. The path is relative to the base URL
// (e.g., "/bookings"). For requests with a body, the value is
// JSON-encoded (pass nil for no body). Returns the raw response body.
// On non-2xx responses, returns an *APIError; 401 responses
// additionally fire the OnUnauthorized hook before returning.
func (client *Client) do(ctx context.Context, method, path string, requestBody any) ([]byte, error) {
	url := client.baseURL + path

	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("api: encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("api: creating request: %w", err)
	}

	request.Header.Set("Accept", "application/json")
	request.Header.Set("X-Request-ID", uuid.NewString())
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	if client.tokens != nil {
		if token := client.tokens.Token(); token != "" {
			request.Header.Set("Authorization", "Bearer "+token)
		}
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("api: %s %s: %w", method, url, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("api: reading response body: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		apiError := parseAPIError(response.StatusCode, body)
		if response.StatusCode == http.StatusUnauthorized {
			client.logger.Warn("authorization failure",
				"method", method,
				"path", path,
			)
			if client.onUnauthorized != nil {
				client.onUnauthorized()
			}
		}
		return nil, apiError
	}

	return body, nil
}

// get is a convenience method for GET requests that return a single
// JSON document. Decodes the response into result.
func (client *Client) get(ctx context.Context, path string, result any) error {
	body, err := client.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return decodeResult(body, result)
}

// post is a convenience method for POST requests. Decodes the
// response into result when result is non-nil.
func (client *Client) post(ctx context.Context, path string, requestBody any, result any) error {
	body, err := client.do(ctx, http.MethodPost, path, requestBody)
	if err != nil {
		return err
	}
	if result != nil {
		return decodeResult(body, result)
	}
	return nil
}

// put is a convenience method for PUT requests. Decodes the response
// into result when result is non-nil.
func (client *Client) put(ctx context.Context, path string, requestBody any, result any) error {
	body, err := client.do(ctx, http.MethodPut, path, requestBody)
	if err != nil {
		return err
	}
	if result != nil {
		return decodeResult(body, result)
	}
	return nil
}

// decodeResult unmarshals a response body into result. An empty body
// (204-style responses) leaves result at its zero value.
func decodeResult(body []byte, result any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("api: decoding response: %w", err)
	}
	return nil
}
