// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
)

// AvailableCabs lists cabs currently accepting bookings.
func (client *Client) AvailableCabs(ctx context.Context) ([]Cab, error) {
	var cabs []Cab
	if err := client.get(ctx, "/cabs/available", &cabs); err != nil {
		return nil, fmt.Errorf("listing available cabs: %w", err)
	}
	return cabs, nil
}
