// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
)

// availabilityRequest is the body for the driver availability toggle.
type availabilityRequest struct {
	IsAvailable bool `json:"isAvailable"`
}

// SetAvailability toggles whether the driver accepts new bookings.
func (client *Client) SetAvailability(ctx context.Context, driverID int64, available bool) error {
	path := fmt.Sprintf("/driver/availability/%d", driverID)
	if err := client.put(ctx, path, availabilityRequest{IsAvailable: available}, nil); err != nil {
		return fmt.Errorf("setting driver %d availability: %w", driverID, err)
	}
	return nil
}

// CurrentTrip fetches the driver's active trip. Returns nil when the
// driver has no trip in progress (the server replies with an empty
// body or a null document).
func (client *Client) CurrentTrip(ctx context.Context, driverID int64) (*Booking, error) {
	var booking *Booking
	path := fmt.Sprintf("/driver/current-trip/%d", driverID)
	if err := client.get(ctx, path, &booking); err != nil {
		return nil, fmt.Errorf("fetching driver %d current trip: %w", driverID, err)
	}
	if booking != nil && booking.ID == 0 {
		return nil, nil
	}
	return booking, nil
}

// Earnings fetches the driver's earnings summary.
func (client *Client) Earnings(ctx context.Context, driverID int64) (*Earnings, error) {
	var earnings Earnings
	path := fmt.Sprintf("/driver/earnings/%d", driverID)
	if err := client.get(ctx, path, &earnings); err != nil {
		return nil, fmt.Errorf("fetching driver %d earnings: %w", driverID, err)
	}
	return &earnings, nil
}
