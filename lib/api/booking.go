// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
)

// CreateBookingRequest contains the fields for creating a booking.
// EstimatedFare is the client-side estimate shown at booking time;
// the server's fare on the returned record is authoritative.
type CreateBookingRequest struct {
	PickupLocation string  `json:"pickupLocation"`
	Destination    string  `json:"destination"`
	CabType        string  `json:"cabType"`
	PaymentMethod  string  `json:"paymentMethod"`
	EstimatedFare  float64 `json:"estimatedFare,omitempty"`
}

// CreateBooking creates a new booking for the current rider.
func (client *Client) CreateBooking(ctx context.Context, request CreateBookingRequest) (*Booking, error) {
	var booking Booking
	if err := client.post(ctx, "/bookings", request, &booking); err != nil {
		return nil, fmt.Errorf("creating booking: %w", err)
	}
	return &booking, nil
}

// UserBookings lists the current rider's bookings, newest first.
func (client *Client) UserBookings(ctx context.Context) ([]Booking, error) {
	var bookings []Booking
	if err := client.get(ctx, "/bookings/user", &bookings); err != nil {
		return nil, fmt.Errorf("listing rider bookings: %w", err)
	}
	return bookings, nil
}

// DriverBookings lists bookings assigned to or available for the
// current driver.
func (client *Client) DriverBookings(ctx context.Context) ([]Booking, error) {
	var bookings []Booking
	if err := client.get(ctx, "/bookings/driver", &bookings); err != nil {
		return nil, fmt.Errorf("listing driver bookings: %w", err)
	}
	return bookings, nil
}

// AcceptBooking accepts a pending booking as the current driver.
func (client *Client) AcceptBooking(ctx context.Context, bookingID int64) (*Booking, error) {
	return client.bookingAction(ctx, bookingID, "accept")
}

// StartTrip transitions an accepted booking to in_progress.
func (client *Client) StartTrip(ctx context.Context, bookingID int64) (*Booking, error) {
	return client.bookingAction(ctx, bookingID, "start")
}

// CompleteTrip transitions an in-progress booking to completed.
func (client *Client) CompleteTrip(ctx context.Context, bookingID int64) (*Booking, error) {
	return client.bookingAction(ctx, bookingID, "complete")
}

// CancelBooking cancels a booking that has not completed.
func (client *Client) CancelBooking(ctx context.Context, bookingID int64) (*Booking, error) {
	return client.bookingAction(ctx, bookingID, "cancel")
}

// bookingAction posts a lifecycle transition for a booking. The
// server validates the transition against the booking's current
// status and the caller's role.
func (client *Client) bookingAction(ctx context.Context, bookingID int64, action string) (*Booking, error) {
	var booking Booking
	path := fmt.Sprintf("/bookings/%d/%s", bookingID, action)
	if err := client.post(ctx, path, nil, &booking); err != nil {
		return nil, fmt.Errorf("booking %d %s: %w", bookingID, action, err)
	}
	return &booking, nil
}
