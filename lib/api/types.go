// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package api

import "time"

// User is a Rideline account profile. Appears as the resolved
// identity after login/registration and as driver references on
// bookings. Role is one of "rider", "driver", or "admin" on the wire;
// the authorize package owns its interpretation.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Booking is a trip booking. Status progresses through
// pending → accepted → in_progress → completed, or terminates at
// cancelled from any pre-completion state. The server owns all
// transitions; the client only requests them.
type Booking struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"userId"`
	Driver         *User     `json:"driver,omitempty"`
	PickupLocation string    `json:"pickupLocation"`
	Destination    string    `json:"destination"`
	CabType        string    `json:"cabType"`
	PaymentMethod  string    `json:"paymentMethod"`
	Status         string    `json:"status"`
	Fare           float64   `json:"fare"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Booking status values as reported by the server.
const (
	BookingPending    = "pending"
	BookingAccepted   = "accepted"
	BookingInProgress = "in_progress"
	BookingCompleted  = "completed"
	BookingCancelled  = "cancelled"
)

// Cab is an available vehicle.
type Cab struct {
	ID           int64   `json:"id"`
	DriverID     int64   `json:"driverId"`
	CabType      string  `json:"cabType"`
	LicensePlate string  `json:"licensePlate"`
	Rating       float64 `json:"rating"`
	Status       string  `json:"status"`
}

// Earnings is a driver's earnings summary.
type Earnings struct {
	TodayEarnings   float64 `json:"todayEarnings"`
	WeeklyEarnings  float64 `json:"weeklyEarnings"`
	MonthlyEarnings float64 `json:"monthlyEarnings"`
	TotalEarnings   float64 `json:"totalEarnings"`
	CompletedTrips  int     `json:"completedTrips"`
	Rating          float64 `json:"rating"`
	OnlineHours     float64 `json:"onlineHours"`
}
