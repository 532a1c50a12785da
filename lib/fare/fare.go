// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

// Package fare provides the client-side fare estimate shown on the
// booking form. The estimate is illustrative — no routing service is
// wired, so trip distance is a placeholder draw — and the server's
// fare on the created booking is always authoritative.
package fare

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// CabType describes a bookable vehicle class.
type CabType struct {
	// ID is the wire identifier sent on booking requests.
	ID string
	// Name is the display name.
	Name string
	// Description is a one-line pitch for the booking form.
	Description string
	// BasePrice is the flat component of the fare.
	BasePrice float64
	// PerKmPrice is the distance component of the fare.
	PerKmPrice float64
	// Features are display-only selling points.
	Features []string
}

// catalog is the fixed cab-type table. Pricing mirrors the published
// rate card; the server rejects unknown IDs.
var catalog = []CabType{
	{
		ID:          "economy",
		Name:        "Economy",
		Description: "Affordable rides for everyday travel",
		BasePrice:   2.5,
		PerKmPrice:  1.2,
		Features:    []string{"Air Conditioning", "Clean Interior", "Professional Driver"},
	},
	{
		ID:          "comfort",
		Name:        "Comfort",
		Description: "Spacious and comfortable rides",
		BasePrice:   3.5,
		PerKmPrice:  1.8,
		Features:    []string{"Premium Interior", "Extra Space", "Priority Support"},
	},
	{
		ID:          "premium",
		Name:        "Premium",
		Description: "Luxury rides for special occasions",
		BasePrice:   5.0,
		PerKmPrice:  2.5,
		Features:    []string{"Luxury Vehicle", "Professional Chauffeur", "Premium Amenities"},
	},
}

// Types returns the bookable cab types in display order.
func Types() []CabType {
	types := make([]CabType, len(catalog))
	copy(types, catalog)
	return types
}

// ByID looks up a cab type by its wire identifier.
func ByID(id string) (CabType, bool) {
	for _, cabType := range catalog {
		if cabType.ID == id {
			return cabType, true
		}
	}
	return CabType{}, false
}

// Estimate computes the fare for a cab type over a distance.
func Estimate(cabType CabType, distanceKm float64) float64 {
	return cabType.BasePrice + distanceKm*cabType.PerKmPrice
}

// Quote is a booking-time estimate.
type Quote struct {
	CabType    CabType
	DistanceKm float64
	Fare       float64
	Minutes    int
}

// EstimateTrip produces a quote for the given cab type. With no
// routing service, distance is drawn from 5–25 km and duration
// assumes roughly two minutes per kilometer.
func EstimateTrip(cabTypeID string) (Quote, error) {
	cabType, ok := ByID(cabTypeID)
	if !ok {
		return Quote{}, fmt.Errorf("fare: unknown cab type %q", cabTypeID)
	}

	distance := rand.Float64()*20 + 5
	return Quote{
		CabType:    cabType,
		DistanceKm: distance,
		Fare:       Estimate(cabType, distance),
		Minutes:    int(math.Round(distance*2 + rand.Float64()*10)),
	}, nil
}
