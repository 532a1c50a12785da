// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package fare

import "testing"

func TestByID(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"economy", "comfort", "premium"} {
		cabType, ok := ByID(id)
		if !ok {
			t.Errorf("ByID(%q) not found", id)
			continue
		}
		if cabType.ID != id {
			t.Errorf("ByID(%q).ID = %q", id, cabType.ID)
		}
		if cabType.BasePrice <= 0 || cabType.PerKmPrice <= 0 {
			t.Errorf("%s has non-positive pricing: %+v", id, cabType)
		}
	}

	if _, ok := ByID("rickshaw"); ok {
		t.Error("ByID should reject unknown cab types")
	}
}

func TestEstimate(t *testing.T) {
	t.Parallel()

	economy, _ := ByID("economy")
	if got := Estimate(economy, 10); got != 2.5+10*1.2 {
		t.Errorf("Estimate(economy, 10) = %v", got)
	}
	if got := Estimate(economy, 0); got != economy.BasePrice {
		t.Errorf("Estimate(economy, 0) = %v, want base price", got)
	}
}

func TestEstimateTripBounds(t *testing.T) {
	t.Parallel()

	for range 50 {
		quote, err := EstimateTrip("premium")
		if err != nil {
			t.Fatalf("EstimateTrip: %v", err)
		}
		if quote.DistanceKm < 5 || quote.DistanceKm > 25 {
			t.Errorf("distance %v outside 5–25 km", quote.DistanceKm)
		}
		if quote.Fare < quote.CabType.BasePrice {
			t.Errorf("fare %v below base price", quote.Fare)
		}
		if quote.Minutes < 0 {
			t.Errorf("negative duration %d", quote.Minutes)
		}
	}

	if _, err := EstimateTrip("unknown"); err == nil {
		t.Error("EstimateTrip should reject unknown cab types")
	}
}

func TestTypesIsACopy(t *testing.T) {
	t.Parallel()

	types := Types()
	types[0].BasePrice = 999

	fresh := Types()
	if fresh[0].BasePrice == 999 {
		t.Error("Types() exposes the internal catalog")
	}
}
