// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package form

import (
	"strings"
	"testing"
)

func TestLoginValidation(t *testing.T) {
	t.Parallel()

	if err := Validate(Login{Email: "a@b.com", Password: "pw"}); err != nil {
		t.Errorf("valid login rejected: %v", err)
	}

	err := Validate(Login{Email: "not-an-email", Password: ""})
	if err == nil {
		t.Fatal("invalid login accepted")
	}
	if !strings.Contains(err.Error(), "email") || !strings.Contains(err.Error(), "password") {
		t.Errorf("error = %q, should name both fields", err)
	}
}

func TestRegistrationValidation(t *testing.T) {
	t.Parallel()

	valid := Registration{
		Name: "Ada Lovelace", Email: "ada@rideline.example",
		Phone: "+1 (555) 010-0100", Password: "secret1", Role: "driver",
	}
	if err := Validate(valid); err != nil {
		t.Errorf("valid registration rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Registration)
		field  string
	}{
		{"short name", func(r *Registration) { r.Name = "A" }, "name"},
		{"bad phone", func(r *Registration) { r.Phone = "call me" }, "phone"},
		{"short password", func(r *Registration) { r.Password = "abc" }, "password"},
		{"admin self-registration", func(r *Registration) { r.Role = "admin" }, "role"},
	}

	for _, testCase := range cases {
		registration := valid
		testCase.mutate(&registration)
		err := Validate(registration)
		if err == nil {
			t.Errorf("%s: accepted", testCase.name)
			continue
		}
		if !strings.Contains(err.Error(), testCase.field) {
			t.Errorf("%s: error = %q, should mention %q", testCase.name, err, testCase.field)
		}
	}
}

func TestProfileUpdatePasswordChange(t *testing.T) {
	t.Parallel()

	base := ProfileUpdate{
		Name: "Ada", Email: "ada@rideline.example", Phone: "555-0100",
	}

	// No password change at all is fine.
	if err := Validate(base); err != nil {
		t.Errorf("profile update without password change rejected: %v", err)
	}

	// New password requires the current one.
	update := base
	update.NewPassword = "newsecret"
	update.ConfirmPassword = "newsecret"
	if err := Validate(update); err == nil {
		t.Error("password change without current password accepted")
	}

	update.CurrentPassword = "oldsecret"
	if err := Validate(update); err != nil {
		t.Errorf("complete password change rejected: %v", err)
	}

	// Confirmation must match.
	update.ConfirmPassword = "different"
	err := Validate(update)
	if err == nil {
		t.Fatal("mismatched confirmation accepted")
	}
	if !strings.Contains(err.Error(), "match") {
		t.Errorf("error = %q, should mention the mismatch", err)
	}
}

func TestBookingValidation(t *testing.T) {
	t.Parallel()

	valid := Booking{
		PickupLocation: "Airport", Destination: "Downtown",
		CabType: "comfort", PaymentMethod: "card",
	}
	if err := Validate(valid); err != nil {
		t.Errorf("valid booking rejected: %v", err)
	}

	booking := valid
	booking.Destination = "Airport"
	if err := Validate(booking); err == nil {
		t.Error("booking with identical pickup and destination accepted")
	}

	booking = valid
	booking.CabType = "limousine"
	err := Validate(booking)
	if err == nil {
		t.Fatal("unknown cab type accepted")
	}
	if !strings.Contains(err.Error(), "economy, comfort, premium") {
		t.Errorf("error = %q, should list the valid cab types", err)
	}
}
