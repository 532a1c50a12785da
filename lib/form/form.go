// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

// Package form validates user input before it reaches the network.
// Validation failures are user errors, reported with field-level
// messages; a request that fails here is never dispatched.
package form

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// phonePattern accepts digits, spaces, and common punctuation. This
// is deliberately loose — the server owns canonical phone validation.
var phonePattern = regexp.MustCompile(`^[0-9+\-\s()]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Field names in messages should match what the user typed on
	// the form, not Go identifiers.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if name := field.Tag.Get("form"); name != "" {
			return name
		}
		return field.Name
	})
	if err := v.RegisterValidation("phone", func(level validator.FieldLevel) bool {
		return phonePattern.MatchString(level.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("form: registering phone validation: %v", err))
	}
	return v
}

// Login is the login form.
type Login struct {
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// Registration is the account creation form. Role is restricted to
// the self-service roles; admin accounts are provisioned elsewhere.
type Registration struct {
	Name     string `form:"name"     validate:"required,min=2"`
	Email    string `form:"email"    validate:"required,email"`
	Phone    string `form:"phone"    validate:"required,phone"`
	Password string `form:"password" validate:"required,min=6"`
	Role     string `form:"role"     validate:"required,oneof=rider driver"`
}

// ProfileUpdate is the profile edit form. Password change is
// optional, but changing it requires the current password and a
// matching confirmation.
type ProfileUpdate struct {
	Name            string `form:"name"             validate:"required,min=2"`
	Email           string `form:"email"            validate:"required,email"`
	Phone           string `form:"phone"            validate:"required,phone"`
	CurrentPassword string `form:"current-password" validate:"required_with=NewPassword"`
	NewPassword     string `form:"new-password"     validate:"omitempty,min=6"`
	ConfirmPassword string `form:"confirm-password" validate:"eqfield=NewPassword"`
}

// Booking is the ride booking form.
type Booking struct {
	PickupLocation string `form:"pickup"  validate:"required"`
	Destination    string `form:"destination" validate:"required,nefield=PickupLocation"`
	CabType        string `form:"cab-type" validate:"required,oneof=economy comfort premium"`
	PaymentMethod  string `form:"payment" validate:"required,oneof=cash card digital"`
}

// Validate checks a form value and returns a single error describing
// every failed field, phrased for the user.
func Validate(value any) error {
	err := validate.Struct(value)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		// InvalidValidationError — a programming mistake, not user input.
		return err
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		messages = append(messages, describe(fieldError))
	}
	return fmt.Errorf("%s", strings.Join(messages, "; "))
}

// describe renders one field failure as a user-facing message.
func describe(fieldError validator.FieldError) string {
	field := fieldError.Field()
	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "required_with":
		return fmt.Sprintf("%s is required when changing the password", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "phone":
		return fmt.Sprintf("%s must be a valid phone number", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fieldError.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fieldError.Param(), " ", ", "))
	case "eqfield":
		return fmt.Sprintf("%s must match the new password", field)
	case "nefield":
		return fmt.Sprintf("%s must differ from the pickup location", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
