// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides client configuration for Rideline commands.
//
// Configuration is resolved in precedence order:
//
//  1. Command-line flags (handled by the cli layer).
//  2. Environment variables (RIDELINE_API_URL, ...).
//  3. The config file at $RIDELINE_CONFIG or
//     ~/.config/rideline/config.yaml.
//  4. Built-in defaults.
//
// A missing config file is not an error — the defaults point at a
// local development server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultAPIURL is the development server address used when nothing
// else is configured.
const DefaultAPIURL = "http://localhost:3000"

// Config is the client configuration.
type Config struct {
	// APIURL is the Rideline API base URL.
	APIURL string `yaml:"api_url" env:"RIDELINE_API_URL"`

	// Booking holds defaults for the booking form.
	Booking BookingDefaults `yaml:"booking"`
}

// BookingDefaults pre-fills the booking form.
type BookingDefaults struct {
	// CabType is the default cab type (economy, comfort, premium).
	CabType string `yaml:"cab_type" env:"RIDELINE_CAB_TYPE"`

	// PaymentMethod is the default payment method (cash, card,
	// digital).
	PaymentMethod string `yaml:"payment_method" env:"RIDELINE_PAYMENT_METHOD"`
}

// DefaultPath returns the config file location. Checks the
// RIDELINE_CONFIG environment variable first, then falls back to
// ~/.config/rideline/config.yaml (honoring XDG_CONFIG_HOME).
func DefaultPath() string {
	if envPath := os.Getenv("RIDELINE_CONFIG"); envPath != "" {
		return envPath
	}

	configDirectory := os.Getenv("XDG_CONFIG_HOME")
	if configDirectory == "" {
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join("/tmp", "rideline-config.yaml")
		}
		configDirectory = filepath.Join(homeDirectory, ".config")
	}
	return filepath.Join(configDirectory, "rideline", "config.yaml")
}

// Load reads the configuration from path (empty selects DefaultPath),
// applies environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	config := &Config{
		APIURL: DefaultAPIURL,
		Booking: BookingDefaults{
			CabType:       "economy",
			PaymentMethod: "cash",
		},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		// No file — defaults plus environment.
	} else {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (config *Config) validate() error {
	if config.APIURL == "" {
		return fmt.Errorf("api_url must not be empty")
	}
	if !strings.HasPrefix(config.APIURL, "http://") && !strings.HasPrefix(config.APIURL, "https://") {
		return fmt.Errorf("api_url must be an http or https URL (got %q)", config.APIURL)
	}
	return nil
}
