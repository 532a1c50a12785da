// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestBindFlags_TaggedFields(t *testing.T) {
	type params struct {
		CabType  string  `flag:"cab-type,c" desc:"cab type"     default:"economy"`
		Limit    int     `flag:"limit"      desc:"result limit" default:"20"`
		Fare     float64 `flag:"fare"       desc:"maximum fare"`
		All      bool    `flag:"all,a"      desc:"include finished trips"`
		Statuses []string `flag:"status"    desc:"status filter" default:"pending,accepted"`
		internal string  // no tag, skipped
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags() error: %v", err)
	}

	args := []string{"--cab-type", "premium", "--limit", "5", "--fare", "37.5", "-a"}
	if err := flagSet.Parse(args); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if p.CabType != "premium" {
		t.Errorf("CabType = %q, want premium", p.CabType)
	}
	if p.Limit != 5 {
		t.Errorf("Limit = %d, want 5", p.Limit)
	}
	if p.Fare != 37.5 {
		t.Errorf("Fare = %v, want 37.5", p.Fare)
	}
	if !p.All {
		t.Error("All = false, want true via -a shorthand")
	}
	if len(p.Statuses) != 2 || p.Statuses[0] != "pending" || p.Statuses[1] != "accepted" {
		t.Errorf("Statuses = %v, want default [pending accepted]", p.Statuses)
	}
	_ = p.internal
}

func TestBindFlags_Defaults(t *testing.T) {
	type params struct {
		CabType string `flag:"cab-type" default:"economy"`
		Limit   int    `flag:"limit"    default:"20"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags() error: %v", err)
	}
	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if p.CabType != "economy" || p.Limit != 20 {
		t.Errorf("defaults = %q/%d, want economy/20", p.CabType, p.Limit)
	}
}

func TestBindFlags_EmbeddedStruct(t *testing.T) {
	type params struct {
		JSONOutput
		Status string `flag:"status"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags() error: %v", err)
	}

	if err := flagSet.Parse([]string{"--json", "--status", "completed"}); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if !p.OutputJSON {
		t.Error("embedded JSONOutput flag not bound")
	}
	if p.Status != "completed" {
		t.Errorf("Status = %q, want completed", p.Status)
	}
}

type binderParams struct {
	added bool
}

func (b *binderParams) AddFlags(flagSet *pflag.FlagSet) {
	b.added = true
	flagSet.String("custom", "", "custom flag")
}

func TestBindFlags_FlagBinder(t *testing.T) {
	type params struct {
		Binder binderParams
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags() error: %v", err)
	}

	if !p.Binder.added {
		t.Error("FlagBinder.AddFlags was not called")
	}
	if flagSet.Lookup("custom") == nil {
		t.Error("custom flag not registered")
	}
}

func TestBindFlags_RejectsNonPointer(t *testing.T) {
	type params struct{}
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(params{}, flagSet); err == nil {
		t.Error("BindFlags accepted a non-pointer")
	}
}

func TestBindFlags_UnsupportedType(t *testing.T) {
	type params struct {
		Bad map[string]string `flag:"bad"`
	}
	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err == nil {
		t.Error("BindFlags accepted an unsupported field type")
	}
}
