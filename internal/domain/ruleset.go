// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

package domain

// RuleSet is an immutable vendor-tagged bundle: a name, a header string
// prepended to the artifact, a default Target template, and the Rules that
// make up its command schedule.
type RuleSet struct {
	Name   string
	Header string
	// DefaultTarget is used for any Action/Rule that does not override its
	// Target.
	DefaultTarget Target
	// NewRules is called once per Collection so that each Collection owns
	// independent per-device Rule run state.
	NewRules func() []*Rule
}

// Recipe is a named (vendor, device-regex, rule-set-name, output-path) unit
// supplied by configuration.
type Recipe struct {
	Name        string
	Vendor      string
	DeviceRegex string
	RuleSetName string
	Path        string
}
