// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

package rulesets

import (
	"regexp"

	"github.com/mkfort/confpull/internal/domain"
	"github.com/mkfort/confpull/internal/filter"
	"github.com/mkfort/confpull/internal/ruleset"
)

var telcoShowVersionSpec = &filter.Spec{
	TrailingBlank: true,
	EnableDrop:    true,
	Drop:          []*regexp.Regexp{filter.BlankLine},
	EnableInc:     true,
	Include:       []*regexp.Regexp{re(`(?i)version`), re(`Using [0-9].*`)},
	Commented:     true,
	Comment:       "! ",
}

var telcoShowRunningSpec = &filter.Spec{
	TrailingBlank: true,
	EnableDrop:    true,
	Drop: []*regexp.Regexp{
		filter.BlankLine,
		re(`Building the configuration \.\.\.\..*`),
		re(`Current configuration:.*`),
		re(`Router Manager Configuration:.*`),
		re(`Using [0-9].*`),
	},
}

func telcoRules() []*domain.Rule {
	return []*domain.Rule{
		rule("show version", 0, telcoShowVersionSpec),
		rule("show running-config", 1, telcoShowRunningSpec),
	}
}

func init() {
	ruleset.Register(&domain.RuleSet{
		Name:     "telco",
		Header:   "!RANCID-CONTENT-TYPE: telco\n!\n",
		NewRules: telcoRules,
	})
}
