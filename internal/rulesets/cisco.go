// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

package rulesets

import (
	"regexp"

	"github.com/mkfort/confpull/internal/domain"
	"github.com/mkfort/confpull/internal/filter"
	"github.com/mkfort/confpull/internal/ruleset"
)

var ciscoShowVersionSpec = &filter.Spec{
	TrailingBlank: true,
	EnableDrop:    true,
	Drop:          []*regexp.Regexp{filter.BlankLine},
	EnableInc:     true,
	Include:       []*regexp.Regexp{re(`(?i)version`), re(`Using [0-9].*`)},
	Commented:     true,
	Comment:       "! ",
}

var ciscoShowRunningSpec = &filter.Spec{
	TrailingBlank: true,
	EnableDrop:    true,
	Drop: []*regexp.Regexp{
		filter.BlankLine,
		re(`Building configuration\.\.\..*`),
		re(`Using [0-9].*`),
	},
}

func ciscoRules() []*domain.Rule {
	return []*domain.Rule{
		rule("show version", 0, ciscoShowVersionSpec),
		rule("show running-config", 1, ciscoShowRunningSpec),
	}
}

func init() {
	ruleset.Register(&domain.RuleSet{
		Name:     "cisco",
		Header:   "!RANCID-CONTENT-TYPE: cisco\n!\n",
		NewRules: ciscoRules,
	})
}
