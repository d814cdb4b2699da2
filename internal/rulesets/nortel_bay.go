// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

package rulesets

import (
	"regexp"

	"github.com/mkfort/confpull/internal/domain"
	"github.com/mkfort/confpull/internal/filter"
	"github.com/mkfort/confpull/internal/ruleset"
)

var nortelBayConfigSpec = &filter.Spec{
	TrailingBlank: true,
	EnableDrop:    true,
	Drop: []*regexp.Regexp{
		filter.BlankLine,
		re(`^Building configuration\.`),
		re(`^Current configuration`),
		re(`Last configuration change at `),
		re(`NVRAM config last updated at `),
		re(`^ntp clock-period [0-9]+`),
		re(`Using [0-9].*`),
	},
	EnableErr: true,
	Error:     []*regexp.Regexp{re(`% Invalid input detected at '\^' marker\.`)},
}

func nortelBayRules() []*domain.Rule {
	return []*domain.Rule{
		rule("show running-config", 0, nortelBayConfigSpec),
	}
}

func init() {
	ruleset.Register(&domain.RuleSet{
		Name:     "nortel_bay",
		Header:   "!RANCID-CONTENT-TYPE: nortel_bay\n!\n",
		NewRules: nortelBayRules,
	})
}
