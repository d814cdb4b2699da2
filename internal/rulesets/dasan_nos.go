// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

package rulesets

import (
	"regexp"

	"github.com/mkfort/confpull/internal/domain"
	"github.com/mkfort/confpull/internal/filter"
	"github.com/mkfort/confpull/internal/ruleset"
)

var dasanErrors = []*regexp.Regexp{re(`% Invalid input detected at '\^' marker\.`)}

var dasanShowSystemSpec = &filter.Spec{
	TrailingBlank: true,
	EnableDrop:    true,
	Drop:          []*regexp.Regexp{filter.BlankLine},
	Commented:     true,
	Comment:       "! ",
}

var dasanShowRunningSpec = &filter.Spec{
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
	Error:     dasanErrors,
}

func dasanRules() []*domain.Rule {
	return []*domain.Rule{
		rule("show system", 0, dasanShowSystemSpec),
		rule("show running-config", 1, dasanShowRunningSpec),
	}
}

func init() {
	ruleset.Register(&domain.RuleSet{
		Name:     "dasan_nos",
		Header:   "!RANCID-CONTENT-TYPE: nos\n!\n",
		NewRules: dasanRules,
	})
}
