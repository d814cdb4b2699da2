// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

package rulesets

import (
	"regexp"

	"github.com/mkfort/confpull/internal/domain"
	"github.com/mkfort/confpull/internal/filter"
	"github.com/mkfort/confpull/internal/ruleset"
)

var nortelEsrConfigSpec = &filter.Spec{
	TrailingBlank: true,
	EnableDrop:    true,
	Drop: []*regexp.Regexp{
		filter.BlankLine,
		re(`^Preparing to Display Configuration\.\.`),
		re(`^# (MON|TUE|WED|THU|FRI|SAT|SUN) [A-Z]+`),
	},
	EnableSubst: true,
	Substitute: []filter.Substitution{
		{Pattern: re(`(^# Slot.+) CF=.+$`), Replacement: "$1"},
	},
	EnableErr: true,
	Error:     []*regexp.Regexp{re(`not found in path `)},
}

func nortelEsrRules() []*domain.Rule {
	return []*domain.Rule{
		rule("show config", 0, nortelEsrConfigSpec),
	}
}

func init() {
	ruleset.Register(&domain.RuleSet{
		Name:     "nortel_esr",
		Header:   "#RANCID-CONTENT-TYPE: nortel_esr\n#\n",
		NewRules: nortelEsrRules,
	})
}
