// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

package rulesets

import (
	"regexp"

	"github.com/mkfort/confpull/internal/domain"
	"github.com/mkfort/confpull/internal/filter"
	"github.com/mkfort/confpull/internal/ruleset"
)

var timetraShowVersionSpec = &filter.Spec{
	TrailingBlank: true,
	EnableDrop:    true,
	Drop:          []*regexp.Regexp{filter.BlankLine},
	Commented:     true,
	Comment:       "# ",
}

var timetraConfigSpec = &filter.Spec{
	TrailingBlank: true,
	EnableDrop:    true,
	Drop: []*regexp.Regexp{
		filter.BlankLine,
		re(`Built on .+ `),
		re(`Generated .+ `),
		re(`All rights reserved\. All use subject to .*`),
		re(`TiMOS-`),
	},
}

func timetraRules() []*domain.Rule {
	return []*domain.Rule{
		rule("show version", 0, timetraShowVersionSpec),
		rule("admin display-config", 1, timetraConfigSpec),
	}
}

func init() {
	ruleset.Register(&domain.RuleSet{
		Name:     "timetra",
		Header:   "# RANCID-CONTENT-TYPE: timetra\n# \n",
		NewRules: timetraRules,
	})
}
