// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

package rulesets

import (
	"regexp"

	"github.com/mkfort/confpull/internal/domain"
	"github.com/mkfort/confpull/internal/filter"
	"github.com/mkfort/confpull/internal/ruleset"
)

var omniswitchHardwareSpec = &filter.Spec{
	TrailingBlank: true,
	EnableDrop:    true,
	Drop:          []*regexp.Regexp{filter.BlankLine},
	Commented:     true,
	Comment:       "! ",
}

// omniswitchConfigSpec has no overrides: the default shape (drop nothing,
// blank lines fall out on their own) is already right for this command.
var omniswitchConfigSpec = &filter.Spec{
	TrailingBlank: true,
}

func omniswitchRules() []*domain.Rule {
	return []*domain.Rule{
		rule("show hardware info", 0, omniswitchHardwareSpec),
		rule("show configuration snapshot", 1, omniswitchConfigSpec),
	}
}

func init() {
	ruleset.Register(&domain.RuleSet{
		Name:     "omniswitch",
		Header:   "!RANCID-CONTENT-TYPE: omniswitch\n!\n",
		NewRules: omniswitchRules,
	})
}
