// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

package rulesets

import (
	"regexp"

	"github.com/mkfort/confpull/internal/domain"
	"github.com/mkfort/confpull/internal/filter"
	"github.com/mkfort/confpull/internal/ruleset"
)

var arborHardwareSpec = &filter.Spec{
	TrailingBlank: true,
	EnableDrop:    true,
	Drop: []*regexp.Regexp{
		filter.BlankLine,
		re(`^Boot time:`),
		re(`^Load averages:`),
	},
	Commented: true,
	Comment:   "# ",
}

// arborConfigSpec is the default shape: nothing special needed for this
// command's output.
var arborConfigSpec = &filter.Spec{
	TrailingBlank: true,
}

func arborRules() []*domain.Rule {
	return []*domain.Rule{
		rule("system hardware", 0, arborHardwareSpec),
		rule("system config show", 1, arborConfigSpec),
	}
}

func init() {
	ruleset.Register(&domain.RuleSet{
		Name:     "arbor",
		Header:   "#RANCID-CONTENT-TYPE: arbor\n#\n",
		NewRules: arborRules,
	})
}
