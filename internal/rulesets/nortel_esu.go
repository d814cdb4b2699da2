// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

package rulesets

import (
	"regexp"

	"github.com/mkfort/confpull/internal/domain"
	"github.com/mkfort/confpull/internal/filter"
	"github.com/mkfort/confpull/internal/ruleset"
)

// nortelEsuConfigSpec treats an unreachable command as a skip, not a device
// error: these devices answer certain prompts with "not found in path" /
// "Next possible completions" / "Available commands" when the command
// doesn't apply to that unit, which is routine rather than exceptional.
var nortelEsuConfigSpec = &filter.Spec{
	TrailingBlank: true,
	EnableDrop:    true,
	Drop: []*regexp.Regexp{
		filter.BlankLine,
		re(`^Command: show configuration`),
		re(`^Using [0-9]+ out of`),
	},
	EnableIgn: true,
	Ignore: []*regexp.Regexp{
		re(`not found in path`),
		re(`Next possible completions`),
		re(`Available commands`),
	},
}

func nortelEsuRules() []*domain.Rule {
	return []*domain.Rule{
		rule("show configuration", 0, nortelEsuConfigSpec),
	}
}

func init() {
	ruleset.Register(&domain.RuleSet{
		Name:     "nortel_esu",
		Header:   "#RANCID-CONTENT-TYPE: nortel_esu\n#\n",
		NewRules: nortelEsuRules,
	})
}
