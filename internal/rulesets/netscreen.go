// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

package rulesets

import (
	"regexp"

	"github.com/mkfort/confpull/internal/domain"
	"github.com/mkfort/confpull/internal/filter"
	"github.com/mkfort/confpull/internal/ruleset"
)

var netscreenErrors = []*regexp.Regexp{re(`% Invalid input detected at '\^' marker\.`)}

// netscreenGetSystemSpec corresponds to the "get system" command. The
// original source's rule-set never schedules it (the rule is present but
// commented out upstream), and netscreenRules does not schedule it either.
var netscreenGetSystemSpec = &filter.Spec{
	TrailingBlank: true,
	EnableDrop:    true,
	Drop:          []*regexp.Regexp{filter.BlankLine},
	EnableInc:     true,
	Include:       []*regexp.Regexp{re(`(?i)version`), re(`Using [0-9].*`)},
	EnableErr:     true,
	Error:         netscreenErrors,
	Commented:     true,
	Comment:       "# ",
}

var netscreenGetConfigSpec = &filter.Spec{
	TrailingBlank: true,
	EnableDrop:    true,
	Drop:          []*regexp.Regexp{filter.BlankLine, re(`^Total Config size `)},
	EnableErr:     true,
	Error:         netscreenErrors,
}

// netscreenRules intentionally omits the "get system" rule: the upstream
// rule-set never schedules it, so matching it would change the artifact's
// shape from what RANCID archives already hold for these devices.
func netscreenRules() []*domain.Rule {
	return []*domain.Rule{
		rule("get config", 1, netscreenGetConfigSpec),
	}
}

func init() {
	ruleset.Register(&domain.RuleSet{
		Name:     "netscreen",
		Header:   "#RANCID-CONTENT-TYPE: netscreen\n#\n",
		NewRules: netscreenRules,
	})
}
