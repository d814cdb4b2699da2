// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

package rulesets

import (
	"regexp"

	"github.com/mkfort/confpull/internal/domain"
	"github.com/mkfort/confpull/internal/filter"
	"github.com/mkfort/confpull/internal/ruleset"
)

var juniperErrors = []*regexp.Regexp{re(`^error: syntax error`)}

var juniperShowVersionSpec = &filter.Spec{
	TrailingBlank: true,
	EnableDrop:    true,
	Drop:          []*regexp.Regexp{filter.BlankLine, re(`^## `)},
	EnableErr:     true,
	Error:         juniperErrors,
	Commented:     true,
	Comment:       "# ",
}

var juniperShowConfigSpec = &filter.Spec{
	TrailingBlank: true,
	EnableDrop:    true,
	Drop:          []*regexp.Regexp{filter.BlankLine},
	EnableErr:     true,
	Error:         juniperErrors,
}

func juniperRules() []*domain.Rule {
	return []*domain.Rule{
		rule("show version", 0, juniperShowVersionSpec),
		rule("show config", 1, juniperShowConfigSpec),
	}
}

func init() {
	ruleset.Register(&domain.RuleSet{
		Name:     "juniper",
		Header:   "#RANCID-CONTENT-TYPE: juniper\n#\n",
		NewRules: juniperRules,
	})
}
