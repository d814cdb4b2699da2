// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

// Package rulesets holds the vendor rule-set definitions shipped with
// confpull, one file per vendor, each registering a *domain.RuleSet with
// package ruleset from its init(). Patterns and header strings are ported
// line-for-line from original_source/punc/rulesets/*.py.
package rulesets

import (
	"regexp"

	"github.com/mkfort/confpull/internal/domain"
	"github.com/mkfort/confpull/internal/filter"
)

// re compiles pattern, panicking on error; all patterns here are constants
// baked in at init time, so a compile failure is a programming error.
func re(pattern string) *regexp.Regexp {
	return regexp.MustCompile(pattern)
}

// cmdAction builds a single-command Action at the given (rule, action) key,
// running the returned filter spec over its response.
func cmdAction(cmd string, key domain.Key, spec *filter.Spec) domain.Action {
	return domain.Action{
		Method: "command",
		Args:   map[string]string{"command": cmd},
		Key:    key,
		Filter: func() *filter.Spec { return spec },
	}
}

// rule wraps a single command Action into an AllRequired Rule, the default
// handling policy used by every shipped vendor rule-set.
func rule(cmd string, ruleIndex int, spec *filter.Spec) *domain.Rule {
	return &domain.Rule{
		Actions:  []domain.Action{cmdAction(cmd, domain.Key{RuleIndex: ruleIndex, ActionIndex: 0}, spec)},
		Handling: domain.AllRequired,
	}
}
