// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

package rulesets

import (
	"github.com/mkfort/confpull/internal/domain"
	"github.com/mkfort/confpull/internal/filter"
)

// No shipped vendor rule-set uses AnyRequired or FirstOrAllOthers, so the
// two functions below are test fixtures only. They are deliberately not
// registered in package ruleset's production registry; see
// internal/collection's test suite for their callers.

// AnyRequiredTestRuleSet returns a RuleSet whose single rule needs only one
// of three actions to succeed.
func AnyRequiredTestRuleSet() *domain.RuleSet {
	return &domain.RuleSet{
		Name:   "test_any_required",
		Header: "#TEST-CONTENT-TYPE: any_required\n#\n",
		NewRules: func() []*domain.Rule {
			return []*domain.Rule{
				{
					Handling: domain.AnyRequired,
					Actions: []domain.Action{
						action("probe a", 0, 0),
						action("probe b", 0, 1),
						action("probe c", 0, 2),
					},
				},
			}
		},
	}
}

// FirstOrAllOthersTestRuleSet returns a RuleSet whose single rule stops at
// its first error, succeeding only if no action errored or the first
// action had passed before the error.
func FirstOrAllOthersTestRuleSet() *domain.RuleSet {
	return &domain.RuleSet{
		Name:   "test_first_or_all_others",
		Header: "#TEST-CONTENT-TYPE: first_or_all_others\n#\n",
		NewRules: func() []*domain.Rule {
			return []*domain.Rule{
				{
					Handling: domain.FirstOrAllOthers,
					Actions: []domain.Action{
						action("primary", 0, 0),
						action("fallback 1", 0, 1),
						action("fallback 2", 0, 2),
					},
				},
			}
		},
	}
}

func action(cmd string, ruleIdx, actionIdx int) domain.Action {
	return domain.Action{
		Method: "command",
		Args:   map[string]string{"command": cmd},
		Key:    domain.Key{RuleIndex: ruleIdx, ActionIndex: actionIdx},
		Filter: func() *filter.Spec { return nil },
	}
}
