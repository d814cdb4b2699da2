// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

package rulesets

import (
	"regexp"

	"github.com/mkfort/confpull/internal/domain"
	"github.com/mkfort/confpull/internal/filter"
	"github.com/mkfort/confpull/internal/ruleset"
)

var advaSetupBackupSpec = &filter.Spec{
	TrailingBlank: true,
	EnableIgn:     true,
	Ignore:        []*regexp.Regexp{re(`^backup completed successfully`)},
	EnableErr:     true,
	Error:         []*regexp.Regexp{re(`.*aborting`)},
}

// advaFspRules is a two-action, binary-artifact rule: the device must run
// its own backup job before the binary image can be retrieved, so both
// actions share one AllRequired rule. An IGNORE on action 1 never stops the
// rule (only ERROR does); action 2 runs regardless.
func advaFspRules() []*domain.Rule {
	return []*domain.Rule{
		{
			Handling: domain.AllRequired,
			Actions: []domain.Action{
				{
					Method: "command",
					Args:   map[string]string{"command": "fsp_update.f7 backup configuration.img"},
					Key:    domain.Key{RuleIndex: 0, ActionIndex: 0},
					Filter: func() *filter.Spec { return advaSetupBackupSpec },
				},
				{
					Method: "get_config",
					Args:   map[string]string{"source": "/rdisk/configuration.img.DBS"},
					Key:    domain.Key{RuleIndex: 0, ActionIndex: 1},
					Binary: true,
					Target: &domain.Target{FileSuffix: "-configuration.img.DBS", Binary: true},
				},
			},
		},
	}
}

func init() {
	ruleset.Register(&domain.RuleSet{
		Name:     "adva_fsp",
		Header:   "",
		NewRules: advaFspRules,
	})
}
