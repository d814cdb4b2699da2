// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

package domain

import (
	"sort"
	"time"
)

// Collection is the runtime container for one recipe bound to a concrete
// device set. Its identity (pointer equality) is part of a Target's cache
// key, so a Collection must never be copied after construction.
type Collection struct {
	Recipe  Recipe
	Devices []string

	RuleSet *RuleSet
	Rules   []*Rule

	CommandTimeout    time.Duration
	CollectionTimeout time.Duration

	Start time.Time

	// Results maps each Target to the Results routed to it. Mutated only
	// from within the owning collection package's callback path, which
	// serializes access with a mutex.
	Results map[*Target][]*Result

	Targets *TargetCache
}

// NewCollection allocates a Collection for recipe over devices, using
// ruleSet's NewRules to produce independent per-device Rule state.
func NewCollection(recipe Recipe, devices []string, ruleSet *RuleSet, commandTimeout, collectionTimeout time.Duration) *Collection {
	return &Collection{
		Recipe:            recipe,
		Devices:           devices,
		RuleSet:           ruleSet,
		Rules:             ruleSet.NewRules(),
		CommandTimeout:    commandTimeout,
		CollectionTimeout: collectionTimeout,
		Results:           make(map[*Target][]*Result),
		Targets:           NewTargetCache(),
	}
}

// AddResult appends result to the Results list for target, unless the
// result's status is StatusIgnore (ignored results are never stored, per
// spec.md §4.3 step 5).
func (c *Collection) AddResult(target *Target, result *Result) {
	if result.Status == StatusIgnore {
		return
	}
	c.Results[target] = append(c.Results[target], result)
}

// DevicesWithErrors returns the sorted, deduplicated set of device names
// that have at least one StatusError Result anywhere in this Collection.
func (c *Collection) DevicesWithErrors() []string {
	seen := make(map[string]bool)
	for _, results := range c.Results {
		for _, r := range results {
			if r.Status == StatusError {
				seen[r.DeviceName] = true
			}
		}
	}
	out := make([]string, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Errors returns, for each device with at least one error, the set of
// distinct error messages recorded against it.
func (c *Collection) Errors() map[string]map[string]bool {
	errs := make(map[string]map[string]bool)
	for _, results := range c.Results {
		for _, r := range results {
			if r.Status != StatusError {
				continue
			}
			msg := r.ErrorMessage
			if msg == "" {
				continue
			}
			if errs[r.DeviceName] == nil {
				errs[r.DeviceName] = make(map[string]bool)
			}
			errs[r.DeviceName][msg] = true
		}
	}
	return errs
}
