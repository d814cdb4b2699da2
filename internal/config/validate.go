// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strings"

	"github.com/mkfort/confpull/internal/ruleset"
)

// Validate checks all fields in the config and returns all errors at once.
// It does not consult the rule-set registry by name match alone: an unknown
// rule-set is a recipe-level warning handled by the collection builder (a
// collection whose rule-set can't be resolved is abandoned without aborting
// its siblings, per spec.md §4.2), not a fatal configuration error — except
// that an empty recipes list is.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.BasePath == "" {
		errs = append(errs, "base_path: required")
	}

	if len(cfg.Collections) == 0 {
		errs = append(errs, "collections: at least one collection is required")
	}

	for name, cc := range cfg.Collections {
		if len(cc.Recipes) == 0 {
			errs = append(errs, fmt.Sprintf("collections.%s.recipes: at least one recipe is required", name))
			continue
		}
		for i, r := range cc.Recipes {
			if r.Vendor == "" {
				errs = append(errs, fmt.Sprintf("collections.%s.recipes[%d].vendor: required", name, i))
			}
			if r.Regexp == "" {
				errs = append(errs, fmt.Sprintf("collections.%s.recipes[%d].regexp: required", name, i))
			}
			if r.Path == "" {
				errs = append(errs, fmt.Sprintf("collections.%s.recipes[%d].path: required", name, i))
			}
		}
	}

	if cfg.CommandTimeoutSeconds < 0 {
		errs = append(errs, "command_timeout: must be non-negative")
	}
	if cfg.CollectionTimeoutSeconds < 0 {
		errs = append(errs, "collection_timeout: must be non-negative")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// ResolveRuleSetName returns the rule-set name a recipe resolves against the
// registry: its explicit RuleSet field, or its Vendor tag when unset.
func (r RecipeConfig) ResolveRuleSetName() string {
	if r.RuleSet != "" {
		return r.RuleSet
	}
	return r.Vendor
}

// KnownRuleSets reports, for diagnostics, which configured recipes name a
// rule-set absent from the registry. It never mutates cfg and is used by the
// `confpull validate` subcommand to surface a warning (not a fatal error —
// the driver's own per-recipe handling already tolerates this at run time).
func KnownRuleSets(cfg *Config) []string {
	var unknown []string
	for cname, cc := range cfg.Collections {
		for _, r := range cc.Recipes {
			name := r.ResolveRuleSetName()
			if ruleset.Get(name) == nil {
				unknown = append(unknown, fmt.Sprintf("%s: recipe %q references unknown rule-set %q", cname, r.Path, name))
			}
		}
	}
	return unknown
}

// SanitizePath rejects path traversal in a configured sub-path: any
// occurrence of ".." anywhere in the path is rewritten to "./", per
// spec.md §6 ("Paths containing '..' are rejected and rewritten to './'.").
func SanitizePath(path string) string {
	if strings.Contains(path, "..") {
		return "./"
	}
	return path
}
