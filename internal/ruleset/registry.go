// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

// Package ruleset holds the global registry of vendor rule-sets. Each
// vendor package under internal/rulesets registers its domain.RuleSet by
// name in an init() function; the driver resolves a configuration recipe's
// RuleSetName against this registry at startup.
package ruleset

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mkfort/confpull/internal/domain"
)

var (
	mu       sync.RWMutex
	registry = make(map[string]*domain.RuleSet)
)

// Register adds a rule-set to the global registry under rs.Name.
// It panics if a rule-set with the same name is already registered, since
// that can only happen from a programming error (two vendor packages
// claiming the same name).
func Register(rs *domain.RuleSet) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[rs.Name]; exists {
		panic(fmt.Sprintf("ruleset: already registered: %s", rs.Name))
	}
	registry[rs.Name] = rs
}

// Get returns the rule-set with the given name, or nil if not found.
func Get(name string) *domain.RuleSet {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// List returns the names of all registered rule-sets, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// resetForTesting clears the registry. Only for use in tests.
func resetForTesting() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]*domain.RuleSet)
}
