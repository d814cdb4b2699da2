// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

// Package domain defines the core data model shared by every component of
// confpull: Action, Rule, RuleSet, Target, Result, Recipe and Collection.
package domain

import "github.com/mkfort/confpull/internal/filter"

// Key orders an Action's output within a device's file, independent of the
// order its response arrives over the network.
type Key struct {
	RuleIndex   int
	ActionIndex int
}

// Less reports whether k sorts before other, by RuleIndex then ActionIndex.
func (k Key) Less(other Key) bool {
	if k.RuleIndex != other.RuleIndex {
		return k.RuleIndex < other.RuleIndex
	}
	return k.ActionIndex < other.ActionIndex
}

// Action is an immutable description of one device operation.
type Action struct {
	// Method is the remote method name, e.g. "command" or "get_config".
	Method string

	// Args carries the method arguments (at minimum the command text);
	// DeviceName is filled in by the scheduler before dispatch.
	Args map[string]string

	// Key orders this action's output within its target file.
	Key Key

	// Filter builds the line-oriented filter to run over this action's raw
	// response. Nil means the NullPipeline (no-op, used for binary payloads).
	Filter func() *filter.Spec

	// Target overrides the rule-set's default Target for this action alone.
	// Nil means "use the rule's or rule-set's Target".
	Target *Target

	// Binary marks the action's expected response as a binary payload; when
	// true the filter is ignored and filter.Null is used regardless of Filter.
	Binary bool
}
