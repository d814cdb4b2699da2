// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

package ruleset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkfort/confpull/internal/domain"
)

func TestRegister_GetAndList(t *testing.T) {
	resetForTesting()
	defer resetForTesting()

	Register(&domain.RuleSet{Name: "alpha"})
	Register(&domain.RuleSet{Name: "beta"})

	assert.Equal(t, "alpha", Get("alpha").Name)
	assert.Nil(t, Get("nonexistent"))
	assert.Equal(t, []string{"alpha", "beta"}, List())
}

func TestRegister_PanicsOnDuplicateName(t *testing.T) {
	resetForTesting()
	defer resetForTesting()

	Register(&domain.RuleSet{Name: "dup"})
	require.Panics(t, func() { Register(&domain.RuleSet{Name: "dup"}) })
}
