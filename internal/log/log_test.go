// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRunID_ProducesDistinctValues(t *testing.T) {
	a := NewRunID()
	b := NewRunID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestSetup_DoesNotPanicForAnyVerbosityCombination(t *testing.T) {
	assert.NotPanics(t, func() { Setup(false, false) })
	assert.NotPanics(t, func() { Setup(true, false) })
	assert.NotPanics(t, func() { Setup(false, true) })
}

func TestWith_AttachesRunIDWithoutPanicking(t *testing.T) {
	Setup(false, false)
	logger := With(NewRunID())
	assert.NotPanics(t, func() { logger.Info("test message") })
}
