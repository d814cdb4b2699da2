// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

package vcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineOverlap_IdenticalContentIsFullOverlap(t *testing.T) {
	a := "hostname router-a\ninterface lo0\n ip address 1.1.1.1"
	assert.Equal(t, 1.0, lineOverlap(a, a))
}

func TestLineOverlap_OneChangedLineReducesOverlapProportionally(t *testing.T) {
	a := "hostname router-a\ninterface lo0\n ip address 1.1.1.1"
	b := "hostname router-a\ninterface lo0\n ip address 2.2.2.2"
	overlap := lineOverlap(a, b)
	assert.Greater(t, overlap, 0.5)
	assert.Less(t, overlap, 1.0)
}

func TestLineOverlap_DisjointContentIsZero(t *testing.T) {
	assert.Equal(t, 0.0, lineOverlap("aaa\nbbb", "ccc\nddd"))
}

func TestLineOverlap_RepeatedLinesAreNotDoubleCounted(t *testing.T) {
	a := "same\nsame\nsame"
	b := "same"
	overlap := lineOverlap(a, b)
	assert.Equal(t, 1.0/3.0, overlap)
}
