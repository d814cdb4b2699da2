// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

package filter

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_NilSpecPassesThrough(t *testing.T) {
	out := Run("line one\nline two", nil)
	assert.False(t, out.Skipped)
	assert.False(t, out.DeviceError)
	assert.Equal(t, "line one\nline two", out.Text)
}

func TestRun_IgnoreStopsAtFirstMatch(t *testing.T) {
	spec := &Spec{
		EnableIgn: true,
		Ignore:    []*regexp.Regexp{regexp.MustCompile(`building configuration`)},
	}
	out := Run("!\nbuilding configuration...\nhostname foo", spec)
	require.True(t, out.Skipped)
	assert.Empty(t, out.Text)
	assert.False(t, out.DeviceError)
}

func TestRun_ErrorTakesPrecedenceOverDrop(t *testing.T) {
	spec := &Spec{
		EnableErr:  true,
		Error:      []*regexp.Regexp{regexp.MustCompile(`% Invalid input`)},
		EnableDrop: true,
		Drop:       []*regexp.Regexp{regexp.MustCompile(`% Invalid`)},
	}
	out := Run("% Invalid input detected", spec)
	require.True(t, out.DeviceError)
	assert.Equal(t, "Error from device: % Invalid input", out.Message)
}

func TestRun_DropRemovesMatchingLines(t *testing.T) {
	spec := &Spec{
		EnableDrop: true,
		Drop:       []*regexp.Regexp{regexp.MustCompile(`^ntp clock-period`)},
	}
	out := Run("hostname foo\nntp clock-period 12345\nend", spec)
	assert.Equal(t, "hostname foo\nend", out.Text)
}

func TestRun_SubstituteRewritesMatchingText(t *testing.T) {
	spec := &Spec{
		EnableSubst: true,
		Substitute: []Substitution{
			{Pattern: regexp.MustCompile(`secret \S+`), Replacement: "secret <redacted>"},
		},
	}
	out := Run("username admin secret abc123", spec)
	assert.Equal(t, "username admin secret <redacted>", out.Text)
}

func TestRun_IncludeOverridesDrop(t *testing.T) {
	spec := &Spec{
		EnableDrop: true,
		Drop:       []*regexp.Regexp{regexp.MustCompile(`.*`)}, // would drop everything
		EnableInc:  true,
		Include:    []*regexp.Regexp{regexp.MustCompile(`^hostname`)},
	}
	out := Run("hostname foo\nntp server 1.2.3.4", spec)
	assert.Equal(t, "hostname foo", out.Text)
}

func TestRun_NoIncludeDropsBlankLines(t *testing.T) {
	out := Run("a\n\nb", &Spec{})
	assert.Equal(t, "a\nb", out.Text)
}

func TestRun_CommentPrefixAppliedToSurvivingLines(t *testing.T) {
	spec := &Spec{Commented: true, Comment: "!"}
	out := Run("hostname foo\nend", spec)
	assert.Equal(t, "!hostname foo\n!end", out.Text)
}

func TestRun_TrailingBlankWithoutComment(t *testing.T) {
	spec := &Spec{TrailingBlank: true}
	out := Run("end", spec)
	assert.Equal(t, "end\n", out.Text)
}

func TestRun_TrailingBlankWithComment(t *testing.T) {
	spec := &Spec{TrailingBlank: true, Commented: true, Comment: "!"}
	out := Run("end", spec)
	assert.Equal(t, "!end\n!\n", out.Text)
}

func TestNull_PassesThroughUnchanged(t *testing.T) {
	out := Null("binary\x00payload")
	assert.Equal(t, "binary\x00payload", out.Text)
	assert.False(t, out.Skipped)
	assert.False(t, out.DeviceError)
}
