// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

package vcs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_InitializesNewRepoWhenNoneExists(t *testing.T) {
	dir := t.TempDir()
	r, err := Open(dir, "")
	require.NoError(t, err)
	require.NotNil(t, r.repo)

	_, err = os.Stat(filepath.Join(dir, ".git"))
	assert.NoError(t, err)
}

func TestOpen_ReopensExistingRepo(t *testing.T) {
	dir := t.TempDir()
	_, err := Open(dir, "")
	require.NoError(t, err)

	r2, err := Open(dir, "")
	require.NoError(t, err)
	assert.NotNil(t, r2.repo)
}

func TestAddRemoveAndCommit_GeneratesDefaultMessage(t *testing.T) {
	dir := t.TempDir()
	r, err := Open(dir, "")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "router-a.cfg"), []byte("hostname router-a\n"), 0o640))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "router-b.cfg"), []byte("hostname router-b\n"), 0o640))

	require.NoError(t, r.AddRemove(DefaultSimilarityPercent, nil))
	require.NoError(t, r.Commit(""))

	head, err := r.repo.Head()
	require.NoError(t, err)
	commit, err := r.repo.CommitObject(head.Hash())
	require.NoError(t, err)

	assert.Contains(t, commit.Message, "Configuration changes detected:")
	assert.Contains(t, commit.Message, "2 new routers:")
	assert.Contains(t, commit.Message, "router-a.cfg")
	assert.Contains(t, commit.Message, "router-b.cfg")
}

func TestAddRemove_ExcludesDeviceByBasenameSubstring(t *testing.T) {
	dir := t.TempDir()
	r, err := Open(dir, "")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "router-a.cfg"), []byte("hostname router-a\n"), 0o640))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "router-b.cfg"), []byte("hostname router-b\n"), 0o640))

	require.NoError(t, r.AddRemove(DefaultSimilarityPercent, []string{"router-b"}))
	require.NoError(t, r.Commit(""))

	head, err := r.repo.Head()
	require.NoError(t, err)
	commit, err := r.repo.CommitObject(head.Hash())
	require.NoError(t, err)

	assert.Contains(t, commit.Message, "router-a.cfg")
	assert.NotContains(t, commit.Message, "router-b.cfg")
}

func TestCommit_NoOpsWhenNothingStaged(t *testing.T) {
	dir := t.TempDir()
	r, err := Open(dir, "")
	require.NoError(t, err)

	require.NoError(t, r.Commit(""))

	_, err = r.repo.Head()
	assert.Error(t, err, "no commit should have been created")
}

func TestCommit_UsesExplicitMessageWhenProvided(t *testing.T) {
	dir := t.TempDir()
	r, err := Open(dir, "")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "router-a.cfg"), []byte("hostname router-a\n"), 0o640))
	require.NoError(t, r.AddRemove(DefaultSimilarityPercent, nil))
	require.NoError(t, r.Commit("manual backup run"))

	head, err := r.repo.Head()
	require.NoError(t, err)
	commit, err := r.repo.CommitObject(head.Hash())
	require.NoError(t, err)
	assert.Equal(t, "manual backup run", commit.Message)
}

func TestExcludedPath_MatchesSubstringOfBasename(t *testing.T) {
	exclude := excludeSet([]string{"router-b"})
	assert.True(t, excludedPath("/base/prefix-router-b.cfg", exclude))
	assert.False(t, excludedPath("/base/prefix-router-a.cfg", exclude))
}
