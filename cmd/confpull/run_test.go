// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gogit "github.com/go-git/go-git/v5"
)

const runConfigYAML = `
base_path: %s
collections:
  core:
    recipes:
      - vendor: cisco
        regexp: "^router-.*"
        path: cisco
`

// writeRunFixture lays out a confpull.yaml, a basePath repo directory, and a
// --local fixture directory (a devices.yaml manifest plus one executable
// command.sh per device) under a fresh temp directory, and returns the path
// to the written config file and the fixture directory.
func writeRunFixture(t *testing.T) (configFile, fixtureDir, basePath string) {
	t.Helper()
	root := t.TempDir()

	basePath = filepath.Join(root, "repo")
	fixtureDir = filepath.Join(root, "fixtures")
	routerDir := filepath.Join(fixtureDir, "router-a")
	require.NoError(t, os.MkdirAll(routerDir, 0o755))

	require.NoError(t, os.WriteFile(
		filepath.Join(fixtureDir, "devices.yaml"),
		[]byte("devices:\n  router-a: cisco\n"),
		0o644,
	))

	script := "#!/bin/sh\necho \"Cisco IOS Software, Version 15.1\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(routerDir, "command.sh"), []byte(script), 0o755)) //nolint:gosec

	configFile = filepath.Join(root, "confpull.yaml")
	cfg := []byte(fmt.Sprintf(runConfigYAML, basePath))
	require.NoError(t, os.WriteFile(configFile, cfg, 0o644))

	return configFile, fixtureDir, basePath
}

func TestRun_NoAgentsReturnsExitNoAgents(t *testing.T) {
	resetGlobalFlags()
	t.Setenv("NOTCH_AGENTS", "")
	configFile, _, _ := writeRunFixture(t)

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"run", "--config", configFile, "--collection", "core"})

	err := cmd.Execute()
	require.Error(t, err)
	var exitErr *exitCodeError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitNoAgents, exitErr.ExitCode())
}

func TestRun_RemoteAgentIsNotImplemented(t *testing.T) {
	resetGlobalFlags()
	configFile, _, _ := writeRunFixture(t)

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"run", "--config", configFile, "--agent", "agent-1:9999", "--collection", "core"})

	err := cmd.Execute()
	require.Error(t, err)
	var exitErr *exitCodeError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitAgentConnection, exitErr.ExitCode())
	assert.Contains(t, exitErr.Error(), "not implemented")
}

func TestRun_UnknownCollectionFails(t *testing.T) {
	resetGlobalFlags()
	configFile, fixtureDir, _ := writeRunFixture(t)

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"run", "--config", configFile, "--local", fixtureDir, "--collection", "nonexistent"})

	err := cmd.Execute()
	require.Error(t, err)
	var exitErr *exitCodeError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitConfigOrRepo, exitErr.ExitCode())
}

func TestRun_LocalFixture_WritesArtifactsAndCommits(t *testing.T) {
	resetGlobalFlags()
	configFile, fixtureDir, basePath := writeRunFixture(t)

	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"run", "--config", configFile, "--local", fixtureDir, "--collection", "core"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "none")

	artifact := filepath.Join(basePath, "cisco", "router-a")
	_, err := os.Stat(artifact)
	assert.NoError(t, err, "expected collated artifact file to exist at %s", artifact)

	raw, err := gogit.PlainOpen(basePath)
	require.NoError(t, err)
	head, err := raw.Head()
	require.NoError(t, err)
	commit, err := raw.CommitObject(head.Hash())
	require.NoError(t, err)
	assert.Contains(t, commit.Message, "Configuration changes detected")
}

func TestRun_DeviceFilterRestrictsRecipeRegex(t *testing.T) {
	resetGlobalFlags()
	configFile, fixtureDir, _ := writeRunFixture(t)

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{
		"run", "--config", configFile, "--local", fixtureDir,
		"--collection", "core", "--device", "router-b",
	})

	err := cmd.Execute()
	require.NoError(t, err, "no matching device is a no-op, not an error")
}
