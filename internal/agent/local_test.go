// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

package agent

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkfort/confpull/internal/testable"
)

const fixtureDir = "/fixtures/site-a"

func manifestFS() *testable.MockFileSystem {
	return &testable.MockFileSystem{
		ReadFileFn: func(name string) ([]byte, error) {
			switch name {
			case filepath.Join(fixtureDir, "devices.yaml"):
				return []byte("devices:\n  router-a: cisco\n  router-b: juniper\n"), nil
			case filepath.Join(fixtureDir, "router-a", "running.cfg"):
				return []byte("hostname router-a\n"), nil
			default:
				return nil, errors.New("fixture not found: " + name)
			}
		},
	}
}

func TestNewLocalClient_LoadsDeviceManifest(t *testing.T) {
	client, err := NewLocalClient(manifestFS(), &testable.MockCommandExecutor{}, fixtureDir)
	require.NoError(t, err)

	infos, err := client.DevicesInfo(context.Background(), ".*")
	require.NoError(t, err)
	assert.Len(t, infos, 2)
	assert.Equal(t, "cisco", infos["router-a"].Vendor)
}

func TestNewLocalClient_ReturnsErrorOnMissingManifest(t *testing.T) {
	fs := &testable.MockFileSystem{
		ReadFileFn: func(string) ([]byte, error) { return nil, errors.New("no such file") },
	}
	_, err := NewLocalClient(fs, &testable.MockCommandExecutor{}, fixtureDir)
	assert.Error(t, err)
}

func TestLocalClient_DevicesInfo_FiltersByRegex(t *testing.T) {
	client, err := NewLocalClient(manifestFS(), &testable.MockCommandExecutor{}, fixtureDir)
	require.NoError(t, err)

	infos, err := client.DevicesInfo(context.Background(), "^router-a$")
	require.NoError(t, err)
	assert.Len(t, infos, 1)
	assert.Contains(t, infos, "router-a")
}

func TestLocalClient_DevicesInfo_ReturnsErrNoAgentsWhenNothingMatches(t *testing.T) {
	client, err := NewLocalClient(manifestFS(), &testable.MockCommandExecutor{}, fixtureDir)
	require.NoError(t, err)

	_, err = client.DevicesInfo(context.Background(), "^nonexistent$")
	assert.ErrorIs(t, err, ErrNoAgents)
}

func TestLocalClient_DevicesInfo_InvalidRegexIsAnError(t *testing.T) {
	client, err := NewLocalClient(manifestFS(), &testable.MockCommandExecutor{}, fixtureDir)
	require.NoError(t, err)

	_, err = client.DevicesInfo(context.Background(), "(unclosed")
	assert.Error(t, err)
}

func TestLocalClient_ExecRequest_CommandMethodRunsFixtureScript(t *testing.T) {
	exec := &testable.MockCommandExecutor{DefaultOutput: "Cisco IOS Software"}
	client, err := NewLocalClient(manifestFS(), exec, fixtureDir)
	require.NoError(t, err)

	respCh := make(chan Response, 1)
	client.ExecRequest(context.Background(), Request{
		DeviceName: "router-a",
		Method:     "command",
		Args:       map[string]string{"command": "show version"},
	}, func(r Response) { respCh <- r })

	resp := <-respCh
	assert.NoError(t, resp.Err)
	assert.Equal(t, "Cisco IOS Software", resp.Output)
}

func TestLocalClient_ExecRequest_GetConfigReadsFixtureFile(t *testing.T) {
	client, err := NewLocalClient(manifestFS(), &testable.MockCommandExecutor{}, fixtureDir)
	require.NoError(t, err)

	respCh := make(chan Response, 1)
	client.ExecRequest(context.Background(), Request{
		DeviceName: "router-a",
		Method:     "get_config",
		Args:       map[string]string{"source": "running.cfg"},
	}, func(r Response) { respCh <- r })

	resp := <-respCh
	assert.NoError(t, resp.Err)
	assert.Equal(t, "hostname router-a\n", resp.Output)
}

func TestLocalClient_ExecRequest_UnknownMethodErrors(t *testing.T) {
	client, err := NewLocalClient(manifestFS(), &testable.MockCommandExecutor{}, fixtureDir)
	require.NoError(t, err)

	respCh := make(chan Response, 1)
	client.ExecRequest(context.Background(), Request{
		DeviceName: "router-a",
		Method:     "reboot",
	}, func(r Response) { respCh <- r })

	resp := <-respCh
	assert.Error(t, resp.Err)
}

func TestLocalClient_WaitAll_ReturnsOnceEveryCallbackFired(t *testing.T) {
	client, err := NewLocalClient(manifestFS(), &testable.MockCommandExecutor{DefaultOutput: "ok"}, fixtureDir)
	require.NoError(t, err)

	done := make(chan struct{})
	client.ExecRequest(context.Background(), Request{DeviceName: "router-a", Method: "command", Args: map[string]string{"command": "show version"}},
		func(Response) { close(done) })

	require.NoError(t, client.WaitAll(context.Background()))
	<-done // WaitAll having returned guarantees this already fired
}
