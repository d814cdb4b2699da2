// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

package agent

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"sync"
	"sync/atomic"

	"gopkg.in/yaml.v3"

	"github.com/mkfort/confpull/internal/testable"
)

// localClient is a concrete, in-process reference Client used by tests and
// by confpull run --local. It never talks to a real device: "command"
// requests shell out to a per-device fixture script
// (<fixtureDir>/<device>/command.sh, via testable.CommandExecutor) and
// "get_config" requests read a fixture file directly
// (<fixtureDir>/<device>/<source-basename>, via testable.FileSystem). This
// keeps the full collection pipeline exercisable end-to-end without
// defining any new wire protocol to real hardware.
type localClient struct {
	fs         testable.FileSystem
	exec       testable.CommandExecutor
	fixtureDir string
	devices    map[string]DeviceInfo

	wg      sync.WaitGroup
	pending int32
}

// deviceManifest is the on-disk shape of <fixtureDir>/devices.yaml.
type deviceManifest struct {
	Devices map[string]string `yaml:"devices"` // name -> vendor
}

// NewLocalClient loads the device manifest from fixtureDir and returns a
// ready-to-use Client. fixtureDir must contain a devices.yaml.
func NewLocalClient(fs testable.FileSystem, exec testable.CommandExecutor, fixtureDir string) (Client, error) {
	raw, err := fs.ReadFile(filepath.Join(fixtureDir, "devices.yaml"))
	if err != nil {
		return nil, fmt.Errorf("agent: reading device manifest: %w", err)
	}
	var manifest deviceManifest
	if err := yaml.Unmarshal(raw, &manifest); err != nil {
		return nil, fmt.Errorf("agent: parsing device manifest: %w", err)
	}

	devices := make(map[string]DeviceInfo, len(manifest.Devices))
	for name, vendor := range manifest.Devices {
		devices[name] = DeviceInfo{Name: name, Vendor: vendor}
	}

	return &localClient{fs: fs, exec: exec, fixtureDir: fixtureDir, devices: devices}, nil
}

func (c *localClient) DevicesInfo(_ context.Context, regex string) (map[string]DeviceInfo, error) {
	re, err := regexp.Compile(regex)
	if err != nil {
		return nil, fmt.Errorf("agent: invalid device regex %q: %w", regex, err)
	}

	matched := make(map[string]DeviceInfo)
	for name, info := range c.devices {
		if re.MatchString(name) {
			matched[name] = info
		}
	}
	if len(matched) == 0 {
		return nil, ErrNoAgents
	}
	return matched, nil
}

func (c *localClient) ExecRequest(ctx context.Context, req Request, cb Callback) {
	atomic.AddInt32(&c.pending, 1)
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer atomic.AddInt32(&c.pending, -1)
		cb(c.run(ctx, req))
	}()
}

func (c *localClient) run(ctx context.Context, req Request) Response {
	switch req.Method {
	case "command":
		return c.runCommand(ctx, req)
	case "get_config":
		return c.runGetConfig(req)
	default:
		return Response{DeviceName: req.DeviceName, Err: fmt.Errorf("agent: unknown method %q", req.Method)}
	}
}

func (c *localClient) runCommand(ctx context.Context, req Request) Response {
	script := filepath.Join(c.fixtureDir, req.DeviceName, "command.sh")
	cmd := c.exec.CommandContext(ctx, script, req.Args["command"])
	out, err := cmd.Output()
	if err != nil {
		return Response{DeviceName: req.DeviceName, Err: fmt.Errorf("agent: command %q on %s: %w", req.Args["command"], req.DeviceName, err)}
	}
	return Response{DeviceName: req.DeviceName, Output: string(out)}
}

func (c *localClient) runGetConfig(req Request) Response {
	source := req.Args["source"]
	path := filepath.Join(c.fixtureDir, req.DeviceName, filepath.Base(source))
	data, err := c.fs.ReadFile(path)
	if err != nil {
		return Response{DeviceName: req.DeviceName, Err: fmt.Errorf("agent: get_config %q on %s: %w", source, req.DeviceName, err)}
	}
	return Response{DeviceName: req.DeviceName, Output: string(data)}
}

func (c *localClient) WaitAll(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return &TimeoutError{Pending: int(atomic.LoadInt32(&c.pending))}
	}
}
