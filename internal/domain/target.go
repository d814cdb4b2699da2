// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

package domain

import (
	"fmt"
	"path/filepath"
)

// Target describes one output artifact: device name, base path, filename
// prefix/suffix, mode, and header.
type Target struct {
	DeviceName string
	BasePath   string
	FilePrefix string
	FileSuffix string
	// Binary marks the target as a binary file; written without the
	// rule-set header and opened with no newline translation.
	Binary bool
	Header string
}

// Path returns the target's final destination pathname. Both DeviceName and
// BasePath must be set.
func (t *Target) Path() (string, error) {
	if t.DeviceName == "" {
		return "", fmt.Errorf("target: device_name must be set")
	}
	if t.BasePath == "" {
		return "", fmt.Errorf("target: base_path must be set")
	}
	return filepath.Join(t.BasePath, t.FilePrefix+t.DeviceName+t.FileSuffix), nil
}

// cacheKey identifies a Target for TargetCache memoization. Two Targets are
// the same output file iff they share every field here.
type cacheKey struct {
	collection *Collection
	device     string
	prefix     string
	suffix     string
	binary     bool
}

// TargetCache memoizes Target instances by (collection, device, prefix,
// suffix, mode) so that all outputs routed to the same file share one
// Target, and therefore one header and one open handle.
type TargetCache struct {
	targets map[cacheKey]*Target
}

// NewTargetCache returns an empty TargetCache.
func NewTargetCache() *TargetCache {
	return &TargetCache{targets: make(map[cacheKey]*Target)}
}

// Get returns the Target for the given key, creating it if necessary.
func (c *TargetCache) Get(collection *Collection, device, prefix, suffix string, binary bool) *Target {
	key := cacheKey{collection, device, prefix, suffix, binary}
	if t, ok := c.targets[key]; ok {
		return t
	}
	t := &Target{DeviceName: device, FilePrefix: prefix, FileSuffix: suffix, Binary: binary}
	c.targets[key] = t
	return t
}
