// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/mkfort/confpull/internal/testable"
)

// Load reads and parses the confpull YAML configuration file at path using
// fs. Unlike the original's Configuration.load_config, a missing or
// malformed file is always an error here — there is no silent "treat as
// empty config" fallback, since a fatal configuration error (spec.md §7)
// must surface to the driver as exit code 2.
func Load(fs testable.FileSystem, path string) (*Config, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	for cname, cc := range cfg.Collections {
		for i, r := range cc.Recipes {
			cc.Recipes[i].Path = SanitizePath(r.Path)
		}
		cfg.Collections[cname] = cc
	}

	return &cfg, nil
}

// Write marshals the config to YAML and writes it to w.
func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close() //nolint:errcheck // best-effort close
	enc.SetIndent(2)
	return enc.Encode(cfg)
}

// Credentials is the on-disk shape of a CredentialsFile: per-vendor and
// per-device agent authentication material, kept in TOML specifically so it
// is visually and syntactically distinct from the YAML collection config it
// sits beside — a deliberate speed bump against accidentally committing it
// alongside recipes.
type Credentials struct {
	// Vendor maps a vendor tag to the auth token supplied with every
	// request for a device matched to that vendor, unless overridden below.
	Vendor map[string]string `toml:"vendor"`
	// Device maps an exact device name to its auth token, overriding any
	// vendor-level default.
	Device map[string]string `toml:"device"`
}

// LoadCredentials reads a TOML credentials sidecar relative to the
// directory holding the YAML config. Returns an empty, non-nil Credentials
// if cfg.CredentialsFile is unset.
func LoadCredentials(fs testable.FileSystem, configDir string, cfg *Config) (*Credentials, error) {
	if cfg.CredentialsFile == "" {
		return &Credentials{}, nil
	}

	path := cfg.CredentialsFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(configDir, path)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading credentials file %s: %w", path, err)
	}

	var creds Credentials
	if err := toml.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("config: parsing credentials file %s: %w", path, err)
	}
	return &creds, nil
}

// Token returns the auth token for device (exact match first, then its
// vendor's default), or "" if neither is configured.
func (c *Credentials) Token(device, vendor string) string {
	if c == nil {
		return ""
	}
	if t, ok := c.Device[device]; ok {
		return t
	}
	return c.Vendor[vendor]
}
