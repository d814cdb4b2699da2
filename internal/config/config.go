// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

// Package config handles confpull's YAML configuration file: the base
// artifact path, revision-control settings, per-run timeouts, and the named
// collections of recipes that drive the collection engine. File format and
// required fields are ported from original_source/punc/config.py; a TOML
// sidecar file for agent credentials (kept out of the YAML, and out of
// version control) is new.
package config

import "time"

// DefaultCommandTimeout is used when the config omits command_timeout.
const DefaultCommandTimeout = 180 * time.Second

// DefaultCollectionTimeout is used when the config omits collection_timeout.
const DefaultCollectionTimeout = 1750 * time.Second

// Config is the top-level shape of a confpull configuration file.
type Config struct {
	// BasePath is the working directory under which all artifact files and
	// the error report are written, and which the revision-control backend
	// treats as its working tree. Required.
	BasePath string `yaml:"base_path"`

	// MasterRepoPath, if set, is the repository cloned into BasePath when
	// BasePath holds no repository yet. Optional; commits are not pushed
	// back to it.
	MasterRepoPath string `yaml:"master_repo_path,omitempty"`

	// ErrorReportPath is relative to BasePath; `confpull run` persists its
	// per-run error report there after every run.
	ErrorReportPath string `yaml:"error_report_path,omitempty"`

	// CommandTimeoutSeconds bounds a single command's round trip. Zero means
	// "unset": CommandTimeout then returns DefaultCommandTimeout (spec.md §9
	// Open Question 2).
	CommandTimeoutSeconds int `yaml:"command_timeout,omitempty"`

	// CollectionTimeoutSeconds bounds one Collection's total wall-clock wait
	// before outstanding actions are synthesized as errors.
	CollectionTimeoutSeconds int `yaml:"collection_timeout,omitempty"`

	// CredentialsFile, if set, is a path (relative to the directory holding
	// the YAML config) to a TOML file of per-vendor or per-device agent
	// credentials, kept outside version control; the collection engine looks
	// up a device's token each time it dispatches a request for it. See
	// LoadCredentials.
	CredentialsFile string `yaml:"credentials_file,omitempty"`

	// Collections maps a collection name to its recipe list.
	Collections map[string]CollectionConfig `yaml:"collections"`
}

// CollectionConfig is one named group of recipes.
type CollectionConfig struct {
	Recipes []RecipeConfig `yaml:"recipes"`
}

// RecipeConfig is one (vendor, device-regex, rule-set-name, output-path)
// unit, as read from YAML.
type RecipeConfig struct {
	Vendor string `yaml:"vendor"`
	// RuleSet names the rule-set this recipe resolves against the registry.
	// Defaults to Vendor when omitted, matching the common case of a
	// vendor's rule-set sharing its tag.
	RuleSet string `yaml:"ruleset,omitempty"`
	Regexp  string `yaml:"regexp"`
	Path    string `yaml:"path"`
}

// CommandTimeout returns the configured per-command timeout, or
// DefaultCommandTimeout if unset.
func (c *Config) CommandTimeout() time.Duration {
	if c.CommandTimeoutSeconds <= 0 {
		return DefaultCommandTimeout
	}
	return time.Duration(c.CommandTimeoutSeconds) * time.Second
}

// CollectionTimeout returns the configured per-collection timeout, or
// DefaultCollectionTimeout if unset.
func (c *Config) CollectionTimeout() time.Duration {
	if c.CollectionTimeoutSeconds <= 0 {
		return DefaultCollectionTimeout
	}
	return time.Duration(c.CollectionTimeoutSeconds) * time.Second
}
