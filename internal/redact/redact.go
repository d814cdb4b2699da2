// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

// Package redact provides utilities to strip sensitive values from strings
// before they appear in output, logs, or error messages.
package redact

import (
	"os"
	"strings"
	"sync"
)

// sensitiveEnvVars lists environment variable names whose values must never
// appear in output. The device-access agent itself is commonly fronted by a
// token read from the environment in operator deployments.
var sensitiveEnvVars = []string{
	"NOTCH_TOKEN",
	"CONFPULL_AGENT_TOKEN",
}

var (
	mu            sync.Mutex
	cachedSecrets []string
	envLoaded     bool
)

func loadEnvLocked() {
	if envLoaded {
		return
	}
	for _, envVar := range sensitiveEnvVars {
		val := os.Getenv(envVar)
		if val != "" && len(val) >= 4 {
			cachedSecrets = append(cachedSecrets, val)
		}
	}
	envLoaded = true
}

// RegisterSecret adds a value to the redaction set at runtime — used for
// per-device credentials loaded from a config.Credentials TOML file, which
// do not live in the environment at all. Values shorter than 4 characters
// are ignored, since redacting them would mangle unrelated short tokens.
func RegisterSecret(value string) {
	if len(value) < 4 {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	cachedSecrets = append(cachedSecrets, value)
}

// ResetForTest resets the cached secrets so tests in other packages can
// verify redaction behavior after setting env vars with t.Setenv or calling
// RegisterSecret.
func ResetForTest() {
	mu.Lock()
	defer mu.Unlock()
	cachedSecrets = nil
	envLoaded = false
}

// String replaces any occurrence of a known sensitive value — from the
// environment or from RegisterSecret — with "[REDACTED]". Returns the
// original string if no secrets are found.
func String(s string) string {
	mu.Lock()
	loadEnvLocked()
	secrets := make([]string, len(cachedSecrets))
	copy(secrets, cachedSecrets)
	mu.Unlock()

	for _, secret := range secrets {
		s = strings.ReplaceAll(s, secret, "[REDACTED]")
	}
	return s
}
