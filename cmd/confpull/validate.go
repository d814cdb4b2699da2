// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkfort/confpull/internal/config"
)

// validateCmd is a config-only dry run: it loads and validates the YAML
// configuration and reports unresolved rule-set references, without
// contacting any device-access agent or revision-control backend.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file without running a backup",
	Args:  cobra.NoArgs,
	RunE:  runValidateConfig,
}

func runValidateConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmdFS, configPath)
	if err != nil {
		return exitError(ExitConfigOrRepo, "confpull: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		return exitError(ExitConfigOrRepo, "confpull: %v", err)
	}

	for _, w := range config.KnownRuleSets(cfg) {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w) //nolint:errcheck // best-effort diagnostic output
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: valid (%d collection(s))\n", configPath, len(cfg.Collections)) //nolint:errcheck
	return nil
}
