// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	cplog "github.com/mkfort/confpull/internal/log"
)

// Global flag values shared by every subcommand.
var (
	verbose    bool
	quiet      bool
	configPath string
)

// rootCmd is the base command for confpull.
var rootCmd = &cobra.Command{
	Use:   "confpull",
	Short: "Periodic, unattended network-device configuration backup",
	Long: `confpull backs up configuration text from heterogeneous network devices.
For each device it issues a vendor-specific sequence of CLI commands through
a remote device-access service, filters each command's output through a
vendor rule-set, collates the filtered outputs into per-device files, and
commits the resulting tree to a revision-controlled store.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		cplog.Setup(verbose, quiet)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "debug", "d", false, "enable verbose (debug) output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "f", "confpull.yaml", "path to the YAML configuration file")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}
