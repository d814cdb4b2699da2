// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// newTestCmd returns rootCmd with its I/O redirected to fresh buffers. We
// reuse the global rootCmd, since every subcommand is wired to it via
// init(), rather than constructing a parallel command tree per test.
func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd, stdout, stderr
}

// resetGlobalFlags restores every package-level flag variable and cobra
// flag Changed bit to its default, so test cases don't leak state into one
// another through the shared rootCmd.
func resetGlobalFlags() {
	for _, cmd := range []*cobra.Command{rootCmd, runCmd, validateCmd, versionCmd} {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			f.Changed = false
			_ = f.Value.Set(f.DefValue)
		})
	}
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		f.Changed = false
		_ = f.Value.Set(f.DefValue)
	})

	// StringArrayVar's Set appends rather than replacing, so --agent's
	// backing slice needs a direct reset rather than a DefValue round trip.
	verbose = false
	quiet = false
	configPath = "confpull.yaml"
	runAgents = nil
	runCollection = "all"
	runDevice = ""
	runRegexp = ""
	runLocalDir = ""
}
