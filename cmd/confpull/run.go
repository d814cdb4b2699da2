// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkfort/confpull/internal/agent"
	"github.com/mkfort/confpull/internal/config"
	cplog "github.com/mkfort/confpull/internal/log"
	"github.com/mkfort/confpull/internal/report"
	"github.com/mkfort/confpull/internal/testable"
	"github.com/mkfort/confpull/internal/vcs"

	"github.com/mkfort/confpull/internal/driver"
)

var (
	runAgents     []string
	runCollection string
	runDevice     string
	runRegexp     string
	runLocalDir   string
)

// runCmd is confpull's main subcommand: it loads configuration, resolves a
// device-access client, runs the driver end to end, and reports the result.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a backup of configured device collections",
	Args:  cobra.NoArgs,
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringArrayVarP(&runAgents, "agent", "a", nil,
		"device-access agent address (host:port), repeatable; falls back to $NOTCH_AGENTS")
	runCmd.Flags().StringVarP(&runCollection, "collection", "c", "all", `collection name to run, or "all"`)
	runCmd.Flags().StringVarP(&runDevice, "device", "n", "", "restrict this run to a single exact device name")
	runCmd.Flags().StringVarP(&runRegexp, "regexp", "r", "", "restrict this run to devices matching this regex")
	runCmd.Flags().StringVar(&runLocalDir, "local", "",
		"use the in-process fixture device-access client rooted at this directory, instead of a real agent")
}

func runRun(cmd *cobra.Command, _ []string) error {
	runID := cplog.NewRunID()
	logger := cplog.With(runID)
	logger.Info("confpull run starting", "collection", runCollection)

	cfg, err := config.Load(cmdFS, configPath)
	if err != nil {
		return exitError(ExitConfigOrRepo, "confpull: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		return exitError(ExitConfigOrRepo, "confpull: %v", err)
	}
	for _, w := range config.KnownRuleSets(cfg) {
		logger.Warn("unresolved rule-set reference", "detail", w)
	}

	creds, err := config.LoadCredentials(cmdFS, filepath.Dir(configPath), cfg)
	if err != nil {
		return exitError(ExitConfigOrRepo, "confpull: %v", err)
	}

	client, err := buildClient(resolveAgents(runAgents))
	if err != nil {
		if errors.Is(err, agent.ErrNoAgents) {
			return exitError(ExitNoAgents, "confpull: %v", err)
		}
		return exitError(ExitAgentConnection, "confpull: %v", err)
	}

	applyDeviceFilter(cfg, runDevice, runRegexp)

	var repo *vcs.Repo
	if cfg.BasePath != "" {
		repo, err = vcs.Open(cfg.BasePath, cfg.MasterRepoPath)
		if err != nil {
			return exitError(ExitConfigOrRepo, "confpull: %v", err)
		}
	}

	d := &driver.Driver{Config: cfg, Client: client, Credentials: creds, Repo: repo}

	budget := cfg.CollectionTimeout() * time.Duration(len(cfg.Collections)+1)
	ctx, cancel := context.WithTimeout(cmd.Context(), budget)
	defer cancel()

	result, err := d.Run(ctx, runCollection)
	if err != nil {
		return exitError(ExitConfigOrRepo, "confpull: %v", err)
	}

	if err := report.FormatErrorReport(cmd.OutOrStdout(), result.Errors); err != nil {
		logger.Warn("failed rendering error report", "error", err)
	}
	if cfg.ErrorReportPath != "" {
		if err := persistErrorReport(cfg, result); err != nil {
			logger.Warn("failed persisting error report", "error", err)
		}
	}
	if len(result.Collections) == 0 {
		logger.Warn("no collection produced any device")
	}

	return nil
}

// resolveAgents returns the -a/--agent flag values, falling back to a
// comma-separated $NOTCH_AGENTS when the flag was never given, matching
// spec.md §6's "Environment" section.
func resolveAgents(flagAgents []string) []string {
	if len(flagAgents) > 0 {
		return flagAgents
	}
	if env := os.Getenv("NOTCH_AGENTS"); env != "" {
		parts := strings.Split(env, ",")
		agents := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				agents = append(agents, p)
			}
		}
		return agents
	}
	return nil
}

// buildClient resolves the device-access agent.Client for this run. Talking
// to a real notch-protocol agent over the network is out of scope for this
// rework (spec.md's external "device-access service" is a collaborator, not
// a wire protocol to implement); --local is the supported escape hatch that
// exercises the full pipeline against fixture data instead.
func buildClient(agents []string) (agent.Client, error) {
	if runLocalDir != "" {
		return agent.NewLocalClient(cmdFS, testable.DefaultExecutor(), runLocalDir)
	}
	if len(agents) == 0 {
		return nil, agent.ErrNoAgents
	}
	return nil, fmt.Errorf(
		"connecting to remote device-access agent(s) %s is not implemented; pass --local <fixture-dir> instead",
		strings.Join(agents, ", "),
	)
}

// applyDeviceFilter narrows every configured recipe's device regex for this
// run only; it never rewrites the on-disk configuration.
func applyDeviceFilter(cfg *config.Config, device, pattern string) {
	if device == "" && pattern == "" {
		return
	}
	re := pattern
	if device != "" {
		re = "^" + regexp.QuoteMeta(device) + "$"
	}
	for name, cc := range cfg.Collections {
		for i := range cc.Recipes {
			cc.Recipes[i].Regexp = re
		}
		cfg.Collections[name] = cc
	}
}

func persistErrorReport(cfg *config.Config, result *driver.Result) error {
	var buf bytes.Buffer
	if err := report.FormatErrorReport(&buf, result.Errors); err != nil {
		return err
	}
	path := filepath.Join(cfg.BasePath, cfg.ErrorReportPath)
	return cmdFS.WriteFile(path, buf.Bytes(), 0o640)
}
