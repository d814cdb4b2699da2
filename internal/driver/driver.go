// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

// Package driver implements spec.md §4.6: it sequences Collections built
// from configuration, waits each to quiescence, invokes the collator, and
// commits the resulting artifact tree — excluding any device that errored
// anywhere along the way.
package driver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/mkfort/confpull/internal/agent"
	"github.com/mkfort/confpull/internal/collate"
	"github.com/mkfort/confpull/internal/collection"
	"github.com/mkfort/confpull/internal/config"
	"github.com/mkfort/confpull/internal/domain"
	"github.com/mkfort/confpull/internal/redact"
	"github.com/mkfort/confpull/internal/ruleset"
	"github.com/mkfort/confpull/internal/vcs"
)

// Driver holds everything one run needs: the parsed config, the
// device-access client, optional credentials, and an optional
// revision-control backend. Repo is nil in dry-run/validate contexts.
type Driver struct {
	Config      *config.Config
	Client      agent.Client
	Credentials *config.Credentials
	Repo        *vcs.Repo
}

// Result summarizes one driver run for the caller (cmd/confpull) to render
// as an error report and use for exit-code selection.
type Result struct {
	Collections       []*domain.Collection
	DevicesWithErrors []string
	Errors            map[string]map[string]bool
}

// Run executes every recipe in the named collection ("all" or "" runs
// every configured collection), writes artifacts for every device that
// came out clean, and commits the result — unless not a single Result was
// produced anywhere, in which case the commit is skipped entirely (spec.md
// §4.6's "never commit an empty tree over a non-empty prior state").
func (d *Driver) Run(ctx context.Context, collectionName string) (*Result, error) {
	names, err := d.selectCollections(collectionName)
	if err != nil {
		return nil, err
	}

	var collections []*domain.Collection
	anyResults := false

	for _, name := range names {
		cc := d.Config.Collections[name]
		for _, rc := range cc.Recipes {
			col, err := d.runRecipe(ctx, name, rc)
			if err != nil {
				slog.Warn("driver: abandoning recipe", "collection", name, "path", rc.Path, "error", err)
				continue
			}
			if col == nil {
				continue // no devices matched; already logged in runRecipe
			}
			collections = append(collections, col)
			if len(col.Results) > 0 {
				anyResults = true
			}
		}
	}

	writer := collate.NewWriter()
	if err := writer.Write(collections); err != nil {
		return nil, fmt.Errorf("driver: writing artifacts: %w", err)
	}

	excluded := excludedDevices(collections)
	result := &Result{
		Collections:       collections,
		DevicesWithErrors: excluded,
		Errors:            mergeErrors(collections),
	}

	if !anyResults {
		slog.Warn("driver: no collection produced any result; skipping commit")
		return result, nil
	}

	if d.Repo != nil {
		if err := d.Repo.AddRemove(vcs.DefaultSimilarityPercent, excluded); err != nil {
			return result, fmt.Errorf("driver: addremove: %w", err)
		}
		if err := d.Repo.Commit(""); err != nil {
			return result, fmt.Errorf("driver: commit: %w", err)
		}
	}

	return result, nil
}

func (d *Driver) selectCollections(name string) ([]string, error) {
	if name == "" || name == "all" {
		names := make([]string, 0, len(d.Config.Collections))
		for n := range d.Config.Collections {
			names = append(names, n)
		}
		sort.Strings(names)
		return names, nil
	}
	if _, ok := d.Config.Collections[name]; !ok {
		return nil, fmt.Errorf("driver: unknown collection %q", name)
	}
	return []string{name}, nil
}

// runRecipe resolves rc's rule-set and device set and drives its
// Collection to completion. A nil, nil return means the recipe matched no
// device (spec.md scenario S6) and is not an error.
func (d *Driver) runRecipe(ctx context.Context, collectionName string, rc config.RecipeConfig) (*domain.Collection, error) {
	rsName := rc.ResolveRuleSetName()
	rs := ruleset.Get(rsName)
	if rs == nil {
		return nil, fmt.Errorf("unknown rule-set %q", rsName)
	}

	recipe := domain.Recipe{
		Name:        fmt.Sprintf("%s/%s", collectionName, rc.Path),
		Vendor:      rc.Vendor,
		DeviceRegex: rc.Regexp,
		RuleSetName: rsName,
		Path:        rc.Path,
	}

	eng, err := collection.Build(ctx, d.Client, recipe, rs, d.Config.CommandTimeout(), d.Config.CollectionTimeout(), d.Config.BasePath)
	if err != nil {
		if errors.Is(err, agent.ErrNoAgents) {
			slog.Warn("driver: no devices matched recipe", "recipe", recipe.Name, "regex", recipe.DeviceRegex)
			return nil, nil
		}
		return nil, err
	}

	eng.Credentials = d.Credentials.Token
	eng.RegisterSecret = redact.RegisterSecret

	if err := eng.Run(ctx); err != nil {
		return nil, fmt.Errorf("running recipe %s: %w", recipe.Name, err)
	}
	return eng.Collection, nil
}

func excludedDevices(collections []*domain.Collection) []string {
	seen := make(map[string]bool)
	for _, c := range collections {
		for _, d := range c.DevicesWithErrors() {
			seen[d] = true
		}
	}
	out := make([]string, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

func mergeErrors(collections []*domain.Collection) map[string]map[string]bool {
	merged := make(map[string]map[string]bool)
	for _, c := range collections {
		for device, msgs := range c.Errors() {
			if merged[device] == nil {
				merged[device] = make(map[string]bool)
			}
			for m := range msgs {
				merged[device][redact.String(m)] = true
			}
		}
	}
	return merged
}
