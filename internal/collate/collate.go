// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

// Package collate implements the write phase described in spec.md §4.5: it
// turns one or more completed domain.Collections into per-device artifact
// files, honoring the header-once, sorted-block, and all-or-nothing-per-
// device invariants.
package collate

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/mkfort/confpull/internal/domain"
)

// Writer materializes artifact files. A Writer is single-use: construct one
// per driver run with NewWriter, call Write once, discard it.
//
// The file-handle map is keyed by final path, not by *domain.Target,
// because the same device file can be the destination of Targets minted by
// different Collections (each Collection's TargetCache is scoped to that
// Collection alone). Keying by path is what gives every Target mapping to
// the same file exactly one open handle and one header write, matching
// spec.md §4.5's invariants (a)/(b) even across Collections.
type Writer struct {
	handles map[string]*os.File
	header  map[string]bool
	binary  map[string]bool
}

// NewWriter returns a ready-to-use Writer.
func NewWriter() *Writer {
	return &Writer{
		handles: make(map[string]*os.File),
		header:  make(map[string]bool),
		binary:  make(map[string]bool),
	}
}

// Write drains every eligible Target across collections to disk and closes
// every handle opened along the way, on every exit path — including a
// write error partway through, so a failed run never leaks file
// descriptors (spec.md §5's "closed deterministically at the end of the
// write phase on every exit path").
func (w *Writer) Write(collections []*domain.Collection) error {
	defer w.closeAll()

	for _, col := range collections {
		if err := w.writeCollection(col); err != nil {
			return err
		}
	}
	return w.appendTrailingNewlines()
}

type targetEntry struct {
	target  *domain.Target
	results []*domain.Result
}

func (w *Writer) writeCollection(col *domain.Collection) error {
	entries := make([]targetEntry, 0, len(col.Results))
	for t, rs := range col.Results {
		entries = append(entries, targetEntry{t, rs})
	}
	// Iteration order across files is unconstrained by spec.md, but a fixed
	// order makes runs reproducible and diffable.
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].target, entries[j].target
		if a.DeviceName != b.DeviceName {
			return a.DeviceName < b.DeviceName
		}
		pa, _ := a.Path()
		pb, _ := b.Path()
		return pa < pb
	})

	for _, e := range entries {
		if !eligible(e.results, e.target.DeviceName) {
			continue
		}
		if err := w.writeTarget(col.RuleSet.Header, e.target, e.results); err != nil {
			return err
		}
	}
	return nil
}

// eligible reports whether every rule that contributed a Result to this
// Target is successful for device — spec.md §4.5's output decision. A
// rule under ANY_REQUIRED may have contributed ERROR results and still be
// eligible, so this consults domain.Rule.Successful rather than scanning
// for any ERROR status.
func eligible(results []*domain.Result, device string) bool {
	seen := make(map[*domain.Rule]bool)
	for _, r := range results {
		seen[r.Rule] = true
	}
	for rule := range seen {
		if !rule.Successful(device) {
			return false
		}
	}
	return true
}

func (w *Writer) writeTarget(header string, target *domain.Target, results []*domain.Result) error {
	path, err := target.Path()
	if err != nil {
		return fmt.Errorf("collate: %w", err)
	}

	f, err := w.handleFor(path)
	if err != nil {
		return err
	}
	w.binary[path] = target.Binary

	if !w.header[path] {
		w.header[path] = true
		if header != "" && !target.Binary {
			if _, err := f.WriteString(header); err != nil {
				return fmt.Errorf("collate: writing header to %s: %w", path, err)
			}
		}
	}

	sorted := append([]*domain.Result(nil), results...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key.Less(sorted[j].Key) })

	for _, r := range sorted {
		if r.Output == nil {
			continue
		}
		if _, err := f.WriteString(*r.Output); err != nil {
			return fmt.Errorf("collate: writing to %s: %w", path, err)
		}
	}
	return nil
}

func (w *Writer) handleFor(path string) (*os.File, error) {
	if f, ok := w.handles[path]; ok {
		return f, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("collate: creating directory for %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o640)
	if err != nil {
		return nil, fmt.Errorf("collate: opening %s: %w", path, err)
	}
	w.handles[path] = f
	return f, nil
}

// appendTrailingNewlines appends a single trailing "\n" to every non-binary
// file this run touched, per spec.md §4.5 step 4. Binary artifacts are left
// byte-exact.
func (w *Writer) appendTrailingNewlines() error {
	for path, f := range w.handles {
		if w.binary[path] {
			continue
		}
		if _, err := f.WriteString("\n"); err != nil {
			return fmt.Errorf("collate: appending trailing newline to %s: %w", path, err)
		}
	}
	return nil
}

func (w *Writer) closeAll() {
	for _, f := range w.handles {
		_ = f.Close()
	}
}
