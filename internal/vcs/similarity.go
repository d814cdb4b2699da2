// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

package vcs

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// logLikelyRenames approximates rc_hg.py's similarity-based rename
// detection (Mercurial's `addremove(similarity=90)`, which treats an
// added/removed pair as a rename when their content overlaps by at least
// that percentage — e.g. renaming a router and changing only its loopback
// address). go-git has no equivalent at commit time: a rename only shows up
// later, as a diff-time heuristic between two commits. confpull can't
// reproduce the external contract (the commit graph would record an
// add+delete either way), so it only logs the detection for operator
// visibility instead of silently doing nothing.
func (r *Repo) logLikelyRenames(added, removed []string, similarityPercent int) {
	if len(added) == 0 || len(removed) == 0 {
		return
	}

	head, err := r.repo.Head()
	if err != nil {
		return // no prior commit to diff against; nothing can look like a rename yet
	}
	commit, err := r.repo.CommitObject(head.Hash())
	if err != nil {
		return
	}

	threshold := float64(similarityPercent) / 100
	for _, removedPath := range removed {
		oldFile, err := commit.File(removedPath)
		if err != nil {
			continue
		}
		oldContent, err := oldFile.Contents()
		if err != nil {
			continue
		}

		for _, addedPath := range added {
			newContent, err := os.ReadFile(filepath.Join(r.path, addedPath)) //nolint:gosec // operator-controlled artifact tree
			if err != nil {
				continue
			}
			if lineOverlap(oldContent, string(newContent)) >= threshold {
				slog.Info("vcs: detected likely rename",
					"from", removedPath, "to", addedPath, "similarity_threshold", similarityPercent)
			}
		}
	}
}

// lineOverlap returns the fraction of lines shared between a and b,
// relative to the longer of the two — a coarse stand-in for a real
// similarity-index algorithm, sufficient only to flag candidates for an
// operator to confirm.
func lineOverlap(a, b string) float64 {
	linesA := strings.Split(a, "\n")
	linesB := strings.Split(b, "\n")
	if len(linesA) == 0 || len(linesB) == 0 {
		return 0
	}

	setB := make(map[string]int, len(linesB))
	for _, l := range linesB {
		setB[l]++
	}

	shared := 0
	for _, l := range linesA {
		if setB[l] > 0 {
			shared++
			setB[l]--
		}
	}

	longest := len(linesA)
	if len(linesB) > longest {
		longest = len(linesB)
	}
	return float64(shared) / float64(longest)
}
