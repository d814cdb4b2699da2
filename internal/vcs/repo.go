// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

// Package vcs implements the revision-control backend spec.md §6 assumes as
// an external collaborator ("an addremove()/commit() interface"), using
// go-git/v5 against a local working tree. Behavior is grounded directly on
// original_source/punc/rc_hg.py's MercurialRevisionControl: clone-or-create
// repo setup, a move-similarity threshold, and commit()'s auto-generated
// message format.
package vcs

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// DefaultSimilarityPercent mirrors rc_hg.py's MOVE_SIMILARITY_PERCENT: files
// with this percentage content overlap or higher are logged as likely
// renames (see similarity.go).
const DefaultSimilarityPercent = 90

// Repo wraps one working-tree checkout. Unlike rc_hg.py's pushbuffer'd
// Mercurial UI, go-git has no ambient output to suppress; every notable
// decision is logged explicitly instead.
type Repo struct {
	path string
	repo *git.Repository
}

// Open opens the repository at localPath, initializing a fresh one if none
// exists, or cloning remotePath into it when remotePath is set and
// localPath is empty — the same "clone if repo_path given, else
// create-or-open local" fallback as rc_hg.py's _setup_repo.
func Open(localPath, remotePath string) (*Repo, error) {
	repo, err := git.PlainOpen(localPath)
	switch {
	case err == nil:
		return &Repo{path: localPath, repo: repo}, nil
	case !errors.Is(err, git.ErrRepositoryNotExists):
		return nil, fmt.Errorf("vcs: opening %s: %w", localPath, err)
	}

	if remotePath != "" {
		repo, err = git.PlainClone(localPath, false, &git.CloneOptions{URL: remotePath})
		if err != nil {
			return nil, fmt.Errorf("vcs: cloning %s into %s: %w", remotePath, localPath, err)
		}
		slog.Info("vcs: cloned repository", "remote", remotePath, "local", localPath)
		return &Repo{path: localPath, repo: repo}, nil
	}

	repo, err = git.PlainInit(localPath, false)
	if err != nil {
		return nil, fmt.Errorf("vcs: initializing %s: %w", localPath, err)
	}
	slog.Info("vcs: initialized new repository", "path", localPath)
	return &Repo{path: localPath, repo: repo}, nil
}

// AddRemove stages every modified, untracked, and deleted path in the
// working tree except those naming an excluded device — a deliberate
// departure from rc_hg.py's addremove(), which takes no exclude set: since
// go-git exposes no per-path unstage primitive equivalent to `git reset
// <path>`, confpull's commit-time exclusion (spec.md §4.6) must be applied
// at stage time instead of at commit time. similarityPercent is forwarded
// to the rename-detection heuristic in similarity.go; go-git itself has no
// built-in rename detector at commit time.
func (r *Repo) AddRemove(similarityPercent int, excludeDevices []string) error {
	wt, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("vcs: worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return fmt.Errorf("vcs: status: %w", err)
	}

	exclude := excludeSet(excludeDevices)

	var added, removed []string
	for path, s := range status {
		if s.Worktree == git.Unmodified || excludedPath(path, exclude) {
			continue
		}
		switch s.Worktree {
		case git.Deleted:
			if _, err := wt.Remove(path); err != nil {
				return fmt.Errorf("vcs: staging removal of %s: %w", path, err)
			}
			removed = append(removed, path)
		default:
			if _, err := wt.Add(path); err != nil {
				return fmt.Errorf("vcs: staging %s: %w", path, err)
			}
			if s.Worktree == git.Untracked {
				added = append(added, path)
			}
		}
	}

	r.logLikelyRenames(added, removed, similarityPercent)
	return nil
}

// Commit commits the currently staged tree. message is used verbatim if
// non-empty; otherwise a message is generated from the staged status in the
// same shape as rc_hg.py's commit(): a "Configuration changes detected"
// header followed by one line per change class naming the affected device
// basenames. Commit no-ops, logging and returning nil, when nothing is
// staged — the same "no changes; nothing committed" behavior as the
// original.
func (r *Repo) Commit(message string) error {
	wt, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("vcs: worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return fmt.Errorf("vcs: status: %w", err)
	}

	var added, modified, removed []string
	for path, s := range status {
		switch s.Staging {
		case git.Added:
			added = append(added, path)
		case git.Modified:
			modified = append(modified, path)
		case git.Deleted:
			removed = append(removed, path)
		}
	}

	if len(added) == 0 && len(modified) == 0 && len(removed) == 0 {
		slog.Info("vcs: no changes; nothing committed")
		return nil
	}

	if message == "" {
		message = defaultMessage(added, modified, removed)
	}

	sig := object.Signature{
		Name:  "confpull",
		Email: "confpull@localhost",
		When:  time.Now(),
	}
	if _, err := wt.Commit(message, &git.CommitOptions{Author: &sig}); err != nil {
		return fmt.Errorf("vcs: commit: %w", err)
	}
	return nil
}

func excludeSet(devices []string) map[string]bool {
	set := make(map[string]bool, len(devices))
	for _, d := range devices {
		set[d] = true
	}
	return set
}

// excludedPath reports whether path's basename names one of the excluded
// devices. Artifact basenames are "<prefix><device><suffix>" (spec.md §6),
// so a substring match — not an exact match — is the correct test.
func excludedPath(path string, exclude map[string]bool) bool {
	base := filepath.Base(path)
	for device := range exclude {
		if strings.Contains(base, device) {
			return true
		}
	}
	return false
}

func defaultMessage(added, modified, removed []string) string {
	var b strings.Builder
	b.WriteString("Configuration changes detected:\n")
	if len(added) > 0 {
		fmt.Fprintf(&b, " %d new routers: %s", len(added), strings.Join(basenames(added), " "))
	}
	if len(modified) > 0 {
		fmt.Fprintf(&b, "\n %d routers modified: %s", len(modified), strings.Join(basenames(modified), " "))
	}
	if len(removed) > 0 {
		fmt.Fprintf(&b, "\n %d routers removed: %s", len(removed), strings.Join(basenames(removed), " "))
	}
	return b.String()
}

func basenames(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.Base(p)
	}
	return out
}
