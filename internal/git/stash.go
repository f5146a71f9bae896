package git

import (
	"fmt"
	"strings"
)

// Stash captures one delta pool — staged or unstaged — into a named stash
// entry, removes the captured delta from the live tree, and returns the
// stash commit hash. If the requested pool is empty it returns the empty
// string without touching the repository.
//
// The unstaged pool must be captured while the index may still be dirty, so
// a dirty index is parked in a temporary commit for the duration of the
// capture and restored with a soft reset. The capture is created and stored
// in the stash reflog before the working tree is reset, so the delta is
// durably referenced at every point.
func (c *Client) Stash(label string, stagedOnly bool) (string, error) {
	hasStaged, hasUnstaged, err := c.CheckChanges()
	if err != nil {
		return "", err
	}
	if stagedOnly && !hasStaged {
		return "", nil
	}
	if !stagedOnly && !hasUnstaged {
		return "", nil
	}

	parked := false
	if !stagedOnly && hasStaged {
		if _, err := c.run("commit", "--quiet", "--no-verify", "-m", label+" [index hold]"); err != nil {
			return "", fmt.Errorf("failed to park index: %w", err)
		}
		parked = true
	}
	unpark := func() error {
		if !parked {
			return nil
		}
		parked = false
		if _, err := c.run("reset", "--soft", "HEAD^"); err != nil {
			return fmt.Errorf("failed to restore parked index: %w", err)
		}
		return nil
	}

	hash, err := c.run("stash", "create", label)
	if err != nil {
		_ = unpark()
		return "", fmt.Errorf("failed to create stash: %w", err)
	}
	if hash == "" {
		if err := unpark(); err != nil {
			return "", err
		}
		return "", nil
	}

	if _, err := c.run("stash", "store", "-m", label, hash); err != nil {
		_ = unpark()
		return "", fmt.Errorf("failed to store stash: %w", err)
	}
	if _, err := c.run("reset", "--hard", "HEAD"); err != nil {
		_ = unpark()
		return "", fmt.Errorf("failed to clean working tree after stash: %w", err)
	}
	if err := unpark(); err != nil {
		return "", err
	}

	return hash, nil
}

// StashApplyResult reports what a stash reapplication actually did to the
// working tree.
type StashApplyResult int

const (
	// StashNotApplied means no part of the delta landed; the entry stays in
	// the pool.
	StashNotApplied StashApplyResult = iota
	// StashApplied means the delta landed cleanly and the entry was dropped.
	StashApplied
	// StashConflicted means the apply left conflict markers in the working
	// tree; the entry stays in the pool.
	StashConflicted
	// StashNotFound means there is no such entry in the pool, either because
	// nothing was captured or because a prior clean apply dropped it.
	StashNotFound
)

// ApplyStash reapplies a stash by its commit hash and drops it from the
// pool only on a clean apply. The empty-string handle is a sentinel for
// "nothing was captured" and short-circuits to StashNotFound, as does a
// stash that is no longer in the pool. A tree that already holds unresolved
// conflicts is refused up front, so a pre-existing conflict is never
// mistaken for one this apply caused. restoreIndex additionally restores
// the stash's staged state to the index.
func (c *Client) ApplyStash(stashRef string, restoreIndex bool) StashApplyResult {
	if stashRef == "" {
		return StashNotFound
	}

	index, ok := c.findStash(stashRef)
	if !ok {
		return StashNotFound
	}

	if conflicts, err := c.HasMergeConflicts(); err != nil || conflicts {
		return StashNotApplied
	}

	args := []string{"stash", "apply"}
	if restoreIndex {
		args = append(args, "--index")
	}
	args = append(args, index)

	if _, err := c.run(args...); err != nil {
		if conflicts, cerr := c.HasMergeConflicts(); cerr == nil && conflicts {
			return StashConflicted
		}
		return StashNotApplied
	}

	_, _ = c.run("stash", "drop", index)
	return StashApplied
}

// findStash locates a stash entry by its commit hash. The pool may have
// been reordered by unrelated stash activity, so lookup matches on content,
// never on an assumed position.
func (c *Client) findStash(stashRef string) (string, bool) {
	output, err := c.run("stash", "list", "--format=%H %gd")
	if err != nil {
		return "", false
	}

	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[0] == stashRef {
			return fields[1], true
		}
	}
	return "", false
}
