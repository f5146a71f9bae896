package stack

import (
	stderrors "errors"
	"fmt"

	anisterrors "github.com/risperss/anist/internal/errors"
	"github.com/risperss/anist/internal/git"
)

// EditChange injects the currently staged changes into the commit at the
// given stack position by pausing a scripted rebase at that commit and
// amending it. Unstaged work is snapshotted around the rebase and handed
// back afterwards.
//
// With no uncommitted changes at all there is nothing to inject and the
// call is a successful no-op. With only unstaged changes the rebase is
// left paused at the target with the unstaged work reapplied, so the
// commit can be edited by hand.
func (c *Client) EditChange(position int) error {
	hasStaged, hasUnstaged, err := c.git.CheckChanges()
	if err != nil {
		return err
	}
	if !hasStaged && !hasUnstaged {
		c.ui.Info("No changes to commit. Nothing to do.")
		return nil
	}

	// Resolve the target before mutating anything: positional failures
	// must leave the repository untouched.
	changes, err := c.Changes()
	if err != nil {
		return err
	}
	if position < 1 || position > len(changes) {
		return anisterrors.NewOutOfRangeError(position, len(changes))
	}
	target := changes[position-1]

	// Unstaged changes are captured first so the staged capture sees an
	// already-isolated pool; both act on the same working tree.
	var unstagedStash, stagedStash string
	if hasUnstaged {
		c.ui.Info("Stashing unstaged changes...")
		unstagedStash, err = c.git.Stash(stashLabel("unstaged"), false)
		if err != nil {
			return err
		}
	}
	if hasStaged {
		c.ui.Info("Stashing staged changes...")
		stagedStash, err = c.git.Stash(stashLabel("staged"), true)
		if err != nil {
			c.restoreStashes(unstagedStash, "")
			return err
		}
	}

	if err := c.editStashed(target, changes, stagedStash, unstagedStash); err != nil {
		if stderrors.Is(err, anisterrors.ErrApplyConflict) {
			// Snapshots already handed back; the rebase stays paused in a
			// human-resumable state.
			return err
		}
		c.restoreStashes(unstagedStash, stagedStash)
		c.ui.Print("Check 'git status' to see the current state.")
		return err
	}
	return nil
}

// editStashed drives the rebase once both snapshot pools are captured
func (c *Client) editStashed(target Change, changes []Change, stagedStash, unstagedStash string) error {
	c.ui.Infof("Targeting commit: %s", git.ShortHash(target.Hash))

	commits := make([]git.Commit, 0, len(changes)-target.Position+1)
	for _, change := range changes[target.Position-1:] {
		commits = append(commits, change.Commit)
	}
	plan, err := git.BuildRebasePlan(commits, target.Hash)
	if err != nil {
		return err
	}

	c.ui.Infof("Starting interactive rebase to edit commit at position %d...", target.Position)
	if err := c.git.StartRebase(plan); err != nil {
		return err
	}
	// The rebase engine pauses at the edit entry with the target checked
	// out but not yet amended.

	if stagedStash != "" {
		c.ui.Info("Applying staged changes...")
		switch c.git.ApplyStash(stagedStash, false) {
		case git.StashConflicted:
			c.reportApplyConflict(unstagedStash)
			return &anisterrors.ApplyConflictError{StashRef: stagedStash}
		case git.StashNotApplied, git.StashNotFound:
			return fmt.Errorf("failed to apply stash %s", stagedStash)
		}

		if err := c.git.AddUpdated(); err != nil {
			return err
		}
		c.ui.Info("Amending the commit...")
		if err := c.git.AmendNoEdit(); err != nil {
			return err
		}
		c.ui.Info("Continuing the rebase...")
		if err := c.git.ContinueRebase(); err != nil {
			return err
		}
	}

	if unstagedStash != "" {
		c.ui.Info("Applying unstaged changes...")
		switch c.git.ApplyStash(unstagedStash, false) {
		case git.StashConflicted:
			c.ui.Warning("Applying your unstaged changes left conflicts. Resolve them before continuing.")
			if stagedStash != "" {
				return &anisterrors.ApplyConflictError{StashRef: unstagedStash}
			}
		case git.StashNotApplied, git.StashNotFound:
			c.ui.Warningf("Failed to apply stash %s.", unstagedStash)
		}
	}

	if stagedStash == "" {
		// Nothing to amend automatically: the rebase is intentionally left
		// paused at the target with the unstaged work in the tree.
		c.ui.Print("Rebase paused at the target commit. When you are done editing, run:")
		c.ui.Print("  git add <files>")
		c.ui.Print("  git commit --amend")
		c.ui.Print("  git rebase --continue")
		return nil
	}

	c.ui.Success("Rebase successfully completed!")
	return nil
}

// reportApplyConflict tells the user how to resume and hands back the
// unstaged snapshot so no captured work is stranded. The rebase is left
// paused, never aborted.
func (c *Client) reportApplyConflict(unstagedStash string) {
	c.ui.Warning("Merge conflicts detected!")
	c.ui.Print("Please resolve the conflicts, then run:")
	c.ui.Print("  git add <resolved_files>")
	c.ui.Print("  git commit --amend")
	c.ui.Print("  git rebase --continue")

	if unstagedStash != "" {
		c.ui.Info("Attempting to apply your unstaged changes as well...")
		if c.git.ApplyStash(unstagedStash, false) != git.StashApplied {
			c.ui.Warningf("Could not apply stash %s. Your unstaged changes remain stashed; reapply them after resolving.", unstagedStash)
		}
	}
}

// restoreStashes best-effort reapplies both snapshots after a failure,
// unstaged first. Restoration failures are warnings, never errors: by this
// point the original delta may already be reflected in the tree.
func (c *Client) restoreStashes(unstagedStash, stagedStash string) {
	c.restoreStash("unstaged", unstagedStash, false)
	c.restoreStash("staged", stagedStash, true)
}

// restoreStash reapplies one snapshot and reports what actually happened.
// An entry that could not land stays in the pool, so the delta is never
// lost even when it cannot be put back. An entry already consumed by a
// clean apply earlier in the run has nothing left to restore.
func (c *Client) restoreStash(kind string, stashRef string, restoreIndex bool) {
	if stashRef == "" {
		return
	}
	c.ui.Infof("Attempting to restore %s changes...", kind)
	switch c.git.ApplyStash(stashRef, restoreIndex) {
	case git.StashConflicted:
		c.ui.Warningf("Restoring %s changes left conflicts in the working tree.", kind)
	case git.StashNotApplied:
		c.ui.Warningf("Could not restore %s changes. They remain stashed as %s.", kind, git.ShortHash(stashRef))
	}
}
