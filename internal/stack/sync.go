package stack

import (
	anisterrors "github.com/risperss/anist/internal/errors"
	"github.com/risperss/anist/internal/git"
)

// SyncDiff creates or refreshes the review revision for the commit at the
// given stack position. The commit is checked out detached, its
// single-commit diff is sent to the review system, and the original branch
// is restored. Uncommitted changes are snapshotted first and reapplied on
// every path out, success or failure.
func (c *Client) SyncDiff(position int, message string, createMode bool) (err error) {
	hasStaged, hasUnstaged, err := c.git.CheckChanges()
	if err != nil {
		return err
	}

	var unstagedStash, stagedStash string
	if hasUnstaged {
		c.ui.Info("Stashing unstaged changes...")
		unstagedStash, err = c.git.Stash(stashLabel("unstaged-diff"), false)
		if err != nil {
			return err
		}
	}
	if hasStaged {
		c.ui.Info("Stashing staged changes...")
		stagedStash, err = c.git.Stash(stashLabel("staged-diff"), true)
		if err != nil {
			c.restoreStashes(unstagedStash, "")
			return err
		}
	}

	defer func() {
		c.restoreStash("staged", stagedStash, true)
		c.restoreStash("unstaged", unstagedStash, false)
	}()

	changes, err := c.Changes()
	if err != nil {
		return err
	}
	if position < 1 || position > len(changes) {
		return anisterrors.NewOutOfRangeError(position, len(changes))
	}
	change := changes[position-1]

	c.ui.Infof("Targeting commit at position %d: %s", position, git.ShortHash(change.Hash))
	c.ui.Infof("Commit message: %s", change.Title)

	originalBranch, err := c.git.GetCurrentBranch()
	if err != nil {
		return err
	}

	c.ui.Infof("Checking out commit %s...", git.ShortHash(change.Hash))
	if err := c.git.Checkout(change.Hash); err != nil {
		return err
	}
	defer func() {
		c.ui.Infof("Returning to branch %s...", originalBranch)
		if cerr := c.git.Checkout(originalBranch); cerr != nil && err == nil {
			err = cerr
		}
	}()

	var revisionID string
	if !createMode {
		revisionID = c.RevisionID(change, changes)
		if revisionID == "" {
			return anisterrors.NewRevisionNotFoundError(position, change.Hash)
		}
		c.ui.Infof("Updating %s...", revisionID)
	} else {
		c.ui.Info("Creating new diff...")
	}

	if err := c.arc.Diff("HEAD~1", revisionID, message); err != nil {
		return err
	}

	if createMode {
		c.ui.Success("Successfully created new diff!")
	} else {
		c.ui.Successf("Successfully updated diff %s!", revisionID)
	}
	return nil
}

// SyncStack syncs every commit in the stack, oldest first, stopping at the
// first failure. The alternative continue-and-tally policy was rejected:
// a mid-stack failure usually means later revisions would be wrong too.
func (c *Client) SyncStack(message string, createMode bool) error {
	changes, err := c.Changes()
	if err != nil {
		return err
	}

	c.ui.Infof("Found %d commit(s) in the stack.", len(changes))

	succeeded := 0
	for _, change := range changes {
		c.ui.Infof("[%d/%d] Processing commit at position %d...", change.Position, len(changes), change.Position)

		if err := c.SyncDiff(change.Position, message, createMode); err != nil {
			c.ui.Warningf("Error encountered with diff at position %d. Stopping.", change.Position)
			c.ui.Infof("Stack diff update stopped: %d successful, 1 failed.", succeeded)
			return err
		}
		succeeded++
	}

	c.ui.Infof("Stack diff update complete: %d successful, 0 failed.", succeeded)
	return nil
}
