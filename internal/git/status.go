package git

import (
	"fmt"
	"strings"
)

// CheckChanges inspects the working tree for staged and unstaged
// modifications to tracked files. Pure query, no side effects.
func (c *Client) CheckChanges() (hasStaged bool, hasUnstaged bool, err error) {
	staged, err := c.run("diff", "--name-only", "--cached")
	if err != nil {
		return false, false, fmt.Errorf("failed to check staged changes: %w", err)
	}

	unstaged, err := c.run("diff", "--name-only")
	if err != nil {
		return false, false, fmt.Errorf("failed to check unstaged changes: %w", err)
	}

	return staged != "", unstaged != "", nil
}

// HasMergeConflicts reports whether the working tree contains unresolved
// merge conflicts.
func (c *Client) HasMergeConflicts() (bool, error) {
	status, err := c.run("status", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("failed to check git status: %w", err)
	}

	for _, line := range strings.Split(status, "\n") {
		if strings.HasPrefix(line, "UU") || strings.HasPrefix(line, "AA") || strings.HasPrefix(line, "DD") {
			return true, nil
		}
	}
	return false, nil
}
