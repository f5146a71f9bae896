package stack

import (
	"github.com/risperss/anist/internal/git"
)

// Change is a commit in the context of the stack: the domain-level unit
// that maps to one review revision.
type Change struct {
	// Position is the 1-indexed position of this change in the stack,
	// oldest first. Position 1 is the commit immediately after the fork
	// point with the base branch.
	Position int

	git.Commit
}
