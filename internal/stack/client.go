package stack

import (
	"regexp"
	"strings"

	"github.com/risperss/anist/internal/arc"
	anisterrors "github.com/risperss/anist/internal/errors"
	"github.com/risperss/anist/internal/git"
	"github.com/risperss/anist/internal/ui"
)

// DefaultBase is the branch the stack forks from. It can be renamed with
// the anist.base git config key, but the single-stack model is fixed.
const DefaultBase = "master"

// RevisionTrailer is the commit message trailer Phabricator writes when a
// revision lands, used as the fallback identity lookup.
const RevisionTrailer = "Differential Revision"

// GitClient defines the git operations needed by the stack client
type GitClient interface {
	GitRoot() string
	GetCurrentBranch() (string, error)
	GetCommits(base, head string) ([]git.Commit, error)
	Checkout(ref string) error
	CheckChanges() (hasStaged bool, hasUnstaged bool, err error)
	Stash(label string, stagedOnly bool) (string, error)
	ApplyStash(stashRef string, restoreIndex bool) git.StashApplyResult
	StartRebase(plan *git.RebasePlan) error
	ContinueRebase() error
	AddUpdated() error
	AmendNoEdit() error
	ConfigValue(key string) (string, error)
}

// ArcClient defines the review-system operations needed by the stack client
type ArcClient interface {
	List() ([]arc.Revision, error)
	Diff(base string, updateID string, message string) error
}

// Client provides stack operations
type Client struct {
	git  GitClient
	arc  ArcClient
	ui   *ui.Printer
	base string
}

// NewClient creates a new stack client. The printer is threaded through
// explicitly so output behavior is a per-invocation value, not global state.
func NewClient(gitClient GitClient, arcClient ArcClient, printer *ui.Printer) *Client {
	base, err := gitClient.ConfigValue("anist.base")
	if err != nil || base == "" {
		base = DefaultBase
	}
	return &Client{
		git:  gitClient,
		arc:  arcClient,
		ui:   printer,
		base: base,
	}
}

// Base returns the stack's base branch
func (c *Client) Base() string {
	return c.base
}

// Changes enumerates the stack: every commit reachable from HEAD but not
// from the base branch, oldest first. The stack is derived fresh on every
// call since rebases and checkouts invalidate it. An empty stack is an
// error for every caller.
func (c *Client) Changes() ([]Change, error) {
	commits, err := c.git.GetCommits(c.base, "HEAD")
	if err != nil {
		return nil, err
	}
	if len(commits) == 0 {
		return nil, anisterrors.ErrEmptyStack
	}

	changes := make([]Change, 0, len(commits))
	for i, commit := range commits {
		changes = append(changes, Change{Position: i + 1, Commit: commit})
	}
	return changes, nil
}

// ChangeByPosition resolves a 1-based stack position to its change
func (c *Client) ChangeByPosition(position int) (Change, error) {
	changes, err := c.Changes()
	if err != nil {
		return Change{}, err
	}
	if position < 1 || position > len(changes) {
		return Change{}, anisterrors.NewOutOfRangeError(position, len(changes))
	}
	return changes[position-1], nil
}

// RevisionIDs resolves the review revision for every change it can, using
// two strategies in order: the review system's own listing cross-referenced
// against stack commit titles, then the commit message trailer. Changes
// with no resolvable revision are absent from the result.
func (c *Client) RevisionIDs(changes []Change) map[int]string {
	ids := make(map[int]string)

	revisions, err := c.arc.List()
	if err != nil {
		c.ui.Warningf("Failed to list revisions: %v", err)
	}
	for _, revision := range revisions {
		position := matchPosition(changes, revision.Description)
		if position > 0 {
			if _, ok := ids[position]; !ok {
				ids[position] = revision.ID
			}
		}
	}

	for _, change := range changes {
		if ids[change.Position] != "" {
			continue
		}
		if id := RevisionFromMessage(change.Message); id != "" {
			ids[change.Position] = id
		}
	}

	return ids
}

// RevisionID resolves the review revision for a single change, or returns
// the empty string when neither strategy yields one.
func (c *Client) RevisionID(change Change, changes []Change) string {
	return c.RevisionIDs(changes)[change.Position]
}

var revisionPattern = regexp.MustCompile(`\bD\d+\b`)

// RevisionFromMessage extracts a revision ID from a commit message's
// Differential Revision trailer. The trailer value is usually a URL ending
// in the revision token.
func RevisionFromMessage(message string) string {
	value := git.GetTrailer(message, RevisionTrailer)
	if value == "" {
		return ""
	}
	return revisionPattern.FindString(value)
}

// matchPosition finds the stack position whose commit title contains the
// given revision description, case-insensitively. Returns 0 when nothing
// matches.
func matchPosition(changes []Change, description string) int {
	normalized := strings.ToLower(strings.TrimSpace(description))
	if normalized == "" {
		return 0
	}
	for _, change := range changes {
		if strings.Contains(strings.ToLower(strings.TrimSpace(change.Title)), normalized) {
			return change.Position
		}
	}
	return 0
}
