package git

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RebaseAction is a single instruction kind in a rebase plan
type RebaseAction string

const (
	// ActionPick replays a commit unchanged
	ActionPick RebaseAction = "pick"
	// ActionEdit pauses the rebase at a commit for amendment
	ActionEdit RebaseAction = "edit"
)

// RebaseStep is one (action, commit) pair in a rebase plan
type RebaseStep struct {
	Action RebaseAction
	Commit Commit
}

// RebasePlan is a non-interactive rebase instruction sequence covering every
// commit from the rebase boundary to HEAD, oldest first, with exactly one
// commit marked for edit.
type RebasePlan struct {
	// Onto is the rev the rebase replays onto: the target commit's parent
	Onto  string
	Steps []RebaseStep
}

// BuildRebasePlan builds a plan over the given commits (oldest first, the
// target's own commit through HEAD) that picks every commit except the
// target, which is marked edit.
func BuildRebasePlan(commits []Commit, targetHash string) (*RebasePlan, error) {
	if len(commits) == 0 {
		return nil, fmt.Errorf("cannot build rebase plan: no commits")
	}

	plan := &RebasePlan{
		Onto:  targetHash + "^",
		Steps: make([]RebaseStep, 0, len(commits)),
	}

	edits := 0
	for _, commit := range commits {
		action := ActionPick
		if commit.Hash == targetHash {
			action = ActionEdit
			edits++
		}
		plan.Steps = append(plan.Steps, RebaseStep{Action: action, Commit: commit})
	}

	if edits != 1 {
		return nil, fmt.Errorf("rebase plan must mark exactly one commit for edit, got %d", edits)
	}

	return plan, nil
}

// Todo renders the plan in git's rebase todo format
func (p *RebasePlan) Todo() string {
	var b strings.Builder
	for _, step := range p.Steps {
		fmt.Fprintf(&b, "%s %s %s\n", step.Action, step.Commit.Hash, step.Commit.Title)
	}
	return b.String()
}

// StartRebase begins an interactive rebase driven by a pre-built plan
// instead of an editor: the plan is written to a file and the sequence
// editor is replaced with a cp of that file over git's generated todo. The
// rebase runs until it pauses at the edit entry, leaving the target commit
// checked out but not yet amended.
func (c *Client) StartRebase(plan *RebasePlan) error {
	todoFile, err := os.CreateTemp("", "anist-rebase-todo-")
	if err != nil {
		return fmt.Errorf("failed to create rebase todo file: %w", err)
	}
	defer os.Remove(todoFile.Name())

	if _, err := todoFile.WriteString(plan.Todo()); err != nil {
		todoFile.Close()
		return fmt.Errorf("failed to write rebase todo file: %w", err)
	}
	if err := todoFile.Close(); err != nil {
		return fmt.Errorf("failed to write rebase todo file: %w", err)
	}

	// git runs the sequence editor as a shell command with the todo path
	// appended, so this overwrites the generated todo with our plan.
	sequenceEditor := "GIT_SEQUENCE_EDITOR=cp " + todoFile.Name()
	if _, err := c.runWithEnv([]string{sequenceEditor}, "rebase", "-i", plan.Onto); err != nil {
		return fmt.Errorf("failed to start rebase: %w", err)
	}
	return nil
}

// ContinueRebase resumes a paused rebase to completion
func (c *Client) ContinueRebase() error {
	if _, err := c.runWithEnv([]string{"GIT_EDITOR=true"}, "rebase", "--continue"); err != nil {
		return fmt.Errorf("failed to continue rebase: %w", err)
	}
	return nil
}

// IsRebaseInProgress checks if a rebase is currently in progress
func (c *Client) IsRebaseInProgress() bool {
	for _, dir := range []string{"rebase-merge", "rebase-apply"} {
		if _, err := os.Stat(filepath.Join(c.gitRoot, ".git", dir)); err == nil {
			return true
		}
	}
	return false
}
