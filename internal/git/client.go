// Package git wraps the git subprocess boundary. Every operation shells out
// to the git binary with captured output; failures surface as
// *errors.CommandError carrying the captured stdout/stderr and exit code.
package git

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	anisterrors "github.com/risperss/anist/internal/errors"
	"github.com/risperss/anist/internal/trace"
)

// ShortHashLength is the number of hex digits shown for abbreviated hashes
const ShortHashLength = 8

// Client provides git operations for a repository
type Client struct {
	gitRoot string
}

// NewClient creates a new git client for the current directory
func NewClient() (*Client, error) {
	gitRoot, err := getGitRoot(".")
	if err != nil {
		return nil, err
	}
	return &Client{gitRoot: gitRoot}, nil
}

// NewClientAt creates a new git client rooted at the given directory
func NewClientAt(dir string) (*Client, error) {
	gitRoot, err := getGitRoot(dir)
	if err != nil {
		return nil, err
	}
	return &Client{gitRoot: gitRoot}, nil
}

// GitRoot returns the root directory of the git repository
func (c *Client) GitRoot() string {
	return c.gitRoot
}

// run executes a git command in the repository, returning trimmed stdout.
// Non-zero exits come back as *errors.CommandError.
func (c *Client) run(args ...string) (string, error) {
	return c.runWithEnv(nil, args...)
}

// runWithEnv executes a git command with extra environment variables
func (c *Client) runWithEnv(env []string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = c.gitRoot
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	trace.Command("git", args, time.Since(start), err)
	if err != nil {
		exitCode := 1
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return "", anisterrors.NewCommandError("git", args, stdout.String(), stderr.String(), exitCode, err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// GetCurrentBranch returns the name of the current git branch, or "HEAD"
// when detached
func (c *Client) GetCurrentBranch() (string, error) {
	branch, err := c.run("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	return branch, nil
}

// GetCommitHash returns the commit hash for a given ref
func (c *Client) GetCommitHash(ref string) (string, error) {
	hash, err := c.run("rev-parse", ref)
	if err != nil {
		return "", fmt.Errorf("failed to get commit hash for %s: %w", ref, err)
	}
	return hash, nil
}

// GetCommits returns all commits reachable from head but not from base,
// oldest first. The ordering is git's own topological traversal; no
// independent sorting happens here.
func (c *Client) GetCommits(base string, head string) ([]Commit, error) {
	output, err := c.run("rev-list", "--reverse", fmt.Sprintf("%s..%s", base, head))
	if err != nil {
		return nil, fmt.Errorf("failed to get commits: %w", err)
	}

	hashes := strings.Split(output, "\n")
	if len(hashes) == 1 && hashes[0] == "" {
		return []Commit{}, nil
	}

	commits := make([]Commit, 0, len(hashes))
	for _, hash := range hashes {
		commit, err := c.GetCommit(hash)
		if err != nil {
			return nil, err
		}
		commits = append(commits, commit)
	}

	return commits, nil
}

// GetCommit returns a commit by hash or ref
func (c *Client) GetCommit(ref string) (Commit, error) {
	hash, err := c.GetCommitHash(ref)
	if err != nil {
		return Commit{}, err
	}

	message, err := c.run("log", "--format=%B", "-n", "1", hash)
	if err != nil {
		return Commit{}, fmt.Errorf("failed to get commit %s: %w", hash, err)
	}

	return ParseCommitMessage(hash, message), nil
}

// Checkout checks out a branch name or a commit hash (detached)
func (c *Client) Checkout(ref string) error {
	if _, err := c.run("checkout", ref); err != nil {
		return fmt.Errorf("failed to checkout %s: %w", ref, err)
	}
	return nil
}

// ResetHard resets the working tree and index to the given ref
func (c *Client) ResetHard(ref string) error {
	if _, err := c.run("reset", "--hard", ref); err != nil {
		return fmt.Errorf("failed to reset to %s: %w", ref, err)
	}
	return nil
}

// AddUpdated stages all modified tracked paths (git add -u)
func (c *Client) AddUpdated() error {
	if _, err := c.run("add", "-u"); err != nil {
		return fmt.Errorf("failed to stage modified files: %w", err)
	}
	return nil
}

// AmendNoEdit amends the HEAD commit, preserving its message
func (c *Client) AmendNoEdit() error {
	if _, err := c.run("commit", "--amend", "--no-edit"); err != nil {
		return fmt.Errorf("failed to amend commit: %w", err)
	}
	return nil
}

// ConfigValue reads a git config key. A missing key is not an error; it
// returns the empty string.
func (c *Client) ConfigValue(key string) (string, error) {
	value, err := c.run("config", "--get", key)
	if err != nil {
		var cmdErr *anisterrors.CommandError
		if stderrors.As(err, &cmdErr) && cmdErr.ExitCode == 1 {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// ShortHash abbreviates a commit hash for display
func ShortHash(hash string) string {
	if len(hash) > ShortHashLength {
		return hash[:ShortHashLength]
	}
	return hash
}

// getGitRoot resolves the repository root for a directory
func getGitRoot(dir string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("not in a git repository: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}
