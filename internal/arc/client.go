// Package arc invokes the Arcanist CLI, the external review-system
// collaborator. Its commands are treated as an opaque request/response
// boundary: listings are parsed line-by-line for revision tokens, and diff
// creation/update is a blocking subprocess call.
package arc

import (
	"bytes"
	stderrors "errors"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	anisterrors "github.com/risperss/anist/internal/errors"
	"github.com/risperss/anist/internal/trace"
)

// Revision is a review request tracked by the review system
type Revision struct {
	// ID is the revision token, e.g. D28944
	ID string
	// Description is the free-text summary from the listing, used for
	// fuzzy matching back to stack commits
	Description string
}

// Client runs arc commands. Quiet controls whether long-running commands
// stream their output to the terminal.
type Client struct {
	Quiet bool
}

// NewClient creates a new arc client
func NewClient(quiet bool) *Client {
	return &Client{Quiet: quiet}
}

var revisionPattern = regexp.MustCompile(`\bD\d+\b`)

// List returns the revisions arc knows about for the current user
func (c *Client) List() ([]Revision, error) {
	output, err := c.run("list")
	if err != nil {
		return nil, err
	}
	return ParseList(output), nil
}

// ParseList extracts revision IDs and descriptions from arc list output.
// Lines look like: "* Needs Review D28944: Add retry logic to fetcher".
// Lines without a revision token are skipped.
func ParseList(output string) []Revision {
	var revisions []Revision
	for _, line := range strings.Split(output, "\n") {
		id := revisionPattern.FindString(line)
		if id == "" {
			continue
		}

		description := ""
		if idx := strings.Index(line, ":"); idx >= 0 {
			description = strings.TrimSpace(line[idx+1:])
		}

		revisions = append(revisions, Revision{ID: id, Description: description})
	}
	return revisions
}

// Diff creates a new revision (updateID empty) or updates an existing one
// from the diff between base and the checked-out commit. Unless quiet, arc
// output streams straight through since the command can prompt and takes a
// while.
func (c *Client) Diff(base string, updateID string, message string) error {
	args := []string{"diff", base}
	if updateID != "" {
		args = append(args, "--update", updateID)
	}
	if message != "" {
		args = append(args, "--message", message)
	}

	if c.Quiet {
		_, err := c.run(args...)
		return err
	}

	cmd := exec.Command("arc", args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	start := time.Now()
	err := cmd.Run()
	trace.Command("arc", args, time.Since(start), err)
	if err != nil {
		return anisterrors.NewCommandError("arc", args, "", "", exitCode(err), err)
	}
	return nil
}

// run executes an arc command with captured output
func (c *Client) run(args ...string) (string, error) {
	cmd := exec.Command("arc", args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	trace.Command("arc", args, time.Since(start), err)
	if err != nil {
		return "", anisterrors.NewCommandError("arc", args, stdout.String(), stderr.String(), exitCode(err), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
