// Package errors provides sentinel errors and custom error types for anist.
// Use errors.Is() and errors.As() to check for specific error kinds.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrEmptyStack indicates there are no commits between the base branch and HEAD
	ErrEmptyStack = errors.New("no commits found between base and HEAD")

	// ErrOutOfRange indicates a stack position outside 1..len(stack)
	ErrOutOfRange = errors.New("position out of range")

	// ErrApplyConflict indicates that reapplying a stash left unresolved conflicts
	ErrApplyConflict = errors.New("stash apply conflict")

	// ErrRevisionNotFound indicates that no review revision could be resolved for a commit
	ErrRevisionNotFound = errors.New("revision not found")
)

// OutOfRangeError reports a stack position outside the valid range
type OutOfRangeError struct {
	Position int
	Length   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("position %d is out of range. Valid range is 1 to %d", e.Position, e.Length)
}

// Is returns true if the target error is ErrOutOfRange
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// NewOutOfRangeError creates a new OutOfRangeError
func NewOutOfRangeError(position, length int) *OutOfRangeError {
	return &OutOfRangeError{Position: position, Length: length}
}

// ApplyConflictError reports a stash reapplication that left conflict markers
// in the working tree. The rebase (if one is in progress) is left paused.
type ApplyConflictError struct {
	StashRef string
}

func (e *ApplyConflictError) Error() string {
	return fmt.Sprintf("applying stash %s left unresolved conflicts", e.StashRef)
}

// Is returns true if the target error is ErrApplyConflict
func (e *ApplyConflictError) Is(target error) bool {
	return target == ErrApplyConflict
}

// RevisionNotFoundError reports that a commit's review revision could not be
// determined from either the review listing or the commit message trailer.
type RevisionNotFoundError struct {
	Position   int
	CommitHash string
}

func (e *RevisionNotFoundError) Error() string {
	return fmt.Sprintf(
		"could not determine the revision ID for commit at position %d. Use --create to create a new diff",
		e.Position,
	)
}

// Is returns true if the target error is ErrRevisionNotFound
func (e *RevisionNotFoundError) Is(target error) bool {
	return target == ErrRevisionNotFound
}

// NewRevisionNotFoundError creates a new RevisionNotFoundError
func NewRevisionNotFoundError(position int, commitHash string) *RevisionNotFoundError {
	return &RevisionNotFoundError{Position: position, CommitHash: commitHash}
}

// CommandError represents a failed subprocess invocation. It carries the
// captured output and the subprocess exit code so callers can surface the
// output verbatim and propagate the same code.
type CommandError struct {
	Name     string
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command failed: %s %s (exit code %d)", e.Name, strings.Join(e.Args, " "), e.ExitCode)
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new CommandError
func NewCommandError(name string, args []string, stdout, stderr string, exitCode int, err error) *CommandError {
	return &CommandError{
		Name:     name,
		Args:     args,
		Stdout:   stdout,
		Stderr:   stderr,
		ExitCode: exitCode,
		Err:      err,
	}
}

// ExitCode maps an error to a process exit code. Subprocess failures
// propagate the failing command's exit code; everything else exits 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) && cmdErr.ExitCode > 0 {
		return cmdErr.ExitCode
	}
	return 1
}
