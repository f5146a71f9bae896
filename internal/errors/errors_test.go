package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypedErrorsMatchSentinels(t *testing.T) {
	assert.ErrorIs(t, NewOutOfRangeError(5, 3), ErrOutOfRange)
	assert.ErrorIs(t, &ApplyConflictError{StashRef: "abc"}, ErrApplyConflict)
	assert.ErrorIs(t, NewRevisionNotFoundError(2, "abc"), ErrRevisionNotFound)
}

func TestTypedErrorsSurviveWrapping(t *testing.T) {
	err := fmt.Errorf("outer context: %w", NewOutOfRangeError(5, 3))
	assert.ErrorIs(t, err, ErrOutOfRange)

	var oorErr *OutOfRangeError
	assert.True(t, stderrors.As(err, &oorErr))
	assert.Equal(t, 5, oorErr.Position)
	assert.Equal(t, 3, oorErr.Length)
}

func TestCommandErrorUnwrap(t *testing.T) {
	cause := stderrors.New("exit status 128")
	err := NewCommandError("git", []string{"rev-parse", "bad-ref"}, "", "fatal: bad revision", 128, cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "git rev-parse bad-ref")
	assert.Contains(t, err.Error(), "fatal: bad revision")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(stderrors.New("plain error")))
	assert.Equal(t, 1, ExitCode(NewOutOfRangeError(5, 3)))

	cmdErr := NewCommandError("arc", []string{"diff"}, "", "", 77, stderrors.New("exit status 77"))
	assert.Equal(t, 77, ExitCode(cmdErr))

	wrapped := fmt.Errorf("diff failed: %w", cmdErr)
	assert.Equal(t, 77, ExitCode(wrapped), "exit code survives wrapping")
}
