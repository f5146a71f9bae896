package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/risperss/anist/internal/arc"
	anisterrors "github.com/risperss/anist/internal/errors"
	"github.com/risperss/anist/internal/git"
	"github.com/risperss/anist/internal/testutil"
	"github.com/risperss/anist/internal/ui"
)

// newTestStack builds a stack client over a fresh repository with a feature
// branch checked out, ready for commits on top of master.
func newTestStack(t *testing.T) (*Client, *git.Client, *MockArcClient) {
	t.Helper()
	gitClient := testutil.NewTestGitClient(t)
	testutil.Run(t, gitClient.GitRoot(), "git", "checkout", "-b", "feature")

	mockArc := &MockArcClient{}
	stackClient := NewClient(gitClient, mockArc, ui.NewPrinter(true))
	return stackClient, gitClient, mockArc
}

func TestChanges(t *testing.T) {
	stackClient, gitClient, _ := newTestStack(t)

	t.Run("EmptyStack", func(t *testing.T) {
		_, err := stackClient.Changes()
		assert.ErrorIs(t, err, anisterrors.ErrEmptyStack)
	})

	first := testutil.CreateCommit(t, gitClient, "First change", "")
	second := testutil.CreateCommit(t, gitClient, "Second change", "")

	t.Run("PositionsAreOneIndexedOldestFirst", func(t *testing.T) {
		changes, err := stackClient.Changes()
		require.NoError(t, err)
		require.Len(t, changes, 2)

		assert.Equal(t, 1, changes[0].Position)
		assert.Equal(t, first, changes[0].Hash)
		assert.Equal(t, 2, changes[1].Position)
		assert.Equal(t, second, changes[1].Hash)
	})

	t.Run("ChangeByPosition", func(t *testing.T) {
		change, err := stackClient.ChangeByPosition(2)
		require.NoError(t, err)
		assert.Equal(t, "Second change", change.Title)

		_, err = stackClient.ChangeByPosition(0)
		assert.ErrorIs(t, err, anisterrors.ErrOutOfRange)

		_, err = stackClient.ChangeByPosition(3)
		assert.ErrorIs(t, err, anisterrors.ErrOutOfRange)
	})
}

func TestBaseConfig(t *testing.T) {
	gitClient := testutil.NewTestGitClient(t)
	mockArc := &MockArcClient{}

	stackClient := NewClient(gitClient, mockArc, ui.NewPrinter(true))
	assert.Equal(t, DefaultBase, stackClient.Base())

	testutil.Run(t, gitClient.GitRoot(), "git", "config", "anist.base", "develop")

	stackClient = NewClient(gitClient, mockArc, ui.NewPrinter(true))
	assert.Equal(t, "develop", stackClient.Base())
}

func TestRevisionFromMessage(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "TrailerWithURL",
			message: "Title\n\nDifferential Revision: https://phab.example.com/D28944",
			want:    "D28944",
		},
		{
			name:    "TrailerWithBareID",
			message: "Title\n\nDifferential Revision: D7",
			want:    "D7",
		},
		{
			name:    "NoTrailer",
			message: "Title\n\nJust a body mentioning D123 in passing.",
			want:    "",
		},
		{
			name:    "TrailerWithoutRevisionToken",
			message: "Title\n\nDifferential Revision: pending",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RevisionFromMessage(tt.message))
		})
	}
}

func TestRevisionIDs(t *testing.T) {
	stackClient, _, mockArc := newTestStack(t)

	changes := []Change{
		{Position: 1, Commit: git.Commit{Title: "Add retry logic", Message: "Add retry logic"}},
		{Position: 2, Commit: git.Commit{
			Title:   "Fix cache test",
			Message: "Fix cache test\n\nDifferential Revision: https://phab.example.com/D200",
		}},
		{Position: 3, Commit: git.Commit{Title: "Tune pool size", Message: "Tune pool size"}},
	}

	mockArc.On("List").Return([]arc.Revision{
		{ID: "D100", Description: "Add retry logic"},
		{ID: "D999", Description: "add retry logic"}, // duplicate match, first wins
	}, nil)

	ids := stackClient.RevisionIDs(changes)

	assert.Equal(t, "D100", ids[1], "listing match wins and the first match sticks")
	assert.Equal(t, "D200", ids[2], "trailer is the fallback")
	assert.NotContains(t, ids, 3, "unresolvable changes are absent")
}

func TestMatchPosition(t *testing.T) {
	changes := []Change{
		{Position: 1, Commit: git.Commit{Title: "Add retry logic to fetcher"}},
		{Position: 2, Commit: git.Commit{Title: "Fix flaky cache test"}},
	}

	assert.Equal(t, 1, matchPosition(changes, "add retry logic"))
	assert.Equal(t, 2, matchPosition(changes, "Fix flaky cache test"))
	assert.Equal(t, 0, matchPosition(changes, "unrelated description"))
	assert.Equal(t, 0, matchPosition(changes, ""))
}
