package git_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/risperss/anist/internal/git"
	"github.com/risperss/anist/internal/testutil"
)

func TestBuildRebasePlan(t *testing.T) {
	commits := []git.Commit{
		{Hash: "aaa", Title: "First change"},
		{Hash: "bbb", Title: "Second change"},
		{Hash: "ccc", Title: "Third change"},
	}

	t.Run("EditInMiddle", func(t *testing.T) {
		plan, err := git.BuildRebasePlan(commits, "bbb")
		require.NoError(t, err)

		assert.Equal(t, "bbb^", plan.Onto)
		require.Len(t, plan.Steps, 3)
		assert.Equal(t, git.ActionPick, plan.Steps[0].Action)
		assert.Equal(t, git.ActionEdit, plan.Steps[1].Action)
		assert.Equal(t, git.ActionPick, plan.Steps[2].Action)
	})

	t.Run("TargetNotInCommits", func(t *testing.T) {
		_, err := git.BuildRebasePlan(commits, "zzz")
		assert.Error(t, err)
	})

	t.Run("NoCommits", func(t *testing.T) {
		_, err := git.BuildRebasePlan(nil, "aaa")
		assert.Error(t, err)
	})

	t.Run("TodoFormat", func(t *testing.T) {
		plan, err := git.BuildRebasePlan(commits, "aaa")
		require.NoError(t, err)

		assert.Equal(t, "edit aaa First change\npick bbb Second change\npick ccc Third change\n", plan.Todo())
	})
}

func TestRebasePausesAtEditAndCompletes(t *testing.T) {
	gitClient := testutil.NewTestGitClient(t)
	testutil.Run(t, gitClient.GitRoot(), "git", "checkout", "-b", "feature")

	testutil.CreateCommit(t, gitClient, "First change", "")
	testutil.CreateCommit(t, gitClient, "Second change", "")
	testutil.CreateCommit(t, gitClient, "Third change", "")

	commits, err := gitClient.GetCommits("master", "HEAD")
	require.NoError(t, err)
	require.Len(t, commits, 3)
	target := commits[1]

	plan, err := git.BuildRebasePlan(commits[1:], target.Hash)
	require.NoError(t, err)
	require.NoError(t, gitClient.StartRebase(plan))

	assert.True(t, gitClient.IsRebaseInProgress())

	head, err := gitClient.GetCommit("HEAD")
	require.NoError(t, err)
	assert.Equal(t, "Second change", head.Title, "rebase pauses with the target checked out")

	// Amend a new file into the paused commit, then resume.
	testutil.WriteFile(t, gitClient, "amended.txt", "injected\n")
	testutil.StageAll(t, gitClient)
	require.NoError(t, gitClient.AmendNoEdit())
	require.NoError(t, gitClient.ContinueRebase())

	assert.False(t, gitClient.IsRebaseInProgress())

	branch, err := gitClient.GetCurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "feature", branch)

	commits, err = gitClient.GetCommits("master", "HEAD")
	require.NoError(t, err)
	require.Len(t, commits, 3, "stack length is preserved")
	assert.Equal(t, "Second change", commits[1].Title)

	// The injected file is part of the amended commit's tree.
	testutil.Run(t, gitClient.GitRoot(), "git", "show", commits[1].Hash+":amended.txt")
}
