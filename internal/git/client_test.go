package git_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/risperss/anist/internal/git"
	"github.com/risperss/anist/internal/testutil"
)

func TestGetCommits(t *testing.T) {
	gitClient := testutil.NewTestGitClient(t)

	t.Run("EmptyRange", func(t *testing.T) {
		commits, err := gitClient.GetCommits("master", "HEAD")
		require.NoError(t, err)
		assert.Empty(t, commits)
	})

	testutil.Run(t, gitClient.GitRoot(), "git", "checkout", "-b", "feature")
	first := testutil.CreateCommit(t, gitClient, "First change", "")
	second := testutil.CreateCommit(t, gitClient, "Second change", "")

	t.Run("OldestFirst", func(t *testing.T) {
		commits, err := gitClient.GetCommits("master", "HEAD")
		require.NoError(t, err)
		require.Len(t, commits, 2)

		assert.Equal(t, first, commits[0].Hash)
		assert.Equal(t, "First change", commits[0].Title)
		assert.Equal(t, second, commits[1].Hash)
		assert.Equal(t, "Second change", commits[1].Title)
	})
}

func TestGetCurrentBranch(t *testing.T) {
	gitClient := testutil.NewTestGitClient(t)

	branch, err := gitClient.GetCurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "master", branch)

	hash, err := gitClient.GetCommitHash("HEAD")
	require.NoError(t, err)
	require.NoError(t, gitClient.Checkout(hash))

	branch, err = gitClient.GetCurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "HEAD", branch, "detached HEAD reports as HEAD")
}

func TestConfigValue(t *testing.T) {
	gitClient := testutil.NewTestGitClient(t)

	value, err := gitClient.ConfigValue("anist.base")
	require.NoError(t, err, "missing config key is not an error")
	assert.Equal(t, "", value)

	testutil.Run(t, gitClient.GitRoot(), "git", "config", "anist.base", "develop")

	value, err = gitClient.ConfigValue("anist.base")
	require.NoError(t, err)
	assert.Equal(t, "develop", value)
}

func TestCheckChanges(t *testing.T) {
	gitClient := testutil.NewTestGitClient(t)

	hasStaged, hasUnstaged, err := gitClient.CheckChanges()
	require.NoError(t, err)
	assert.False(t, hasStaged)
	assert.False(t, hasUnstaged)

	testutil.WriteFile(t, gitClient, "initial-commit.txt", "modified\n")

	hasStaged, hasUnstaged, err = gitClient.CheckChanges()
	require.NoError(t, err)
	assert.False(t, hasStaged)
	assert.True(t, hasUnstaged)

	testutil.StageAll(t, gitClient)

	hasStaged, hasUnstaged, err = gitClient.CheckChanges()
	require.NoError(t, err)
	assert.True(t, hasStaged)
	assert.False(t, hasUnstaged)
}

func TestShortHash(t *testing.T) {
	assert.Equal(t, "deadbeef", git.ShortHash("deadbeefdeadbeefdeadbeefdeadbeefdeadbeef"))
	assert.Equal(t, "abc", git.ShortHash("abc"))
}

func TestCommandErrorCarriesExitCode(t *testing.T) {
	gitClient := testutil.NewTestGitClient(t)

	_, err := gitClient.GetCommitHash("no-such-ref")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-ref")
}
