// Package testutil builds throwaway git repositories for tests.
package testutil

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/risperss/anist/internal/git"
)

// NewTestGitClient creates a git client in a temporary repository with an
// initial commit on master
func NewTestGitClient(t *testing.T) *git.Client {
	t.Helper()
	tempDir := t.TempDir()

	Run(t, tempDir, "git", "init", "--initial-branch=master")
	Run(t, tempDir, "git", "config", "user.email", "test@example.com")
	Run(t, tempDir, "git", "config", "user.name", "Test User")

	gitClient, err := git.NewClientAt(tempDir)
	require.NoError(t, err)

	CreateCommit(t, gitClient, "Initial commit", "")
	return gitClient
}

// CreateCommit writes a file named after the title, stages everything, and
// commits with the given message. Returns the new commit hash.
func CreateCommit(t *testing.T, gitClient *git.Client, title, body string) string {
	t.Helper()

	message := title
	if body != "" {
		message = title + "\n\n" + body
	}

	fileName := strings.ReplaceAll(strings.ToLower(title), " ", "-") + ".txt"
	WriteFile(t, gitClient, fileName, message+"\n")

	Run(t, gitClient.GitRoot(), "git", "add", ".")
	Run(t, gitClient.GitRoot(), "git", "commit", "-m", message)

	output := Run(t, gitClient.GitRoot(), "git", "rev-parse", "HEAD")
	return strings.TrimSpace(output)
}

// WriteFile writes content to a path relative to the repository root
func WriteFile(t *testing.T, gitClient *git.Client, name, content string) {
	t.Helper()
	path := filepath.Join(gitClient.GitRoot(), name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// StageFile stages a single path
func StageFile(t *testing.T, gitClient *git.Client, name string) {
	t.Helper()
	Run(t, gitClient.GitRoot(), "git", "add", name)
}

// StageAll stages everything in the repository
func StageAll(t *testing.T, gitClient *git.Client) {
	t.Helper()
	Run(t, gitClient.GitRoot(), "git", "add", ".")
}

// ReadFile reads a path relative to the repository root
func ReadFile(t *testing.T, gitClient *git.Client, name string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(gitClient.GitRoot(), name))
	require.NoError(t, err)
	return string(content)
}

// Run executes a command in dir and fails the test on error
func Run(t *testing.T, dir string, name string, args ...string) string {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, fmt.Sprintf("%s %s failed: %s", name, strings.Join(args, " "), string(output)))
	return string(output)
}
