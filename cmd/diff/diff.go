// Package diff implements the anist diff command: create or refresh
// Phabricator diffs for commits in the stack.
package diff

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/risperss/anist/internal/common"
	"github.com/risperss/anist/internal/git"
	"github.com/risperss/anist/internal/stack"
	"github.com/risperss/anist/internal/ui"
)

// DefaultMessage is attached to diff updates when none is given
const DefaultMessage = "anist default message"

// Command syncs diffs for the stack
type Command struct {
	Number    int
	Message   string
	Create    bool
	FullStack bool

	// Clients (can be mocked in tests)
	Git     *git.Client
	Stack   *stack.Client
	Printer *ui.Printer
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Create or update a Phabricator diff for a commit",
		Long: `Create or update the Phabricator diff for the commit at the given
stack position. The commit is checked out detached, "arc diff HEAD~1" runs
against it, and the original branch is restored. Uncommitted changes are
stashed around the operation and restored afterwards.

Updates resolve the target revision from "arc list" or the commit's
Differential Revision trailer. Use --create to create a new revision
instead, and --full-stack to process every commit, oldest first.

Example:
  anist diff -n 2 -m "rebase onto latest master"
  anist diff -n 3 --create
  anist diff --full-stack`,
		Args: cobra.NoArgs,
		PreRunE: func(cobraCmd *cobra.Command, args []string) error {
			quiet, err := cobraCmd.Flags().GetBool("quiet")
			if err != nil {
				return err
			}
			c.Printer = ui.NewPrinter(quiet)
			c.Git, _, c.Stack, err = common.InitClients(c.Printer)
			return err
		},
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return c.Run(cobraCmd.Context())
		},
	}

	cmd.Flags().IntVarP(&c.Number, "number", "n", 1, "Stack position of the commit to diff")
	cmd.Flags().StringVarP(&c.Message, "message", "m", DefaultMessage, "Update message attached to the diff")
	cmd.Flags().BoolVar(&c.Create, "create", false, "Create a new revision instead of updating")
	cmd.Flags().BoolVar(&c.FullStack, "full-stack", false, "Process every commit in the stack, oldest first")

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	if c.FullStack {
		return c.Stack.SyncStack(c.Message, c.Create)
	}
	return c.Stack.SyncDiff(c.Number, c.Message, c.Create)
}
