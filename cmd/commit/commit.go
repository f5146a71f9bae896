// Package commit implements the anist commit command: amend the staged
// changes into an arbitrary commit in the stack.
package commit

import (
	"context"
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/risperss/anist/internal/common"
	"github.com/risperss/anist/internal/git"
	"github.com/risperss/anist/internal/stack"
	"github.com/risperss/anist/internal/ui"
)

// Command edits a commit in the stack
type Command struct {
	Number int

	// Clients (can be mocked in tests)
	Git     *git.Client
	Stack   *stack.Client
	Printer *ui.Printer
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Amend staged changes into a commit in the stack",
		Long: `Amend the currently staged changes into the commit at the given
stack position. Position 1 is the oldest commit on top of the base branch.

Unstaged changes are stashed around the operation and restored afterwards.
With no position given, a fuzzy finder opens to pick the target commit.

Example:
  anist commit -n 2
  anist commit`,
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

	cmd.Flags().IntVarP(&c.Number, "number", "n", 0, "Stack position of the commit to amend (0 opens a picker)")

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	position := c.Number
	if position == 0 {
		picked, err := c.pickPosition()
		if err != nil {
			return err
		}
		if picked == 0 {
			// User cancelled
			return nil
		}
		position = picked
	}

	return c.Stack.EditChange(position)
}

// pickPosition opens a fuzzy finder over the stack and returns the chosen
// position, or 0 when the user cancels.
func (c *Command) pickPosition() (int, error) {
	changes, err := c.Stack.Changes()
	if err != nil {
		return 0, err
	}

	idx, err := fuzzyfinder.Find(
		changes,
		func(i int) string {
			change := changes[i]

			title := ui.Truncate(change.Title, 50)

			return fmt.Sprintf("%2d │ %-50s │ %s", change.Position, title, git.ShortHash(change.Hash))
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			change := changes[i]

			preview := fmt.Sprintf("Position: %d\n", change.Position)
			preview += fmt.Sprintf("Commit: %s\n", change.Hash)
			preview += fmt.Sprintf("\n%s\n", change.Message)
			return preview
		}),
	)
	if err != nil {
		return 0, nil
	}

	return changes[idx].Position, nil
}
