// Package list implements the anist list command: show the stack with
// each commit's review revision.
package list

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/risperss/anist/internal/common"
	"github.com/risperss/anist/internal/git"
	"github.com/risperss/anist/internal/stack"
	"github.com/risperss/anist/internal/ui"
)

// Command lists the commits in the stack
type Command struct {
	// Clients (can be mocked in tests)
	Git     *git.Client
	Stack   *stack.Client
	Printer *ui.Printer
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the commits in the stack",
		Long: `List every commit between the base branch and HEAD, oldest first,
with its stack position, short hash, review revision, and title.

Commits with no resolvable revision show as "local".

Example:
  anist list`,
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

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	changes, err := c.Stack.Changes()
	if err != nil {
		return err
	}
	revisions := c.Stack.RevisionIDs(changes)

	header := fmt.Sprintf("Stack on %s (%d commit(s))", c.Stack.Base(), len(changes))
	c.Printer.Print(ui.BoldStyle.Render(header))

	// Leave room for position, hash, and revision columns.
	titleWidth := ui.GetTerminalWidth() - 28
	if titleWidth < 20 {
		titleWidth = 20
	}

	// Newest first, matching git log.
	for i := len(changes) - 1; i >= 0; i-- {
		change := changes[i]

		revision := revisions[change.Position]
		revisionLabel := ui.DimStyle.Render(fmt.Sprintf("%-7s", "local"))
		if revision != "" {
			revisionLabel = ui.HighlightStyle.Render(fmt.Sprintf("%-7s", revision))
		}

		title := ui.Truncate(change.Title, titleWidth)

		c.Printer.Printf("%s %s %s %s\n",
			ui.BoldStyle.Render(fmt.Sprintf("%2d", change.Position)),
			ui.DimStyle.Render(git.ShortHash(change.Hash)),
			revisionLabel,
			title,
		)
	}

	return nil
}
