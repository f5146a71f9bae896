package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/risperss/anist/cmd/commit"
	"github.com/risperss/anist/cmd/diff"
	"github.com/risperss/anist/cmd/list"
	anisterrors "github.com/risperss/anist/internal/errors"
	"github.com/risperss/anist/internal/ui"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "anist",
	Short: "Commit-stack editing and Phabricator diff management",
	Long: `Anist manages a linear stack of commits on top of the base branch.

It can amend staged changes into any commit in the stack without losing
in-progress work, and create or refresh Phabricator diffs per commit or
for the whole stack.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command. Errors are printed through the ui layer
// and mapped to a process exit code; subprocess failures propagate the
// failing command's own code.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printer := ui.NewPrinter(false)
		printer.Error(err.Error())
		os.Exit(anisterrors.ExitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress informational output (warnings and errors still print)")

	commands := []Command{
		&commit.Command{},
		&diff.Command{},
		&list.Command{},
	}

	for _, cmd := range commands {
		cmd.Register(rootCmd)
	}
}
