// Package common holds setup helpers shared across commands.
package common

import (
	"github.com/risperss/anist/internal/arc"
	"github.com/risperss/anist/internal/git"
	"github.com/risperss/anist/internal/stack"
	"github.com/risperss/anist/internal/trace"
	"github.com/risperss/anist/internal/ui"
)

// InitClients constructs the git, arc, and stack clients for a command
// invocation. Called from each command's PreRunE so that commands which
// never run (help, flag errors) pay no setup cost and need no repository.
func InitClients(printer *ui.Printer) (*git.Client, *arc.Client, *stack.Client, error) {
	gitClient, err := git.NewClient()
	if err != nil {
		return nil, nil, nil, err
	}
	trace.Init(gitClient.GitRoot())

	arcClient := arc.NewClient(printer.Quiet)
	stackClient := stack.NewClient(gitClient, arcClient, printer)
	return gitClient, arcClient, stackClient, nil
}
