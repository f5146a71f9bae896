// Package cmd assembles the anist root command from its subcommands.
package cmd

import "github.com/spf13/cobra"

// Command is a subcommand that knows how to attach itself to a parent.
type Command interface {
	// Register adds the subcommand, its flags, and its run hooks to parent
	Register(parent *cobra.Command)
}
