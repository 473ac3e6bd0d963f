package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd builds the "maskgen" root command. The root itself carries
// the generate subcommand's flags and RunE so that `maskgen <mask>` works
// without naming a subcommand (spec.md §6: "generate (default if not
// specified)"); "generate", "entropy", and "create" are also registered
// as explicit subcommands.
func newRootCmd() *cobra.Command {
	root := newGenerateCmd("maskgen")
	root.Short = "Generate password candidates from a mask, or estimate password entropy"
	root.SilenceUsage = true
	root.SilenceErrors = true

	root.AddCommand(newGenerateCmd("generate"))
	root.AddCommand(newEntropyCmd())
	root.AddCommand(newCreateCmd())

	return root
}
