package root

import (
	"github.com/jag-main/go-dev-template/cmd/greeter/greet"
	"github.com/jag-main/go-dev-template/cmd/greeter/version"
	"github.com/jag-main/go-dev-template/internal/greeting"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for greeter.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "greeter",
		Short: "CLI: project template placeholder that prints its greeting line",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The greeting is the program: bare invocation greets.
			greeting.Greet()
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Subcommands
	cmd.AddCommand(version.VersionCmd)
	cmd.AddCommand(greet.Cmd)

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}
