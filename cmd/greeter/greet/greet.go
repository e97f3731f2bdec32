package greet

import (
	"github.com/jag-main/go-dev-template/internal/greeting"
	"github.com/spf13/cobra"
)

// Cmd represents the `greeter greet` command. The operation takes no
// inputs, so the command accepts no arguments and defines no flags.
var Cmd = &cobra.Command{
	Use:           "greet",
	Short:         "Print the template greeting line",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		greeting.Greet()
		return nil
	},
}
