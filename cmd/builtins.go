package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/josephlewis42/lsh/commands"
	"github.com/spf13/cobra"
)

// builtinsCmd lists the shell builtins in lookup order.
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the builtin commands of the shell.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
		for _, builtin := range commands.ListBuiltins() {
			fmt.Fprintf(tw, "%s\t%s\n", builtin.Use, builtin.Short)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
