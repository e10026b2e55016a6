package cmd

import (
	"github.com/arcanaland/sutda/internal/deck"
	"github.com/spf13/cobra"
)

// RootCmd prints a freshly built deck when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "sutda",
	Short: "Build and print a sutda deck",
	Long: `Sutda builds the 20-card sutda deck: two cards of each rank from 1 to 10,
with one kwang (K) among the pairs of 1, 3 and 8.

Run without arguments to print every card followed by a comma, one per line.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return deck.New().Print(cmd.OutOrStdout())
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
