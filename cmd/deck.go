package cmd

import (
	"fmt"

	"github.com/arcanaland/sutda/internal/config"
	"github.com/arcanaland/sutda/internal/deck"
	"github.com/spf13/cobra"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Work with sutda deck files",
}

// deckExportCmd represents the deck export command
var deckExportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Write the standard deck to a TOML file",
	Long: `Export writes the standard deck to a TOML file. Without a path the file is
written to XDG_DATA_HOME/sutda/deck.toml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.GetDeckFilePath()
		if len(args) == 1 {
			path = args[0]
		}

		if err := deck.New().Save(path); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Deck exported to:", path)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckExportCmd)
}
