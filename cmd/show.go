package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/sutda/internal/config"
	"github.com/arcanaland/sutda/internal/deck"
	"github.com/arcanaland/sutda/internal/validator"
)

const (
	// cellWidth fits the widest card ("10K") plus spacing
	cellWidth    = 5
	defaultWidth = 80
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display a deck as a grid with kwang cards highlighted",
	Long: `Show displays a deck as a grid sized to the terminal, highlighting kwang cards.

Without --deck the standard deck is shown. Color and grid width can be set
in XDG_CONFIG_HOME/sutda/config.toml:

  color = "auto"   # auto, always or never
  width = 0        # 0 uses the terminal width

Examples:
  sutda show
  sutda show --deck ./deck.toml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		d := deck.New()

		deckPath, _ := cmd.Flags().GetString("deck")
		if deckPath != "" {
			results, err := validator.NewValidator(deckPath).Validate()
			if err != nil {
				return err
			}
			if len(results.Errors) > 0 {
				return fmt.Errorf("deck %s is invalid: %s", deckPath, strings.Join(results.Errors, "; "))
			}

			d, err = deck.LoadDeck(deckPath)
			if err != nil {
				return fmt.Errorf("error loading deck: %w", err)
			}
		}

		out := cmd.OutOrStdout()

		width := cfg.Width
		if width == 0 {
			width = terminalWidth(out)
		}

		displayDeck(out, d, width, useColor(cfg.Color, out))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("deck", "d", "", "Path to a deck file to show instead of the standard deck")
}

// isTerminal reports whether w writes to a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of the terminal behind w, or a default
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return isTerminal(w)
	}
}

// displayDeck prints a header and the deck's cards in rows that fit width
func displayDeck(w io.Writer, d *deck.Deck, width int, color bool) {
	label := colorize.New(colorize.FgCyan)
	value := colorize.New(colorize.FgHiWhite)
	kwang := colorize.New(colorize.FgHiYellow, colorize.Bold)
	for _, c := range []*colorize.Color{label, value, kwang} {
		if color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	kwangCount := 0
	for _, c := range d.Cards() {
		if c.Kwang() {
			kwangCount++
		}
	}

	fmt.Fprintln(w, label.Sprint("Deck:  ")+value.Sprint(d.Name))
	fmt.Fprintln(w, label.Sprint("Cards: ")+value.Sprintf("%d (%d kwang)", d.Len(), kwangCount))
	fmt.Fprintln(w)

	// Leave the same 2-character left padding the rows use
	perRow := (width - 2) / cellWidth
	if perRow < 1 {
		perRow = 1
	}

	var row strings.Builder
	for i, c := range d.Cards() {
		col := i % perRow
		if col == 0 {
			row.Reset()
			row.WriteString("  ")
		}

		text := c.String()
		if c.Kwang() {
			row.WriteString(kwang.Sprint(text))
		} else {
			row.WriteString(text)
		}

		last := col == perRow-1 || i == d.Len()-1
		if last {
			fmt.Fprintln(w, row.String())
		} else {
			row.WriteString(strings.Repeat(" ", cellWidth-len(text)))
		}
	}
}
