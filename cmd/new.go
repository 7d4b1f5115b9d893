package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cardtable/croupier/internal/deck"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Print a fresh deck in canonical order",
	Long: `New prints the canonical twenty-card deck: every value of every suit,
suits ordered Spades, Clubs, Hearts, Diamonds.`,
	Run: func(cmd *cobra.Command, args []string) {
		printDeck(deck.New())
	},
}

func init() {
	RootCmd.AddCommand(newCmd)
}
