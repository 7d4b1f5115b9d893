package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cardtable/croupier/internal/card"
	"github.com/cardtable/croupier/internal/deck"
)

// containsCmd represents the contains command
var containsCmd = &cobra.Command{
	Use:   "contains [card]",
	Short: "Check whether a card is in a deck",
	Long: `Contains checks whether the given card label appears in a deck.
Card labels look like "Ace of Spades".

With --deck the named saved deck is checked; otherwise the default deck
from your config is used, and failing that, a fresh canonical deck. The
command exits non-zero when the card is not in the deck, so shell
scripts can branch on the result.

Examples:
  croupier contains "Ace of Spades"
  croupier contains --deck evening-game "Five of Hearts"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := card.Card(args[0])

		deckFlag, _ := cmd.Flags().GetString("deck")
		d, ok, err := resolveDeck(deckFlag)
		if err != nil {
			return err
		}
		if !ok {
			d = deck.New()
		}

		if !d.Contains(c) {
			return fmt.Errorf("%q is not in the deck", c)
		}

		fmt.Printf("%s is in the deck\n", colorize.HiWhiteString(c.String()))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(containsCmd)

	containsCmd.Flags().StringP("deck", "d", "", "Check a saved deck from your deck library")
}
