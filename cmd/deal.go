package cmd

import (
	"fmt"
	"strconv"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cardtable/croupier/internal/config"
	"github.com/cardtable/croupier/internal/deck"
	"github.com/cardtable/croupier/internal/store"
)

// dealCmd represents the deal command
var dealCmd = &cobra.Command{
	Use:   "deal [hand_size]",
	Short: "Deal a hand of cards",
	Long: `Deal splits a deck into a hand and a remainder.

Without --deck a fresh deck is shuffled first, so every deal is a new
game. With --deck the named saved deck is dealt from as-is, in its
stored order. The hand size defaults to the hand_size setting in your
config file.

Examples:
  croupier deal
  croupier deal 7
  croupier deal 5 --deck evening-game --save-rest evening-game`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handSize, err := config.GetHandSize()
		if err != nil {
			return fmt.Errorf("error reading config: %v", err)
		}
		if len(args) == 1 {
			handSize, err = strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid hand size %q: %v", args[0], err)
			}
		}

		deckFlag, _ := cmd.Flags().GetString("deck")

		var hand deck.Hand
		var rest deck.Deck

		if deckFlag != "" {
			deckPath, err := config.GetDeckPath(deckFlag)
			if err != nil {
				return err
			}

			d, err := store.Load(deckPath)
			if err != nil {
				return err
			}

			hand, rest, err = d.Deal(handSize)
			if err != nil {
				return err
			}
		} else {
			hand, rest, err = deck.NewHand(handSize)
			if err != nil {
				return err
			}
		}

		fmt.Println(colorize.CyanString("Hand (%d):", len(hand)))
		printDeck(hand)
		fmt.Println()
		fmt.Println(colorize.CyanString("Remaining (%d):", len(rest)))
		printDeck(rest)

		saveRest, _ := cmd.Flags().GetString("save-rest")
		if saveRest != "" {
			if _, err := config.EnsureDeckLibrary(); err != nil {
				return err
			}

			deckPath := config.SavedDeckPath(saveRest)
			if err := store.Save(rest, deckPath); err != nil {
				return fmt.Errorf("error saving remainder: %v", err)
			}

			fmt.Println()
			fmt.Println("Saved remainder to:", deckPath)
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(dealCmd)

	dealCmd.Flags().StringP("deck", "d", "", "Deal from a saved deck instead of a fresh shuffle")
	dealCmd.Flags().String("save-rest", "", "Save the undealt remainder into the deck library under this name")
}
