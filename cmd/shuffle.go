package cmd

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/cardtable/croupier/internal/config"
	"github.com/cardtable/croupier/internal/deck"
	"github.com/cardtable/croupier/internal/store"
)

// shuffleCmd represents the shuffle command
var shuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Shuffle a fresh deck",
	Long: `Shuffle builds a fresh deck and prints a random permutation of it.

With --out the shuffled deck is saved into your deck library instead of
printed, so later commands can deal from it by name. With --seed the
permutation is reproducible.

Examples:
  croupier shuffle
  croupier shuffle --seed 42
  croupier shuffle --out evening-game`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var rng *rand.Rand
		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetInt64("seed")
			rng = rand.New(rand.NewSource(seed))
		}

		d := deck.New().Shuffle(rng)

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			printDeck(d)
			return nil
		}

		if _, err := config.EnsureDeckLibrary(); err != nil {
			return err
		}

		deckPath := config.SavedDeckPath(out)
		if err := store.Save(d, deckPath); err != nil {
			return fmt.Errorf("error saving deck: %v", err)
		}

		fmt.Println("Saved shuffled deck to:", deckPath)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(shuffleCmd)

	shuffleCmd.Flags().Int64("seed", 0, "Shuffle with a fixed seed for a reproducible permutation")
	shuffleCmd.Flags().StringP("out", "o", "", "Save the shuffled deck into the deck library under this name")
}
