package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cardtable/croupier/internal/config"
	"github.com/cardtable/croupier/internal/store"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Manage saved decks in your deck library",
	Long:  `Commands for managing saved decks in your deck library.`,
}

// deckListCmd represents the deck ls command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List saved decks in your deck library",
	Run: func(cmd *cobra.Command, args []string) {
		libraryPath := config.GetDeckLibraryPath()

		// Check if deck library exists
		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Printf("Deck library at %s does not exist.\n", libraryPath)
			fmt.Println("Run 'croupier deck init' to create it.")
			return
		}

		// Get default deck
		defaultDeck, err := config.GetDefaultDeck()
		if err != nil {
			fmt.Printf("Error getting default deck: %v\n", err)
			return
		}

		// Read the deck library directory
		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			fmt.Printf("Error reading deck library: %v\n", err)
			return
		}

		names := []string{}
		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != config.DeckExt {
				continue
			}
			names = append(names, strings.TrimSuffix(entry.Name(), config.DeckExt))
		}

		if len(names) == 0 {
			fmt.Println("No decks found in your deck library.")
			fmt.Println("You can add decks with 'croupier shuffle --out <name>'.")
			return
		}

		for _, name := range names {
			d, err := store.Load(config.SavedDeckPath(name))
			if err != nil {
				// Not a valid deck, skip
				continue
			}

			if name == defaultDeck {
				fmt.Printf("* %s (%d cards) [DEFAULT]\n", name, len(d))
			} else {
				fmt.Printf("  %s (%d cards)\n", name, len(d))
			}
		}
	},
}

// deckSetDefaultCmd represents the deck set-default command
var deckSetDefaultCmd = &cobra.Command{
	Use:   "set-default [deck_name]",
	Short: "Set the default deck",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deckName := args[0]

		// Check if the deck exists
		deckPath, err := config.GetDeckPath(deckName)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		// Try to load the deck to make sure it's valid
		_, err = store.Load(deckPath)
		if err != nil {
			fmt.Printf("Error: Not a valid deck - %v\n", err)
			return
		}

		// Set as default
		err = config.SetDefaultDeck(deckName)
		if err != nil {
			fmt.Printf("Error setting default deck: %v\n", err)
			return
		}

		fmt.Printf("Default deck set to: %s\n", deckName)
	},
}

// deckInitCmd represents the deck init command
var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the deck library",
	Run: func(cmd *cobra.Command, args []string) {
		libraryPath, err := config.EnsureDeckLibrary()
		if err != nil {
			fmt.Printf("Error creating deck library: %v\n", err)
			return
		}

		fmt.Println("Deck library initialized at:", libraryPath)
		fmt.Println("You can now save decks with 'croupier shuffle --out <name>'.")

		// Initialize config
		_, err = config.LoadConfig()
		if err != nil {
			fmt.Printf("Error initializing config: %v\n", err)
			return
		}

		configPath := config.GetConfigFilePath()
		fmt.Println("Config file initialized at:", configPath)
	},
}

// deckShowCmd represents the deck show command
var deckShowCmd = &cobra.Command{
	Use:   "show [deck_name]",
	Short: "Print a saved deck",
	Long: `Show loads a saved deck and prints its cards in stored order.
With no name, the default deck from your config is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckName := ""
		if len(args) == 1 {
			deckName = args[0]
		}

		d, ok, err := resolveDeck(deckName)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				fmt.Println(err)
				return nil
			}
			return err
		}
		if !ok {
			return fmt.Errorf("no deck named and no default deck set")
		}

		printDeck(d)
		return nil
	},
}

// deckRmCmd represents the deck rm command
var deckRmCmd = &cobra.Command{
	Use:   "rm [deck_name]",
	Short: "Remove a saved deck from your deck library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckName := args[0]

		deckPath := config.SavedDeckPath(deckName)
		if _, err := os.Stat(deckPath); os.IsNotExist(err) {
			return fmt.Errorf("deck not found: %s", deckName)
		}

		if err := os.Remove(deckPath); err != nil {
			return fmt.Errorf("error removing deck: %v", err)
		}

		fmt.Println("Removed deck:", deckName)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckSetDefaultCmd)
	deckCmd.AddCommand(deckInitCmd)
	deckCmd.AddCommand(deckShowCmd)
	deckCmd.AddCommand(deckRmCmd)
}
