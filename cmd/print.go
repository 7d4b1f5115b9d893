package cmd

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	colorize "github.com/fatih/color"

	"github.com/cardtable/croupier/internal/card"
	"github.com/cardtable/croupier/internal/config"
	"github.com/cardtable/croupier/internal/deck"
	"github.com/cardtable/croupier/internal/store"
)

// renderCard colors a card label by its suit: red suits in red, black
// suits in bright white.
func renderCard(c card.Card) string {
	switch c.Suit() {
	case "Hearts", "Diamonds":
		return colorize.RedString(c.String())
	default:
		return colorize.HiWhiteString(c.String())
	}
}

// printDeck renders a deck in columns sized to the terminal width, or
// one card per line when stdout is not a terminal (pipes, redirects).
func printDeck(d deck.Deck) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		for _, c := range d {
			fmt.Println(c)
		}
		return
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		width = 80 // Default if we can't get terminal width
	}

	// Cell width is the longest label plus a two-space gutter.
	cell := 0
	for _, c := range d {
		if len(c) > cell {
			cell = len(c)
		}
	}
	cell += 2

	cols := width / cell
	if cols < 1 {
		cols = 1
	}

	for i, c := range d {
		fmt.Print(renderCard(c))
		if (i+1)%cols == 0 || i == len(d)-1 {
			fmt.Println()
		} else {
			// Pad manually; escape codes throw off %-*s padding.
			fmt.Print(strings.Repeat(" ", cell-len(c)))
		}
	}
}

// resolveDeck loads the deck named by the --deck flag, falling back to
// the default deck from config when the flag is empty. An empty default
// means no deck is resolved and the second return is false.
func resolveDeck(deckFlag string) (deck.Deck, bool, error) {
	name := deckFlag
	if name == "" {
		defaultDeck, err := config.GetDefaultDeck()
		if err != nil {
			return nil, false, fmt.Errorf("error getting default deck: %v", err)
		}
		name = defaultDeck
	}

	if name == "" {
		return nil, false, nil
	}

	deckPath, err := config.GetDeckPath(name)
	if err != nil {
		return nil, false, err
	}

	d, err := store.Load(deckPath)
	if err != nil {
		return nil, false, err
	}

	return d, true, nil
}
