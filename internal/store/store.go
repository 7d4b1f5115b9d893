// Package store persists decks as opaque binary blobs on disk.
package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"

	"github.com/cardtable/croupier/internal/card"
	"github.com/cardtable/croupier/internal/deck"
)

// ErrNotFound is returned by Load for any failure to read the file,
// whatever the underlying cause. The message is shown to users as-is.
var ErrNotFound = errors.New("That file does not exist")

// Save serializes d as a CBOR array of card labels and writes it to
// filename, overwriting any existing content. Write failures propagate
// untransformed.
func Save(d deck.Deck, filename string) error {
	labels := make([]string, len(d))
	for i, c := range d {
		labels[i] = c.String()
	}

	blob, err := cbor.Marshal(labels)
	if err != nil {
		return fmt.Errorf("encode deck: %w", err)
	}

	return os.WriteFile(filename, blob, 0644)
}

// Load reads a deck previously written by Save. Read failures collapse
// into ErrNotFound; a file that reads fine but does not decode is
// reported as corruption instead.
func Load(filename string) (deck.Deck, error) {
	blob, err := os.ReadFile(filename)
	if err != nil {
		return nil, ErrNotFound
	}

	var labels []string
	if err := cbor.Unmarshal(blob, &labels); err != nil {
		return nil, fmt.Errorf("decode deck %s: %w", filename, err)
	}

	d := make(deck.Deck, len(labels))
	for i, label := range labels {
		d[i] = card.Card(label)
	}

	return d, nil
}
