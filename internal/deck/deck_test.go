package deck

import (
	"math/rand"
	"testing"

	"github.com/cardtable/croupier/internal/assert"
	"github.com/cardtable/croupier/internal/card"
)

var canonical = []card.Card{
	"Ace of Spades", "Two of Spades", "Three of Spades", "Four of Spades", "Five of Spades",
	"Ace of Clubs", "Two of Clubs", "Three of Clubs", "Four of Clubs", "Five of Clubs",
	"Ace of Hearts", "Two of Hearts", "Three of Hearts", "Four of Hearts", "Five of Hearts",
	"Ace of Diamonds", "Two of Diamonds", "Three of Diamonds", "Four of Diamonds", "Five of Diamonds",
}

func TestNew(t *testing.T) {
	d := New()

	assert.Equal(t, len(d), 20)
	assert.SliceEqual(t, d, canonical)

	// Deterministic across calls.
	assert.SliceEqual(t, New(), d)
}

func TestShuffle_IsPermutation(t *testing.T) {
	d := New()
	shuffled := d.Shuffle(rand.New(rand.NewSource(1)))

	assert.Equal(t, len(shuffled), len(d))

	counts := map[card.Card]int{}
	for _, c := range d {
		counts[c]++
	}
	for _, c := range shuffled {
		counts[c]--
	}
	for c, n := range counts {
		if n != 0 {
			t.Errorf("card %q: count off by %d after shuffle", c, n)
		}
	}
}

func TestShuffle_DoesNotMutateReceiver(t *testing.T) {
	d := New()
	d.Shuffle(rand.New(rand.NewSource(1)))

	assert.SliceEqual(t, d, canonical)
}

func TestShuffle_ReproducibleWithSeed(t *testing.T) {
	a := New().Shuffle(rand.New(rand.NewSource(42)))
	b := New().Shuffle(rand.New(rand.NewSource(42)))

	assert.SliceEqual(t, a, b)
}

func TestShuffle_AmbientSource(t *testing.T) {
	shuffled := New().Shuffle(nil)

	assert.Equal(t, len(shuffled), 20)
}

func TestShuffle_Empty(t *testing.T) {
	assert.Equal(t, len(Deck{}.Shuffle(nil)), 0)
}

func TestContains(t *testing.T) {
	d := New()

	for _, c := range canonical {
		if !d.Contains(c) {
			t.Errorf("fresh deck missing %q", c)
		}
	}

	tests := []card.Card{"Six of Spades", "Ace of Wands", "ace of spades", ""}
	for _, c := range tests {
		if d.Contains(c) {
			t.Errorf("fresh deck should not contain %q", c)
		}
	}
}

func TestDeal(t *testing.T) {
	tests := []struct {
		name     string
		handSize int
		wantHand int
		wantRest int
	}{
		{"empty hand", 0, 0, 20},
		{"single card", 1, 1, 19},
		{"typical hand", 5, 5, 15},
		{"whole deck", 20, 20, 0},
		{"clamped above deck size", 25, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New()
			hand, rest, err := d.Deal(tt.handSize)

			assert.NilError(t, err)
			assert.Equal(t, len(hand), tt.wantHand)
			assert.Equal(t, len(rest), tt.wantRest)

			// Hand followed by rest reconstructs the deck.
			assert.SliceEqual(t, append(append(Deck{}, hand...), rest...), d)
		})
	}
}

func TestDeal_Negative(t *testing.T) {
	_, _, err := New().Deal(-1)

	assert.ErrorIs(t, err, ErrNegativeHand)
}

func TestDeal_TwoCardScenario(t *testing.T) {
	d := Deck{"Ace of Spades", "Two of Spades"}
	hand, rest, err := d.Deal(1)

	assert.NilError(t, err)
	assert.SliceEqual(t, hand, Deck{"Ace of Spades"})
	assert.SliceEqual(t, rest, Deck{"Two of Spades"})
}

func TestNewHand(t *testing.T) {
	hand, rest, err := NewHand(5)

	assert.NilError(t, err)
	assert.Equal(t, len(hand), 5)
	assert.Equal(t, len(rest), 15)

	// Hand plus rest is a permutation of the canonical deck.
	counts := map[card.Card]int{}
	for _, c := range canonical {
		counts[c]++
	}
	for _, c := range append(append(Deck{}, hand...), rest...) {
		counts[c]--
	}
	for c, n := range counts {
		if n != 0 {
			t.Errorf("card %q: count off by %d after NewHand", c, n)
		}
	}
}

func TestNewHand_Negative(t *testing.T) {
	_, _, err := NewHand(-3)

	assert.ErrorIs(t, err, ErrNegativeHand)
}
