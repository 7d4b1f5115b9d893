package deck

import (
	"errors"
	"math/rand"
	"time"

	"github.com/cardtable/croupier/internal/card"
	"github.com/cardtable/croupier/internal/random"
)

// Deck is an ordered sequence of cards.
type Deck []card.Card

// Hand is the dealt prefix of a deck.
type Hand = Deck

// ErrNegativeHand is returned by Deal when asked for a negative hand size.
var ErrNegativeHand = errors.New("negative hand size")

// New returns the canonical twenty-card deck: every value of every suit,
// suits in their canonical order, values cycling within each suit.
func New() Deck {
	values := card.Values()
	suits := card.Suits()

	d := make(Deck, 0, len(values)*len(suits))
	for _, suit := range suits {
		for _, value := range values {
			d = append(d, card.New(value, suit))
		}
	}

	return d
}

// Shuffle returns a uniformly random permutation of d, leaving the
// receiver untouched. A nil rng uses a source seeded from crypto/rand,
// so callers that want reproducible shuffles inject their own.
func (d Deck) Shuffle(rng *rand.Rand) Deck {
	if rng == nil {
		seed, err := random.NewSeed()
		if err != nil {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	shuffled := make(Deck, len(d))
	copy(shuffled, d)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled
}

// Contains reports whether c appears at least once in d.
func (d Deck) Contains(c card.Card) bool {
	for _, have := range d {
		if have == c {
			return true
		}
	}
	return false
}

// Deal splits d into its first n cards and the remainder, preserving
// relative order on both sides, so that hand followed by rest equals d.
// A hand size beyond the deck length takes the whole deck and leaves an
// empty remainder. A negative hand size returns ErrNegativeHand.
func (d Deck) Deal(n int) (Hand, Deck, error) {
	if n < 0 {
		return nil, nil, ErrNegativeHand
	}
	if n > len(d) {
		n = len(d)
	}

	hand := make(Hand, n)
	copy(hand, d[:n])

	rest := make(Deck, len(d)-n)
	copy(rest, d[n:])

	return hand, rest, nil
}

// NewHand shuffles a fresh deck and deals n cards from it.
func NewHand(n int) (Hand, Deck, error) {
	return New().Shuffle(nil).Deal(n)
}
