package card

import "strings"

// Card represents a playing card labeled "<Value> of <Suit>".
// Cards are immutable values; equality is string equality.
type Card string

// Values returns the canonical card values in deck order.
func Values() []string {
	return []string{"Ace", "Two", "Three", "Four", "Five"}
}

// Suits returns the canonical suits in deck order.
func Suits() []string {
	return []string{"Spades", "Clubs", "Hearts", "Diamonds"}
}

// New builds the card labeled "<value> of <suit>".
func New(value, suit string) Card {
	return Card(value + " of " + suit)
}

func (c Card) String() string {
	return string(c)
}

// Value returns the value part of the label, or "" for a malformed label.
func (c Card) Value() string {
	value, _, ok := strings.Cut(string(c), " of ")
	if !ok {
		return ""
	}
	return value
}

// Suit returns the suit part of the label, or "" for a malformed label.
func (c Card) Suit() string {
	_, suit, ok := strings.Cut(string(c), " of ")
	if !ok {
		return ""
	}
	return suit
}

// IsCanonical reports whether c is one of the twenty cards a fresh deck holds.
func (c Card) IsCanonical() bool {
	value, suit, ok := strings.Cut(string(c), " of ")
	if !ok {
		return false
	}
	return contains(Values(), value) && contains(Suits(), suit)
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
