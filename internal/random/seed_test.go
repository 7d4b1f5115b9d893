package random

import (
	"testing"

	"github.com/cardtable/croupier/internal/assert"
)

func TestNewSeed(t *testing.T) {
	a, err := NewSeed()
	assert.NilError(t, err)

	b, err := NewSeed()
	assert.NilError(t, err)

	if a == b {
		t.Errorf("consecutive seeds are equal: %d", a)
	}
}
