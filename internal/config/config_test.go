package config

import (
	"path/filepath"
	"testing"

	"github.com/cardtable/croupier/internal/assert"
)

// setXDG points both XDG homes at temp directories so tests never touch
// the real user config.
func setXDG(t *testing.T) (configHome, dataHome string) {
	t.Helper()
	configHome = t.TempDir()
	dataHome = t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_DATA_HOME", dataHome)
	return configHome, dataHome
}

func TestPaths(t *testing.T) {
	configHome, dataHome := setXDG(t)

	assert.Equal(t, GetConfigFilePath(), filepath.Join(configHome, "croupier", "config.toml"))
	assert.Equal(t, GetDeckLibraryPath(), filepath.Join(dataHome, "croupier", "decks"))
	assert.Equal(t, SavedDeckPath("evening"), filepath.Join(dataHome, "croupier", "decks", "evening.deck"))
	assert.Equal(t, SavedDeckPath("evening.deck"), filepath.Join(dataHome, "croupier", "decks", "evening.deck"))
}

func TestLoadConfig_CreatesDefault(t *testing.T) {
	setXDG(t)

	config, err := LoadConfig()
	assert.NilError(t, err)
	assert.Equal(t, config.DefaultDeck, "")
	assert.Equal(t, config.HandSize, 5)

	// The file was written and loads back identically.
	reloaded, err := LoadConfig()
	assert.NilError(t, err)
	assert.Equal(t, *reloaded, *config)
}

func TestSetDefaultDeck(t *testing.T) {
	setXDG(t)

	assert.NilError(t, SetDefaultDeck("evening-game"))

	name, err := GetDefaultDeck()
	assert.NilError(t, err)
	assert.Equal(t, name, "evening-game")

	// Hand size survives the rewrite.
	size, err := GetHandSize()
	assert.NilError(t, err)
	assert.Equal(t, size, 5)
}

func TestGetDeckPath(t *testing.T) {
	setXDG(t)

	_, err := GetDeckPath("missing")
	if err == nil {
		t.Fatal("expected error for a deck that is nowhere on disk")
	}
	assert.StringContains(t, err.Error(), "deck not found")
}

func TestEnsureDeckLibrary(t *testing.T) {
	_, dataHome := setXDG(t)

	libraryPath, err := EnsureDeckLibrary()
	assert.NilError(t, err)
	assert.Equal(t, libraryPath, filepath.Join(dataHome, "croupier", "decks"))

	// Idempotent.
	_, err = EnsureDeckLibrary()
	assert.NilError(t, err)
}
