package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// DeckExt is the filename extension for saved deck blobs.
const DeckExt = ".deck"

// Config represents the application configuration
type Config struct {
	DefaultDeck string `toml:"default_deck"`
	HandSize    int    `toml:"hand_size"`
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetDeckLibraryPath returns the path to the deck library
func GetDeckLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "croupier", "decks")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "croupier", "config.toml")
}

// EnsureDeckLibrary creates the deck library directory if needed and
// returns its path.
func EnsureDeckLibrary() (string, error) {
	libraryPath := GetDeckLibraryPath()
	if err := os.MkdirAll(libraryPath, 0755); err != nil {
		return "", fmt.Errorf("error creating deck library: %w", err)
	}
	return libraryPath, nil
}

// LoadConfig loads the config file
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	var config Config
	_, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}
	if config.HandSize <= 0 {
		config.HandSize = 5
	}

	return &config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	configPath := GetConfigFilePath()
	configDir := filepath.Dir(configPath)

	// Ensure the config directory exists
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %v", err)
	}

	// Create default config
	config := &Config{
		DefaultDeck: "",
		HandSize:    5,
	}

	if err := writeConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// writeConfig encodes the config to its TOML file, overwriting it.
func writeConfig(config *Config) error {
	file, err := os.Create(GetConfigFilePath())
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	return nil
}

// SavedDeckPath returns the library path a deck of the given name is
// saved under.
func SavedDeckPath(deckName string) string {
	if !strings.HasSuffix(deckName, DeckExt) {
		deckName += DeckExt
	}
	return filepath.Join(GetDeckLibraryPath(), deckName)
}

// GetDeckPath returns the path to a saved deck, either in the deck
// library or as a relative path
func GetDeckPath(deckName string) (string, error) {
	// First, try to find the deck in the deck library
	deckPath := SavedDeckPath(deckName)
	if _, err := os.Stat(deckPath); err == nil {
		return deckPath, nil
	}

	// If not found in the library, treat as a relative path
	if _, err := os.Stat(deckName); err == nil {
		return deckName, nil
	}

	return "", fmt.Errorf("deck not found: %s", deckName)
}

// GetDefaultDeck returns the default deck name from config
func GetDefaultDeck() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}

	return config.DefaultDeck, nil
}

// SetDefaultDeck sets the default deck in the config
func SetDefaultDeck(deckName string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.DefaultDeck = deckName

	return writeConfig(config)
}

// GetHandSize returns the default hand size from config
func GetHandSize() (int, error) {
	config, err := LoadConfig()
	if err != nil {
		return 0, err
	}

	return config.HandSize, nil
}
