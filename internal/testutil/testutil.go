// Package testutil provides shared test helpers for creating config files and
// deck fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// SetupTestConfig creates a minimal config file and the deck directory for
// testing. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	decksDir := filepath.Join(tmpDir, "decks")
	require.NoError(t, os.MkdirAll(decksDir, 0755))

	configContent := fmt.Sprintf(`study:
  new_cards_per_day: 5
  max_reviews_per_day: 50
decks:
  directory: %s
server:
  port: 8080
`, decksDir)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// DeckCard is one card entry written by WriteDeckFile.
type DeckCard struct {
	Key       string `yaml:"key,omitempty"`
	Word      string `yaml:"word"`
	Meaning   string `yaml:"meaning"`
	Frequency int    `yaml:"frequency"`
}

// WriteDeckFile writes a deck YAML file with the given cards and returns its
// path.
func WriteDeckFile(t *testing.T, dir, name string, cards []DeckCard) string {
	t.Helper()

	deck := struct {
		Name  string     `yaml:"name"`
		Cards []DeckCard `yaml:"cards"`
	}{Name: name, Cards: cards}

	content, err := yaml.Marshal(deck)
	require.NoError(t, err)

	path := filepath.Join(dir, name+".yml")
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}
