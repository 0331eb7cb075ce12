package words

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tangolearn/tango/internal/srs"
)

// Deck is a YAML file of word senses a learner can add to their collection.
type Deck struct {
	Name  string      `yaml:"name"`
	Cards []DeckEntry `yaml:"cards"`
}

// DeckEntry is one sense in a deck file. Key defaults to the word when a
// deck carries a single sense per word.
type DeckEntry struct {
	Key       string `yaml:"key,omitempty"`
	Word      string `yaml:"word"`
	Meaning   string `yaml:"meaning"`
	Frequency int    `yaml:"frequency"`
}

// SenseKey returns the stable identifier for the entry.
func (e DeckEntry) SenseKey() string {
	if e.Key != "" {
		return e.Key
	}
	return e.Word
}

func readDeckFile(path string) (Deck, error) {
	var deck Deck

	file, err := os.Open(path)
	if err != nil {
		return deck, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := yaml.NewDecoder(file).Decode(&deck); err != nil {
		return deck, fmt.Errorf("yaml.NewDecoder().Decode() > %w", err)
	}
	return deck, nil
}

// LoadDecks loads every .yml deck file under the directory, keyed by the
// deck name (falling back to the file basename).
func LoadDecks(dir string) (map[string]Deck, error) {
	decks := make(map[string]Deck)

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || (filepath.Ext(path) != ".yml" && filepath.Ext(path) != ".yaml") {
			return nil
		}

		deck, err := readDeckFile(path)
		if err != nil {
			return fmt.Errorf("readDeckFile(%s) > %w", path, err)
		}
		if deck.Name == "" {
			deck.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		decks[deck.Name] = deck
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("filepath.Walk(%s) > %w", dir, err)
	}

	return decks, nil
}

// Import adds the deck's senses to the store as new cards. Senses already in
// the store keep their scheduling state; only their word, meaning, and
// frequency are refreshed. Returns the number of cards added.
func Import(ctx context.Context, store Store, deck Deck) (int, error) {
	added := 0
	for _, entry := range deck.Cards {
		key := entry.SenseKey()

		existing, err := store.Get(ctx, key)
		if err != nil {
			return added, fmt.Errorf("store.Get(%s) > %w", key, err)
		}

		card := srs.NewCard(key, entry.Word, entry.Meaning, entry.Frequency)
		if existing != nil {
			card.Scheduling = existing.Scheduling
		} else {
			added++
		}

		if err := store.Put(ctx, card); err != nil {
			return added, fmt.Errorf("store.Put(%s) > %w", key, err)
		}
	}
	return added, nil
}
