// Package words provides the word store: the collection of flashcard senses
// a learner studies, keyed by sense key. The scheduler reads cards from the
// store and writes updated scheduling state back by key; it never deletes.
package words

import (
	"context"
	"sync"

	"github.com/tangolearn/tango/internal/srs"
)

//go:generate mockgen -source=store.go -destination=../mocks/words/mock_store.go -package=mock_words Store

// Store is the word-store collaborator boundary.
type Store interface {
	// All returns every card in a stable order.
	All(ctx context.Context) ([]srs.Card, error)
	// Get returns the card for the given sense key, or nil if absent.
	Get(ctx context.Context, key string) (*srs.Card, error)
	// Put inserts or replaces the card under its sense key.
	Put(ctx context.Context, card srs.Card) error
}

// MemoryStore is an in-memory Store that preserves insertion order, so
// stable-sort tie-breaking in the selector stays deterministic.
type MemoryStore struct {
	mu    sync.RWMutex
	cards map[string]srs.Card
	order []string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cards: make(map[string]srs.Card),
	}
}

// All returns cards in insertion order.
func (s *MemoryStore) All(_ context.Context) ([]srs.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]srs.Card, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.cards[key])
	}
	return out, nil
}

// Get returns a copy of the card for key, or nil if absent.
func (s *MemoryStore) Get(_ context.Context, key string) (*srs.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	card, ok := s.cards[key]
	if !ok {
		return nil, nil
	}
	if card.Scheduling != nil {
		scheduling := *card.Scheduling
		card.Scheduling = &scheduling
	}
	return &card, nil
}

// Put inserts or replaces the card under its key.
func (s *MemoryStore) Put(_ context.Context, card srs.Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cards[card.Key]; !ok {
		s.order = append(s.order, card.Key)
	}
	s.cards[card.Key] = card
	return nil
}
