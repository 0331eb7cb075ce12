package srs

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dueCard(key string, due time.Time, status Status) Card {
	return Card{
		Key:  key,
		Word: key,
		Scheduling: &Scheduling{
			Interval: 3,
			Status:   status,
			Due:      due,
		},
	}
}

func newStatusCard(key string, frequency int) Card {
	card := NewCard(key, key, "meaning of "+key, frequency)
	return card
}

func TestDueCards(t *testing.T) {
	now := testNow

	t.Run("due cards sorted ascending by due date", func(t *testing.T) {
		cards := []Card{
			dueCard("later", now.Add(-time.Hour), StatusLearning),
			dueCard("earliest", now.AddDate(0, 0, -2), StatusLearning),
			dueCard("middle", now.AddDate(0, 0, -1), StatusRelearning),
		}

		queue := DueCards(cards, QueueOptions{}, now)

		require.Len(t, queue, 3)
		assert.Equal(t, "earliest", queue[0].Key)
		assert.Equal(t, "middle", queue[1].Key)
		assert.Equal(t, "later", queue[2].Key)
	})

	t.Run("new cards capped and ordered by frequency", func(t *testing.T) {
		var cards []Card
		for freq := 1; freq <= 10; freq++ {
			cards = append(cards, newStatusCard(fmt.Sprintf("word-%d", freq), freq))
		}

		queue := DueCards(cards, QueueOptions{MaxNew: 3}, now)

		require.Len(t, queue, 3)
		assert.Equal(t, "word-10", queue[0].Key)
		assert.Equal(t, "word-9", queue[1].Key)
		assert.Equal(t, "word-8", queue[2].Key)
	})

	t.Run("frequency ties keep input order", func(t *testing.T) {
		cards := []Card{
			newStatusCard("first", 5),
			newStatusCard("second", 5),
			newStatusCard("third", 5),
		}

		queue := DueCards(cards, QueueOptions{MaxNew: 3}, now)

		require.Len(t, queue, 3)
		assert.Equal(t, "first", queue[0].Key)
		assert.Equal(t, "second", queue[1].Key)
		assert.Equal(t, "third", queue[2].Key)
	})

	t.Run("due cards precede new cards", func(t *testing.T) {
		cards := []Card{
			newStatusCard("fresh", 10),
			dueCard("overdue", now.Add(-time.Minute), StatusLearning),
		}

		queue := DueCards(cards, QueueOptions{MaxNew: 5}, now)

		require.Len(t, queue, 2)
		assert.Equal(t, "overdue", queue[0].Key)
		assert.Equal(t, "fresh", queue[1].Key)
	})

	t.Run("negative max new means no new cards", func(t *testing.T) {
		cards := []Card{newStatusCard("fresh", 10)}

		queue := DueCards(cards, QueueOptions{MaxNew: -1}, now)

		assert.Empty(t, queue)
	})

	t.Run("cards without scheduling state are skipped", func(t *testing.T) {
		cards := []Card{
			{Key: "bare", Word: "bare"},
			dueCard("scheduled", now.Add(-time.Minute), StatusLearning),
		}

		queue := DueCards(cards, QueueOptions{MaxNew: 5}, now)

		require.Len(t, queue, 1)
		assert.Equal(t, "scheduled", queue[0].Key)
	})

	t.Run("waiting fallback only when base queue is empty", func(t *testing.T) {
		waiting := []Card{
			dueCard("soon-b", now.Add(10*time.Minute), StatusLearning),
			dueCard("soon-a", now.Add(time.Minute), StatusRelearning),
			dueCard("next-week", now.AddDate(0, 0, 6), StatusLearning),
		}

		queue := DueCards(waiting, QueueOptions{IncludeWaiting: true}, now)

		require.Len(t, queue, 2)
		assert.Equal(t, "soon-a", queue[0].Key)
		assert.Equal(t, "soon-b", queue[1].Key)

		withDue := append([]Card{dueCard("overdue", now.Add(-time.Minute), StatusLearning)}, waiting...)
		queue = DueCards(withDue, QueueOptions{IncludeWaiting: true}, now)
		require.Len(t, queue, 1)
		assert.Equal(t, "overdue", queue[0].Key)
	})

	t.Run("waiting fallback disabled returns empty queue", func(t *testing.T) {
		cards := []Card{dueCard("soon", now.Add(time.Minute), StatusLearning)}

		queue := DueCards(cards, QueueOptions{}, now)

		assert.Empty(t, queue)
	})
}
