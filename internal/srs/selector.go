package srs

import (
	"sort"
	"time"
)

// waitingWindow is how far ahead a learning/relearning card may be due and
// still count as "waiting": close enough that a session should not end just
// because of a few-minutes gap.
const waitingWindow = 24 * time.Hour

// QueueOptions configures DueCards.
type QueueOptions struct {
	// MaxNew caps how many new cards enter the queue. Negative values are
	// treated as zero.
	MaxNew int
	// IncludeWaiting falls back to soon-due learning cards when the base
	// queue is empty.
	IncludeWaiting bool
}

// DueCards builds the ordered review queue for a session: cards strictly due
// (ascending by due date) followed by up to MaxNew new cards (descending by
// frequency, stable on ties). Cards without scheduling state are skipped.
//
// When IncludeWaiting is set and the base queue is empty, the queue instead
// holds learning/relearning cards due within the next 24 hours, ascending by
// due date. The result is deterministic for a fixed now and input order.
func DueCards(cards []Card, opts QueueOptions, now time.Time) []Card {
	var strictlyDue, newCards, waiting []Card

	for _, card := range cards {
		if !card.Schedulable() {
			continue
		}
		s := card.Scheduling
		switch {
		case s.Status == StatusNew:
			newCards = append(newCards, card)
		case !s.Due.After(now):
			strictlyDue = append(strictlyDue, card)
		case (s.Status == StatusLearning || s.Status == StatusRelearning) &&
			s.Due.Sub(now) < waitingWindow:
			waiting = append(waiting, card)
		}
	}

	sort.SliceStable(strictlyDue, func(i, j int) bool {
		return strictlyDue[i].Scheduling.Due.Before(strictlyDue[j].Scheduling.Due)
	})
	sort.SliceStable(newCards, func(i, j int) bool {
		return newCards[i].Frequency > newCards[j].Frequency
	})

	maxNew := opts.MaxNew
	if maxNew < 0 {
		maxNew = 0
	}
	if maxNew > len(newCards) {
		maxNew = len(newCards)
	}

	queue := make([]Card, 0, len(strictlyDue)+maxNew)
	queue = append(queue, strictlyDue...)
	queue = append(queue, newCards[:maxNew]...)

	if len(queue) == 0 && opts.IncludeWaiting {
		sort.SliceStable(waiting, func(i, j int) bool {
			return waiting[i].Scheduling.Due.Before(waiting[j].Scheduling.Due)
		})
		return waiting
	}

	return queue
}
