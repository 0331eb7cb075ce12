// Package session owns the per-session review queue and the answer protocol:
// one controller call per learner action, mutating the queue through a single
// entry point guarded against reentrant marks.
package session

import "github.com/tangolearn/tango/internal/srs"

// Counts are the live category tallies shown in the session header.
type Counts struct {
	New      int `json:"newCount"`
	Learning int `json:"learningCount"`
	Review   int `json:"reviewCount"`
}

// Stats accumulate over one session.
type Stats struct {
	CardsReviewed  int `json:"cardsReviewed"`
	CorrectAnswers int `json:"correctAnswers"`
}

// Settings are the daily quotas the controller reads. They arrive validated
// from the settings store; the controller does not re-validate.
type Settings struct {
	NewCardsPerDay   int
	MaxReviewsPerDay int
}

// category buckets a card for the header tallies.
func category(s *srs.Scheduling) string {
	switch {
	case s == nil:
		return ""
	case s.IsNew:
		return "new"
	case s.Status == srs.StatusReview:
		return "review"
	default:
		return "learning"
	}
}

func (c *Counts) add(cat string, delta int) {
	switch cat {
	case "new":
		c.New += delta
		if c.New < 0 {
			c.New = 0
		}
	case "learning":
		c.Learning += delta
		if c.Learning < 0 {
			c.Learning = 0
		}
	case "review":
		c.Review += delta
		if c.Review < 0 {
			c.Review = 0
		}
	}
}

// countQueue tallies a freshly selected queue.
func countQueue(cards []srs.Card) Counts {
	var counts Counts
	for _, card := range cards {
		counts.add(category(card.Scheduling), 1)
	}
	return counts
}
