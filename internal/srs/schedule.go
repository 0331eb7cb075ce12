package srs

import "time"

const (
	// MinInterval and MaxInterval bound the interval table index.
	MinInterval = 1
	MaxInterval = 9
)

// intervalStep describes one entry of the fixed interval table. Steps 1-2
// are minute-granularity offsets from the answer time; steps 3-9 are
// day-granularity and due at local midnight of the target day, so the card
// is due at any time on that calendar day.
type intervalStep struct {
	offset time.Duration
	days   int
}

var intervalTable = [MaxInterval + 1]intervalStep{
	1: {offset: time.Minute},
	2: {offset: 10 * time.Minute},
	3: {days: 1},
	4: {days: 3},
	5: {days: 7},
	6: {days: 14},
	7: {days: 30},
	8: {days: 60},
	9: {days: 120},
}

// DueAfter returns the due time for the given interval index, answered at
// the given time. Indexes outside [MinInterval, MaxInterval] are clamped.
func DueAfter(interval int, answeredAt time.Time) time.Time {
	interval = ClampInterval(interval)
	step := intervalTable[interval]
	if step.days == 0 {
		return answeredAt.Add(step.offset)
	}
	return StartOfDay(answeredAt.AddDate(0, 0, step.days))
}

// ClampInterval clamps an interval index into [MinInterval, MaxInterval].
func ClampInterval(interval int) int {
	if interval < MinInterval {
		return MinInterval
	}
	if interval > MaxInterval {
		return MaxInterval
	}
	return interval
}

// MinuteGranularity reports whether the interval is still a minute-level
// learning step. A card graduates out of the active session queue once its
// interval reaches day granularity.
func MinuteGranularity(interval int) bool {
	return interval <= 2
}

// StartOfDay returns local midnight of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last instant of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// NextReview computes the scheduling state after a learner answers a card.
// It is a total function: a card without scheduling state is treated as new
// with an unset interval. The same rules apply whether or not the card was
// new; the first answer simply clears IsNew.
func NextReview(card Card, answer Answer, now time.Time) Scheduling {
	var s Scheduling
	if card.Scheduling != nil {
		s = *card.Scheduling
	}
	if s.Interval < MinInterval {
		s.Interval = MinInterval
	}

	s.IsNew = false
	s.LastReviewed = now

	switch answer {
	case AnswerIncorrect:
		s.GotWrongThisSession = true
		s.Interval = MinInterval
	case AnswerEasy:
		s.GotWrongThisSession = false
		s.Interval += 2
	default: // correct
		s.GotWrongThisSession = false
		s.Interval++
	}
	s.Interval = ClampInterval(s.Interval)

	s.Due = DueAfter(s.Interval, now)

	// StatusReview is never produced here; see the Status transition table.
	if s.GotWrongThisSession {
		s.Status = StatusRelearning
	} else {
		s.Status = StatusLearning
	}

	if answer.IsCorrect() {
		s.CorrectCount++
	} else {
		s.IncorrectCount++
	}

	return s
}
