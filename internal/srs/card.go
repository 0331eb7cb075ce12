// Package srs implements the spaced-repetition scheduling core: the interval
// calculator, the due-card selector, and the review-time label formatter.
// All functions in this package are pure; "now" is always an explicit
// parameter so scheduling is deterministic under test.
package srs

import (
	"encoding/json"
	"time"
)

// Status is the lifecycle state of a card, derived from its scheduling state.
//
// Transitions:
//
//	new        -> learning    (first answer, correct or easy)
//	new        -> relearning  (first answer, incorrect)
//	learning   -> relearning  (incorrect)
//	relearning -> learning    (correct or easy)
//
// "review" is declared for compatibility with stored data but is never
// produced by NextReview: a card that graduates to day-granularity intervals
// keeps the "learning" label. See the transition test for this known gap.
type Status string

const (
	StatusNew        Status = "new"
	StatusLearning   Status = "learning"
	StatusRelearning Status = "relearning"
	StatusReview     Status = "review"
)

// Answer is a learner's response to a flashcard.
type Answer string

const (
	AnswerIncorrect Answer = "incorrect"
	AnswerCorrect   Answer = "correct"
	AnswerEasy      Answer = "easy"
)

// IsCorrect reports whether the answer counts as a successful recall.
func (a Answer) IsCorrect() bool {
	return a != AnswerIncorrect
}

// Card is one flashcard sense: a word plus one meaning, with attached
// scheduling state. A card without scheduling state is not schedulable and
// is skipped by the selector.
type Card struct {
	Key        string      `json:"key" yaml:"key" db:"sense_key"`
	Word       string      `json:"word" yaml:"word" db:"word"`
	Meaning    string      `json:"meaning" yaml:"meaning" db:"meaning"`
	Frequency  int         `json:"frequency" yaml:"frequency" db:"frequency"`
	Scheduling *Scheduling `json:"srsData,omitempty" yaml:"srs_data,omitempty"`
}

// NewCard creates a schedulable card in the "new" state.
func NewCard(key, word, meaning string, frequency int) Card {
	return Card{
		Key:       key,
		Word:      word,
		Meaning:   meaning,
		Frequency: frequency,
		Scheduling: &Scheduling{
			IsNew:  true,
			Status: StatusNew,
		},
	}
}

// Schedulable reports whether the card carries scheduling state.
func (c Card) Schedulable() bool {
	return c.Scheduling != nil
}

// Scheduling is the per-card scheduling state. Due is canonical; the legacy
// nextReviewDate field is emitted alongside dueDate at the JSON boundary only.
type Scheduling struct {
	IsNew               bool      `yaml:"is_new"`
	GotWrongThisSession bool      `yaml:"got_wrong_this_session,omitempty"`
	Interval            int       `yaml:"interval,omitempty"`
	Status              Status    `yaml:"status"`
	CorrectCount        int       `yaml:"correct_count,omitempty"`
	IncorrectCount      int       `yaml:"incorrect_count,omitempty"`
	Due                 time.Time `yaml:"due,omitempty"`
	LastReviewed        time.Time `yaml:"last_reviewed,omitempty"`
}

type schedulingJSON struct {
	IsNew               bool       `json:"isNew"`
	GotWrongThisSession bool       `json:"gotWrongThisSession"`
	Interval            int        `json:"SRS_interval,omitempty"`
	Status              Status     `json:"status"`
	CorrectCount        int        `json:"correctCount"`
	IncorrectCount      int        `json:"incorrectCount"`
	DueDate             *time.Time `json:"dueDate,omitempty"`
	NextReviewDate      *time.Time `json:"nextReviewDate,omitempty"`
	LastReviewDate      *time.Time `json:"lastReviewDate,omitempty"`
	LastSeen            *time.Time `json:"lastSeen,omitempty"`
}

// MarshalJSON emits the legacy wire shape, duplicating Due as both dueDate
// and nextReviewDate, and LastReviewed as both lastReviewDate and lastSeen.
func (s Scheduling) MarshalJSON() ([]byte, error) {
	out := schedulingJSON{
		IsNew:               s.IsNew,
		GotWrongThisSession: s.GotWrongThisSession,
		Interval:            s.Interval,
		Status:              s.Status,
		CorrectCount:        s.CorrectCount,
		IncorrectCount:      s.IncorrectCount,
	}
	if !s.Due.IsZero() {
		due := s.Due
		out.DueDate = &due
		next := s.Due
		out.NextReviewDate = &next
	}
	if !s.LastReviewed.IsZero() {
		last := s.LastReviewed
		out.LastReviewDate = &last
		seen := s.LastReviewed
		out.LastSeen = &seen
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts the legacy wire shape. dueDate wins over
// nextReviewDate when both are present.
func (s *Scheduling) UnmarshalJSON(data []byte) error {
	var in schedulingJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	s.IsNew = in.IsNew
	s.GotWrongThisSession = in.GotWrongThisSession
	s.Interval = in.Interval
	s.Status = in.Status
	s.CorrectCount = in.CorrectCount
	s.IncorrectCount = in.IncorrectCount
	s.Due = time.Time{}
	if in.DueDate != nil {
		s.Due = *in.DueDate
	} else if in.NextReviewDate != nil {
		s.Due = *in.NextReviewDate
	}
	s.LastReviewed = time.Time{}
	if in.LastReviewDate != nil {
		s.LastReviewed = *in.LastReviewDate
	} else if in.LastSeen != nil {
		s.LastReviewed = *in.LastSeen
	}
	return nil
}
