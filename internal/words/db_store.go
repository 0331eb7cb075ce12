package words

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tangolearn/tango/internal/srs"
)

// DBStore implements Store using MySQL. The legacy due_date/next_review_date
// column pair is kept in sync on write; due_date is canonical on read.
type DBStore struct {
	db *sqlx.DB
}

// NewDBStore creates a new DBStore.
func NewDBStore(db *sqlx.DB) *DBStore {
	return &DBStore{db: db}
}

type cardRow struct {
	SenseKey       string       `db:"sense_key"`
	Word           string       `db:"word"`
	Meaning        string       `db:"meaning"`
	Frequency      int          `db:"frequency"`
	IsNew          bool         `db:"is_new"`
	GotWrong       bool         `db:"got_wrong_this_session"`
	Interval       int          `db:"srs_interval"`
	Status         string       `db:"status"`
	CorrectCount   int          `db:"correct_count"`
	IncorrectCount int          `db:"incorrect_count"`
	DueDate        sql.NullTime `db:"due_date"`
	NextReviewDate sql.NullTime `db:"next_review_date"`
	LastReviewDate sql.NullTime `db:"last_review_date"`
}

const cardColumns = `sense_key, word, meaning, frequency, is_new, got_wrong_this_session,
	srs_interval, status, correct_count, incorrect_count, due_date, next_review_date, last_review_date`

func (row cardRow) toCard() srs.Card {
	card := srs.Card{
		Key:       row.SenseKey,
		Word:      row.Word,
		Meaning:   row.Meaning,
		Frequency: row.Frequency,
	}
	scheduling := srs.Scheduling{
		IsNew:               row.IsNew,
		GotWrongThisSession: row.GotWrong,
		Interval:            row.Interval,
		Status:              srs.Status(row.Status),
		CorrectCount:        row.CorrectCount,
		IncorrectCount:      row.IncorrectCount,
	}
	if row.DueDate.Valid {
		scheduling.Due = row.DueDate.Time
	} else if row.NextReviewDate.Valid {
		scheduling.Due = row.NextReviewDate.Time
	}
	if row.LastReviewDate.Valid {
		scheduling.LastReviewed = row.LastReviewDate.Time
	}
	card.Scheduling = &scheduling
	return card
}

func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}

// All returns all cards ordered by insertion.
func (s *DBStore) All(ctx context.Context) ([]srs.Card, error) {
	var rows []cardRow
	if err := s.db.SelectContext(ctx, &rows,
		"SELECT "+cardColumns+" FROM cards ORDER BY id"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(cards) > %w", err)
	}

	cards := make([]srs.Card, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, row.toCard())
	}
	return cards, nil
}

// Get returns the card for the given sense key, or nil if not found.
func (s *DBStore) Get(ctx context.Context, key string) (*srs.Card, error) {
	var row cardRow
	err := s.db.GetContext(ctx, &row,
		"SELECT "+cardColumns+" FROM cards WHERE sense_key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(card %s) > %w", key, err)
	}
	card := row.toCard()
	return &card, nil
}

// Put inserts or replaces the card under its sense key.
func (s *DBStore) Put(ctx context.Context, card srs.Card) error {
	var scheduling srs.Scheduling
	if card.Scheduling != nil {
		scheduling = *card.Scheduling
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO cards (sense_key, word, meaning, frequency, is_new, got_wrong_this_session,
			srs_interval, status, correct_count, incorrect_count, due_date, next_review_date, last_review_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			word = VALUES(word), meaning = VALUES(meaning), frequency = VALUES(frequency),
			is_new = VALUES(is_new), got_wrong_this_session = VALUES(got_wrong_this_session),
			srs_interval = VALUES(srs_interval), status = VALUES(status),
			correct_count = VALUES(correct_count), incorrect_count = VALUES(incorrect_count),
			due_date = VALUES(due_date), next_review_date = VALUES(next_review_date),
			last_review_date = VALUES(last_review_date)`,
		card.Key, card.Word, card.Meaning, card.Frequency,
		scheduling.IsNew, scheduling.GotWrongThisSession,
		scheduling.Interval, string(scheduling.Status),
		scheduling.CorrectCount, scheduling.IncorrectCount,
		nullTime(scheduling.Due), nullTime(scheduling.Due), nullTime(scheduling.LastReviewed))
	if err != nil {
		return fmt.Errorf("db.ExecContext(upsert card %s) > %w", card.Key, err)
	}
	return nil
}
