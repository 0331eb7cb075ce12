// Package review provides review log domain models and repository interfaces.
// A review log holds one row per answered card, which the statistics package
// aggregates into per-period reports.
package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/review/mock_repository.go -package=mock_review Repository

// Log represents a single answered card.
type Log struct {
	ID         int64     `db:"id" yaml:"id"`
	SenseKey   string    `db:"sense_key" yaml:"sense_key"`
	Answer     string    `db:"answer" yaml:"answer"`
	Interval   int       `db:"srs_interval" yaml:"srs_interval"`
	Due        time.Time `db:"due_date" yaml:"due_date"`
	ReviewedAt time.Time `db:"reviewed_at" yaml:"reviewed_at"`
	CreatedAt  time.Time `db:"created_at" yaml:"created_at"`
}

// Repository defines operations for managing review logs.
type Repository interface {
	FindAll(ctx context.Context) ([]Log, error)
	FindBySense(ctx context.Context, senseKey string) ([]Log, error)
	FindLatestBySense(ctx context.Context, senseKey string) (*Log, error)
	Create(ctx context.Context, log *Log) error
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindAll returns all review logs.
func (r *DBRepository) FindAll(ctx context.Context) ([]Log, error) {
	var logs []Log
	if err := r.db.SelectContext(ctx, &logs,
		"SELECT id, sense_key, answer, srs_interval, due_date, reviewed_at, created_at FROM review_logs ORDER BY id"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(review_logs) > %w", err)
	}
	return logs, nil
}

// FindBySense returns all review logs for a sense key.
func (r *DBRepository) FindBySense(ctx context.Context, senseKey string) ([]Log, error) {
	var logs []Log
	if err := r.db.SelectContext(ctx, &logs,
		"SELECT id, sense_key, answer, srs_interval, due_date, reviewed_at, created_at FROM review_logs WHERE sense_key = ? ORDER BY reviewed_at",
		senseKey); err != nil {
		return nil, fmt.Errorf("db.SelectContext(review_logs by sense) > %w", err)
	}
	return logs, nil
}

// FindLatestBySense returns the most recent review log for a sense key, or nil if not found.
func (r *DBRepository) FindLatestBySense(ctx context.Context, senseKey string) (*Log, error) {
	var log Log
	err := r.db.GetContext(ctx, &log,
		"SELECT id, sense_key, answer, srs_interval, due_date, reviewed_at, created_at FROM review_logs WHERE sense_key = ? ORDER BY reviewed_at DESC LIMIT 1",
		senseKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(latest review_log) > %w", err)
	}
	return &log, nil
}

// Create inserts a new review log.
func (r *DBRepository) Create(ctx context.Context, log *Log) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO review_logs (sense_key, answer, srs_interval, due_date, reviewed_at)
		VALUES (?, ?, ?, ?, ?)`,
		log.SenseKey, log.Answer, log.Interval, log.Due, log.ReviewedAt)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert review_log) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	log.ID = id
	return nil
}
