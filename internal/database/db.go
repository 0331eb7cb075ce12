// Package database opens the MySQL connection the card store and the review
// log repository share.
package database

import (
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/tangolearn/tango/internal/config"
)

// Open connects to MySQL with the configured credentials and pool limits.
// ParseTime is always on: scheduling state round-trips through time.Time
// columns and must not come back as []byte.
func Open(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	dsn := mysql.NewConfig()
	dsn.Net = "tcp"
	dsn.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	dsn.DBName = cfg.Database
	dsn.User = cfg.Username
	dsn.Passwd = cfg.Password
	dsn.ParseTime = true

	db, err := sqlx.Open("mysql", dsn.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open() > %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
	}

	return db, nil
}
