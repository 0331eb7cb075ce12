package main

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/tangolearn/tango/internal/config"
	"github.com/tangolearn/tango/internal/database"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func openDatabase(cfg *config.Config) (*sqlx.DB, error) {
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database.Open() > %w", err)
	}
	return db, nil
}
