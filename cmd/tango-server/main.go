package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/tangolearn/tango/internal/audio"
	"github.com/tangolearn/tango/internal/config"
	"github.com/tangolearn/tango/internal/database"
	"github.com/tangolearn/tango/internal/review"
	"github.com/tangolearn/tango/internal/server"
	"github.com/tangolearn/tango/internal/session"
	"github.com/tangolearn/tango/internal/srs"
	"github.com/tangolearn/tango/internal/words"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Open() > %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	store := words.NewDBStore(db)
	logs := review.NewDBRepository(db)
	controller := session.NewController(
		store,
		audio.NewManager(),
		session.Settings{
			NewCardsPerDay:   cfg.Study.NewCardsPerDay,
			MaxReviewsPerDay: cfg.Study.MaxReviewsPerDay,
		},
		session.WithReviewLog(logs),
	)
	if err := controller.Start(ctx); err != nil {
		return fmt.Errorf("controller.Start() > %w", err)
	}

	handler := server.NewStudyHandler(controller, store, logs, srs.SystemClock(), logger)
	router := server.NewRouter(handler, logger)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	return server.Run(ctx, router, addr, logger)
}

func loadConfig() (*config.Config, error) {
	return config.Load(os.Getenv("TANGO_CONFIG"))
}
