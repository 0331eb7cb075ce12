package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tangolearn/tango/internal/audio"
	"github.com/tangolearn/tango/internal/cli"
	"github.com/tangolearn/tango/internal/review"
	"github.com/tangolearn/tango/internal/session"
	"github.com/tangolearn/tango/internal/words"
)

func newStudyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "study",
		Short: "Start an interactive flashcard session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			controller := session.NewController(
				words.NewDBStore(db),
				audio.NewManager(),
				session.Settings{
					NewCardsPerDay:   cfg.Study.NewCardsPerDay,
					MaxReviewsPerDay: cfg.Study.MaxReviewsPerDay,
				},
				session.WithReviewLog(review.NewDBRepository(db)),
			)
			if err := controller.Start(cmd.Context()); err != nil {
				return fmt.Errorf("controller.Start() > %w", err)
			}

			if controller.Remaining() == 0 {
				fmt.Println("Nothing to review right now.")
				return nil
			}
			fmt.Printf("Starting session with %d card(s)\n\n", controller.Remaining())

			return cli.NewStudySessionCLI(controller).Run(context.Background())
		},
	}
}
