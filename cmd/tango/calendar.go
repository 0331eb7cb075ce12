package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tangolearn/tango/internal/calendar"
	"github.com/tangolearn/tango/internal/cli"
	"github.com/tangolearn/tango/internal/pdf"
	"github.com/tangolearn/tango/internal/words"
)

func newCalendarCommand() *cobra.Command {
	var pdfPath string

	command := &cobra.Command{
		Use:   "calendar",
		Short: "Show when cards come due over the next eight days",
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

			pool, err := words.NewDBStore(db).All(cmd.Context())
			if err != nil {
				return fmt.Errorf("store.All() > %w", err)
			}

			days := calendar.Project(nil, pool, nil, time.Now())
			if pdfPath != "" {
				written, err := pdf.RenderMarkdown(cli.Markdown(days), pdfPath)
				if err != nil {
					return fmt.Errorf("pdf.RenderMarkdown() > %w", err)
				}
				fmt.Printf("Calendar written to %s\n", written)
				return nil
			}

			cli.NewCalendarView().Print(days)
			return nil
		},
	}
	command.Flags().StringVar(&pdfPath, "pdf", "", "write the calendar to a PDF file instead of stdout")

	return command
}
