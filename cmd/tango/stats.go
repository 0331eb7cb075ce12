package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tangolearn/tango/internal/cli"
	"github.com/tangolearn/tango/internal/review"
	"github.com/tangolearn/tango/internal/statistics"
)

// monthFlag is a calendar month flag, 0 meaning no filter.
type monthFlag int

func (m *monthFlag) Set(val string) error {
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fmt.Errorf("invalid month %q", val)
	}
	if parsed < 1 || parsed > 12 {
		return fmt.Errorf("month must be between 1 and 12, got %d", parsed)
	}
	*m = monthFlag(parsed)
	return nil
}

func (m *monthFlag) String() string {
	return strconv.Itoa(int(*m))
}

func (m *monthFlag) Type() string {
	return "month"
}

var _ pflag.Value = (*monthFlag)(nil)

func newStatsCommand() *cobra.Command {
	var year int
	var month monthFlag

	command := &cobra.Command{
		Use:   "stats",
		Short: "Show monthly review statistics",
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

			logs, err := review.NewDBRepository(db).FindAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("logs.FindAll() > %w", err)
			}

			cli.NewStatisticsView().Print(statistics.Calculate(logs, year, int(month)))
			return nil
		},
	}
	command.Flags().IntVar(&year, "year", 0, "only include reviews from this year")
	command.Flags().Var(&month, "month", "only include reviews from this month (1-12)")

	return command
}
