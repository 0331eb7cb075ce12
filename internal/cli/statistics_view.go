package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/tangolearn/tango/internal/statistics"
)

// StatisticsView prints the monthly review report.
type StatisticsView struct {
	stdoutWriter io.Writer
	bold         *color.Color
}

// NewStatisticsView creates a StatisticsView writing to stdout.
func NewStatisticsView() *StatisticsView {
	return &StatisticsView{
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
	}
}

// Print writes the per-period rows followed by the aggregate line.
func (v *StatisticsView) Print(result statistics.Result) {
	if len(result.Periods) == 0 {
		fmt.Fprintln(v.stdoutWriter, "No reviews recorded.")
		return
	}

	_, _ = v.bold.Fprintf(v.stdoutWriter, "%-9s %8s %8s %10s %5s %9s %9s\n",
		"Period", "Reviews", "Correct", "Incorrect", "New", "Relearns", "Accuracy")
	for _, period := range result.Periods {
		fmt.Fprintf(v.stdoutWriter, "%-9s %8d %8d %10d %5d %9d %8.1f%%\n",
			period.Period, period.Reviews, period.Correct, period.Incorrect,
			period.NewCards, period.Relearns, period.Accuracy()*100)
	}

	aggregate := result.Aggregate
	accuracy := 0.0
	if aggregate.Reviews > 0 {
		accuracy = float64(aggregate.Correct) / float64(aggregate.Reviews) * 100
	}
	_, _ = v.bold.Fprintf(v.stdoutWriter, "%-9s %8d %8d %10d %5d %9d %8.1f%%\n",
		"Total", aggregate.Reviews, aggregate.Correct, aggregate.Incorrect,
		aggregate.NewCards, aggregate.Relearns, accuracy)
}
