// Package statistics aggregates review logs into per-period reports.
package statistics

import (
	"fmt"
	"sort"

	"github.com/tangolearn/tango/internal/review"
)

// PeriodStatistics holds statistics for one month.
type PeriodStatistics struct {
	Period    string // "2026-03"
	Reviews   int    // total answers recorded
	Correct   int    // answers graded correct or easy
	Incorrect int    // answers graded incorrect
	NewCards  int    // senses answered for the first time in this period
	Relearns  int    // incorrect answers on previously seen senses
}

// Accuracy returns the share of correct answers, or 0 with no reviews.
func (s PeriodStatistics) Accuracy() float64 {
	if s.Reviews == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Reviews)
}

// AggregateStatistics holds totals across all periods.
type AggregateStatistics struct {
	Reviews   int
	Correct   int
	Incorrect int
	NewCards  int
	Relearns  int
}

// Result holds both per-period and aggregate statistics.
type Result struct {
	Periods   []PeriodStatistics
	Aggregate AggregateStatistics
}

// Calculate aggregates review logs into monthly statistics. Optional year
// and month filters restrict the output (0 means no filter). A sense counts
// as a new card in the period of its first recorded answer; an incorrect
// answer on an already-seen sense counts as a relearn.
func Calculate(logs []review.Log, year, month int) Result {
	sorted := make([]review.Log, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ReviewedAt.Before(sorted[j].ReviewedAt)
	})

	periods := make(map[string]*PeriodStatistics)
	seen := make(map[string]struct{})
	var aggregate AggregateStatistics

	for _, log := range sorted {
		_, alreadySeen := seen[log.SenseKey]
		seen[log.SenseKey] = struct{}{}

		if year != 0 && log.ReviewedAt.Year() != year {
			continue
		}
		if month != 0 && int(log.ReviewedAt.Month()) != month {
			continue
		}

		period := fmt.Sprintf("%04d-%02d", log.ReviewedAt.Year(), log.ReviewedAt.Month())
		stats, ok := periods[period]
		if !ok {
			stats = &PeriodStatistics{Period: period}
			periods[period] = stats
		}

		stats.Reviews++
		aggregate.Reviews++
		if log.Answer == "incorrect" {
			stats.Incorrect++
			aggregate.Incorrect++
			if alreadySeen {
				stats.Relearns++
				aggregate.Relearns++
			}
		} else {
			stats.Correct++
			aggregate.Correct++
		}
		if !alreadySeen {
			stats.NewCards++
			aggregate.NewCards++
		}
	}

	result := Result{Aggregate: aggregate}
	for _, stats := range periods {
		result.Periods = append(result.Periods, *stats)
	}
	sort.Slice(result.Periods, func(i, j int) bool {
		return result.Periods[i].Period < result.Periods[j].Period
	})
	return result
}
