package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/tangolearn/tango/internal/calendar"
	"github.com/tangolearn/tango/internal/srs"
	"github.com/tangolearn/tango/internal/statistics"
)

func TestCalendarView_Print(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.Local)
	pool := []srs.Card{
		dueCard("eager", 3, now.AddDate(0, 0, 2)),
		dueCard("vivid", 3, now.AddDate(0, 0, 2)),
	}
	days := calendar.Project(nil, pool, nil, now)

	var output bytes.Buffer
	view := NewCalendarView()
	view.stdoutWriter = &output
	view.Print(days)

	got := output.String()
	assert.Contains(t, got, "Today")
	assert.Contains(t, got, "Tomorrow")
	assert.Contains(t, got, "2 card(s)")
	assert.Contains(t, got, "eager, vivid")
}

func TestMarkdown(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.Local)
	pool := []srs.Card{
		dueCard("eager", 3, now.AddDate(0, 0, 1)),
	}
	days := calendar.Project(nil, pool, nil, now)

	got := string(Markdown(days))
	assert.Contains(t, got, "# Upcoming reviews")
	assert.Contains(t, got, "| Day | Date | Cards | Words |")
	assert.Contains(t, got, "| Tomorrow |")
	assert.Contains(t, got, "| eager |")
}

func TestStatisticsView_PrintEmpty(t *testing.T) {
	color.NoColor = true
	var output bytes.Buffer
	view := NewStatisticsView()
	view.stdoutWriter = &output

	view.Print(statistics.Result{})
	assert.Contains(t, output.String(), "No reviews recorded.")
}
