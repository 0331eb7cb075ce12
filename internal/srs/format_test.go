package srs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatNextReview(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.Local)

	tests := []struct {
		name string
		due  time.Time
		want string
	}{
		{name: "overdue", due: now.Add(-time.Hour), want: "Now"},
		{name: "due exactly now", due: now, want: "Now"},
		{name: "one minute", due: now.Add(time.Minute), want: "1 min"},
		{name: "forty seconds rounds to one minute", due: now.Add(40 * time.Second), want: "1 min"},
		{name: "nine minutes within tolerance", due: now.Add(9 * time.Minute), want: "10 min"},
		{name: "ten minutes", due: now.Add(10 * time.Minute), want: "10 min"},
		{name: "eleven minutes within tolerance", due: now.Add(11 * time.Minute), want: "10 min"},
		{name: "three minutes nearest one minute", due: now.Add(3 * time.Minute), want: "1 min"},
		{name: "seven minutes nearest ten minutes", due: now.Add(7 * time.Minute), want: "10 min"},
		{name: "tomorrow early morning still one day", due: StartOfDay(now.AddDate(0, 0, 1)).Add(time.Hour), want: "1 day"},
		{name: "tomorrow late evening still one day", due: StartOfDay(now.AddDate(0, 0, 1)).Add(23 * time.Hour), want: "1 day"},
		{name: "three days", due: StartOfDay(now.AddDate(0, 0, 3)), want: "3 days"},
		{name: "five days reports three days bucket", due: StartOfDay(now.AddDate(0, 0, 5)), want: "3 days"},
		{name: "one week", due: StartOfDay(now.AddDate(0, 0, 7)), want: "1 week"},
		{name: "two weeks", due: StartOfDay(now.AddDate(0, 0, 14)), want: "2 weeks"},
		{name: "one month", due: StartOfDay(now.AddDate(0, 0, 30)), want: "1 month"},
		{name: "forty five days reports one month", due: StartOfDay(now.AddDate(0, 0, 45)), want: "1 month"},
		{name: "two months", due: StartOfDay(now.AddDate(0, 0, 60)), want: "2 months"},
		{name: "ninety days reports two months", due: StartOfDay(now.AddDate(0, 0, 90)), want: "2 months"},
		{name: "four months", due: StartOfDay(now.AddDate(0, 0, 120)), want: "4 months"},
		{name: "beyond the table stays four months", due: StartOfDay(now.AddDate(0, 0, 365)), want: "4 months"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatNextReview(tc.due, now))
		})
	}
}
