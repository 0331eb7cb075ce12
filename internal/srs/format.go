package srs

import "time"

// dayLabel maps a midnight-to-midnight day count onto the interval table's
// day buckets. Buckets are matched from the largest threshold downward so an
// in-between count reports the bucket it has passed, not the one ahead:
// 45 days is "1 month", not "2 months".
var dayLabels = []struct {
	days  int
	label string
}{
	{120, "4 months"},
	{60, "2 months"},
	{30, "1 month"},
	{14, "2 weeks"},
	{7, "1 week"},
	{3, "3 days"},
	{1, "1 day"},
}

// FormatNextReview renders a due timestamp as a human bucket label relative
// to now. Due or overdue cards report "Now". Minute intervals carry tolerance
// windows to absorb processing-time jitter between scheduling and display.
// Day counts compare calendar days, so a card due tomorrow reports "1 day"
// regardless of the hour it was scheduled.
func FormatNextReview(due, now time.Time) string {
	if !due.After(now) {
		return "Now"
	}

	days := daysBetween(now, due)
	if days >= 1 {
		for _, bucket := range dayLabels {
			if days >= bucket.days {
				return bucket.label
			}
		}
		return "1 day"
	}

	minutes := due.Sub(now).Minutes()
	switch {
	case minutes <= 1:
		return "1 min"
	case minutes >= 9 && minutes <= 11:
		return "10 min"
	case minutes < 5.5:
		// Round to the nearest defined minute bucket.
		return "1 min"
	default:
		return "10 min"
	}
}

// daysBetween returns the count of midnight boundaries between a and b.
// Rounding absorbs the off-by-an-hour deltas DST transitions introduce.
func daysBetween(a, b time.Time) int {
	start := StartOfDay(a)
	end := StartOfDay(b)
	return int(end.Sub(start).Round(24*time.Hour).Hours() / 24)
}
