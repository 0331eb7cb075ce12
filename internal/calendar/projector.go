// Package calendar projects the card pool onto a multi-day review calendar:
// for each of the next eight days, which cards come due.
package calendar

import (
	"time"

	"github.com/tangolearn/tango/internal/srs"
)

// Horizon is how many days the projection covers, today included.
const Horizon = 8

// Day is one bucket of the projection.
type Day struct {
	Date    time.Time  `json:"date"`
	Cards   []srs.Card `json:"cards"`
	DayName string     `json:"dayName"`
	DateStr string     `json:"dateStr"`
}

// Project buckets every known card by the calendar day it is next due,
// covering today through day+7. The candidate set merges the session queue,
// the cards processed this session, and the rest of the pool, deduplicated
// by sense key in that priority order. Cards due beyond the horizon, and
// cards without scheduling state, appear in no bucket.
func Project(dueCards, pool, processed []srs.Card, now time.Time) []Day {
	candidates := merge(dueCards, processed, pool)

	today := srs.StartOfDay(now)
	days := make([]Day, Horizon)
	for i := range days {
		date := today.AddDate(0, 0, i)
		days[i] = Day{
			Date:    date,
			DayName: dayName(i, date),
			DateStr: date.Format("Jan 2"),
		}
	}

	for _, card := range candidates {
		if !card.Schedulable() || card.Scheduling.Due.IsZero() {
			continue
		}
		offset := daysFromToday(today, card.Scheduling.Due)
		if offset < 0 || offset >= Horizon {
			continue
		}
		days[offset].Cards = append(days[offset].Cards, card)
	}

	return days
}

// merge concatenates the card lists, keeping the first occurrence of each
// sense key.
func merge(lists ...[]srs.Card) []srs.Card {
	seen := make(map[string]struct{})
	var out []srs.Card
	for _, list := range lists {
		for _, card := range list {
			if _, ok := seen[card.Key]; ok {
				continue
			}
			seen[card.Key] = struct{}{}
			out = append(out, card)
		}
	}
	return out
}

func dayName(offset int, date time.Time) string {
	switch offset {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	default:
		return date.Weekday().String()
	}
}

func daysFromToday(today time.Time, due time.Time) int {
	dueDay := srs.StartOfDay(due)
	return int(dueDay.Sub(today).Round(24*time.Hour).Hours() / 24)
}
