package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/tangolearn/tango/internal/calendar"
)

// CalendarView renders the eight-day review projection for the terminal and
// for markdown export.
type CalendarView struct {
	stdoutWriter io.Writer
	bold         *color.Color
	faint        *color.Color
}

// NewCalendarView creates a CalendarView writing to stdout.
func NewCalendarView() *CalendarView {
	return &CalendarView{
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
		faint:        color.New(color.Faint),
	}
}

// Print writes the projection as a terminal table.
func (v *CalendarView) Print(days []calendar.Day) {
	_, _ = v.bold.Fprintln(v.stdoutWriter, "Upcoming reviews")
	for _, day := range days {
		fmt.Fprintf(v.stdoutWriter, "%-9s %-7s %3d card(s)\n", day.DayName, day.DateStr, len(day.Cards))
		if len(day.Cards) == 0 {
			continue
		}
		words := make([]string, 0, len(day.Cards))
		for _, card := range day.Cards {
			words = append(words, card.Word)
		}
		_, _ = v.faint.Fprintf(v.stdoutWriter, "          %s\n", strings.Join(words, ", "))
	}
}

// Markdown renders the projection as a markdown document for PDF export.
func Markdown(days []calendar.Day) []byte {
	var b strings.Builder
	b.WriteString("# Upcoming reviews\n\n")
	b.WriteString("| Day | Date | Cards | Words |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, day := range days {
		words := make([]string, 0, len(day.Cards))
		for _, card := range day.Cards {
			words = append(words, card.Word)
		}
		fmt.Fprintf(&b, "| %s | %s | %d | %s |\n",
			day.DayName, day.DateStr, len(day.Cards), strings.Join(words, ", "))
	}
	return []byte(b.String())
}
