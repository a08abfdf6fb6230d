package util

import (
	"time"

	"github.com/teambition/rrule-go"
)

// DateLayout is the calendar-day format used across attendance and leave
// records.
const DateLayout = "2006-01-02"

// MondayOf returns the Monday of the week the given time falls in, truncated
// to midnight UTC. Sunday counts as the last day of the week, not the first.
func MondayOf(t time.Time) time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	day := int(d.Weekday())
	diff := 1 - day
	if day == 0 {
		diff = -6
	}
	return d.AddDate(0, 0, diff)
}

// ParseDay parses a "2006-01-02" string into a midnight-UTC time.
func ParseDay(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// DayOf formats a timestamp as its calendar day.
func DayOf(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// WorkingDaysBetween counts the Monday-to-Friday days inside the inclusive
// [start, end] interval.
func WorkingDaysBetween(start, end time.Time) (int, error) {
	if end.Before(start) {
		return 0, nil
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.DAILY,
		Dtstart:   start,
		Until:     end,
		Byweekday: []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR},
	})
	if err != nil {
		return 0, err
	}

	return len(rule.All()), nil
}
