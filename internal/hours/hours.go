// Package hours answers whether a local instant falls inside a store's
// configured business hours.
package hours

import (
	"fmt"
	"time"

	api "github.com/storemon/storemon/lib-storemon"
)

// Clock is a local time of day, in seconds since midnight.
type Clock int

// ParseClock parses a HH:MM:SS string.
func ParseClock(s string) (Clock, error) {
	var h, m, sec int
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err != nil {
		return 0, fmt.Errorf("invalid time of day: %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return 0, fmt.Errorf("invalid time of day: %q", s)
	}
	return Clock(h*3600 + m*60 + sec), nil
}

// ClockOf extracts the time of day from a local instant.
func ClockOf(t time.Time) Clock {
	h, m, s := t.Clock()
	return Clock(h*3600 + m*60 + s)
}

// String formats the clock as HH:MM:SS.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c/3600, c/60%60, c%60)
}

// Entry is one open interval on one weekday.
type Entry struct {
	// Weekday follows the Monday=0 ... Sunday=6 convention.
	Weekday int

	Start Clock
	End   Clock
}

// Schedule is a store's full business-hours configuration.
//
// AlwaysOpen is true iff the store has no configured entry; such a store is
// open at every instant. Entries on the same weekday are a union of
// intervals and never double count.
type Schedule struct {
	Entries    []Entry
	AlwaysOpen bool
}

// New builds a Schedule from raw business-hours rows.
// Zero rows produce an always-open schedule.
func New(entries []api.HoursEntry) (Schedule, error) {
	if len(entries) == 0 {
		return Schedule{AlwaysOpen: true}, nil
	}

	s := Schedule{Entries: make([]Entry, 0, len(entries))}
	for _, e := range entries {
		start, err := ParseClock(e.Start)
		if err != nil {
			return Schedule{}, err
		}
		end, err := ParseClock(e.End)
		if err != nil {
			return Schedule{}, err
		}
		s.Entries = append(s.Entries, Entry{
			Weekday: e.Weekday,
			Start:   start,
			End:     end,
		})
	}
	return s, nil
}

// weekday converts time.Weekday (Sunday=0) to the Monday=0 convention.
func weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// Contains reports whether the local instant falls inside business hours.
// Interval boundaries count as open.
func (s Schedule) Contains(local time.Time) bool {
	if s.AlwaysOpen {
		return true
	}

	day := weekday(local)
	c := ClockOf(local)
	for _, e := range s.Entries {
		if e.Weekday == day && e.Start <= c && c <= e.End {
			return true
		}
	}
	return false
}
