package domain

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time within a calendar day.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay accepts exactly "HH:MM" with two digits each,
// HH in 00..23 and MM in 00..59.
func ParseTimeOfDay(text string) (TimeOfDay, error) {
	if len(text) != 5 || text[2] != ':' {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, text)
	}

	hour, ok := parseTwoDigits(text[0:2])
	if !ok || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("%w: hour out of range in %q", ErrInvalidTimeFormat, text)
	}

	minute, ok := parseTwoDigits(text[3:5])
	if !ok || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: minute out of range in %q", ErrInvalidTimeFormat, text)
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

func parseTwoDigits(s string) (int, bool) {
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) Compare(other TimeOfDay) int {
	a := t.Hour*60 + t.Minute
	b := other.Hour*60 + other.Minute
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Compare(other) < 0
}

// On returns the instant of t on date in loc, shifted back by leadMinutes.
// Minute overflow is normalized by time.Date, so a lead that crosses
// midnight lands on the previous calendar day.
func (t TimeOfDay) On(date Date, loc *time.Location, leadMinutes int) time.Time {
	return time.Date(date.Year, date.Month, date.Day, t.Hour, t.Minute-leadMinutes, 0, 0, loc)
}
