package domain

import (
	"testing"
	"time"
)

func TestDateAddDays(t *testing.T) {
	tests := []struct {
		name string
		date Date
		days int
		want Date
	}{
		{name: "next day", date: Date{2024, time.March, 10}, days: 1, want: Date{2024, time.March, 11}},
		{name: "month rollover", date: Date{2024, time.January, 31}, days: 1, want: Date{2024, time.February, 1}},
		{name: "leap day", date: Date{2024, time.February, 28}, days: 1, want: Date{2024, time.February, 29}},
		{name: "year rollover", date: Date{2024, time.December, 31}, days: 1, want: Date{2025, time.January, 1}},
		{name: "previous day", date: Date{2024, time.March, 1}, days: -1, want: Date{2024, time.February, 29}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.date.AddDays(tt.days); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDateOfUsesLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	instant := time.Date(2024, time.March, 10, 20, 0, 0, 0, time.UTC)

	if got := DateOf(instant.In(tokyo)); got != (Date{2024, time.March, 11}) {
		t.Errorf("got %v, want 2024-03-11", got)
	}
	if got := DateOf(instant); got != (Date{2024, time.March, 10}) {
		t.Errorf("got %v, want 2024-03-10", got)
	}
}

func TestParseDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2024-03-09")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.String() != "2024-03-09" {
		t.Errorf("got %q, want %q", d.String(), "2024-03-09")
	}

	if _, err := ParseDate("2024/03/09"); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestDateBefore(t *testing.T) {
	a := Date{2024, time.March, 9}
	b := Date{2024, time.March, 10}
	if !a.Before(b) || b.Before(a) || a.Before(a) {
		t.Error("unexpected Before ordering")
	}
}
