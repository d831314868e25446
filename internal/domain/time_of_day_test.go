package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{name: "morning", input: "08:00", want: TimeOfDay{Hour: 8, Minute: 0}},
		{name: "midnight", input: "00:00", want: TimeOfDay{Hour: 0, Minute: 0}},
		{name: "last minute", input: "23:59", want: TimeOfDay{Hour: 23, Minute: 59}},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "12:60", wantErr: true},
		{name: "both out of range", input: "25:99", wantErr: true},
		{name: "single digit hour", input: "8:00", wantErr: true},
		{name: "seconds", input: "08:00:00", wantErr: true},
		{name: "wrong separator", input: "08.00", wantErr: true},
		{name: "signed", input: "+8:00", wantErr: true},
		{name: "letters", input: "ab:cd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "padded", input: " 8:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %v", tt.input, got)
				}
				if !errors.Is(err, ErrInvalidTimeFormat) {
					t.Errorf("expected ErrInvalidTimeFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTimeOfDayString(t *testing.T) {
	tod := TimeOfDay{Hour: 7, Minute: 5}
	if got := tod.String(); got != "07:05" {
		t.Errorf("got %q, want %q", got, "07:05")
	}
}

func TestTimeOfDayCompare(t *testing.T) {
	a := TimeOfDay{Hour: 8, Minute: 0}
	b := TimeOfDay{Hour: 8, Minute: 30}

	if !a.Before(b) {
		t.Error("expected 08:00 before 08:30")
	}
	if b.Before(a) {
		t.Error("expected 08:30 not before 08:00")
	}
	if a.Compare(a) != 0 {
		t.Error("expected equal times to compare as 0")
	}
}

func TestTimeOfDayOn(t *testing.T) {
	loc := time.UTC
	date := Date{Year: 2024, Month: time.March, Day: 10}

	tests := []struct {
		name string
		tod  TimeOfDay
		lead int
		want time.Time
	}{
		{
			name: "lead within day",
			tod:  TimeOfDay{Hour: 8, Minute: 0},
			lead: 15,
			want: time.Date(2024, time.March, 10, 7, 45, 0, 0, loc),
		},
		{
			name: "lead crosses midnight",
			tod:  TimeOfDay{Hour: 0, Minute: 10},
			lead: 15,
			want: time.Date(2024, time.March, 9, 23, 55, 0, 0, loc),
		},
		{
			name: "zero lead",
			tod:  TimeOfDay{Hour: 21, Minute: 30},
			lead: 0,
			want: time.Date(2024, time.March, 10, 21, 30, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.tod.On(date, loc, tt.lead)
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
