package domain

import (
	"testing"
	"time"
)

func TestNewNotification(t *testing.T) {
	date := Date{2024, time.March, 10}
	tod := TimeOfDay{Hour: 8, Minute: 0}

	tests := []struct {
		name     string
		med      *Medication
		wantBody string
	}{
		{
			name:     "with dosage and instructions",
			med:      &Medication{ID: 1, Name: "Aspirin", DosageAmount: "100", DosageUnit: "mg", Instructions: "Take with food"},
			wantBody: "100 mg at 08:00\nTake with food",
		},
		{
			name:     "without dosage",
			med:      &Medication{ID: 2, Name: "Vitamin D"},
			wantBody: "Scheduled at 08:00\nTime to take your medication",
		},
		{
			name:     "dosage without unit",
			med:      &Medication{ID: 3, Name: "Drops", DosageAmount: "2"},
			wantBody: "2 at 08:00\nTime to take your medication",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNotification(tt.med, tod, date)
			if n.Title != tt.med.Name {
				t.Errorf("title: got %q, want %q", n.Title, tt.med.Name)
			}
			if n.Body != tt.wantBody {
				t.Errorf("body: got %q, want %q", n.Body, tt.wantBody)
			}
			if n.MedicationID != tt.med.ID || n.Date != date || n.TimeOfDay != tod {
				t.Errorf("unexpected identity fields: %+v", n)
			}
		})
	}
}

func TestSplitScheduleTimes(t *testing.T) {
	got := SplitScheduleTimes(" 08:00, 20:00,,")
	if len(got) != 2 || got[0] != "08:00" || got[1] != "20:00" {
		t.Errorf("got %v", got)
	}
	if got := SplitScheduleTimes(""); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
	if JoinScheduleTimes([]string{"08:00", "20:00"}) != "08:00,20:00" {
		t.Error("unexpected join result")
	}
}
