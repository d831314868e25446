package domain

import (
	"fmt"
	"strings"
)

const defaultInstructions = "Time to take your medication"

type Notification struct {
	MedicationID   int64
	MedicationName string
	Title          string
	Body           string
	TimeOfDay      TimeOfDay
	Date           Date
}

func NewNotification(med *Medication, tod TimeOfDay, date Date) *Notification {
	var body string
	if dosage := strings.TrimSpace(med.DosageAmount + " " + med.DosageUnit); med.DosageAmount != "" {
		body = fmt.Sprintf("%s at %s", dosage, tod)
	} else {
		body = fmt.Sprintf("Scheduled at %s", tod)
	}

	instructions := med.Instructions
	if instructions == "" {
		instructions = defaultInstructions
	}

	return &Notification{
		MedicationID:   med.ID,
		MedicationName: med.Name,
		Title:          med.Name,
		Body:           body + "\n" + instructions,
		TimeOfDay:      tod,
		Date:           date,
	}
}
