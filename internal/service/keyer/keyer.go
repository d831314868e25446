package keyer

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

const keyPrefix = "occ-"

// namespace scopes occurrence keys so they never collide with other name-based UUIDs.
var namespace = uuid.MustParse("5b0d6f4e-3c2a-4f7e-9a51-8e2c1d7b6a30")

// DeriveKey returns a stable key for one reminder of medicationID at
// timeOfDay on date. Equal inputs always give equal keys, across processes.
// A time that parses is canonicalized to HH:MM first; anything else is
// keyed on its raw text.
func DeriveKey(medicationID int64, timeOfDay string, date domain.Date) domain.OccurrenceKey {
	return domain.OccurrenceKey(keyPrefix + uuid.NewSHA1(namespace, []byte(Canonical(medicationID, timeOfDay, date))).String())
}

// KeyFor derives the key of an occurrence.
func KeyFor(occ domain.Occurrence) domain.OccurrenceKey {
	return DeriveKey(occ.MedicationID, occ.TimeOfDay.String(), occ.Date)
}

// Canonical is the delimited string the key is hashed from.
func Canonical(medicationID int64, timeOfDay string, date domain.Date) string {
	if tod, err := domain.ParseTimeOfDay(timeOfDay); err == nil {
		timeOfDay = tod.String()
	}
	return fmt.Sprintf("med=%d|time=%s|date=%s", medicationID, timeOfDay, date)
}
