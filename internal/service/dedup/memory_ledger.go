package dedup

import (
	"context"
	"sync"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

// MemoryLedger is a process-local NotificationLedger.
type MemoryLedger struct {
	mu      sync.Mutex
	entries map[domain.Date]map[domain.OccurrenceKey]struct{}
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		entries: make(map[domain.Date]map[domain.OccurrenceKey]struct{}),
	}
}

func (l *MemoryLedger) MarkNotified(_ context.Context, date domain.Date, key domain.OccurrenceKey) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	day, ok := l.entries[date]
	if !ok {
		day = make(map[domain.OccurrenceKey]struct{})
		l.entries[date] = day
	}
	if _, seen := day[key]; seen {
		return false, nil
	}
	day[key] = struct{}{}
	return true, nil
}

func (l *MemoryLedger) IsNotified(_ context.Context, date domain.Date, key domain.OccurrenceKey) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, ok := l.entries[date][key]
	return ok, nil
}

func (l *MemoryLedger) Unmark(_ context.Context, date domain.Date, key domain.OccurrenceKey) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if day, ok := l.entries[date]; ok {
		delete(day, key)
		if len(day) == 0 {
			delete(l.entries, date)
		}
	}
	return nil
}

func (l *MemoryLedger) PurgeBefore(_ context.Context, date domain.Date) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	purged := 0
	for d, day := range l.entries {
		if d.Before(date) {
			purged += len(day)
			delete(l.entries, d)
		}
	}
	return purged, nil
}
