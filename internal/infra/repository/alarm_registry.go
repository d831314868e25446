package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

const (
	alarmKeyPrefix           = "reminder:alarm:"
	alarmIndexKey            = "reminder:alarms"
	medicationAlarmKeyPrefix = "reminder:alarms:med:"

	// alarmRetention keeps a record around after its fire time so a late
	// fire callback can still find it.
	alarmRetention = 48 * time.Hour
	minAlarmTTL    = 1 * time.Hour
)

type alarmRecord struct {
	Key          string    `json:"key"`
	Handle       string    `json:"handle"`
	MedicationID int64     `json:"medication_id"`
	TimeOfDay    string    `json:"time_of_day"`
	Date         string    `json:"date"`
	FireAt       time.Time `json:"fire_at"`
	Kind         string    `json:"kind"`
	Precision    string    `json:"precision"`
	ScheduledAt  time.Time `json:"scheduled_at"`
}

type alarmRegistry struct {
	client *redis.Client
	now    func() time.Time
}

func NewAlarmRegistry(client *redis.Client) domain.AlarmRegistry {
	return &alarmRegistry{
		client: client,
		now:    time.Now,
	}
}

func medicationAlarmKey(medicationID int64) string {
	return medicationAlarmKeyPrefix + strconv.FormatInt(medicationID, 10)
}

func (r *alarmRegistry) Save(ctx context.Context, alarm *domain.ScheduledAlarm) error {
	if alarm == nil || alarm.Key == "" {
		return ErrInvalidAlarmData
	}

	record := alarmRecord{
		Key:          alarm.Key.String(),
		Handle:       alarm.Handle,
		MedicationID: alarm.MedicationID,
		TimeOfDay:    alarm.TimeOfDay.String(),
		Date:         alarm.Date.String(),
		FireAt:       alarm.FireAt,
		Kind:         alarm.Kind.String(),
		Precision:    string(alarm.Precision),
		ScheduledAt:  alarm.ScheduledAt,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return ErrInvalidAlarmData
	}

	ttl := alarm.FireAt.Add(alarmRetention).Sub(r.now())
	if ttl < minAlarmTTL {
		ttl = minAlarmTTL
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, alarmKeyPrefix+record.Key, data, ttl)
	pipe.SAdd(ctx, alarmIndexKey, record.Key)
	pipe.SAdd(ctx, medicationAlarmKey(alarm.MedicationID), record.Key)

	_, err = pipe.Exec(ctx)
	return err
}

func (r *alarmRegistry) Get(ctx context.Context, key domain.OccurrenceKey) (*domain.ScheduledAlarm, error) {
	data, err := r.client.Get(ctx, alarmKeyPrefix+key.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrAlarmNotFound
		}
		return nil, err
	}

	var record alarmRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidAlarmData
	}

	return record.toDomain()
}

func (r *alarmRegistry) Delete(ctx context.Context, key domain.OccurrenceKey) error {
	alarm, err := r.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrAlarmNotFound) {
			// Record expired; still drop the dangling index entry.
			return r.client.SRem(ctx, alarmIndexKey, key.String()).Err()
		}
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, alarmKeyPrefix+key.String())
	pipe.SRem(ctx, alarmIndexKey, key.String())
	pipe.SRem(ctx, medicationAlarmKey(alarm.MedicationID), key.String())

	_, err = pipe.Exec(ctx)
	return err
}

func (r *alarmRegistry) ListByMedication(ctx context.Context, medicationID int64) ([]*domain.ScheduledAlarm, error) {
	return r.listIndex(ctx, medicationAlarmKey(medicationID))
}

func (r *alarmRegistry) ListAll(ctx context.Context) ([]*domain.ScheduledAlarm, error) {
	return r.listIndex(ctx, alarmIndexKey)
}

func (r *alarmRegistry) listIndex(ctx context.Context, indexKey string) ([]*domain.ScheduledAlarm, error) {
	alarms := make([]*domain.ScheduledAlarm, 0)
	stale := make([]any, 0)

	iter := r.client.SScan(ctx, indexKey, 0, "", 0).Iterator()
	for iter.Next(ctx) {
		member := iter.Val()

		alarm, err := r.Get(ctx, domain.OccurrenceKey(member))
		if err != nil {
			if errors.Is(err, domain.ErrAlarmNotFound) {
				stale = append(stale, member)
				continue
			}
			return nil, err
		}
		alarms = append(alarms, alarm)
	}

	if err := iter.Err(); err != nil {
		return nil, err
	}

	if len(stale) > 0 {
		if err := r.client.SRem(ctx, indexKey, stale...).Err(); err != nil {
			return nil, err
		}
	}

	return alarms, nil
}

func (rec alarmRecord) toDomain() (*domain.ScheduledAlarm, error) {
	tod, err := domain.ParseTimeOfDay(rec.TimeOfDay)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAlarmData, err)
	}
	date, err := domain.ParseDate(rec.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAlarmData, err)
	}

	return &domain.ScheduledAlarm{
		Key:          domain.OccurrenceKey(rec.Key),
		Handle:       rec.Handle,
		MedicationID: rec.MedicationID,
		TimeOfDay:    tod,
		Date:         date,
		FireAt:       rec.FireAt,
		Kind:         domain.OccurrenceKind(rec.Kind),
		Precision:    domain.AlarmPrecision(rec.Precision),
		ScheduledAt:  rec.ScheduledAt,
	}, nil
}
