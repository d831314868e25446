package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

const (
	notifiedKeyPrefix = "reminder:notified:"

	notifiedTTL = 72 * time.Hour
)

type notificationLedger struct {
	client *redis.Client
}

func NewNotificationLedger(client *redis.Client) domain.NotificationLedger {
	return &notificationLedger{
		client: client,
	}
}

func notifiedKey(date domain.Date) string {
	return notifiedKeyPrefix + date.String()
}

func (l *notificationLedger) MarkNotified(ctx context.Context, date domain.Date, key domain.OccurrenceKey) (bool, error) {
	setKey := notifiedKey(date)

	pipe := l.client.TxPipeline()
	added := pipe.SAdd(ctx, setKey, key.String())
	pipe.Expire(ctx, setKey, notifiedTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	return added.Val() == 1, nil
}

func (l *notificationLedger) IsNotified(ctx context.Context, date domain.Date, key domain.OccurrenceKey) (bool, error) {
	return l.client.SIsMember(ctx, notifiedKey(date), key.String()).Result()
}

func (l *notificationLedger) Unmark(ctx context.Context, date domain.Date, key domain.OccurrenceKey) error {
	return l.client.SRem(ctx, notifiedKey(date), key.String()).Err()
}

func (l *notificationLedger) PurgeBefore(ctx context.Context, date domain.Date) (int, error) {
	purged := 0

	iter := l.client.Scan(ctx, 0, notifiedKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()

		keyDate, err := domain.ParseDate(key[len(notifiedKeyPrefix):])
		if err != nil || !keyDate.Before(date) {
			continue
		}

		pipe := l.client.TxPipeline()
		count := pipe.SCard(ctx, key)
		pipe.Del(ctx, key)
		if _, err := pipe.Exec(ctx); err != nil {
			return purged, err
		}
		purged += int(count.Val())
	}

	if err := iter.Err(); err != nil {
		return purged, err
	}

	return purged, nil
}
