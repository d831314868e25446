package notifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

var (
	ErrUnknownNotifierType = errors.New("unknown notifier type")
	ErrNotifierConfig      = errors.New("invalid notifier configuration")
)

// New builds the presenter selected by cfg.Type.
func New(ctx context.Context, cfg *Config) (domain.NotificationPresenter, error) {
	switch cfg.Type {
	case "", TypeLog:
		slog.InfoContext(ctx, "notification presenter initialized", slog.String("type", TypeLog))
		return NewLogPresenter(), nil

	case TypeWebhook:
		if cfg.WebhookURL == "" {
			return nil, fmt.Errorf("%w: NOTIFIER_WEBHOOK_URL is required", ErrNotifierConfig)
		}
		slog.InfoContext(ctx, "notification presenter initialized",
			slog.String("type", TypeWebhook),
			slog.String("url", cfg.WebhookURL),
		)
		return NewWebhookPresenter(cfg.WebhookURL, newHTTPClient(ctx, cfg.WebhookURL), cfg.WebhookMaxRetries), nil

	case TypeTelegram:
		if cfg.TelegramToken == "" || cfg.TelegramChatID == 0 {
			return nil, fmt.Errorf("%w: TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID are required", ErrNotifierConfig)
		}
		presenter, err := NewTelegramPresenter(cfg.TelegramToken, cfg.TelegramChatID, cfg.TelegramMessagesPerSec)
		if err != nil {
			return nil, err
		}
		slog.InfoContext(ctx, "notification presenter initialized",
			slog.String("type", TypeTelegram),
			slog.Int64("chat_id", cfg.TelegramChatID),
		)
		return presenter, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNotifierType, cfg.Type)
	}
}
