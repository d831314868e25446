package notifier

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

// TelegramPresenter sends reminders to a single chat.
type TelegramPresenter struct {
	bot     *tgbotapi.BotAPI
	chatID  int64
	limiter *rate.Limiter
}

func NewTelegramPresenter(token string, chatID int64, messagesPerSecond float64) (*TelegramPresenter, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return newTelegramPresenter(bot, chatID, messagesPerSecond), nil
}

func newTelegramPresenter(bot *tgbotapi.BotAPI, chatID int64, messagesPerSecond float64) *TelegramPresenter {
	if messagesPerSecond <= 0 {
		messagesPerSecond = 1
	}
	return &TelegramPresenter{
		bot:     bot,
		chatID:  chatID,
		limiter: rate.NewLimiter(rate.Limit(messagesPerSecond), 1),
	}
}

func (p *TelegramPresenter) Show(ctx context.Context, n *domain.Notification) error {
	if err := p.limiter.Wait(ctx); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(p.chatID, FormatText(n))
	if _, err := p.bot.Send(msg); err != nil {
		slog.WarnContext(ctx, "failed to send telegram reminder",
			slog.Int64("medication_id", n.MedicationID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to send telegram message: %w", err)
	}

	slog.InfoContext(ctx, "notification delivered to telegram",
		slog.Int64("medication_id", n.MedicationID),
		slog.String("time_of_day", n.TimeOfDay.String()),
	)
	return nil
}

// FormatText renders a notification as a plain chat message.
func FormatText(n *domain.Notification) string {
	return fmt.Sprintf("💊 %s\n%s", n.Title, n.Body)
}
