package notifier

import (
	"os"
	"strconv"
)

const (
	TypeLog      = "log"
	TypeWebhook  = "webhook"
	TypeTelegram = "telegram"
)

type Config struct {
	Type string

	WebhookURL        string
	WebhookMaxRetries int

	TelegramToken          string
	TelegramChatID         int64
	TelegramMessagesPerSec float64
}

func LoadConfig() *Config {
	cfg := &Config{
		Type: getEnvOrDefault("NOTIFIER_TYPE", TypeLog),

		WebhookURL:        os.Getenv("NOTIFIER_WEBHOOK_URL"),
		WebhookMaxRetries: getIntOrDefault("NOTIFIER_WEBHOOK_MAX_RETRIES", 3),

		TelegramToken:          os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramMessagesPerSec: 1,
	}

	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.TelegramChatID = id
		}
	}
	if v := os.Getenv("TELEGRAM_MESSAGES_PER_SECOND"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil && rate > 0 {
			cfg.TelegramMessagesPerSec = rate
		}
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}
