package config

import (
	"errors"
	"os"
)

const defaultTelegramAPIBase = "https://api.telegram.org"

// Config holds the process-wide settings, read once at startup and treated as
// read-only afterwards.
type Config struct {
	Port     string
	LogLevel string

	// ChatbotAPIURL is the full URL of the core chatbot's send_message endpoint.
	ChatbotAPIURL string

	TelegramBotToken string
	// TelegramAPIBase is overridable so tests can point the sender at a stub.
	TelegramAPIBase string
}

// Load reads configuration from environment variables. It fails when a
// required setting is missing so the process refuses to start half-configured.
func Load() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		ChatbotAPIURL:    os.Getenv("CHATBOT_API_URL"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramAPIBase:  getEnv("TELEGRAM_API_BASE", defaultTelegramAPIBase),
	}

	if cfg.ChatbotAPIURL == "" {
		return nil, errors.New("CHATBOT_API_URL is not set")
	}
	if cfg.TelegramBotToken == "" {
		return nil, errors.New("TELEGRAM_BOT_TOKEN is not set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
