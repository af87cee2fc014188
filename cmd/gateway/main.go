package main

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hooshmand-ai/chatbot-gateway/internal/chatbot"
	"github.com/hooshmand-ai/chatbot-gateway/internal/config"
	"github.com/hooshmand-ai/chatbot-gateway/internal/metrics"
	"github.com/hooshmand-ai/chatbot-gateway/internal/telegram"
	"github.com/hooshmand-ai/chatbot-gateway/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Default().Error("config error", "error", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel)

	// --- Metrics ---
	registry := prometheus.NewRegistry()
	gatewayMetrics := metrics.NewGatewayMetrics(registry)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// --- Telegram module wiring ---
	chatbotClient, err := chatbot.New(cfg.ChatbotAPIURL, logger)
	if err != nil {
		logger.Error("chatbot client error", "error", err)
		os.Exit(1)
	}
	sender, err := telegram.NewSender(cfg.TelegramBotToken, cfg.TelegramAPIBase, logger)
	if err != nil {
		logger.Error("telegram sender error", "error", err)
		os.Exit(1)
	}
	adapter := telegram.NewAdapter(chatbotClient, sender, logger, gatewayMetrics)
	handler := telegram.NewHandler(adapter, logger)

	telegram.RegisterRoutes(r, handler)

	// --- health + metrics ---
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Chatbot Gateway is running"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	logger.Info("listening", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
