// Package telegram adapts Telegram webhook updates to the universal chatbot
// contract and relays the answer back through the Bot API.
package telegram

import (
	"context"
	"time"

	"github.com/hooshmand-ai/chatbot-gateway/internal/chatbot"
	"github.com/hooshmand-ai/chatbot-gateway/internal/metrics"
	"github.com/hooshmand-ai/chatbot-gateway/internal/schema"
	"github.com/hooshmand-ai/chatbot-gateway/pkg/logging"
)

// Platform tags every universal request this adapter produces.
const Platform = "telegram"

// FallbackText is sent verbatim whenever the chatbot call fails. The user
// always gets some reply for a text message.
const FallbackText = "Sorry, I'm having trouble connecting to my brain right now. Please try again in a moment."

// Adapter drives one update through the chatbot and back out to Telegram.
type Adapter struct {
	chatbot chatbot.Client
	sender  ReplySender
	logger  *logging.Logger
	metrics *metrics.GatewayMetrics
}

func NewAdapter(client chatbot.Client, sender ReplySender, logger *logging.Logger, m *metrics.GatewayMetrics) *Adapter {
	if logger == nil {
		logger = logging.Default()
	}
	return &Adapter{
		chatbot: client,
		sender:  sender,
		logger:  logger,
		metrics: m,
	}
}

// ProcessUpdate handles one validated update: build the universal request,
// make the single chatbot call, then send exactly one reply — the answer on
// success, the fallback on any chatbot failure. Non-text messages are ignored
// entirely. Chatbot and delivery failures are terminal here; the returned
// error only covers conditions the caller could not have anticipated.
func (a *Adapter) ProcessUpdate(ctx context.Context, update Update) error {
	msg := update.Message

	if msg.Text == "" {
		a.logger.Debug("ignoring non-text message", "from", msg.From.ID.String())
		a.metrics.ObserveUpdate(Platform, "ignored")
		return nil
	}

	req := schema.Request{
		UserID:         msg.From.ID.String(),
		SessionID:      msg.Chat.ID.String(),
		Query:          msg.Text,
		SourcePlatform: Platform,
		Metadata: map[string]any{
			"telegram_message_id": msg.MessageID,
		},
	}

	replyText := FallbackText

	start := time.Now()
	resp, err := a.chatbot.SendMessage(ctx, req)
	if err != nil {
		a.logger.Error("chatbot request failed", "error", err, "session_id", req.SessionID)
		a.metrics.ObserveBackend("error", time.Since(start).Seconds())
		a.metrics.ObserveUpdate(Platform, "fallback")
	} else {
		replyText = resp.Text
		a.metrics.ObserveBackend("ok", time.Since(start).Seconds())
		a.metrics.ObserveUpdate(Platform, "answered")
	}

	if err := a.sender.SendReply(ctx, msg.Chat.ID.String(), replyText); err != nil {
		// Best effort: the one reply attempt was made, nothing to do but log.
		a.logger.Error("reply delivery failed", "error", err, "chat_id", msg.Chat.ID.String())
		a.metrics.ObserveReply(Platform, "error")
		return nil
	}
	a.metrics.ObserveReply(Platform, "ok")

	return nil
}
