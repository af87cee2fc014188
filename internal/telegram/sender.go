package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hooshmand-ai/chatbot-gateway/pkg/logging"
)

const senderTimeout = 10 * time.Second

// Sender posts messages to the Telegram Bot API sendMessage endpoint.
type Sender struct {
	apiBase string
	token   string
	client  *http.Client
	logger  *logging.Logger
}

// NewSender builds a Sender for one bot. apiBase is overridable so tests can
// point at a stub server; pass "" for the production endpoint.
func NewSender(token, apiBase string, logger *logging.Logger) (*Sender, error) {
	if token == "" {
		return nil, errors.New("telegram: bot token is not configured")
	}
	if apiBase == "" {
		apiBase = "https://api.telegram.org"
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &Sender{
		apiBase: apiBase,
		token:   token,
		client:  &http.Client{Timeout: senderTimeout},
		logger:  logger,
	}, nil
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendReply delivers one text message to a chat. Delivery is single-shot: a
// failure is returned for the caller to log, never retried here.
func (s *Sender) SendReply(ctx context.Context, chatID string, text string) error {
	b, err := json.Marshal(sendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "Markdown",
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.apiBase, s.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram: send failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram: send returned %s: %s", resp.Status, body)
	}

	s.logger.Debug("reply delivered", "chat_id", chatID)
	return nil
}
