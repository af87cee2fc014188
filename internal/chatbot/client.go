// Package chatbot is the gateway's client for the core chatbot service. It
// performs exactly one POST per inbound event and normalizes every failure
// into a typed error; it never retries.
package chatbot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/hooshmand-ai/chatbot-gateway/internal/schema"
	"github.com/hooshmand-ai/chatbot-gateway/pkg/logging"
)

const requestTimeout = 60 * time.Second

type HTTPClient struct {
	apiURL string
	client *http.Client
	logger *logging.Logger
}

// New builds a client for the chatbot endpoint. An empty URL is a startup
// error, not something to discover on the first message.
func New(apiURL string, logger *logging.Logger) (*HTTPClient, error) {
	if apiURL == "" {
		return nil, errors.New("chatbot: api url is not configured")
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &HTTPClient{
		apiURL: apiURL,
		client: &http.Client{Timeout: requestTimeout},
		logger: logger,
	}, nil
}

// SendMessage forwards one universal request and parses the universal
// response. Failure modes map onto HTTPError, UnreachableError and
// MalformedResponseError.
func (c *HTTPClient) SendMessage(ctx context.Context, req schema.Request) (*schema.Response, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	c.logger.Debug("forwarding request to chatbot", "url", c.apiURL, "session_id", req.SessionID)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, &UnreachableError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UnreachableError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var out schema.Response
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}
	if out.Text == "" {
		return nil, &MalformedResponseError{Err: errors.New("missing text field")}
	}
	if out.References == nil {
		out.References = []schema.Reference{}
	}

	return &out, nil
}
