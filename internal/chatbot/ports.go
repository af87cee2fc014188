package chatbot

import (
	"context"

	"github.com/hooshmand-ai/chatbot-gateway/internal/schema"
)

// Client talks to the core chatbot service. Adapters depend on this interface
// only, so a new platform plugs in without touching the HTTP implementation.
type Client interface {
	SendMessage(ctx context.Context, req schema.Request) (*schema.Response, error)
}
