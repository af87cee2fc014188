package telegram

import "context"

// ReplySender delivers a text reply to a Telegram chat. Implementations
// return delivery failures to the caller; the adapter decides they are
// best-effort and logs them instead of propagating.
type ReplySender interface {
	SendReply(ctx context.Context, chatID string, text string) error
}
