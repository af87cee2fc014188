package telegram

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is a Telegram identifier. Telegram sends chat/user ids as 64-bit
// integers, but test fixtures and some proxies quote them, so ID accepts
// either a JSON number or a JSON string and always renders a lossless decimal
// string.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = ID(n.String())
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("telegram: id must be a number or string: %w", err)
	}
	*id = ID(s)
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	// Numeric ids go back on the wire as numbers, the way Telegram sent them.
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id ID) String() string { return string(id) }

// User is the sender of a message.
type User struct {
	ID ID `json:"id"`
}

// Chat is the conversation a message belongs to.
type Chat struct {
	ID ID `json:"id"`
}

// Message is one Telegram message. Text is absent for photos, stickers and
// other non-text kinds; the adapter ignores those.
type Message struct {
	MessageID int64  `json:"message_id"`
	Chat      Chat   `json:"chat"`
	From      User   `json:"from"` // "from" is reserved in several languages; keep the alias explicit
	Text      string `json:"text,omitempty"`
}

// Update is the top-level object Telegram POSTs to the webhook.
type Update struct {
	UpdateID int64   `json:"update_id"`
	Message  Message `json:"message"`
}

// Validate checks the fields the adapter relies on. A missing text is fine;
// missing ids are not.
func (u *Update) Validate() error {
	e := &ValidationError{}
	if u.Message.MessageID == 0 {
		e.add("message.message_id", "required")
	}
	if u.Message.Chat.ID == "" {
		e.add("message.chat.id", "required")
	}
	if u.Message.From.ID == "" {
		e.add("message.from.id", "required")
	}
	if len(e.Issues) > 0 {
		return e
	}
	return nil
}

// ValidationIssue names one field that failed schema validation.
type ValidationIssue struct{ Field, Reason string }

// ValidationError accumulates issues so the caller can report them all at once.
type ValidationError struct{ Issues []ValidationIssue }

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "telegram: invalid update"
	}
	return fmt.Sprintf("telegram: invalid update: %s %s", e.Issues[0].Field, e.Issues[0].Reason)
}

func (e *ValidationError) add(f, r string) {
	e.Issues = append(e.Issues, ValidationIssue{Field: f, Reason: r})
}
