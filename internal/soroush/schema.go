// Package soroush holds the wire schema for Soroush webhooks. No adapter is
// routed yet; a future one translates these shapes into schema.Request the
// same way the telegram package does, against the same chatbot.Client port.
package soroush

// CallbackData carries the payload of a button press.
type CallbackData struct {
	Data string `json:"data"`
}

// Update is a single message or event. Unlike Telegram, sender ids arrive as
// strings already.
type Update struct {
	From         string        `json:"from"`
	Text         string        `json:"text,omitempty"`
	CallbackData *CallbackData `json:"callback_data,omitempty"`
}

// WebhookPayload is the top-level object: Soroush batches updates in a list,
// so an adapter here has to fan out over Data rather than handle one message
// per call.
type WebhookPayload struct {
	Data []Update `json:"data"`
}
