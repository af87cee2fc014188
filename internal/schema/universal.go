// Package schema defines the universal request/response contract exchanged
// with the core chatbot service. Every platform adapter translates its native
// wire format into these shapes, which keeps the backend unaware of where a
// message came from.
package schema

// Request is the platform-agnostic message the gateway forwards to the
// chatbot. UserID and SessionID are always strings, regardless of the
// platform's native identifier type.
type Request struct {
	UserID         string         `json:"user_id"`
	SessionID      string         `json:"session_id"`
	Query          string         `json:"query"`
	SourcePlatform string         `json:"source_platform"`
	Metadata       map[string]any `json:"metadata"`
}

// Reference is one source document backing a chatbot answer.
type Reference struct {
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	URL     string   `json:"url"`
	ChunkID int      `json:"chunk_id"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
	Score   string   `json:"score"`
}

// Response is what the chatbot returns. Text is always present; References
// may be empty.
type Response struct {
	Text       string      `json:"text"`
	References []Reference `json:"references"`
}
