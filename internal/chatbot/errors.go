package chatbot

import "fmt"

// HTTPError is a non-2xx reply from the chatbot service. Status and body are
// kept for logging; the user only ever sees the adapter's fallback text.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("chatbot: api returned status %d: %s", e.StatusCode, e.Body)
}

// UnreachableError is a transport-level failure: connection refused, DNS,
// timeout.
type UnreachableError struct {
	Err error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("chatbot: service unreachable: %v", e.Err)
}

func (e *UnreachableError) Unwrap() error { return e.Err }

// MalformedResponseError is a 2xx reply whose body does not decode into the
// universal response, or decodes without the required text field.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("chatbot: malformed response body: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
