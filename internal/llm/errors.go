package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// Error taxonomy for tutor calls. The retry layer keys off these types:
// unavailable and rate-limit errors are transient, schema failures get a
// corrective retry, token truncation is terminal.

// ErrProviderUnavailable reports that the configured provider could not be
// reached or answered with a server error.
type ErrProviderUnavailable struct {
	Provider string
	Err      error
}

func (e *ErrProviderUnavailable) Error() string {
	name := e.Provider
	if name == "" {
		name = "LLM provider"
	}
	if e.Err == nil {
		return name + " is unavailable"
	}
	return fmt.Sprintf("%s is unavailable: %v", name, e.Err)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrRateLimit reports a 429 from the provider. RetryAfter is zero when
// the provider gave no hint.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("provider rate limit hit, retry after %s: %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("provider rate limit hit: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse reports a tutor reply that failed schema validation.
// Content keeps the raw reply so the retry can quote it back to the model.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("tutor reply failed schema validation: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded reports a tutor reply cut off at the MaxTokens
// limit. Content holds the truncated text, which rarely parses as JSON.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "tutor reply cut off at the token limit"
}
