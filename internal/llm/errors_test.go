package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&ErrProviderUnavailable{Provider: "mock"}, "mock is unavailable"},
		{&ErrProviderUnavailable{Err: errors.New("boom")}, "LLM provider is unavailable: boom"},
		{&ErrRateLimit{Err: errors.New("429")}, "provider rate limit hit: 429"},
		{&ErrRateLimit{RetryAfter: time.Second, Err: errors.New("429")}, "provider rate limit hit, retry after 1s: 429"},
		{&ErrMaxTokensExceeded{}, "tutor reply cut off at the token limit"},
	}
	for _, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Errorf("Error() = %q, want %q", got, c.want)
		}
	}
}

func TestMockProvider_ExhaustedScriptIsOutage(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
	if unavail.Provider != "mock" {
		t.Errorf("Provider = %q, want %q", unavail.Provider, "mock")
	}
}
