package llm

import (
	"context"
	"errors"
)

// ErrAPIFailure wraps any failure reported by the hosted model's API.
// Handlers map it to a gateway error; nothing is retried.
var ErrAPIFailure = errors.New("llm api failure")

// Client is a chat-completion call: fixed system prompt, one user
// message, raw model text back.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
