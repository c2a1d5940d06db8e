package ai

import (
	"context"
	"errors"
)

var ErrEmptyReply = errors.New("model returned no choices")

// Generator - text-generation backend. Knows nothing about boards or moves.
type Generator interface {
	Generate(ctx context.Context, prompt string, params Params) (string, error)
}

// Params - generation settings for a single call. Sampling is always greedy.
type Params struct {
	MaxTokens int
}
