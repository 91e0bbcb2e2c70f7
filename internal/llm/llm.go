package llm

import (
	"context"
	"errors"
)

// Client abstracts inference backends for title refinement.
type Client interface {
	RefineTitle(ctx context.Context, input RefineInput) (string, error)
}

// RefineInput captures the inputs needed to refine one title.
type RefineInput struct {
	// RawTitle is the original release title as submitted.
	RawTitle string
	// Remaining is the leftover text after the regex stage removed what it
	// could match.
	Remaining string
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm client not configured")

// PlaceholderClient is a stub implementation used when no backend is wired.
type PlaceholderClient struct{}

// RefineTitle returns ErrNotConfigured.
func (PlaceholderClient) RefineTitle(ctx context.Context, input RefineInput) (string, error) {
	_ = ctx
	_ = input
	return "", ErrNotConfigured
}
