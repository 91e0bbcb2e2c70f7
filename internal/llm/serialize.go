package llm

import "context"

// Serialize wraps a client so at most one inference runs at a time. The local
// runtime holds a single model instance; concurrent completions against it
// degrade into lock contention inside the inference server, so requests queue
// here instead and respect caller cancellation while waiting.
func Serialize(base Client) Client {
	if base == nil {
		return nil
	}
	return &serializedClient{base: base, slot: make(chan struct{}, 1)}
}

type serializedClient struct {
	base Client
	slot chan struct{}
}

func (s *serializedClient) RefineTitle(ctx context.Context, input RefineInput) (string, error) {
	select {
	case s.slot <- struct{}{}:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	defer func() { <-s.slot }()

	return s.base.RefineTitle(ctx, input)
}
