package parses

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"titleparser-backend/internal/llm"
	"titleparser-backend/internal/shared/telemetry"
)

const llmRetryBaseDelay = 300 * time.Millisecond

type retryingLLM struct {
	base      llm.Client
	requestID string
}

func newRetryingLLM(base llm.Client, requestID string) llm.Client {
	if base == nil {
		return nil
	}
	return retryingLLM{base: base, requestID: requestID}
}

func (r retryingLLM) RefineTitle(ctx context.Context, input llm.RefineInput) (string, error) {
	title, err := r.base.RefineTitle(ctx, input)
	if err == nil || !shouldRetryLLM(err) {
		return title, err
	}

	telemetry.Warn("llm retry", map[string]any{
		"attempt":   1,
		"requestId": r.requestID,
		"error":     err.Error(),
	})
	select {
	case <-time.After(llmRetryBaseDelay):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	return r.base.RefineTitle(ctx, input)
}

func shouldRetryLLM(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "http status 5") || strings.Contains(msg, "server_error") {
		return true
	}
	if strings.Contains(msg, "client.timeout") {
		return true
	}
	if strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection closed") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "eof") {
		return true
	}

	return false
}
