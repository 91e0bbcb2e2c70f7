package submissions

import (
	"time"

	"titleparser-backend/internal/titles"
)

// Submission is one audited parse request with its final result.
type Submission struct {
	ID        string        `json:"id"`
	RawTitle  string        `json:"rawTitle"`
	Result    titles.Result `json:"result"`
	ClientIP  string        `json:"clientIp,omitempty"`
	UserAgent string        `json:"userAgent,omitempty"`
	RequestID string        `json:"requestId,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}
