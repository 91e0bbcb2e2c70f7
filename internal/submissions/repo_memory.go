package submissions

import (
	"context"
	"sync"
)

// memoryCap bounds how many submissions the in-memory repo retains.
const memoryCap = 1000

// MemoryRepo stores submissions in memory and is safe for concurrent use.
// It backs local development when no database is configured.
type MemoryRepo struct {
	mu    sync.RWMutex
	items []Submission
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Insert stores the submission, evicting the oldest entry when full.
func (r *MemoryRepo) Insert(ctx context.Context, submission Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, submission)
	if len(r.items) > memoryCap {
		r.items = r.items[len(r.items)-memoryCap:]
	}
	return nil
}

// ListRecent returns up to limit submissions, newest first.
func (r *MemoryRepo) ListRecent(ctx context.Context, limit int) ([]Submission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if limit <= 0 || limit > len(r.items) {
		limit = len(r.items)
	}
	out := make([]Submission, 0, limit)
	for i := len(r.items) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.items[i])
	}
	return out, nil
}
