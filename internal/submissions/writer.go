package submissions

import (
	"context"
	"sync"
	"time"

	"titleparser-backend/internal/shared/metrics"
	"titleparser-backend/internal/shared/telemetry"
)

const insertTimeout = 5 * time.Second

// Writer persists submissions asynchronously so parse responses never block
// on the audit store. Writes that cannot be queued are dropped and counted.
type Writer struct {
	repo    Repo
	queue   chan Submission
	done    chan struct{}
	closeMu sync.Mutex
	closed  bool
}

// NewWriter starts the background writer with the given queue capacity.
func NewWriter(repo Repo, buffer int) *Writer {
	if buffer <= 0 {
		buffer = 256
	}
	w := &Writer{
		repo:  repo,
		queue: make(chan Submission, buffer),
		done:  make(chan struct{}),
	}
	go w.run()
	return w
}

// Enqueue queues a submission for persistence. It never blocks; when the
// queue is full the submission is dropped and audit_dropped_total counted.
// The send happens under the mutex so it cannot interleave with Close
// closing the channel.
func (w *Writer) Enqueue(submission Submission) {
	w.closeMu.Lock()
	defer w.closeMu.Unlock()
	if w.closed {
		metrics.IncAuditDropped()
		return
	}

	select {
	case w.queue <- submission:
	default:
		metrics.IncAuditDropped()
		telemetry.Warn("audit queue full, submission dropped", map[string]any{
			"submissionId": submission.ID,
		})
	}
}

// Close stops accepting submissions and drains what is already queued.
func (w *Writer) Close() {
	w.closeMu.Lock()
	if w.closed {
		w.closeMu.Unlock()
		return
	}
	w.closed = true
	w.closeMu.Unlock()

	close(w.queue)
	<-w.done
}

func (w *Writer) run() {
	defer close(w.done)
	for submission := range w.queue {
		ctx, cancel := context.WithTimeout(context.Background(), insertTimeout)
		if err := w.repo.Insert(ctx, submission); err != nil {
			telemetry.Error("audit insert failed", map[string]any{
				"submissionId": submission.ID,
				"error":        err.Error(),
			})
		}
		cancel()
	}
}
