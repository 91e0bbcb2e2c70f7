package submissions

import (
	"context"
	"sync"
	"testing"
	"time"
)

type recordingRepo struct {
	mu       sync.Mutex
	inserted []Submission
	block    chan struct{}
}

func (r *recordingRepo) Insert(ctx context.Context, submission Submission) error {
	if r.block != nil {
		<-r.block
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inserted = append(r.inserted, submission)
	return nil
}

func (r *recordingRepo) ListRecent(ctx context.Context, limit int) ([]Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]Submission(nil), r.inserted...)
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func TestWriterPersistsEnqueued(t *testing.T) {
	repo := &recordingRepo{}
	w := NewWriter(repo, 8)

	w.Enqueue(Submission{ID: "a", RawTitle: "x"})
	w.Enqueue(Submission{ID: "b", RawTitle: "y"})
	w.Close()

	repo.mu.Lock()
	defer repo.mu.Unlock()
	if len(repo.inserted) != 2 {
		t.Fatalf("inserted = %d, want 2", len(repo.inserted))
	}
	if repo.inserted[0].ID != "a" || repo.inserted[1].ID != "b" {
		t.Errorf("unexpected order: %v %v", repo.inserted[0].ID, repo.inserted[1].ID)
	}
}

func TestWriterDropsWhenQueueFull(t *testing.T) {
	repo := &recordingRepo{block: make(chan struct{})}
	w := NewWriter(repo, 1)

	// First submission occupies the worker, second fills the buffer,
	// third has nowhere to go and must be dropped without blocking.
	w.Enqueue(Submission{ID: "a"})
	deadline := time.After(time.Second)
	for {
		select {
		case <-deadline:
			t.Fatal("worker never picked up first submission")
		default:
		}
		if len(w.queue) == 0 {
			break
		}
		time.Sleep(time.Millisecond)
	}
	w.Enqueue(Submission{ID: "b"})

	done := make(chan struct{})
	go func() {
		w.Enqueue(Submission{ID: "c"})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked on full queue")
	}

	close(repo.block)
	w.Close()

	repo.mu.Lock()
	defer repo.mu.Unlock()
	if len(repo.inserted) != 2 {
		t.Fatalf("inserted = %d, want 2 (third dropped)", len(repo.inserted))
	}
}

func TestWriterEnqueueAfterClose(t *testing.T) {
	repo := &recordingRepo{}
	w := NewWriter(repo, 4)
	w.Close()

	// Must not panic on a closed queue.
	w.Enqueue(Submission{ID: "late"})

	repo.mu.Lock()
	defer repo.mu.Unlock()
	if len(repo.inserted) != 0 {
		t.Fatalf("inserted = %d, want 0", len(repo.inserted))
	}
}

func TestWriterEnqueueRacesClose(t *testing.T) {
	// Enqueue must never panic with a send on a closed channel, no matter
	// how it interleaves with Close.
	for i := 0; i < 200; i++ {
		repo := &recordingRepo{}
		w := NewWriter(repo, 1)

		start := make(chan struct{})
		var wg sync.WaitGroup
		for g := 0; g < 4; g++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				w.Enqueue(Submission{ID: "r"})
			}()
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			w.Close()
		}()
		close(start)
		wg.Wait()
	}
}

func TestMemoryRepoListRecentNewestFirst(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	for _, id := range []string{"a", "b", "c"} {
		if err := repo.Insert(ctx, Submission{ID: id}); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	items, err := repo.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	if items[0].ID != "c" || items[1].ID != "b" {
		t.Errorf("order = %s,%s, want c,b", items[0].ID, items[1].ID)
	}
}
