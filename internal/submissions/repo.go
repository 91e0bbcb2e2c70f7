package submissions

import "context"

// Repo defines persistence operations for submissions.
type Repo interface {
	Insert(ctx context.Context, submission Submission) error
	ListRecent(ctx context.Context, limit int) ([]Submission, error)
}
