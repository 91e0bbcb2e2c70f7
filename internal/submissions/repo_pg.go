package submissions

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Insert stores the submission.
func (r *PGRepo) Insert(ctx context.Context, submission Submission) error {
	const query = `
INSERT INTO submissions (id, raw_title, parsed_json, client_ip, user_agent, request_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	payload, err := json.Marshal(submission.Result)
	if err != nil {
		return fmt.Errorf("marshal parsed result: %w", err)
	}
	_, err = r.DB.ExecContext(ctx, query,
		submission.ID,
		submission.RawTitle,
		string(payload),
		submission.ClientIP,
		submission.UserAgent,
		submission.RequestID,
		submission.CreatedAt.UTC(),
	)
	return err
}

// ListRecent returns up to limit submissions, newest first.
func (r *PGRepo) ListRecent(ctx context.Context, limit int) ([]Submission, error) {
	const query = `
SELECT id, raw_title, parsed_json, client_ip, user_agent, request_id, created_at
FROM submissions
ORDER BY created_at DESC, id DESC
LIMIT $1`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSubmissions(rows)
}
