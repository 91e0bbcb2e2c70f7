package submissions

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"titleparser-backend/internal/titles"
)

// SQLiteRepo implements Repo using a local sqlite database.
type SQLiteRepo struct {
	DB *sql.DB
}

// Insert stores the submission.
func (r *SQLiteRepo) Insert(ctx context.Context, submission Submission) error {
	const query = `
INSERT INTO submissions (id, raw_title, parsed_json, client_ip, user_agent, request_id, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`
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
func (r *SQLiteRepo) ListRecent(ctx context.Context, limit int) ([]Submission, error) {
	const query = `
SELECT id, raw_title, parsed_json, client_ip, user_agent, request_id, created_at
FROM submissions
ORDER BY created_at DESC, id DESC
LIMIT ?`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSubmissions(rows)
}

func scanSubmissions(rows *sql.Rows) ([]Submission, error) {
	var out []Submission
	for rows.Next() {
		var (
			s         Submission
			payload   string
			createdAt time.Time
		)
		if err := rows.Scan(&s.ID, &s.RawTitle, &payload, &s.ClientIP, &s.UserAgent, &s.RequestID, &createdAt); err != nil {
			return nil, err
		}
		var result titles.Result
		if err := json.Unmarshal([]byte(payload), &result); err != nil {
			return nil, fmt.Errorf("unmarshal parsed result for %s: %w", s.ID, err)
		}
		s.Result = result
		s.CreatedAt = createdAt.UTC()
		out = append(out, s)
	}
	return out, rows.Err()
}
