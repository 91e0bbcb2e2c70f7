package submissions

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"titleparser-backend/internal/titles"
)

func TestPGRepoInsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	submission := Submission{
		ID:       "sub-1",
		RawTitle: "Oppenheimer.2023.1080p.BluRay.x264-YTS",
		Result: titles.Result{
			Title:      "Oppenheimer",
			Year:       2023,
			Resolution: "1080p",
			Confidence: 0.625,
		},
		ClientIP:  "127.0.0.1",
		UserAgent: "go-test",
		RequestID: "req-1",
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO submissions").
		WithArgs(
			submission.ID,
			submission.RawTitle,
			sqlmock.AnyArg(), // parsed_json
			submission.ClientIP,
			submission.UserAgent,
			submission.RequestID,
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Insert(context.Background(), submission); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListRecent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	result := titles.Result{Title: "Oppenheimer", Year: 2023, Confidence: 0.625}
	payload, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "raw_title", "parsed_json", "client_ip", "user_agent", "request_id", "created_at"}).
		AddRow("sub-1", "Oppenheimer.2023.1080p.BluRay.x264-YTS", string(payload), "127.0.0.1", "go-test", "req-1", created)

	mock.ExpectQuery("SELECT id, raw_title, parsed_json").
		WithArgs(10).
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	items, err := repo.ListRecent(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	if items[0].Result.Title != "Oppenheimer" {
		t.Errorf("Result.Title = %q, want Oppenheimer", items[0].Result.Title)
	}
	if !items[0].CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", items[0].CreatedAt, created)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
