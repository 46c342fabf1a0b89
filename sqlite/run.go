package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
)

// Compile-time interface verification.
var _ docsearch.RunService = (*RunService)(nil)

// RunService implements docsearch.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun stores a completed crawl run.
func (s *RunService) CreateRun(ctx context.Context, run *docsearch.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}
	if run.FinishedAt.IsZero() {
		run.FinishedAt = run.StartedAt
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, doc_type, root_url, saved, failed, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.DocType, run.RootURL, run.Saved, run.Failed,
		run.StartedAt.UTC().Format(time.RFC3339), run.FinishedAt.UTC().Format(time.RFC3339))

	return err
}

// FindRuns retrieves runs matching the filter, most recent first.
func (s *RunService) FindRuns(ctx context.Context, filter docsearch.RunFilter) ([]*docsearch.Run, error) {
	where, args := []string{"1 = 1"}, []any{}
	if filter.DocType != nil {
		where, args = append(where, "doc_type = ?"), append(args, *filter.DocType)
	}

	query := `
		SELECT id, doc_type, root_url, saved, failed, started_at, finished_at
		FROM runs
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY started_at DESC`
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*docsearch.Run
	for rows.Next() {
		var run docsearch.Run
		var startedAt, finishedAt string
		if err := rows.Scan(&run.ID, &run.DocType, &run.RootURL, &run.Saved, &run.Failed, &startedAt, &finishedAt); err != nil {
			return nil, err
		}

		run.StartedAt, err = time.Parse(time.RFC3339, startedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse started_at: %w", err)
		}
		run.FinishedAt, err = time.Parse(time.RFC3339, finishedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse finished_at: %w", err)
		}
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}
