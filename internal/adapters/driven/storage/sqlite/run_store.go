package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/apuntes/internal/core/domain"
	"github.com/custodia-labs/apuntes/internal/core/ports/driven"
)

// runTimeLayout keeps stored timestamps fixed-width so they sort as text.
const runTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// runStore implements driven.RunStore.
type runStore struct {
	store *Store
}

var _ driven.RunStore = (*runStore)(nil)

// SaveRun stores the report of a finished run.
func (s *runStore) SaveRun(ctx context.Context, report domain.ParseReport) error {
	if report.RunID == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO parse_runs (id, started_at, finished_at, items,
			unclassified_types, unclassified_courses, unclassified_dates, malformed_dates)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, report.RunID,
		report.StartedAt.UTC().Format(runTimeLayout),
		report.FinishedAt.UTC().Format(runTimeLayout),
		report.Items,
		report.UnclassifiedTypes,
		report.UnclassifiedCourses,
		report.UnclassifiedDates,
		report.MalformedDates)
	if err != nil {
		return fmt.Errorf("saving parse run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs first.
func (s *runStore) ListRuns(ctx context.Context, limit int) ([]domain.ParseReport, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, started_at, finished_at, items,
			unclassified_types, unclassified_courses, unclassified_dates, malformed_dates
		FROM parse_runs
		ORDER BY started_at DESC
		LIMIT ?
	`, sqlLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("querying parse runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.ParseReport //nolint:prealloc // size unknown from query
	for rows.Next() {
		var r domain.ParseReport
		var startedAt, finishedAt string
		if err := rows.Scan(&r.RunID, &startedAt, &finishedAt, &r.Items,
			&r.UnclassifiedTypes, &r.UnclassifiedCourses, &r.UnclassifiedDates, &r.MalformedDates); err != nil {
			return nil, fmt.Errorf("scanning parse run: %w", err)
		}
		if t, err := time.Parse(runTimeLayout, startedAt); err == nil {
			r.StartedAt = t
		}
		if t, err := time.Parse(runTimeLayout, finishedAt); err == nil {
			r.FinishedAt = t
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating parse runs: %w", err)
	}

	return runs, nil
}
