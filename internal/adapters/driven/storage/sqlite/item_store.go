package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/custodia-labs/apuntes/internal/core/domain"
	"github.com/custodia-labs/apuntes/internal/core/ports/driven"
)

// dateLayout is the storage format of parsed_content.date.
const dateLayout = "2006-01-02"

// ==================== Course Store ====================

// courseStore implements driven.CourseStore.
type courseStore struct {
	store *Store
}

var _ driven.CourseStore = (*courseStore)(nil)

// SaveCourse stores or updates a catalog entry.
func (s *courseStore) SaveCourse(ctx context.Context, course domain.Course) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO course (id, name) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name
	`, course.ID, course.Name)
	if err != nil {
		return fmt.Errorf("saving course %s: %w", course.ID, err)
	}
	return nil
}

// ListCourses returns the catalog ordered by ID.
func (s *courseStore) ListCourses(ctx context.Context) ([]domain.Course, error) {
	rows, err := s.store.db.QueryContext(ctx, "SELECT id, name FROM course ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying courses: %w", err)
	}
	defer rows.Close()

	var courses []domain.Course //nolint:prealloc // size unknown from query
	for rows.Next() {
		var c domain.Course
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scanning course: %w", err)
		}
		courses = append(courses, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating courses: %w", err)
	}

	return courses, nil
}

// ==================== Parsed Item Store ====================

// parsedItemStore implements driven.ParsedItemStore.
type parsedItemStore struct {
	store *Store
}

var _ driven.ParsedItemStore = (*parsedItemStore)(nil)

// SaveParsedItem writes the core record and its memberships in one transaction.
// Conflicting rows are skipped, never overwritten.
func (s *parsedItemStore) SaveParsedItem(ctx context.Context, item *domain.ParsedItem) error {
	if item == nil || item.ID == "" {
		return domain.ErrInvalidInput
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var date any
	if item.Date != nil {
		date = item.Date.Format(dateLayout)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO parsed_content (path, name, id, link, owner, date)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`, item.Path, item.Name, item.ID, item.Link, item.Owner, date)
	if err != nil {
		return fmt.Errorf("saving parsed content %s: %w", item.ID, err)
	}

	for _, t := range item.Types {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO parsed_content_type (content_id, type) VALUES (?, ?)
			ON CONFLICT DO NOTHING
		`, item.ID, string(t))
		if err != nil {
			return fmt.Errorf("saving content type for %s: %w", item.ID, err)
		}
	}

	for _, c := range item.Courses {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO parsed_content_course (content_id, course_id) VALUES (?, ?)
			ON CONFLICT DO NOTHING
		`, item.ID, c)
		if err != nil {
			return fmt.Errorf("saving content course for %s: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing parsed content %s: %w", item.ID, err)
	}
	return nil
}

// GetParsedItem retrieves a parsed item by ID.
func (s *parsedItemStore) GetParsedItem(ctx context.Context, id string) (*domain.ParsedItem, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT path, name, id, link, owner, date FROM parsed_content WHERE id = ?
	`, id)

	item, err := scanParsedItem(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.loadMemberships(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListParsedItems returns items matching the filter ordered by path.
func (s *parsedItemStore) ListParsedItems(ctx context.Context, filter domain.ParsedItemFilter) ([]domain.ParsedItem, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT path, name, id, link, owner, date FROM parsed_content
		WHERE (? = '' OR id IN (SELECT content_id FROM parsed_content_type WHERE type = ?))
		  AND (? = '' OR id IN (SELECT content_id FROM parsed_content_course WHERE course_id = ?))
		ORDER BY path, id
		LIMIT ?
	`, string(filter.Type), string(filter.Type), filter.CourseID, filter.CourseID, sqlLimit(filter.Limit))
	if err != nil {
		return nil, fmt.Errorf("querying parsed content: %w", err)
	}

	var items []domain.ParsedItem //nolint:prealloc // size unknown from query
	for rows.Next() {
		item, err := scanParsedItem(rows.Scan)
		if err != nil {
			rows.Close()
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating parsed content: %w", err)
	}
	rows.Close()

	for i := range items {
		if err := s.loadMemberships(ctx, &items[i]); err != nil {
			return nil, err
		}
	}
	return items, nil
}

// loadMemberships fills Types in catalog priority order and Courses in
// insertion order.
func (s *parsedItemStore) loadMemberships(ctx context.Context, item *domain.ParsedItem) error {
	types, err := s.queryStrings(ctx,
		"SELECT type FROM parsed_content_type WHERE content_id = ?", item.ID)
	if err != nil {
		return fmt.Errorf("loading content types for %s: %w", item.ID, err)
	}

	priority := make(map[domain.ContentType]int)
	for i, t := range domain.AllContentTypes() {
		priority[t] = i
	}
	item.Types = nil
	for _, t := range types {
		item.Types = append(item.Types, domain.ContentType(t))
	}
	sort.SliceStable(item.Types, func(i, j int) bool {
		return priority[item.Types[i]] < priority[item.Types[j]]
	})

	courses, err := s.queryStrings(ctx,
		"SELECT course_id FROM parsed_content_course WHERE content_id = ? ORDER BY rowid", item.ID)
	if err != nil {
		return fmt.Errorf("loading content courses for %s: %w", item.ID, err)
	}
	item.Courses = courses
	return nil
}

func (s *parsedItemStore) queryStrings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// scanParsedItem scans a parsed_content row with the given scan function,
// so it serves both *sql.Row and *sql.Rows.
func scanParsedItem(scan func(dest ...any) error) (*domain.ParsedItem, error) {
	var item domain.ParsedItem
	var date sql.NullString

	if err := scan(&item.Path, &item.Name, &item.ID, &item.Link, &item.Owner, &date); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning parsed content: %w", err)
	}

	if date.Valid && date.String != "" {
		d, err := time.Parse(dateLayout, date.String)
		if err != nil {
			return nil, fmt.Errorf("parsing stored date %q: %w", date.String, err)
		}
		item.Date = &d
	}

	return &item, nil
}
