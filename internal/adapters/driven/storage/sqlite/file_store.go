package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/custodia-labs/apuntes/internal/core/domain"
	"github.com/custodia-labs/apuntes/internal/core/ports/driven"
)

// fileStore implements driven.TreeStore and driven.RawItemStore over the file table.
type fileStore struct {
	store *Store
}

var (
	_ driven.TreeStore    = (*fileStore)(nil)
	_ driven.RawItemStore = (*fileStore)(nil)
)

// SaveNode records a node. Existing IDs are left untouched.
func (s *fileStore) SaveNode(ctx context.Context, path string, node domain.RemoteNode, completed bool) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO file (path, id, link, owner, kind, completed)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, path, node.ID, node.Link, node.Owner, string(node.Kind), boolToInt(completed))
	if err != nil {
		return fmt.Errorf("saving node %s: %w", node.ID, err)
	}
	return nil
}

// IsCompleted reports whether a folder has been fully listed.
func (s *fileStore) IsCompleted(ctx context.Context, id string) (bool, error) {
	var completed int
	err := s.store.db.QueryRowContext(ctx, "SELECT completed FROM file WHERE id = ?", id).Scan(&completed)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking completion of %s: %w", id, err)
	}
	return completed == 1, nil
}

// MarkCompleted flags a folder as fully listed.
func (s *fileStore) MarkCompleted(ctx context.Context, id string) error {
	result, err := s.store.db.ExecContext(ctx, "UPDATE file SET completed = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("marking %s completed: %w", id, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListRawItems returns recorded files in insertion order.
func (s *fileStore) ListRawItems(ctx context.Context, limit int) ([]domain.RawItem, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT path, id, link, owner FROM file
		WHERE kind = ?
		ORDER BY rowid
		LIMIT ?
	`, string(domain.KindFile), sqlLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("querying raw items: %w", err)
	}
	defer rows.Close()

	var items []domain.RawItem //nolint:prealloc // size unknown from query
	for rows.Next() {
		var item domain.RawItem
		if err := rows.Scan(&item.Path, &item.ID, &item.Link, &item.Owner); err != nil {
			return nil, fmt.Errorf("scanning raw item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating raw items: %w", err)
	}

	return items, nil
}
