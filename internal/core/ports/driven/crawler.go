package driven

import (
	"context"

	"github.com/custodia-labs/apuntes/internal/core/domain"
)

// FolderLister browses the remote storage tree.
type FolderLister interface {
	// GetFolder retrieves a folder's metadata by ID.
	GetFolder(ctx context.Context, id string) (*domain.RemoteNode, error)

	// ListChildren returns the direct children of a folder.
	ListChildren(ctx context.Context, folderID string) ([]domain.RemoteNode, error)
}

// TreeStore records crawl progress so an interrupted crawl can resume.
type TreeStore interface {
	// SaveNode records a node under its full path. Existing IDs are left untouched.
	SaveNode(ctx context.Context, path string, node domain.RemoteNode, completed bool) error

	// IsCompleted reports whether a folder has been fully listed.
	IsCompleted(ctx context.Context, id string) (bool, error)

	// MarkCompleted flags a folder as fully listed.
	MarkCompleted(ctx context.Context, id string) error
}
