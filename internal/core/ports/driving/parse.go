package driving

import (
	"context"

	"github.com/custodia-labs/apuntes/internal/core/domain"
)

// ParseOptions controls a classification pass.
type ParseOptions struct {
	// Limit caps the number of raw items read; <= 0 means all.
	Limit int

	// Workers is the number of concurrent classifiers; <= 1 is sequential.
	Workers int

	// Progress, if set, is called after each item is persisted.
	Progress func(done, total int)
}

// ParseService runs the classification pipeline.
type ParseService interface {
	// Run classifies every raw item and persists the results.
	Run(ctx context.Context, opts ParseOptions) (*domain.ParseReport, error)

	// ClassifyPaths classifies ad-hoc paths against the stored catalog
	// without persisting anything.
	ClassifyPaths(ctx context.Context, paths []string) ([]domain.ParsedItem, error)

	// Runs returns the most recent parse runs.
	Runs(ctx context.Context, limit int) ([]domain.ParseReport, error)
}

// ItemService reads classification results.
type ItemService interface {
	// Get retrieves a parsed item by ID.
	Get(ctx context.Context, id string) (*domain.ParsedItem, error)

	// List returns parsed items matching the filter.
	List(ctx context.Context, filter domain.ParsedItemFilter) ([]domain.ParsedItem, error)
}

// CatalogService manages the course catalog.
type CatalogService interface {
	// Import upserts catalog entries and returns how many were stored.
	Import(ctx context.Context, courses []domain.Course) (int, error)

	// List returns the catalog.
	List(ctx context.Context) ([]domain.Course, error)
}
