package driven

import (
	"context"

	"github.com/custodia-labs/apuntes/internal/core/domain"
)

// RawItemStore reads the files recorded by the crawler.
type RawItemStore interface {
	// ListRawItems returns harvested files in storage order.
	// A limit <= 0 returns every item.
	ListRawItems(ctx context.Context, limit int) ([]domain.RawItem, error)
}

// CourseStore persists the course catalog.
type CourseStore interface {
	// SaveCourse stores or updates a catalog entry.
	SaveCourse(ctx context.Context, course domain.Course) error

	// ListCourses returns the whole catalog ordered by ID.
	ListCourses(ctx context.Context) ([]domain.Course, error)
}

// ParsedItemStore persists classification results.
// Every write ignores primary-key conflicts, so saving an item twice is a no-op.
type ParsedItemStore interface {
	// SaveParsedItem writes the core record, its type memberships
	// and its course memberships.
	SaveParsedItem(ctx context.Context, item *domain.ParsedItem) error

	// GetParsedItem retrieves a parsed item by ID.
	GetParsedItem(ctx context.Context, id string) (*domain.ParsedItem, error)

	// ListParsedItems returns parsed items matching the filter, ordered by path.
	ListParsedItems(ctx context.Context, filter domain.ParsedItemFilter) ([]domain.ParsedItem, error)
}

// RunStore records parse runs.
type RunStore interface {
	// SaveRun stores the report of a finished run.
	SaveRun(ctx context.Context, report domain.ParseReport) error

	// ListRuns returns the most recent runs first.
	ListRuns(ctx context.Context, limit int) ([]domain.ParseReport, error)
}
