package driving

import (
	"context"

	"github.com/custodia-labs/apuntes/internal/core/domain"
)

// CrawlService harvests the remote storage tree.
type CrawlService interface {
	// Crawl walks the tree below rootFolderID, resuming where a previous
	// crawl stopped.
	Crawl(ctx context.Context, rootFolderID string) (*domain.CrawlStats, error)
}
