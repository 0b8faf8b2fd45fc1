package drive

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/apuntes/internal/connectors/google"
	"github.com/custodia-labs/apuntes/internal/core/domain"
	"github.com/custodia-labs/apuntes/internal/core/ports/driven"
)

// Ensure Lister implements the interface.
var _ driven.FolderLister = (*Lister)(nil)

const (
	// DefaultPageSize is the page size for children listings.
	DefaultPageSize = 1000

	// maxAttempts bounds retries of rate-limited requests.
	maxAttempts = 5
)

// Lister implements driven.FolderLister over the Drive v3 API.
type Lister struct {
	svc      *drive.Service
	limiter  *google.RateLimiter
	pageSize int64
}

// Option configures a Lister.
type Option func(*Lister)

// WithRateLimiter replaces the default Drive rate limiter.
func WithRateLimiter(l *google.RateLimiter) Option {
	return func(d *Lister) { d.limiter = l }
}

// WithPageSize sets the listing page size.
func WithPageSize(n int64) Option {
	return func(d *Lister) {
		if n > 0 {
			d.pageSize = n
		}
	}
}

// NewLister creates a Lister for the given Drive service.
func NewLister(svc *drive.Service, opts ...Option) *Lister {
	l := &Lister{
		svc:      svc,
		limiter:  google.NewRateLimiter(),
		pageSize: DefaultPageSize,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// GetFolder retrieves a node's metadata by ID.
func (l *Lister) GetFolder(ctx context.Context, id string) (*domain.RemoteNode, error) {
	var file *drive.File
	err := l.do(ctx, func() error {
		var err error
		file, err = l.svc.Files.Get(id).
			Fields(nodeFields).
			SupportsAllDrives(true).
			Context(ctx).
			Do()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get folder %s: %w", id, err)
	}

	node := FileToNode(file)
	return &node, nil
}

// ListChildren returns every non-trashed child of a folder, following pagination.
func (l *Lister) ListChildren(ctx context.Context, folderID string) ([]domain.RemoteNode, error) {
	query := fmt.Sprintf("'%s' in parents and trashed = false", escapeQuery(folderID))

	var nodes []domain.RemoteNode
	pageToken := ""
	for {
		var list *drive.FileList
		err := l.do(ctx, func() error {
			call := l.svc.Files.List().
				Q(query).
				Fields(googleapi.Field("nextPageToken, files(" + nodeFields + ")")).
				PageSize(l.pageSize).
				SupportsAllDrives(true).
				IncludeItemsFromAllDrives(true).
				Context(ctx)
			if pageToken != "" {
				call = call.PageToken(pageToken)
			}
			var err error
			list, err = call.Do()
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("list children of %s: %w", folderID, err)
		}

		for _, f := range list.Files {
			nodes = append(nodes, FileToNode(f))
		}

		if list.NextPageToken == "" {
			return nodes, nil
		}
		pageToken = list.NextPageToken
	}
}

// do runs one API call under the rate limiter, retrying on rate-limit responses.
func (l *Lister) do(ctx context.Context, call func() error) error {
	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if werr := l.limiter.Wait(ctx); werr != nil {
			return werr
		}

		err = call()
		if err == nil {
			return nil
		}
		if !google.IsRateLimited(err) {
			return google.WrapError(err)
		}
		l.limiter.RecordRateLimitError(retryAfter(err))
	}
	return google.WrapError(err)
}

// retryAfter reads the Retry-After header of a rate-limited response.
func retryAfter(err error) time.Duration {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) || gerr.Header == nil {
		return 0
	}
	secs, perr := strconv.Atoi(gerr.Header.Get("Retry-After"))
	if perr != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

// escapeQuery escapes a value for use inside a single-quoted Drive query string.
func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}
