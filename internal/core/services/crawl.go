package services

import (
	"context"
	"fmt"
	"regexp"

	"github.com/custodia-labs/apuntes/internal/core/domain"
	"github.com/custodia-labs/apuntes/internal/core/ports/driven"
	"github.com/custodia-labs/apuntes/internal/core/ports/driving"
	"github.com/custodia-labs/apuntes/internal/logger"
)

// Ensure CrawlService implements the interface.
var _ driving.CrawlService = (*CrawlService)(nil)

// CrawlService walks the remote tree and records every file it finds.
type CrawlService struct {
	lister driven.FolderLister
	tree   driven.TreeStore
	skip   *regexp.Regexp
}

// NewCrawlService creates a crawl service. An empty skipPattern uses
// domain.DefaultSkipPattern.
func NewCrawlService(lister driven.FolderLister, tree driven.TreeStore, skipPattern string) (*CrawlService, error) {
	if skipPattern == "" {
		skipPattern = domain.DefaultSkipPattern
	}
	skip, err := regexp.Compile(skipPattern)
	if err != nil {
		return nil, fmt.Errorf("%w: skip pattern: %w", domain.ErrInvalidInput, err)
	}
	return &CrawlService{lister: lister, tree: tree, skip: skip}, nil
}

// Crawl walks the tree below rootFolderID. Folders already marked completed
// by an earlier crawl are not listed again.
func (s *CrawlService) Crawl(ctx context.Context, rootFolderID string) (*domain.CrawlStats, error) {
	if rootFolderID == "" {
		return nil, domain.ErrRootFolderRequired
	}

	root, err := s.lister.GetFolder(ctx, rootFolderID)
	if err != nil {
		return nil, fmt.Errorf("get root folder: %w", err)
	}

	stats := &domain.CrawlStats{}
	if _, err := s.walk(ctx, "", *root, stats); err != nil {
		return stats, err
	}
	return stats, nil
}

// walk lists one folder and recurses into its subfolders. It reports
// whether the folder was fully recorded; a folder with a failed child is
// left incomplete so the next crawl visits it again.
func (s *CrawlService) walk(
	ctx context.Context,
	parentPath string,
	folder domain.RemoteNode,
	stats *domain.CrawlStats,
) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	folderPath := parentPath + "/" + folder.Name

	if s.skip.MatchString(folder.Name) {
		logger.Warn("Skipping %s", folderPath)
		stats.FoldersSkipped++
		return true, nil
	}

	done, err := s.tree.IsCompleted(ctx, folder.ID)
	if err != nil {
		return false, fmt.Errorf("check folder %s: %w", folderPath, err)
	}
	if done {
		logger.Info("Already explored %s", folderPath)
		stats.FoldersSkipped++
		return true, nil
	}

	if err := s.tree.SaveNode(ctx, folderPath, folder, false); err != nil {
		return false, fmt.Errorf("record folder %s: %w", folderPath, err)
	}

	logger.Section("Listing " + folderPath)
	children, err := s.lister.ListChildren(ctx, folder.ID)
	if err != nil {
		return false, fmt.Errorf("list folder %s: %w", folderPath, err)
	}
	stats.FoldersListed++

	complete := true
	for _, child := range children {
		childPath := folderPath + "/" + child.Name

		if child.Kind == domain.KindFolder {
			childDone, err := s.walk(ctx, folderPath, child, stats)
			if err != nil {
				if ctx.Err() != nil {
					return false, err
				}
				logger.Error("Failed listing %s: %v", childPath, err)
				stats.Failures++
			}
			complete = complete && childDone
			continue
		}

		logger.Debug("Inserting file %s", childPath)
		if err := s.tree.SaveNode(ctx, childPath, child, true); err != nil {
			logger.Error("Failed recording %s: %v", childPath, err)
			stats.Failures++
			complete = false
			continue
		}
		stats.FilesRecorded++
	}

	if !complete {
		return false, nil
	}
	if err := s.tree.MarkCompleted(ctx, folder.ID); err != nil {
		return false, fmt.Errorf("complete folder %s: %w", folderPath, err)
	}
	logger.Info("Completed %s", folderPath)
	return true, nil
}
