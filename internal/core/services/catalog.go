package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/apuntes/internal/core/domain"
	"github.com/custodia-labs/apuntes/internal/core/ports/driven"
	"github.com/custodia-labs/apuntes/internal/core/ports/driving"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService manages the course catalog.
type CatalogService struct {
	courseStore driven.CourseStore
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(courseStore driven.CourseStore) *CatalogService {
	return &CatalogService{courseStore: courseStore}
}

// Import validates and upserts catalog entries. Entries without an ID or
// a name are rejected before anything is written.
func (s *CatalogService) Import(ctx context.Context, courses []domain.Course) (int, error) {
	for i, c := range courses {
		if strings.TrimSpace(c.ID) == "" {
			return 0, fmt.Errorf("%w: course %d has no id", domain.ErrInvalidInput, i)
		}
		if strings.TrimSpace(c.Name) == "" {
			return 0, fmt.Errorf("%w: course %s has no name", domain.ErrInvalidInput, c.ID)
		}
	}

	for _, c := range courses {
		c.ID = strings.TrimSpace(c.ID)
		if err := s.courseStore.SaveCourse(ctx, c); err != nil {
			return 0, fmt.Errorf("save course %s: %w", c.ID, err)
		}
	}
	return len(courses), nil
}

// List returns the catalog.
func (s *CatalogService) List(ctx context.Context) ([]domain.Course, error) {
	return s.courseStore.ListCourses(ctx)
}
