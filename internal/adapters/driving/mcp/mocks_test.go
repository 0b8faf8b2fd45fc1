package mcp

import (
	"context"

	"github.com/custodia-labs/apuntes/internal/core/domain"
	"github.com/custodia-labs/apuntes/internal/core/ports/driving"
)

// mockParseService is a mock implementation of driving.ParseService.
type mockParseService struct {
	items []domain.ParsedItem
	paths []string
	err   error
}

func (m *mockParseService) Run(_ context.Context, _ driving.ParseOptions) (*domain.ParseReport, error) {
	return &domain.ParseReport{}, m.err
}

func (m *mockParseService) ClassifyPaths(_ context.Context, paths []string) ([]domain.ParsedItem, error) {
	m.paths = paths
	return m.items, m.err
}

func (m *mockParseService) Runs(_ context.Context, _ int) ([]domain.ParseReport, error) {
	return nil, m.err
}

// mockItemService is a mock implementation of driving.ItemService.
type mockItemService struct {
	items  []domain.ParsedItem
	item   *domain.ParsedItem
	filter domain.ParsedItemFilter
	err    error
}

func (m *mockItemService) Get(_ context.Context, _ string) (*domain.ParsedItem, error) {
	return m.item, m.err
}

func (m *mockItemService) List(_ context.Context, filter domain.ParsedItemFilter) ([]domain.ParsedItem, error) {
	m.filter = filter
	return m.items, m.err
}

// mockCatalogService is a mock implementation of driving.CatalogService.
type mockCatalogService struct {
	courses []domain.Course
	err     error
}

func (m *mockCatalogService) Import(_ context.Context, courses []domain.Course) (int, error) {
	return len(courses), m.err
}

func (m *mockCatalogService) List(_ context.Context) ([]domain.Course, error) {
	return m.courses, m.err
}
