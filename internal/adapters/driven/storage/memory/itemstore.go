package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/apuntes/internal/core/domain"
	"github.com/custodia-labs/apuntes/internal/core/ports/driven"
)

// Ensure the stores implement the interfaces.
var (
	_ driven.ParsedItemStore = (*ParsedItemStore)(nil)
	_ driven.CourseStore     = (*CourseStore)(nil)
	_ driven.RunStore        = (*RunStore)(nil)
)

// ParsedItemStore is an in-memory implementation of driven.ParsedItemStore.
// It mirrors the SQL conflict rules: the first core record for an ID wins
// and type and course memberships are only ever added.
type ParsedItemStore struct {
	mu    sync.RWMutex
	items map[string]domain.ParsedItem
}

// NewParsedItemStore creates a new in-memory parsed item store.
func NewParsedItemStore() *ParsedItemStore {
	return &ParsedItemStore{
		items: make(map[string]domain.ParsedItem),
	}
}

// SaveParsedItem stores the item, ignoring conflicts.
func (s *ParsedItemStore) SaveParsedItem(_ context.Context, item *domain.ParsedItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.items[item.ID]
	if !ok {
		stored = *item
		stored.Types = nil
		stored.Courses = nil
	}
	for _, t := range item.Types {
		if !stored.HasType(t) {
			stored.Types = append(stored.Types, t)
		}
	}
	for _, c := range item.Courses {
		if !containsString(stored.Courses, c) {
			stored.Courses = append(stored.Courses, c)
		}
	}
	s.items[item.ID] = stored
	return nil
}

// GetParsedItem retrieves a parsed item by ID.
func (s *ParsedItemStore) GetParsedItem(_ context.Context, id string) (*domain.ParsedItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &item, nil
}

// ListParsedItems returns matching items ordered by path, then ID.
func (s *ParsedItemStore) ListParsedItems(_ context.Context, filter domain.ParsedItemFilter) ([]domain.ParsedItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []domain.ParsedItem
	for _, item := range s.items {
		if filter.Type != "" && !item.HasType(filter.Type) {
			continue
		}
		if filter.CourseID != "" && !containsString(item.Courses, filter.CourseID) {
			continue
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Path != items[j].Path {
			return items[i].Path < items[j].Path
		}
		return items[i].ID < items[j].ID
	})

	if filter.Limit > 0 && len(items) > filter.Limit {
		items = items[:filter.Limit]
	}
	return items, nil
}

// Len returns the number of stored items.
func (s *ParsedItemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// CourseStore is an in-memory implementation of driven.CourseStore.
type CourseStore struct {
	mu      sync.RWMutex
	courses map[string]domain.Course
}

// NewCourseStore creates a new in-memory course store.
func NewCourseStore(courses ...domain.Course) *CourseStore {
	s := &CourseStore{courses: make(map[string]domain.Course)}
	for _, c := range courses {
		s.courses[c.ID] = c
	}
	return s
}

// SaveCourse stores or updates a catalog entry.
func (s *CourseStore) SaveCourse(_ context.Context, course domain.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses[course.ID] = course
	return nil
}

// ListCourses returns the catalog ordered by ID.
func (s *CourseStore) ListCourses(_ context.Context) ([]domain.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	courses := make([]domain.Course, 0, len(s.courses))
	for _, c := range s.courses {
		courses = append(courses, c)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

// RunStore is an in-memory implementation of driven.RunStore.
type RunStore struct {
	mu   sync.RWMutex
	runs []domain.ParseReport
}

// NewRunStore creates a new in-memory run store.
func NewRunStore() *RunStore {
	return &RunStore{}
}

// SaveRun stores the report of a finished run.
func (s *RunStore) SaveRun(_ context.Context, report domain.ParseReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, report)
	return nil
}

// ListRuns returns the most recent runs first.
func (s *RunStore) ListRuns(_ context.Context, limit int) ([]domain.ParseReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	runs := make([]domain.ParseReport, 0, len(s.runs))
	for i := len(s.runs) - 1; i >= 0; i-- {
		if limit > 0 && len(runs) >= limit {
			break
		}
		runs = append(runs, s.runs[i])
	}
	return runs, nil
}

func containsString(values []string, v string) bool {
	for _, have := range values {
		if have == v {
			return true
		}
	}
	return false
}
