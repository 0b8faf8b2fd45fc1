package services

import (
	"context"
	"errors"
	"sync"

	"github.com/custodia-labs/apuntes/internal/core/domain"
)

var errStorage = errors.New("disk on fire")

// fakeLister serves a fixed folder tree.
type fakeLister struct {
	mu       sync.Mutex
	nodes    map[string]domain.RemoteNode
	children map[string][]domain.RemoteNode
	fail     map[string]error
	listed   []string
}

func newFakeLister() *fakeLister {
	return &fakeLister{
		nodes:    make(map[string]domain.RemoteNode),
		children: make(map[string][]domain.RemoteNode),
		fail:     make(map[string]error),
	}
}

func (f *fakeLister) add(parentID string, node domain.RemoteNode) {
	f.nodes[node.ID] = node
	if parentID != "" {
		f.children[parentID] = append(f.children[parentID], node)
	}
}

func (f *fakeLister) GetFolder(_ context.Context, id string) (*domain.RemoteNode, error) {
	node, ok := f.nodes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &node, nil
}

func (f *fakeLister) ListChildren(_ context.Context, folderID string) ([]domain.RemoteNode, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listed = append(f.listed, folderID)
	if err := f.fail[folderID]; err != nil {
		return nil, err
	}
	return f.children[folderID], nil
}

// failingItemStore rejects every write.
type failingItemStore struct{}

func (failingItemStore) SaveParsedItem(context.Context, *domain.ParsedItem) error { return errStorage }

func (failingItemStore) GetParsedItem(context.Context, string) (*domain.ParsedItem, error) {
	return nil, errStorage
}

func (failingItemStore) ListParsedItems(context.Context, domain.ParsedItemFilter) ([]domain.ParsedItem, error) {
	return nil, errStorage
}

// failingCourseStore cannot read the catalog.
type failingCourseStore struct{}

func (failingCourseStore) SaveCourse(context.Context, domain.Course) error { return errStorage }

func (failingCourseStore) ListCourses(context.Context) ([]domain.Course, error) { return nil, errStorage }
