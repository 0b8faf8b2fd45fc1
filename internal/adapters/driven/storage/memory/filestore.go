package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/apuntes/internal/core/domain"
	"github.com/custodia-labs/apuntes/internal/core/ports/driven"
)

// Ensure FileStore implements the interfaces.
var (
	_ driven.TreeStore    = (*FileStore)(nil)
	_ driven.RawItemStore = (*FileStore)(nil)
)

type treeNode struct {
	path      string
	node      domain.RemoteNode
	completed bool
}

// FileStore is an in-memory record of the crawled tree. Files recorded by
// a crawl are served back as raw items.
type FileStore struct {
	mu    sync.RWMutex
	order []string
	nodes map[string]*treeNode
}

// NewFileStore creates a new in-memory file store.
func NewFileStore() *FileStore {
	return &FileStore{
		nodes: make(map[string]*treeNode),
	}
}

// AddRawItem records a file directly, bypassing a crawl.
func (s *FileStore) AddRawItem(item domain.RawItem) {
	_ = s.SaveNode(context.Background(), item.Path, domain.RemoteNode{
		ID:    item.ID,
		Link:  item.Link,
		Owner: item.Owner,
		Kind:  domain.KindFile,
	}, true)
}

// SaveNode records a node. Existing IDs are left untouched.
func (s *FileStore) SaveNode(_ context.Context, path string, node domain.RemoteNode, completed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.nodes[node.ID]; ok {
		return nil
	}
	s.nodes[node.ID] = &treeNode{path: path, node: node, completed: completed}
	s.order = append(s.order, node.ID)
	return nil
}

// IsCompleted reports whether a folder has been fully listed.
func (s *FileStore) IsCompleted(_ context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nodes[id]
	return ok && n.completed, nil
}

// MarkCompleted flags a folder as fully listed.
func (s *FileStore) MarkCompleted(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.nodes[id]
	if !ok {
		return domain.ErrNotFound
	}
	n.completed = true
	return nil
}

// Path returns the recorded path of a node.
func (s *FileStore) Path(id string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nodes[id]
	if !ok {
		return "", false
	}
	return n.path, true
}

// ListRawItems returns recorded files in insertion order.
func (s *FileStore) ListRawItems(_ context.Context, limit int) ([]domain.RawItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []domain.RawItem
	for _, id := range s.order {
		n := s.nodes[id]
		if n.node.Kind != domain.KindFile {
			continue
		}
		if limit > 0 && len(items) >= limit {
			break
		}
		items = append(items, domain.RawItem{
			Path:  n.path,
			ID:    n.node.ID,
			Link:  n.node.Link,
			Owner: n.node.Owner,
		})
	}
	return items, nil
}
