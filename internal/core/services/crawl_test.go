package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/apuntes/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/apuntes/internal/core/domain"
)

func folder(id, name string) domain.RemoteNode {
	return domain.RemoteNode{ID: id, Name: name, Kind: domain.KindFolder, Owner: "o@x.y"}
}

func file(id, name string) domain.RemoteNode {
	return domain.RemoteNode{ID: id, Name: name, Kind: domain.KindFile, Owner: "o@x.y", Link: "https://drive/" + id}
}

// sampleTree builds:
//
//	/Materias
//	├── programa.pdf
//	├── _viejo/        (skipped)
//	│   └── old.pdf
//	└── Algebra/
//	    ├── parcial.pdf
//	    └── src/       (skipped)
func sampleTree() *fakeLister {
	l := newFakeLister()
	l.add("", folder("root", "Materias"))
	l.add("root", file("f0", "programa.pdf"))
	l.add("root", folder("old", "_viejo"))
	l.add("old", file("f9", "old.pdf"))
	l.add("root", folder("alg", "Algebra"))
	l.add("alg", file("f1", "parcial.pdf"))
	l.add("alg", folder("src", "src"))
	return l
}

func TestNewCrawlService_InvalidPattern(t *testing.T) {
	_, err := NewCrawlService(newFakeLister(), memory.NewFileStore(), "([")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCrawlService_Crawl_RecordsTree(t *testing.T) {
	lister := sampleTree()
	tree := memory.NewFileStore()
	service, err := NewCrawlService(lister, tree, "")
	require.NoError(t, err)

	stats, err := service.Crawl(context.Background(), "root")
	require.NoError(t, err)

	assert.Equal(t, domain.CrawlStats{FoldersListed: 2, FoldersSkipped: 2, FilesRecorded: 2}, *stats)
	assert.ElementsMatch(t, []string{"root", "alg"}, lister.listed)

	items, err := tree.ListRawItems(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "/Materias/programa.pdf", items[0].Path)
	assert.Equal(t, "/Materias/Algebra/parcial.pdf", items[1].Path)
	assert.Equal(t, "o@x.y", items[1].Owner)
	assert.Equal(t, "https://drive/f1", items[1].Link)

	path, ok := tree.Path("alg")
	assert.True(t, ok)
	assert.Equal(t, "/Materias/Algebra", path)

	for _, id := range []string{"root", "alg"} {
		done, err := tree.IsCompleted(context.Background(), id)
		require.NoError(t, err)
		assert.True(t, done, id)
	}
}

func TestCrawlService_Crawl_ResumeSkipsCompleted(t *testing.T) {
	lister := sampleTree()
	tree := memory.NewFileStore()
	service, err := NewCrawlService(lister, tree, "")
	require.NoError(t, err)

	_, err = service.Crawl(context.Background(), "root")
	require.NoError(t, err)
	lister.listed = nil

	stats, err := service.Crawl(context.Background(), "root")
	require.NoError(t, err)
	assert.Equal(t, domain.CrawlStats{FoldersSkipped: 1}, *stats)
	assert.Empty(t, lister.listed)
}

func TestCrawlService_Crawl_FailedChildLeavesParentIncomplete(t *testing.T) {
	lister := sampleTree()
	lister.fail["alg"] = errors.New("quota")
	tree := memory.NewFileStore()
	service, err := NewCrawlService(lister, tree, "")
	require.NoError(t, err)

	stats, err := service.Crawl(context.Background(), "root")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Failures)
	assert.Equal(t, 1, stats.FilesRecorded)

	done, err := tree.IsCompleted(context.Background(), "root")
	require.NoError(t, err)
	assert.False(t, done)

	// The next crawl revisits the incomplete folders.
	delete(lister.fail, "alg")
	lister.listed = nil
	stats, err = service.Crawl(context.Background(), "root")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Failures)
	assert.Equal(t, 2, stats.FilesRecorded)
	assert.ElementsMatch(t, []string{"root", "alg"}, lister.listed)

	items, err := tree.ListRawItems(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	done, err = tree.IsCompleted(context.Background(), "root")
	require.NoError(t, err)
	assert.True(t, done)
}

func TestCrawlService_Crawl_CustomSkipPattern(t *testing.T) {
	lister := sampleTree()
	service, err := NewCrawlService(lister, memory.NewFileStore(), "^Algebra$")
	require.NoError(t, err)

	stats, err := service.Crawl(context.Background(), "root")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.FoldersSkipped)
	assert.ElementsMatch(t, []string{"root", "old"}, lister.listed)
}

func TestCrawlService_Crawl_RootRequired(t *testing.T) {
	service, err := NewCrawlService(newFakeLister(), memory.NewFileStore(), "")
	require.NoError(t, err)

	_, err = service.Crawl(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrRootFolderRequired)
}

func TestCrawlService_Crawl_RootNotFound(t *testing.T) {
	service, err := NewCrawlService(newFakeLister(), memory.NewFileStore(), "")
	require.NoError(t, err)

	_, err = service.Crawl(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCrawlService_Crawl_RootListingFails(t *testing.T) {
	lister := sampleTree()
	lister.fail["root"] = errors.New("offline")
	service, err := NewCrawlService(lister, memory.NewFileStore(), "")
	require.NoError(t, err)

	_, err = service.Crawl(context.Background(), "root")
	assert.Error(t, err)
}

func TestCrawlService_Crawl_Cancelled(t *testing.T) {
	service, err := NewCrawlService(sampleTree(), memory.NewFileStore(), "")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = service.Crawl(ctx, "root")
	assert.ErrorIs(t, err, context.Canceled)
}
