package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/apuntes/internal/core/domain"
)

func TestNewFileStore(t *testing.T) {
	store := NewFileStore()
	require.NotNil(t, store)

	items, err := store.ListRawItems(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFileStore_SaveNode_FirstWriteWins(t *testing.T) {
	store := NewFileStore()
	ctx := context.Background()

	node := domain.RemoteNode{ID: "f1", Kind: domain.KindFile}
	require.NoError(t, store.SaveNode(ctx, "/a/one.pdf", node, true))
	require.NoError(t, store.SaveNode(ctx, "/a/two.pdf", node, true))

	path, ok := store.Path("f1")
	assert.True(t, ok)
	assert.Equal(t, "/a/one.pdf", path)
}

func TestFileStore_ListRawItems_FilesOnlyInOrder(t *testing.T) {
	store := NewFileStore()
	ctx := context.Background()

	require.NoError(t, store.SaveNode(ctx, "/a", domain.RemoteNode{ID: "d1", Kind: domain.KindFolder}, false))
	store.AddRawItem(domain.RawItem{Path: "/a/2.pdf", ID: "f2", Owner: "x@y.z"})
	store.AddRawItem(domain.RawItem{Path: "/a/1.pdf", ID: "f1"})

	items, err := store.ListRawItems(ctx, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "f2", items[0].ID)
	assert.Equal(t, "x@y.z", items[0].Owner)
	assert.Equal(t, "f1", items[1].ID)

	limited, err := store.ListRawItems(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestFileStore_Completion(t *testing.T) {
	store := NewFileStore()
	ctx := context.Background()

	require.NoError(t, store.SaveNode(ctx, "/a", domain.RemoteNode{ID: "d1", Kind: domain.KindFolder}, false))

	done, err := store.IsCompleted(ctx, "d1")
	require.NoError(t, err)
	assert.False(t, done)

	require.NoError(t, store.MarkCompleted(ctx, "d1"))
	done, err = store.IsCompleted(ctx, "d1")
	require.NoError(t, err)
	assert.True(t, done)

	assert.ErrorIs(t, store.MarkCompleted(ctx, "missing"), domain.ErrNotFound)
}
