package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/apuntes/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/apuntes/internal/core/domain"
)

func TestItemService_GetAndList(t *testing.T) {
	store := memory.NewParsedItemStore()
	ctx := context.Background()
	require.NoError(t, store.SaveParsedItem(ctx, &domain.ParsedItem{
		Path: "/a", ID: "1", Types: []domain.ContentType{domain.ContentExam},
	}))
	require.NoError(t, store.SaveParsedItem(ctx, &domain.ParsedItem{
		Path: "/b", ID: "2", Types: []domain.ContentType{domain.ContentGuide},
	}))

	service := NewItemService(store)

	item, err := service.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "/a", item.Path)

	_, err = service.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	exams, err := service.List(ctx, domain.ParsedItemFilter{Type: domain.ContentExam})
	require.NoError(t, err)
	require.Len(t, exams, 1)
	assert.Equal(t, "1", exams[0].ID)
}

func TestItemService_List_UnknownType(t *testing.T) {
	service := NewItemService(memory.NewParsedItemStore())

	_, err := service.List(context.Background(), domain.ParsedItemFilter{Type: "recipe"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
