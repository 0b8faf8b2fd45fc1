package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/apuntes/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/apuntes/internal/core/domain"
)

func TestCatalogService_ImportAndList(t *testing.T) {
	service := NewCatalogService(memory.NewCourseStore())
	ctx := context.Background()

	n, err := service.Import(ctx, []domain.Course{
		{ID: " 75.41 ", Name: "Algoritmos II"},
		{ID: "61.03", Name: "Análisis II"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	courses, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Course{
		{ID: "61.03", Name: "Análisis II"},
		{ID: "75.41", Name: "Algoritmos II"},
	}, courses)
}

func TestCatalogService_Import_RejectsIncompleteEntries(t *testing.T) {
	store := memory.NewCourseStore()
	service := NewCatalogService(store)
	ctx := context.Background()

	_, err := service.Import(ctx, []domain.Course{
		{ID: "75.41", Name: "Algoritmos II"},
		{ID: "61.03"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = service.Import(ctx, []domain.Course{{Name: "No id"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	courses, err := store.ListCourses(ctx)
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestCatalogService_Import_StorageError(t *testing.T) {
	service := NewCatalogService(failingCourseStore{})

	_, err := service.Import(context.Background(), []domain.Course{{ID: "1", Name: "x"}})
	assert.ErrorIs(t, err, errStorage)
}
