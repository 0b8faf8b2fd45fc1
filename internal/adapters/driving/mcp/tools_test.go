package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/apuntes/internal/core/domain"
)

func TestServer_handleClassify(t *testing.T) {
	ctx := context.Background()

	t.Run("returns classified items", func(t *testing.T) {
		date := time.Date(2022, 6, 15, 0, 0, 0, 0, time.UTC)
		mockParse := &mockParseService{
			items: []domain.ParsedItem{{
				Path:    "/drive/owner/61.08 algebra/parciales/1p 15-06-2022.pdf",
				Name:    "1p 15-06-2022.pdf",
				Types:   []domain.ContentType{domain.ContentExam},
				Courses: []string{"61.08"},
				Date:    &date,
			}},
		}

		server, err := NewServer(&Ports{Parse: mockParse})
		require.NoError(t, err)

		input := ClassifyInput{Paths: []string{"/Drive/owner/61.08 Álgebra/Parciales/1P 15-06-2022.pdf"}}
		_, output, err := server.handleClassify(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, input.Paths, mockParse.paths)
		require.Len(t, output.Items, 1)
		assert.Equal(t, []string{"exam"}, output.Items[0].Types)
		assert.Equal(t, []string{"61.08"}, output.Items[0].Courses)
		assert.Equal(t, "2022-06-15", output.Items[0].Date)
		assert.Equal(t, "1p 15-06-2022.pdf", output.Items[0].Name)
	})

	t.Run("requires paths", func(t *testing.T) {
		server, err := NewServer(&Ports{Parse: &mockParseService{}})
		require.NoError(t, err)

		_, _, err = server.handleClassify(ctx, nil, ClassifyInput{})
		require.Error(t, err)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		server, err := NewServer(&Ports{Parse: &mockParseService{err: errors.New("catalog unavailable")}})
		require.NoError(t, err)

		_, _, err = server.handleClassify(ctx, nil, ClassifyInput{Paths: []string{"/a/b/c"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "catalog unavailable")
	})
}

func TestServer_handleListItems(t *testing.T) {
	ctx := context.Background()

	t.Run("passes filter and returns items", func(t *testing.T) {
		mockItems := &mockItemService{
			items: []domain.ParsedItem{
				{ID: "a", Path: "/x/guia.pdf", Types: []domain.ContentType{domain.ContentGuide}},
				{ID: "b", Path: "/x/tp.pdf", Types: []domain.ContentType{domain.ContentGuide}},
			},
		}
		server, err := NewServer(&Ports{Parse: &mockParseService{}, Items: mockItems})
		require.NoError(t, err)

		_, output, err := server.handleListItems(ctx, nil, ListItemsInput{Type: "guide", Course: "61.08", Limit: 5})

		require.NoError(t, err)
		assert.Equal(t, 2, output.Count)
		assert.Equal(t, "a", output.Items[0].ID)
		assert.Empty(t, output.Items[0].Date)
		assert.Equal(t, domain.ParsedItemFilter{Type: domain.ContentGuide, CourseID: "61.08", Limit: 5}, mockItems.filter)
	})

	t.Run("default limit", func(t *testing.T) {
		mockItems := &mockItemService{}
		server, err := NewServer(&Ports{Parse: &mockParseService{}, Items: mockItems})
		require.NoError(t, err)

		_, output, err := server.handleListItems(ctx, nil, ListItemsInput{})

		require.NoError(t, err)
		assert.Equal(t, 0, output.Count)
		assert.Equal(t, defaultListLimit, mockItems.filter.Limit)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mockItems := &mockItemService{err: domain.ErrInvalidInput}
		server, err := NewServer(&Ports{Parse: &mockParseService{}, Items: mockItems})
		require.NoError(t, err)

		_, _, err = server.handleListItems(ctx, nil, ListItemsInput{Type: "recipe"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
