package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/apuntes/internal/core/domain"
	"github.com/custodia-labs/apuntes/internal/core/ports/driven"
	"github.com/custodia-labs/apuntes/internal/core/ports/driving"
)

// Ensure ItemService implements the interface.
var _ driving.ItemService = (*ItemService)(nil)

// ItemService reads classification results.
type ItemService struct {
	itemStore driven.ParsedItemStore
}

// NewItemService creates a new item service.
func NewItemService(itemStore driven.ParsedItemStore) *ItemService {
	return &ItemService{itemStore: itemStore}
}

// Get retrieves a parsed item by ID.
func (s *ItemService) Get(ctx context.Context, id string) (*domain.ParsedItem, error) {
	return s.itemStore.GetParsedItem(ctx, id)
}

// List returns parsed items matching the filter.
func (s *ItemService) List(ctx context.Context, filter domain.ParsedItemFilter) ([]domain.ParsedItem, error) {
	if filter.Type != "" && !filter.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown content type %q", domain.ErrInvalidInput, filter.Type)
	}
	return s.itemStore.ListParsedItems(ctx, filter)
}
