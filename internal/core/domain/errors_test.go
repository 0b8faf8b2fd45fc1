package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrCatalogEmpty", ErrCatalogEmpty},
		{"ErrStoreUnavailable", ErrStoreUnavailable},
		{"ErrAuthRequired", ErrAuthRequired},
		{"ErrAuthInvalid", ErrAuthInvalid},
		{"ErrRootFolderRequired", ErrRootFolderRequired},
		{"ErrRateLimited", ErrRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrors_Distinct(t *testing.T) {
	assert.False(t, errors.Is(ErrNotFound, ErrInvalidInput))
	assert.False(t, errors.Is(ErrAuthRequired, ErrAuthInvalid))
}

func TestErrors_Wrapped(t *testing.T) {
	err := fmt.Errorf("get root folder: %w", ErrNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "get root folder: not found", err.Error())
}
