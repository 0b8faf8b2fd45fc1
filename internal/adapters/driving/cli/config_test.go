package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/apuntes/internal/core/domain"
)

func TestConfigShow_Defaults(t *testing.T) {
	setupServices(t)

	out, err := execute(t, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Root folder:      (not set)")
	assert.Contains(t, out, domain.DefaultSkipPattern)
	assert.Contains(t, out, "Workers: 1")
	assert.Contains(t, out, "Limit:   (all)")
}

func TestConfigSet(t *testing.T) {
	env := setupServices(t)

	out, err := execute(t, "config", "set", "parse.limit", "1000")
	require.NoError(t, err)
	assert.Contains(t, out, "parse.limit = 1000")
	assert.Equal(t, 1000, env.config.GetInt("parse.limit"))

	out, err = execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "Limit:   1000")
}

func TestConfigSet_Invalid(t *testing.T) {
	setupServices(t)

	_, err := execute(t, "config", "set", "parse.workers", "many")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = execute(t, "config", "set", "search.mode", "hybrid")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
