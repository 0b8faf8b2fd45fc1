package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/apuntes/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/apuntes/internal/core/domain"
	"github.com/custodia-labs/apuntes/internal/core/services"
)

// emptyCatalog is a catalog service with no courses.
type emptyCatalog struct{}

func (emptyCatalog) Import(context.Context, []domain.Course) (int, error) { return 0, nil }

func (emptyCatalog) List(context.Context) ([]domain.Course, error) { return nil, nil }

func TestRootCmd_RegistersCommands(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"auth", "crawl", "parse", "runs", "classify", "courses", "items", "config", "mcp", "version"} {
		assert.True(t, names[want], want)
	}
}

func TestRootCmd_BootstrapReceivesFlags(t *testing.T) {
	setupServices(t)
	defer func() { dataDir, configDir = "", "" }()

	var got Options
	closed := false
	SetBootstrap(func(opts Options) (*Services, error) {
		got = opts
		return &Services{
			Settings: services.NewSettingsService(memory.NewConfigStore()),
			Close: func() error {
				closed = true
				return nil
			},
		}, nil
	})
	defer SetBootstrap(nil)

	_, err := execute(t, "--data-dir", "/tmp/d", "--config-dir", "/tmp/c", "config", "show")

	require.NoError(t, err)
	assert.Equal(t, Options{DataDir: "/tmp/d", ConfigDir: "/tmp/c"}, got)
	assert.True(t, closed)
}

func TestRootCmd_BootstrapError(t *testing.T) {
	setupServices(t)
	SetBootstrap(func(Options) (*Services, error) {
		return nil, errors.New("cannot open database")
	})
	defer SetBootstrap(nil)

	_, err := execute(t, "config", "show")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot open database")
}
