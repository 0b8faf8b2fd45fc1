package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/custodia-labs/apuntes/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/apuntes/internal/core/domain"
	"github.com/custodia-labs/apuntes/internal/core/services"
)

// testEnv holds in-memory stores behind real services.
type testEnv struct {
	files   *memory.FileStore
	courses *memory.CourseStore
	items   *memory.ParsedItemStore
	config  *memory.ConfigStore
}

// setupServices installs services over fresh in-memory stores and returns
// a cleanup that restores the previous package state.
func setupServices(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		files:   memory.NewFileStore(),
		courses: memory.NewCourseStore(domain.Course{ID: "61.08", Name: "Álgebra II"}),
		items:   memory.NewParsedItemStore(),
		config:  memory.NewConfigStore(),
	}

	oldParse, oldItems, oldCatalog, oldSettings := parseService, itemService, catalogService, settingsService
	oldCrawler, oldCreds, oldToken := newCrawler, credentialsFile, tokenFile

	parseService = services.NewParseService(env.files, env.courses, env.items, memory.NewRunStore())
	itemService = services.NewItemService(env.items)
	catalogService = services.NewCatalogService(env.courses)
	settingsService = services.NewSettingsService(env.config)

	t.Cleanup(func() {
		parseService, itemService, catalogService, settingsService = oldParse, oldItems, oldCatalog, oldSettings
		newCrawler, credentialsFile, tokenFile = oldCrawler, oldCreds, oldToken
	})
	return env
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

// stubCrawler records the root it was asked to crawl.
type stubCrawler struct {
	root  string
	stats domain.CrawlStats
	err   error
}

func (s *stubCrawler) Crawl(_ context.Context, root string) (*domain.CrawlStats, error) {
	s.root = root
	return &s.stats, s.err
}
