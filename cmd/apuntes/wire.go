package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/custodia-labs/apuntes/internal/adapters/driven/config/file"
	"github.com/custodia-labs/apuntes/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/apuntes/internal/adapters/driving/cli"
	"github.com/custodia-labs/apuntes/internal/connectors/google"
	"github.com/custodia-labs/apuntes/internal/connectors/google/drive"
	"github.com/custodia-labs/apuntes/internal/core/ports/driving"
	"github.com/custodia-labs/apuntes/internal/core/services"
	"github.com/custodia-labs/apuntes/internal/logger"
)

// Default credential file names, relative to the config directory.
const (
	credentialsFileName = "credentials.json"
	tokenFileName       = "token.json"
)

// newServices opens the config file and the database and builds the
// application services.
func newServices(opts cli.Options) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, err
	}

	dataDir := opts.DataDir
	if dataDir == "" {
		dataDir = settings.DataDir
	}
	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	logger.Debug("Database: %s", store.Path())

	configDir := filepath.Dir(configStore.Path())
	credentialsFile := orDefault(settings.Drive.CredentialsFile, filepath.Join(configDir, credentialsFileName))
	tokenFile := orDefault(settings.Drive.TokenFile, filepath.Join(configDir, tokenFileName))
	skipPattern := settings.Drive.SkipPattern

	newCrawler := func(ctx context.Context) (driving.CrawlService, error) {
		cfg, err := google.LoadConfig(credentialsFile)
		if err != nil {
			return nil, err
		}
		ts, err := google.NewTokenSource(ctx, cfg, tokenFile)
		if err != nil {
			return nil, err
		}
		svc, err := google.NewDriveService(ctx, ts)
		if err != nil {
			return nil, err
		}
		lister := drive.NewLister(svc, drive.WithRateLimiter(google.NewRateLimiter()))
		return services.NewCrawlService(lister, store.TreeStore(), skipPattern)
	}

	return &cli.Services{
		Parse: services.NewParseService(
			store.RawItemStore(), store.CourseStore(), store.ParsedItemStore(), store.RunStore()),
		Items:           services.NewItemService(store.ParsedItemStore()),
		Catalog:         services.NewCatalogService(store.CourseStore()),
		Settings:        settingsService,
		NewCrawler:      newCrawler,
		CredentialsFile: credentialsFile,
		TokenFile:       tokenFile,
		Close:           store.Close,
	}, nil
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
