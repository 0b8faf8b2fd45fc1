package services

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/custodia-labs/apuntes/internal/core/domain"
	"github.com/custodia-labs/apuntes/internal/core/ports/driven"
	"github.com/custodia-labs/apuntes/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyDataDir         = "data_dir"
	KeyRootFolderID    = "drive.root_folder_id"
	KeySkipPattern     = "drive.skip_pattern"
	KeyCredentialsFile = "drive.credentials_file"
	KeyTokenFile       = "drive.token_file"
	KeyParseWorkers    = "parse.workers"
	KeyParseLimit      = "parse.limit"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	return &domain.AppSettings{
		DataDir: s.configStore.GetString(KeyDataDir),
		Drive: domain.DriveSettings{
			RootFolderID:    s.configStore.GetString(KeyRootFolderID),
			SkipPattern:     s.getString(KeySkipPattern, defaults.Drive.SkipPattern),
			CredentialsFile: s.configStore.GetString(KeyCredentialsFile),
			TokenFile:       s.configStore.GetString(KeyTokenFile),
		},
		Parse: domain.ParseSettings{
			Workers: s.getInt(KeyParseWorkers, defaults.Parse.Workers),
			Limit:   s.getInt(KeyParseLimit, defaults.Parse.Limit),
		},
	}, nil
}

// Set validates and stores a single setting.
func (s *SettingsService) Set(key, value string) error {
	switch key {
	case KeyDataDir, KeyRootFolderID, KeyCredentialsFile, KeyTokenFile:
		return s.configStore.Set(key, value)
	case KeySkipPattern:
		if _, err := regexp.Compile(value); err != nil {
			return fmt.Errorf("%w: %s: %w", domain.ErrInvalidInput, key, err)
		}
		return s.configStore.Set(key, value)
	case KeyParseWorkers, KeyParseLimit:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: %s must be a non-negative integer", domain.ErrInvalidInput, key)
		}
		return s.configStore.Set(key, int64(n))
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

// Keys returns every recognised setting key.
func (s *SettingsService) Keys() []string {
	return []string{
		KeyDataDir,
		KeyRootFolderID,
		KeySkipPattern,
		KeyCredentialsFile,
		KeyTokenFile,
		KeyParseWorkers,
		KeyParseLimit,
	}
}

func (s *SettingsService) getString(key, fallback string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return fallback
}

func (s *SettingsService) getInt(key string, fallback int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return fallback
	}
	return s.configStore.GetInt(key)
}
