package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"

	"github.com/custodia-labs/apuntes/internal/core/domain"
)

// LoadConfig reads an OAuth client secrets file as downloaded from the
// Google Cloud console.
func LoadConfig(credentialsFile string) (*oauth2.Config, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("credentials file %s: %w", credentialsFile, domain.ErrAuthRequired)
		}
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	cfg, err := googleoauth.ConfigFromJSON(data, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("parse credentials: %v: %w", err, domain.ErrAuthInvalid)
	}
	return cfg, nil
}

// LoadToken reads a token saved by SaveToken.
func LoadToken(tokenFile string) (*oauth2.Token, error) {
	data, err := os.ReadFile(tokenFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("token file %s: %w", tokenFile, domain.ErrAuthRequired)
		}
		return nil, fmt.Errorf("read token: %w", err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("decode token: %v: %w", err, domain.ErrAuthInvalid)
	}
	if tok.AccessToken == "" && tok.RefreshToken == "" {
		return nil, fmt.Errorf("token file %s holds no token: %w", tokenFile, domain.ErrAuthInvalid)
	}
	return &tok, nil
}

// SaveToken writes a token with owner-only permissions.
func SaveToken(tokenFile string, tok *oauth2.Token) error {
	if tok == nil {
		return domain.ErrInvalidInput
	}
	if err := os.MkdirAll(filepath.Dir(tokenFile), 0700); err != nil {
		return fmt.Errorf("create token directory: %w", err)
	}

	data, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("encode token: %w", err)
	}
	if err := os.WriteFile(tokenFile, data, 0600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

// persistingTokenSource writes refreshed tokens back to disk so the next
// run starts with a valid access token.
type persistingTokenSource struct {
	mu     sync.Mutex
	base   oauth2.TokenSource
	file   string
	last   string
	saveFn func(string, *oauth2.Token) error
}

// NewTokenSource returns a refreshing token source backed by tokenFile.
// A missing token file yields domain.ErrAuthRequired.
func NewTokenSource(ctx context.Context, cfg *oauth2.Config, tokenFile string) (oauth2.TokenSource, error) {
	if cfg == nil {
		return nil, domain.ErrInvalidInput
	}
	tok, err := LoadToken(tokenFile)
	if err != nil {
		return nil, err
	}

	return &persistingTokenSource{
		base:   cfg.TokenSource(ctx, tok),
		file:   tokenFile,
		last:   tok.AccessToken,
		saveFn: SaveToken,
	}, nil
}

// Token implements oauth2.TokenSource.
func (s *persistingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.base.Token()
	if err != nil {
		var rerr *oauth2.RetrieveError
		if errors.As(err, &rerr) {
			return nil, fmt.Errorf("refresh token: %v: %w", err, domain.ErrAuthInvalid)
		}
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if tok.AccessToken != s.last {
		if err := s.saveFn(s.file, tok); err != nil {
			return nil, err
		}
		s.last = tok.AccessToken
	}
	return tok, nil
}
