package oauth

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/apuntes/internal/logger"
)

// DefaultTimeout bounds how long the flow waits for the browser redirect.
const DefaultTimeout = 5 * time.Minute

// Flow runs the installed-application authorization code flow with PKCE.
type Flow struct {
	// Config is the OAuth client configuration. Its RedirectURL is
	// overwritten with the local callback address.
	Config *oauth2.Config

	// Open presents the authorization URL to the user. Defaults to OpenBrowser.
	Open func(url string) error

	// Out receives the authorization URL as a fallback when the browser
	// cannot be opened.
	Out io.Writer

	// Timeout bounds the wait for the redirect. Defaults to DefaultTimeout.
	Timeout time.Duration
}

// Run performs the flow and returns the issued token.
func (f *Flow) Run(ctx context.Context) (*oauth2.Token, error) {
	if f.Config == nil {
		return nil, fmt.Errorf("oauth flow: no client configuration")
	}
	open := f.Open
	if open == nil {
		open = OpenBrowser
	}
	timeout := f.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	state := uuid.NewString()
	server := NewCallbackServer(0, state)
	if err := server.Start(); err != nil {
		return nil, err
	}
	defer func() { _ = server.Stop() }()

	cfg := *f.Config
	cfg.RedirectURL = server.RedirectURI()

	verifier := oauth2.GenerateVerifier()
	authURL := cfg.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.S256ChallengeOption(verifier))

	if f.Out != nil {
		fmt.Fprintf(f.Out, "Open this URL to authorise apuntes:\n\n  %s\n\n", authURL)
	}
	if err := open(authURL); err != nil {
		logger.Warn("could not open browser: %v", err)
	}

	code, err := server.WaitForCode(ctx, timeout)
	if err != nil {
		return nil, err
	}

	tok, err := cfg.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}
	return tok, nil
}
