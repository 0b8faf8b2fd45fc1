package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/apuntes/internal/adapters/driving/oauth"
	"github.com/custodia-labs/apuntes/internal/connectors/google"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authorise read access to Google Drive",
	Long: `Runs the OAuth consent flow in the browser and stores the resulting token.

Download an OAuth client secret ("Desktop app") from the Google Cloud console
and point drive.credentials_file at it, or place it at the default location
(~/.apuntes/credentials.json). Only read access to file metadata is requested.

The token is refreshed automatically by later crawls.`,
	Args: cobra.NoArgs,
	RunE: runAuth,
}

// runOAuthFlow performs the browser flow. Replaced in tests.
var runOAuthFlow = func(ctx context.Context, cfg *oauth2.Config, out io.Writer) (*oauth2.Token, error) {
	flow := &oauth.Flow{Config: cfg, Out: out}
	return flow.Run(ctx)
}

func init() {
	rootCmd.AddCommand(authCmd)
}

func runAuth(cmd *cobra.Command, _ []string) error {
	if credentialsFile == "" || tokenFile == "" {
		return errors.New("credential paths not configured")
	}

	cfg, err := google.LoadConfig(credentialsFile)
	if err != nil {
		return fmt.Errorf("failed to load client secret: %w", err)
	}

	cmd.Println("Opening the browser to authorise access to Google Drive...")
	tok, err := runOAuthFlow(cmd.Context(), cfg, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("authorisation failed: %w", err)
	}

	if err := google.SaveToken(tokenFile, tok); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	cmd.Printf("Authorised. Token saved to %s\n", tokenFile)
	return nil
}
