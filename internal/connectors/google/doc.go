// Package google provides shared infrastructure for the Google Drive connector.
//
// It contains:
//   - OAuth client configuration and token persistence for the installed-app flow
//   - The Drive service factory
//   - Error handling for common Google API errors (401, 403, 404, 429)
//   - Rate limiting to respect Google API quotas
//
// # Usage
//
//	cfg, err := google.LoadConfig(credentialsFile)
//	ts, err := google.NewTokenSource(ctx, cfg, tokenFile)
//	svc, err := google.NewDriveService(ctx, ts)
//
// # OAuth2 Scopes
//
// Only https://www.googleapis.com/auth/drive.metadata.readonly is requested:
// the crawler reads names, links and owners, never file contents.
package google
