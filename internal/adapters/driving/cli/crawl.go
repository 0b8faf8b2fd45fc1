package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/apuntes/internal/core/domain"
)

var crawlRoot string

var crawlCmd = &cobra.Command{
	Use:   "crawl",
	Short: "Harvest the remote folder tree",
	Long: `Walks the Drive folder tree below the configured root folder and records
every file path, link and owner in the local database.

Folders whose name matches drive.skip_pattern are not descended into. A crawl
that is interrupted resumes where it stopped: folders that were fully listed
are not listed again.`,
	Args: cobra.NoArgs,
	RunE: runCrawl,
}

func init() {
	crawlCmd.Flags().StringVar(&crawlRoot, "root", "", "root folder id (overrides drive.root_folder_id)")
	rootCmd.AddCommand(crawlCmd)
}

func runCrawl(cmd *cobra.Command, _ []string) error {
	if newCrawler == nil {
		return errors.New("crawl service not configured")
	}

	root := crawlRoot
	if root == "" && settingsService != nil {
		settings, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		root = settings.Drive.RootFolderID
	}
	if root == "" {
		return fmt.Errorf("%w: pass --root or run 'apuntes config set drive.root_folder_id <id>'",
			domain.ErrRootFolderRequired)
	}

	ctx := cmd.Context()
	crawler, err := newCrawler(ctx)
	if errors.Is(err, domain.ErrAuthRequired) {
		return fmt.Errorf("%w: run 'apuntes auth' first", err)
	}
	if err != nil {
		return err
	}

	cmd.Printf("Crawling folder %s...\n", root)
	stats, err := crawler.Crawl(ctx, root)
	if stats != nil {
		cmd.Printf("Listed %d folders, skipped %d, recorded %d files",
			stats.FoldersListed, stats.FoldersSkipped, stats.FilesRecorded)
		if stats.Failures > 0 {
			cmd.Printf(" (%d failures, run crawl again to retry)", stats.Failures)
		}
		cmd.Println()
	}
	if err != nil {
		return fmt.Errorf("crawl failed: %w", err)
	}
	return nil
}
