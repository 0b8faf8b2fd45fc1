// Package cli implements the apuntes command line interface.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/apuntes/internal/core/ports/driving"
	"github.com/custodia-labs/apuntes/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Root flags.
var (
	verbose   bool
	dataDir   string
	configDir string
)

// Services used by the commands. They are installed by Bootstrap once the
// root flags are parsed, or set directly by tests.
var (
	parseService    driving.ParseService
	itemService     driving.ItemService
	catalogService  driving.CatalogService
	settingsService driving.SettingsService
	newCrawler      CrawlerFactory
	credentialsFile string
	tokenFile       string
	closeServices   func() error
)

// CrawlerFactory builds a crawl service with live remote credentials.
// It is only invoked by commands that talk to the remote tree.
type CrawlerFactory func(ctx context.Context) (driving.CrawlService, error)

// Options carries the root flags to the bootstrap function.
type Options struct {
	DataDir   string
	ConfigDir string
}

// Services is the set of application services the commands use.
type Services struct {
	Parse    driving.ParseService
	Items    driving.ItemService
	Catalog  driving.CatalogService
	Settings driving.SettingsService

	NewCrawler CrawlerFactory

	// CredentialsFile is the OAuth client secret JSON.
	CredentialsFile string

	// TokenFile is where the authorised user token is stored.
	TokenFile string

	// Close releases the underlying stores.
	Close func() error
}

// Bootstrap builds the services from the parsed root flags.
type Bootstrap func(opts Options) (*Services, error)

var bootstrap Bootstrap

// SetBootstrap installs the function that wires services before a command runs.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "apuntes",
	Short: "Harvest and classify shared course material",
	Long: `apuntes crawls a shared Google Drive tree of course material, classifies
every file path (content type, course, exam date) and stores the result in a
local SQLite database.

Typical workflow:
  apuntes auth                       # authorise Drive access once
  apuntes config set drive.root_folder_id <folder-id>
  apuntes courses import courses.yaml
  apuntes crawl
  apuntes parse`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding the database (default ~/.apuntes/data)")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "directory holding config.toml (default ~/.apuntes)")
}

// Execute runs the root command with args.
func Execute(ctx context.Context, args []string) error {
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.SetOutput(cmd.ErrOrStderr())

	if bootstrap == nil {
		return nil
	}

	svc, err := bootstrap(Options{DataDir: dataDir, ConfigDir: configDir})
	if err != nil {
		return err
	}
	parseService = svc.Parse
	itemService = svc.Items
	catalogService = svc.Catalog
	settingsService = svc.Settings
	newCrawler = svc.NewCrawler
	credentialsFile = svc.CredentialsFile
	tokenFile = svc.TokenFile
	closeServices = svc.Close
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if closeServices == nil {
		return nil
	}
	err := closeServices()
	closeServices = nil
	return err
}

// noServices skips bootstrapping for commands that need no storage.
func noServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.SetOutput(cmd.ErrOrStderr())
	return nil
}
