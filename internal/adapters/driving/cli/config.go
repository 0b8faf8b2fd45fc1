package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application settings",
	Long: `View and change settings stored in config.toml.

Keys:
  data_dir                directory holding the database
  drive.root_folder_id    folder the crawl starts from
  drive.skip_pattern      regular expression of folder names to skip
  drive.credentials_file  OAuth client secret JSON
  drive.token_file        authorised user token JSON
  parse.workers           concurrent classifiers
  parse.limit             maximum items per parse run, 0 = all`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()
	cmd.Printf("  Data dir: %s\n", orDefault(settings.DataDir))
	cmd.Println()

	cmd.Println("[Drive]")
	cmd.Printf("  Root folder:      %s\n", orNotSet(settings.Drive.RootFolderID))
	cmd.Printf("  Skip pattern:     %s\n", settings.Drive.SkipPattern)
	cmd.Printf("  Credentials file: %s\n", orDefault(settings.Drive.CredentialsFile))
	cmd.Printf("  Token file:       %s\n", orDefault(settings.Drive.TokenFile))
	cmd.Println()

	cmd.Println("[Parse]")
	cmd.Printf("  Workers: %d\n", settings.Parse.Workers)
	if settings.Parse.Limit > 0 {
		cmd.Printf("  Limit:   %d\n", settings.Parse.Limit)
	} else {
		cmd.Println("  Limit:   (all)")
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("%s = %s\n", args[0], args[1])
	return nil
}

func orDefault(s string) string {
	if s == "" {
		return "(default)"
	}
	return s
}

func orNotSet(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
