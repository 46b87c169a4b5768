package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/utilkit/internal/core/domain"
	"github.com/custodia-labs/utilkit/internal/core/services"
	"github.com/custodia-labs/utilkit/internal/logger"
)

var settingsJSON bool

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure utilkit settings.

Available keys:
  output.format - text or json
  core.verbose  - true or false`,
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

func init() {
	settingsCmd.Flags().BoolVar(&settingsJSON, "json", false, "output settings as JSON")
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if outputFormat(settingsJSON) == domain.OutputFormatJSON {
		return writeJSON(cmd, settings)
	}

	cmd.Printf("%s = %s\n", services.KeyOutputFormat, settings.Output.Format)
	cmd.Printf("%s = %t\n", services.KeyVerbose, settings.Verbose)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	logger.Info("Stored %s = %s", key, value)
	cmd.Printf("%s set to %s\n", key, value)
	return nil
}
