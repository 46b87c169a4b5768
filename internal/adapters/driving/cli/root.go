package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/utilkit/internal/adapters/driven/config/file"
	"github.com/custodia-labs/utilkit/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/utilkit/internal/core/ports/driving"
	"github.com/custodia-labs/utilkit/internal/core/services"
	"github.com/custodia-labs/utilkit/internal/logger"
)

// version is set at build time with -ldflags "-X .../cli.version=...".
var version = "dev"

var (
	verbose   bool
	configDir string
)

var (
	textService     driving.TextService  = services.NewTextService()
	statsService    driving.StatsService = services.NewStatsService()
	clockService    driving.ClockService = services.NewClockService()
	settingsService driving.SettingsService
)

var rootCmd = &cobra.Command{
	Use:   "utilkit",
	Short: "Small text, statistics, and time utilities",
	Long: `utilkit bundles a few everyday helpers:

  upper  - convert text to uppercase
  mean   - arithmetic mean of a list of numbers
  now    - print the fixed reference timestamp`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.utilkit)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if settingsService == nil {
		svc, err := newSettingsService(configDir)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: config unavailable, settings will not be saved: %v\n", err)
		}
		settingsService = svc
	}

	settings, err := settingsService.Get()
	if err != nil {
		return err
	}
	if settings.Verbose {
		logger.SetVerbose(true)
	}

	logger.Section(cmd.CommandPath())
	logger.Debug("Output format: %s, verbose: %t", settings.Output.Format, settings.Verbose)
	return nil
}

// newSettingsService opens the TOML config store. When the directory cannot
// be used it still returns a working service backed by memory, together with
// the error so the caller can tell the user that writes will not persist.
func newSettingsService(dir string) (driving.SettingsService, error) {
	store, err := file.NewConfigStore(dir)
	if err != nil {
		logger.Warn("config unavailable, using defaults: %v", err)
		return services.NewSettingsService(memory.NewConfigStore()), err
	}
	logger.Debug("Config: %s", store.Path())
	return services.NewSettingsService(store), nil
}
