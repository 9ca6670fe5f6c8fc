// Package cli provides the cobra command tree for booksim.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/booksim/internal/core/domain"
	"github.com/custodia-labs/booksim/internal/core/ports/driving"
	"github.com/custodia-labs/booksim/internal/logger"
)

// version is set at build time via ldflags or SetVersion.
var version = "dev"

// SettingsOpener opens the settings service for a config directory.
// An empty configDir selects the default location.
type SettingsOpener func(configDir string) (driving.SettingsService, error)

// CorpusFactory builds a corpus service for one run's effective settings.
type CorpusFactory func(settings domain.AppSettings) driving.CorpusService

// Services holds the wiring supplied by the composition root.
type Services struct {
	OpenSettings SettingsOpener
	NewCorpus    CorpusFactory
}

var (
	openSettings    SettingsOpener
	newCorpus       CorpusFactory
	settingsService driving.SettingsService
)

var (
	verbose   bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "booksim",
	Short: "Word-frequency profiles and similarity ranking for a library of books",
	Long: `booksim reads every plain-text book in a directory, builds a top-K
word-frequency profile for each one and ranks book pairs by
histogram-intersection similarity.

Run 'booksim analyse' to process ./Book-Txt/ with the default settings.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print progress and debug output")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.booksim)")
}

// SetVersion sets the version string reported by 'booksim version'.
func SetVersion(v string) {
	version = v
}

// SetServices injects the service constructors used by the commands.
func SetServices(s Services) {
	openSettings = s.OpenSettings
	newCorpus = s.NewCorpus
	settingsService = nil
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetVerbose(verbose)
	return nil
}

// getSettingsService opens the settings service on first use so commands
// that never touch settings do not create the config directory.
func getSettingsService() (driving.SettingsService, error) {
	if settingsService != nil {
		return settingsService, nil
	}
	if openSettings == nil {
		return nil, errors.New("settings service not configured")
	}
	svc, err := openSettings(configDir)
	if err != nil {
		return nil, fmt.Errorf("open settings: %w", err)
	}
	settingsService = svc
	return svc, nil
}

// currentSettings returns the stored settings, or defaults when no settings
// service is wired.
func currentSettings() (domain.AppSettings, error) {
	if settingsService == nil && openSettings == nil {
		return domain.DefaultAppSettings(), nil
	}
	svc, err := getSettingsService()
	if err != nil {
		return domain.AppSettings{}, err
	}
	settings, err := svc.Get()
	if err != nil {
		return domain.AppSettings{}, err
	}
	if settings == nil {
		return domain.AppSettings{}, errors.New("settings service returned no settings")
	}
	return *settings, nil
}
