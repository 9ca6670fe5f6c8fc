package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the corpus location, stop-words, profile size and
report files. Settings are stored in config.toml in the config directory.

Run 'booksim settings keys' to list the keys accepted by 'set' and 'reset'.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting",
	Long: `Set a single setting. List values (corpus.extensions,
analysis.stop_words) are comma-separated; an empty stop-word list
disables stop-word filtering.

Example:
  booksim settings set analysis.top_terms 50
  booksim settings set analysis.stop_words "a,an,the,of"`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset [key]",
	Short: "Restore a setting (or all settings) to its default",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSettingsReset,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List setting keys",
	RunE:  runSettingsKeys,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	svc, err := getSettingsService()
	if err != nil {
		return err
	}

	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Corpus]")
	cmd.Printf("  Directory: %s\n", settings.Corpus.Directory)
	cmd.Printf("  Extensions: %s\n", strings.Join(settings.Corpus.Extensions, ", "))
	cmd.Println()

	cmd.Println("[Analysis]")
	cmd.Printf("  Stop words: %s\n", formatList(settings.Analysis.StopWords))
	cmd.Printf("  Top terms: %d\n", settings.Analysis.TopTerms)
	cmd.Printf("  Top pairs: %d\n", settings.Analysis.TopPairs)
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Directory: %s\n", settings.Output.Directory)
	cmd.Printf("  Frequencies file: %s\n", settings.Output.FrequenciesFile)
	cmd.Printf("  Matrix file: %s\n", settings.Output.MatrixFile)
	cmd.Println()

	if err := settings.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'booksim settings reset' to restore the defaults.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	svc, err := getSettingsService()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	if err := svc.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s\n", key)
	return nil
}

func runSettingsReset(cmd *cobra.Command, args []string) error {
	svc, err := getSettingsService()
	if err != nil {
		return err
	}

	keys := args
	if len(keys) == 0 {
		keys = svc.Keys()
	}
	for _, key := range keys {
		if err := svc.Reset(key); err != nil {
			return fmt.Errorf("failed to reset %s: %w", key, err)
		}
	}

	if len(args) == 0 {
		cmd.Println("All settings restored to defaults.")
	} else {
		cmd.Printf("Reset %s\n", args[0])
	}
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	svc, err := getSettingsService()
	if err != nil {
		return err
	}

	for _, key := range svc.Keys() {
		cmd.Println(key)
	}
	return nil
}

func formatList(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
