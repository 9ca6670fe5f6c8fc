package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/booksim/internal/core/domain"
	"github.com/custodia-labs/booksim/internal/core/services"
)

var (
	analyseOutputDir string
	analyseTopPairs  int
	analyseTopTerms  int
	analyseStopWords string
	analyseJSON      bool
	analyseNoWrite   bool
)

var analyseCmd = &cobra.Command{
	Use:     "analyse [directory]",
	Aliases: []string{"analyze"},
	Short:   "Profile every book in a directory and rank similar pairs",
	Long: `Reads every matching file in the directory (./Book-Txt/ by default),
builds a word-frequency profile per book and scores every pair of books
by histogram intersection.

The most similar pairs are printed. The frequency report and the
similarity matrix are written to the output directory unless --no-write
is given. Books that cannot be read are skipped with a warning.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyse,
}

func init() {
	flags := analyseCmd.Flags()
	flags.StringVarP(&analyseOutputDir, "output", "o", "", "directory for the report files (default from settings)")
	flags.IntVarP(&analyseTopPairs, "top-pairs", "n", domain.DefaultTopPairs, "number of pairs to print")
	flags.IntVar(&analyseTopTerms, "top-terms", domain.DefaultTopTerms, "terms kept per book profile")
	flags.StringVar(&analyseStopWords, "stop-words", "", "comma-separated stop-words replacing the configured list")
	flags.BoolVar(&analyseJSON, "json", false, "output results as JSON")
	flags.BoolVar(&analyseNoWrite, "no-write", false, "skip writing the report files")
	rootCmd.AddCommand(analyseCmd)
}

func runAnalyse(cmd *cobra.Command, args []string) error {
	if newCorpus == nil {
		return errors.New("corpus service not configured")
	}

	settings, err := currentSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	applyAnalyseFlags(cmd, &settings, args)
	if err := settings.Validate(); err != nil {
		return err
	}

	corpus := newCorpus(settings)
	result, err := corpus.Analyse(cmd.Context(), settings.Corpus.Directory)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	top := result.TopPairs(settings.Analysis.TopPairs)
	if analyseJSON {
		if err := outputAnalysisJSON(cmd, result, top); err != nil {
			return err
		}
	} else {
		outputRanking(cmd, result.Profiles, top)
		outputSkipped(cmd, result.Skipped)
	}

	if analyseNoWrite {
		return nil
	}
	if err := corpus.WriteReports(cmd.Context(), result); err != nil {
		return fmt.Errorf("failed to write reports: %w", err)
	}
	if !analyseJSON {
		fmt.Fprintf(cmd.OutOrStdout(), "\nReports written to %s\n", settings.Output.Directory)
	}
	return nil
}

// applyAnalyseFlags layers explicitly given flags over the stored settings.
func applyAnalyseFlags(cmd *cobra.Command, settings *domain.AppSettings, args []string) {
	if len(args) == 1 {
		settings.Corpus.Directory = args[0]
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		settings.Output.Directory = analyseOutputDir
	}
	if flags.Changed("top-pairs") {
		settings.Analysis.TopPairs = analyseTopPairs
	}
	if flags.Changed("top-terms") {
		settings.Analysis.TopTerms = analyseTopTerms
	}
	if flags.Changed("stop-words") {
		settings.Analysis.StopWords = services.SplitList(analyseStopWords)
	}
}

func outputSkipped(cmd *cobra.Command, skipped []domain.SkippedDocument) {
	if len(skipped) == 0 {
		return
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nSkipped %d unreadable document(s):\n", len(skipped))
	for _, s := range skipped {
		fmt.Fprintf(out, "  %s\n", s.URI)
	}
}
