package domain

import (
	"fmt"
	"strings"
)

// Default values used when a setting is not configured.
const (
	DefaultCorpusDirectory = "./Book-Txt/"
	DefaultTopTerms        = 100
	DefaultTopPairs        = 10
	DefaultOutputDirectory = "."
	DefaultFrequenciesFile = "frequencies.txt"
	DefaultMatrixFile      = "similarity_matrix.txt"
)

// CorpusSettings controls which documents are analysed.
type CorpusSettings struct {
	// Directory is the folder holding the books.
	Directory string

	// Extensions lists accepted file extensions, including the dot.
	Extensions []string
}

// AnalysisSettings controls frequency extraction and ranking.
type AnalysisSettings struct {
	// StopWords are excluded from counting (case-insensitive).
	StopWords []string

	// TopTerms is the maximum number of terms kept per profile.
	TopTerms int

	// TopPairs is the number of pairs reported in the ranking.
	TopPairs int
}

// StopWordSet builds the immutable stop-word set for these settings.
func (a AnalysisSettings) StopWordSet() StopWordSet {
	return NewStopWordSet(a.StopWords...)
}

// OutputSettings controls where reports are written.
type OutputSettings struct {
	// Directory receives the report files.
	Directory string

	// FrequenciesFile is the per-book frequency report name.
	FrequenciesFile string

	// MatrixFile is the similarity matrix report name.
	MatrixFile string
}

// AppSettings holds all application settings.
type AppSettings struct {
	Corpus   CorpusSettings
	Analysis AnalysisSettings
	Output   OutputSettings
}

// DefaultAppSettings returns settings matching the classic book-corpus layout:
// ./Book-Txt/*.txt in, frequencies.txt and similarity_matrix.txt out.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Corpus: CorpusSettings{
			Directory:  DefaultCorpusDirectory,
			Extensions: []string{".txt"},
		},
		Analysis: AnalysisSettings{
			StopWords: DefaultStopWords(),
			TopTerms:  DefaultTopTerms,
			TopPairs:  DefaultTopPairs,
		},
		Output: OutputSettings{
			Directory:       DefaultOutputDirectory,
			FrequenciesFile: DefaultFrequenciesFile,
			MatrixFile:      DefaultMatrixFile,
		},
	}
}

// Validate checks the settings are usable for a run.
func (s AppSettings) Validate() error {
	if strings.TrimSpace(s.Corpus.Directory) == "" {
		return fmt.Errorf("%w: corpus directory is empty", ErrInvalidInput)
	}
	if len(s.Corpus.Extensions) == 0 {
		return fmt.Errorf("%w: no corpus extensions configured", ErrInvalidInput)
	}
	if s.Analysis.TopTerms <= 0 {
		return fmt.Errorf("%w: top terms must be positive, got %d", ErrInvalidInput, s.Analysis.TopTerms)
	}
	if s.Analysis.TopPairs <= 0 {
		return fmt.Errorf("%w: top pairs must be positive, got %d", ErrInvalidInput, s.Analysis.TopPairs)
	}
	if s.Output.FrequenciesFile == "" || s.Output.MatrixFile == "" {
		return fmt.Errorf("%w: output file names must not be empty", ErrInvalidInput)
	}
	if s.Output.FrequenciesFile == s.Output.MatrixFile {
		return fmt.Errorf("%w: frequency and matrix reports share the name %q", ErrInvalidInput, s.Output.MatrixFile)
	}
	return nil
}

// NormaliseExtension lower-cases ext and ensures a leading dot.
func NormaliseExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
