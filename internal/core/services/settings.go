package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/booksim/internal/core/domain"
	"github.com/custodia-labs/booksim/internal/core/ports/driven"
	"github.com/custodia-labs/booksim/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyCorpusDirectory  = "corpus.directory"
	keyCorpusExtensions = "corpus.extensions"
	keyStopWords        = "analysis.stop_words"
	keyTopTerms         = "analysis.top_terms"
	keyTopPairs         = "analysis.top_pairs"
	keyOutputDirectory  = "output.directory"
	keyFrequenciesFile  = "output.frequencies_file"
	keyMatrixFile       = "output.matrix_file"
)

// settingKeys is the display order used by Keys.
var settingKeys = []string{
	keyCorpusDirectory,
	keyCorpusExtensions,
	keyStopWords,
	keyTopTerms,
	keyTopPairs,
	keyOutputDirectory,
	keyFrequenciesFile,
	keyMatrixFile,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Corpus: domain.CorpusSettings{
			Directory:  s.getString(keyCorpusDirectory, defaults.Corpus.Directory),
			Extensions: s.getExtensions(defaults.Corpus.Extensions),
		},
		Analysis: domain.AnalysisSettings{
			StopWords: s.getStopWords(defaults.Analysis.StopWords),
			TopTerms:  s.getPositiveInt(keyTopTerms, defaults.Analysis.TopTerms),
			TopPairs:  s.getPositiveInt(keyTopPairs, defaults.Analysis.TopPairs),
		},
		Output: domain.OutputSettings{
			Directory:       s.getString(keyOutputDirectory, defaults.Output.Directory),
			FrequenciesFile: s.getString(keyFrequenciesFile, defaults.Output.FrequenciesFile),
			MatrixFile:      s.getString(keyMatrixFile, defaults.Output.MatrixFile),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("%w: nil settings", domain.ErrInvalidInput)
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{keyCorpusDirectory, settings.Corpus.Directory},
		{keyCorpusExtensions, normaliseExtensions(settings.Corpus.Extensions)},
		{keyStopWords, normaliseStopWords(settings.Analysis.StopWords)},
		{keyTopTerms, settings.Analysis.TopTerms},
		{keyTopPairs, settings.Analysis.TopPairs},
		{keyOutputDirectory, settings.Output.Directory},
		{keyFrequenciesFile, settings.Output.FrequenciesFile},
		{keyMatrixFile, settings.Output.MatrixFile},
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set updates a single setting from its string form.
// List values (extensions, stop words) are comma-separated.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)

	var stored any
	switch key {
	case keyCorpusDirectory, keyOutputDirectory, keyFrequenciesFile, keyMatrixFile:
		if value == "" {
			return fmt.Errorf("%w: %s must not be empty", domain.ErrInvalidInput, key)
		}
		stored = value
	case keyCorpusExtensions:
		exts := normaliseExtensions(SplitList(value))
		if len(exts) == 0 {
			return fmt.Errorf("%w: %s needs at least one extension", domain.ErrInvalidInput, key)
		}
		stored = exts
	case keyStopWords:
		stored = normaliseStopWords(SplitList(value))
	case keyTopTerms, keyTopPairs:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: %s must be a positive integer, got %q", domain.ErrInvalidInput, key, value)
		}
		stored = n
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Reset removes a stored setting so its default applies again.
func (s *SettingsService) Reset(key string) error {
	if !isSettingKey(key) {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	if err := s.configStore.Delete(key); err != nil {
		return fmt.Errorf("reset %s: %w", key, err)
	}
	return nil
}

// Keys returns the configurable setting keys in display order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	copy(keys, settingKeys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// SplitList splits a comma-separated value, trimming blanks and dropping empty items.
func SplitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getPositiveInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getExtensions(defaultVal []string) []string {
	exts := normaliseExtensions(s.configStore.GetStringSlice(keyCorpusExtensions))
	if len(exts) == 0 {
		return defaultVal
	}
	return exts
}

// getStopWords distinguishes a missing key (defaults) from an explicitly
// empty list (no stop-words at all).
func (s *SettingsService) getStopWords(defaultVal []string) []string {
	if _, exists := s.configStore.Get(keyStopWords); !exists {
		return defaultVal
	}
	return normaliseStopWords(s.configStore.GetStringSlice(keyStopWords))
}

func normaliseExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		if ext = domain.NormaliseExtension(ext); ext != "" {
			out = append(out, ext)
		}
	}
	return out
}

func normaliseStopWords(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			out = append(out, domain.UpperASCII(w))
		}
	}
	return out
}

func isSettingKey(key string) bool {
	for _, k := range settingKeys {
		if k == key {
			return true
		}
	}
	return false
}
