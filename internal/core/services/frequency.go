package services

import (
	"cmp"
	"slices"
	"strings"

	"github.com/custodia-labs/booksim/internal/core/domain"
)

// TermCounts holds the raw token counts of one document before top-K selection.
type TermCounts struct {
	// Counts maps each surviving token to its occurrence count.
	Counts map[string]int

	// Total is the number of surviving tokens (stop-words excluded).
	Total int
}

// Frequencies returns the normalised frequency of every counted token.
// The values sum to 1; an empty document yields an empty map.
func (c TermCounts) Frequencies() map[string]float64 {
	freqs := make(map[string]float64, len(c.Counts))
	if c.Total == 0 {
		return freqs
	}
	for term, n := range c.Counts {
		freqs[term] = float64(n) / float64(c.Total)
	}
	return freqs
}

// FrequencyExtractor builds word-frequency profiles.
// It is safe for concurrent use: all state is read-only after construction.
type FrequencyExtractor struct {
	stopWords domain.StopWordSet
	topTerms  int
}

// NewFrequencyExtractor creates an extractor that ignores stopWords and keeps
// at most topTerms terms per profile. A non-positive topTerms uses the default.
func NewFrequencyExtractor(stopWords domain.StopWordSet, topTerms int) *FrequencyExtractor {
	if topTerms <= 0 {
		topTerms = domain.DefaultTopTerms
	}
	return &FrequencyExtractor{
		stopWords: stopWords,
		topTerms:  topTerms,
	}
}

// TopTerms returns the profile size limit.
func (e *FrequencyExtractor) TopTerms() int {
	return e.topTerms
}

// Count splits text on ASCII whitespace, folds each token to uppercase and
// counts every token that is not a stop-word.
func (e *FrequencyExtractor) Count(text string) TermCounts {
	counts := make(map[string]int)
	total := 0
	for _, field := range strings.FieldsFunc(text, isASCIISpace) {
		token := domain.UpperASCII(field)
		if e.stopWords.Contains(token) {
			continue
		}
		counts[token]++
		total++
	}
	return TermCounts{Counts: counts, Total: total}
}

// Extract builds the profile of text, attributing it to src.
func (e *FrequencyExtractor) Extract(src domain.ProfileSource, text string) domain.Profile {
	counts := e.Count(text)
	return domain.NewProfile(src, counts.Total, e.rank(counts))
}

// ExtractDocument builds the profile of a normalised document.
func (e *FrequencyExtractor) ExtractDocument(doc *domain.Document) domain.Profile {
	src := domain.ProfileSource{
		DocumentID: doc.ID,
		URI:        doc.URI,
		Title:      doc.Title,
	}
	return e.Extract(src, doc.Content)
}

// rank orders terms by count descending then term ascending and keeps
// the first topTerms. Counts share one denominator, so ordering by count
// is ordering by frequency without float comparison.
func (e *FrequencyExtractor) rank(c TermCounts) []domain.TermFrequency {
	if c.Total == 0 {
		return nil
	}

	terms := make([]domain.TermFrequency, 0, len(c.Counts))
	for term, n := range c.Counts {
		terms = append(terms, domain.TermFrequency{
			Term:      term,
			Count:     n,
			Frequency: float64(n) / float64(c.Total),
		})
	}

	slices.SortFunc(terms, func(a, b domain.TermFrequency) int {
		if n := cmp.Compare(b.Count, a.Count); n != 0 {
			return n
		}
		return strings.Compare(a.Term, b.Term)
	})

	if len(terms) > e.topTerms {
		terms = terms[:e.topTerms]
	}
	return terms
}

// isASCIISpace reports the C-locale whitespace bytes. Unicode spaces such
// as U+00A0 stay inside tokens.
func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
