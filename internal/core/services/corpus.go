package services

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/custodia-labs/booksim/internal/core/domain"
	"github.com/custodia-labs/booksim/internal/core/ports/driven"
	"github.com/custodia-labs/booksim/internal/core/ports/driving"
	"github.com/custodia-labs/booksim/internal/logger"
)

// Ensure CorpusService implements the interface.
var _ driving.CorpusService = (*CorpusService)(nil)

// CorpusService profiles every document of a corpus and ranks document pairs
// by similarity. Documents are processed one at a time in listing order.
type CorpusService struct {
	openSource driven.DocumentSourceBuilder
	normaliser driven.Normaliser
	reports    driven.ReportWriter
	settings   domain.AppSettings
	extractor  *FrequencyExtractor
	similarity SimilarityFunc
}

// NewCorpusService creates a corpus service for the given settings.
// reports may be nil when only in-memory results are needed.
func NewCorpusService(
	openSource driven.DocumentSourceBuilder,
	normaliser driven.Normaliser,
	reports driven.ReportWriter,
	settings domain.AppSettings,
) *CorpusService {
	return &CorpusService{
		openSource: openSource,
		normaliser: normaliser,
		reports:    reports,
		settings:   settings,
		extractor:  NewFrequencyExtractor(settings.Analysis.StopWordSet(), settings.Analysis.TopTerms),
		similarity: HistogramIntersection,
	}
}

// Analyse lists the documents under directory and analyses all of them.
// An empty directory falls back to the configured corpus directory.
func (s *CorpusService) Analyse(ctx context.Context, directory string) (*domain.CorpusResult, error) {
	source, err := s.open(ctx, directory)
	if err != nil {
		return nil, err
	}

	uris, err := source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list corpus: %w", err)
	}
	logger.Info("Found %d documents", len(uris))

	return s.analyse(ctx, source, uris)
}

// AnalyseDocuments analyses the given documents in the order provided.
func (s *CorpusService) AnalyseDocuments(
	ctx context.Context,
	directory string,
	uris []string,
) (*domain.CorpusResult, error) {
	source, err := s.open(ctx, directory)
	if err != nil {
		return nil, err
	}
	return s.analyse(ctx, source, uris)
}

// WriteReports hands the profiles and matrix to the report writer.
func (s *CorpusService) WriteReports(ctx context.Context, result *domain.CorpusResult) error {
	if result == nil {
		return fmt.Errorf("%w: nil corpus result", domain.ErrInvalidInput)
	}
	if s.reports == nil {
		return fmt.Errorf("%w: no report writer configured", domain.ErrOutputWrite)
	}

	if err := s.reports.WriteFrequencies(ctx, result.Profiles); err != nil {
		return outputError("write frequency report", err)
	}
	if err := s.reports.WriteSimilarityMatrix(ctx, result.Matrix); err != nil {
		return outputError("write similarity matrix", err)
	}

	logger.Info("Reports written to %s", s.reports.Location())
	return nil
}

func (s *CorpusService) open(ctx context.Context, directory string) (driven.DocumentSource, error) {
	if s.openSource == nil {
		return nil, fmt.Errorf("%w: document source not configured", domain.ErrSourceUnavailable)
	}
	if directory == "" {
		directory = s.settings.Corpus.Directory
	}

	source, err := s.openSource(directory, s.settings.Corpus.Extensions)
	if err != nil {
		return nil, fmt.Errorf("open corpus %s: %w", directory, err)
	}
	if err := source.Validate(ctx); err != nil {
		return nil, err
	}
	return source, nil
}

func (s *CorpusService) analyse(
	ctx context.Context,
	source driven.DocumentSource,
	uris []string,
) (*domain.CorpusResult, error) {
	result := &domain.CorpusResult{
		Profiles: make([]domain.Profile, 0, len(uris)),
	}

	logger.Section("Frequency Extraction")
	for _, uri := range uris {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		profile, err := s.profile(ctx, source, uri)
		if err != nil {
			if !errors.Is(err, domain.ErrFileRead) {
				return nil, err
			}
			logger.Warn("Skipping %s: %v", uri, err)
			result.Skipped = append(result.Skipped, domain.SkippedDocument{URI: uri, Err: err})
			continue
		}
		result.Profiles = append(result.Profiles, profile)
	}

	logger.Section("Similarity Scoring")
	result.Matrix, result.Pairs = s.scorePairs(result.Profiles)
	RankPairs(result.Pairs)
	logger.Info("Scored %d pairs across %d documents", len(result.Pairs), len(result.Profiles))

	return result, nil
}

func (s *CorpusService) profile(
	ctx context.Context,
	source driven.DocumentSource,
	uri string,
) (domain.Profile, error) {
	logger.Info("Processing %s...", uri)

	raw, err := source.Read(ctx, uri)
	if err != nil {
		return domain.Profile{}, err
	}

	doc, err := s.normaliser.Normalise(ctx, raw)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("normalise %s: %w", uri, err)
	}

	profile := s.extractor.ExtractDocument(doc)
	logger.Debug("%s: %d tokens counted, %d terms kept", uri, profile.TotalTokens(), profile.Len())
	return profile, nil
}

// scorePairs scores every i<j pair. Row i of the matrix holds j = i+1..n-1.
func (s *CorpusService) scorePairs(profiles []domain.Profile) (domain.SimilarityMatrix, []domain.PairScore) {
	n := len(profiles)
	matrix := make(domain.SimilarityMatrix, n)
	pairs := make([]domain.PairScore, 0, n*(n-1)/2)

	for i := 0; i < n; i++ {
		row := make([]float64, 0, n-i-1)
		for j := i + 1; j < n; j++ {
			score := s.similarity(profiles[i], profiles[j])
			row = append(row, score)
			pairs = append(pairs, domain.PairScore{Left: i, Right: j, Score: score})
		}
		matrix[i] = row
	}
	return matrix, pairs
}

// RankPairs sorts pairs by score descending. Equal scores keep index order
// (Left, then Right, ascending) so rankings are reproducible.
func RankPairs(pairs []domain.PairScore) {
	slices.SortFunc(pairs, func(a, b domain.PairScore) int {
		if n := cmp.Compare(b.Score, a.Score); n != 0 {
			return n
		}
		if n := cmp.Compare(a.Left, b.Left); n != 0 {
			return n
		}
		return cmp.Compare(a.Right, b.Right)
	})
}

func outputError(op string, err error) error {
	if errors.Is(err, domain.ErrOutputWrite) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrOutputWrite, err)
}
