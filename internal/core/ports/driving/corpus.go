package driving

import (
	"context"

	"github.com/custodia-labs/booksim/internal/core/domain"
)

// CorpusService analyses a corpus of books and reports on it.
type CorpusService interface {
	// Analyse lists the documents under directory, profiles each one and
	// scores every pair. Documents that fail to read are skipped.
	Analyse(ctx context.Context, directory string) (*domain.CorpusResult, error)

	// AnalyseDocuments profiles and scores the given documents in order.
	AnalyseDocuments(ctx context.Context, directory string, uris []string) (*domain.CorpusResult, error)

	// WriteReports writes the frequency report and similarity matrix.
	// Failures wrap domain.ErrOutputWrite; result is left untouched.
	WriteReports(ctx context.Context, result *domain.CorpusResult) error
}
