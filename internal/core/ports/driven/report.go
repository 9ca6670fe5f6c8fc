package driven

import (
	"context"

	"github.com/custodia-labs/booksim/internal/core/domain"
)

// ReportWriter persists the results of a corpus analysis.
// Implementations wrap failures in domain.ErrOutputWrite.
type ReportWriter interface {
	// WriteFrequencies writes every profile's ranked terms in processing order.
	WriteFrequencies(ctx context.Context, profiles []domain.Profile) error

	// WriteSimilarityMatrix writes the upper-triangle score matrix.
	WriteSimilarityMatrix(ctx context.Context, matrix domain.SimilarityMatrix) error

	// Location describes where reports go (a directory, "memory", ...).
	Location() string
}
