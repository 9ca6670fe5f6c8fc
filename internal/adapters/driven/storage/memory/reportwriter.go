package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/booksim/internal/core/domain"
	"github.com/custodia-labs/booksim/internal/core/ports/driven"
)

// Ensure ReportWriter implements the interface.
var _ driven.ReportWriter = (*ReportWriter)(nil)

// ReportWriter keeps the last written reports in memory.
type ReportWriter struct {
	mu       sync.RWMutex
	profiles []domain.Profile
	matrix   domain.SimilarityMatrix
	writes   int

	// FailWith, when set, is returned (wrapped in domain.ErrOutputWrite) by every write.
	FailWith error
}

// NewReportWriter creates a new in-memory report writer.
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// WriteFrequencies stores a copy of the profiles.
func (w *ReportWriter) WriteFrequencies(ctx context.Context, profiles []domain.Profile) error {
	if err := w.check(ctx); err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.profiles = append([]domain.Profile(nil), profiles...)
	w.writes++
	return nil
}

// WriteSimilarityMatrix stores a copy of the matrix.
func (w *ReportWriter) WriteSimilarityMatrix(ctx context.Context, matrix domain.SimilarityMatrix) error {
	if err := w.check(ctx); err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.matrix = make(domain.SimilarityMatrix, len(matrix))
	for i, row := range matrix {
		w.matrix[i] = append([]float64{}, row...)
	}
	w.writes++
	return nil
}

// Location returns "memory".
func (w *ReportWriter) Location() string {
	return "memory"
}

// Profiles returns the profiles from the last frequency report.
func (w *ReportWriter) Profiles() []domain.Profile {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.profiles
}

// Matrix returns the last written similarity matrix.
func (w *ReportWriter) Matrix() domain.SimilarityMatrix {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.matrix
}

// Writes returns the number of successful writes.
func (w *ReportWriter) Writes() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.writes
}

func (w *ReportWriter) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrOutputWrite, err)
	}
	if w.FailWith != nil {
		return fmt.Errorf("%w: %w", domain.ErrOutputWrite, w.FailWith)
	}
	return nil
}
