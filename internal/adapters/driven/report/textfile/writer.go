package textfile

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/custodia-labs/booksim/internal/core/domain"
	"github.com/custodia-labs/booksim/internal/core/ports/driven"
	"github.com/custodia-labs/booksim/internal/logger"
)

// Ensure Writer implements the interface.
var _ driven.ReportWriter = (*Writer)(nil)

// Writer writes reports into a directory.
type Writer struct {
	dir             string
	frequenciesFile string
	matrixFile      string
}

// New creates a writer for the given output settings.
// Blank names fall back to the defaults.
func New(settings domain.OutputSettings) *Writer {
	w := &Writer{
		dir:             settings.Directory,
		frequenciesFile: settings.FrequenciesFile,
		matrixFile:      settings.MatrixFile,
	}
	if w.dir == "" {
		w.dir = domain.DefaultOutputDirectory
	}
	if w.frequenciesFile == "" {
		w.frequenciesFile = domain.DefaultFrequenciesFile
	}
	if w.matrixFile == "" {
		w.matrixFile = domain.DefaultMatrixFile
	}
	return w
}

// Location returns the output directory.
func (w *Writer) Location() string {
	return w.dir
}

// FrequenciesPath returns the full path of the frequency report.
func (w *Writer) FrequenciesPath() string {
	return filepath.Join(w.dir, w.frequenciesFile)
}

// MatrixPath returns the full path of the similarity matrix.
func (w *Writer) MatrixPath() string {
	return filepath.Join(w.dir, w.matrixFile)
}

// WriteFrequencies writes every profile in processing order.
func (w *Writer) WriteFrequencies(ctx context.Context, profiles []domain.Profile) error {
	return w.writeFile(ctx, w.FrequenciesPath(), func(out io.Writer) error {
		return FormatFrequencies(out, profiles)
	})
}

// WriteSimilarityMatrix writes the upper-triangle matrix.
func (w *Writer) WriteSimilarityMatrix(ctx context.Context, matrix domain.SimilarityMatrix) error {
	return w.writeFile(ctx, w.MatrixPath(), func(out io.Writer) error {
		return FormatMatrix(out, matrix)
	})
}

// FormatFrequencies renders the frequency report:
//
//	Book 1: Moby Dick
//	WHALE: 0.0123
//	...
//
// followed by a blank line after each book.
func FormatFrequencies(out io.Writer, profiles []domain.Profile) error {
	for i, p := range profiles {
		if _, err := fmt.Fprintf(out, "Book %d: %s\n", i+1, displayTitle(p)); err != nil {
			return err
		}
		for _, t := range p.Terms() {
			if _, err := fmt.Fprintf(out, "%s: %s\n", t.Term, formatScore(t.Frequency)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(out, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// FormatMatrix renders one line per row with tab-separated scores.
// The last row of a matrix is empty, so the file ends with an empty line.
func FormatMatrix(out io.Writer, matrix domain.SimilarityMatrix) error {
	for _, row := range matrix {
		line := make([]byte, 0, len(row)*7+1)
		for j, score := range row {
			if j > 0 {
				line = append(line, '\t')
			}
			line = append(line, formatScore(score)...)
		}
		line = append(line, '\n')
		if _, err := out.Write(line); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeFile(ctx context.Context, path string, render func(io.Writer) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrOutputWrite, path, err)
	}
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("%w: create %s: %w", domain.ErrOutputWrite, w.dir, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrOutputWrite, err)
	}

	buf := bufio.NewWriter(f)
	if err := render(buf); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %s: %w", domain.ErrOutputWrite, path, err)
	}
	if err := buf.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %s: %w", domain.ErrOutputWrite, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrOutputWrite, path, err)
	}

	logger.Debug("Wrote %s", path)
	return nil
}

func displayTitle(p domain.Profile) string {
	if p.Title() != "" {
		return p.Title()
	}
	return filepath.Base(p.URI())
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
