package driven

import (
	"context"

	"github.com/custodia-labs/booksim/internal/core/domain"
)

// DocumentSource lists and reads the documents of a corpus.
// The filesystem connector is the only implementation.
type DocumentSource interface {
	// Type returns the source type identifier.
	Type() string

	// Validate checks the source root exists and can be listed.
	// Returns an error wrapping domain.ErrSourceUnavailable otherwise.
	Validate(ctx context.Context) error

	// List returns the identifiers of all documents in the corpus,
	// sorted so repeated runs see the same order.
	List(ctx context.Context) ([]string, error)

	// Read returns the full content of one document.
	// Failures wrap domain.ErrFileRead.
	Read(ctx context.Context, uri string) (*domain.RawDocument, error)
}

// DocumentSourceBuilder opens a DocumentSource rooted at a directory,
// accepting only files whose extension is listed.
type DocumentSourceBuilder func(root string, extensions []string) (DocumentSource, error)
