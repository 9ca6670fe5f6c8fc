package driven

import (
	"context"

	"github.com/custodia-labs/booksim/internal/core/domain"
)

// Normaliser transforms raw documents into plain text documents.
type Normaliser interface {
	// SupportedMIMETypes returns the MIME types this normaliser handles.
	SupportedMIMETypes() []string

	// Normalise transforms a raw document into a document.
	Normalise(ctx context.Context, raw *domain.RawDocument) (*domain.Document, error)
}
