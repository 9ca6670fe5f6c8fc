package normalisers

import (
	"context"
	"fmt"
	"sort"

	"github.com/custodia-labs/booksim/internal/core/domain"
	"github.com/custodia-labs/booksim/internal/core/ports/driven"
	"github.com/custodia-labs/booksim/internal/normalisers/html"
	"github.com/custodia-labs/booksim/internal/normalisers/markdown"
	"github.com/custodia-labs/booksim/internal/normalisers/plaintext"
)

// Ensure Registry implements the interface.
var _ driven.Normaliser = (*Registry)(nil)

// Registry dispatches each raw document to the normaliser registered for
// its MIME type. Documents without a MIME type are treated as plain text.
type Registry struct {
	byMIME map[string]driven.Normaliser
}

// NewRegistry creates a registry holding the given normalisers.
func NewRegistry(normalisers ...driven.Normaliser) *Registry {
	r := &Registry{byMIME: make(map[string]driven.Normaliser)}
	for _, n := range normalisers {
		r.Register(n)
	}
	return r
}

// Default returns a registry for plain text, Markdown and HTML books.
func Default() *Registry {
	return NewRegistry(plaintext.New(), markdown.New(), html.New())
}

// Register adds a normaliser for each MIME type it supports.
// A later registration for the same MIME type replaces the earlier one.
func (r *Registry) Register(n driven.Normaliser) {
	for _, mimeType := range n.SupportedMIMETypes() {
		r.byMIME[mimeType] = n
	}
}

// SupportedMIMETypes returns every registered MIME type, sorted.
func (r *Registry) SupportedMIMETypes() []string {
	types := make([]string, 0, len(r.byMIME))
	for mimeType := range r.byMIME {
		types = append(types, mimeType)
	}
	sort.Strings(types)
	return types
}

// Normalise hands raw to the normaliser registered for its MIME type.
func (r *Registry) Normalise(ctx context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	mimeType := raw.MIMEType
	if mimeType == "" {
		mimeType = plaintext.MIMEType
	}
	n, ok := r.byMIME[mimeType]
	if !ok {
		return nil, fmt.Errorf("%w: no normaliser for MIME type %q", domain.ErrInvalidInput, mimeType)
	}
	return n.Normalise(ctx, raw)
}
