package markdown

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/booksim/internal/core/domain"
)

func TestSupportedMIMETypes(t *testing.T) {
	assert.Equal(t, []string{"text/markdown", "text/x-markdown"}, New().SupportedMIMETypes())
}

func TestNormalise_Success(t *testing.T) {
	raw := &domain.RawDocument{
		SourceID: "/books",
		URI:      "/books/moby_dick.md",
		MIMEType: "text/markdown",
		Content: []byte(`# Moby Dick

## Chapter 1. Loomings

**Call** me _Ishmael_. See [the whale](https://example.com/whale).

- some years ago
- never mind how long

> precisely
`),
		Metadata: map[string]any{"size": int64(10)},
	}

	doc, err := New().Normalise(context.Background(), raw)
	require.NoError(t, err)

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "Moby Dick", doc.Title)
	assert.Equal(t, "markdown", doc.Metadata["format"])
	assert.Equal(t, "text/markdown", doc.Metadata["mime_type"])
	assert.Equal(t, int64(10), doc.Metadata["size"])

	words := strings.Fields(doc.Content)
	assert.Contains(t, words, "Call")
	assert.Contains(t, words, "Ishmael.")
	assert.Contains(t, words, "whale.")
	assert.Contains(t, words, "precisely")
	assert.NotContains(t, doc.Content, "**")
	assert.NotContains(t, doc.Content, "https://")
	assert.NotContains(t, doc.Content, "#")
}

func TestNormalise_TitleFallsBackToFilename(t *testing.T) {
	raw := &domain.RawDocument{URI: "/books/war_and_peace.md", MIMEType: "text/markdown", Content: []byte("No heading")}

	doc, err := New().Normalise(context.Background(), raw)
	require.NoError(t, err)

	assert.Equal(t, "War And Peace", doc.Title)
}

func TestNormalise_DropsCode(t *testing.T) {
	raw := &domain.RawDocument{
		URI:      "/b.md",
		MIMEType: "text/markdown",
		Content:  []byte("before\n```go\nfunc main() {}\n```\nafter `inline` end"),
	}

	doc, err := New().Normalise(context.Background(), raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"before", "after", "end"}, strings.Fields(doc.Content))
}

func TestNormalise_Errors(t *testing.T) {
	_, err := New().Normalise(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = New().Normalise(context.Background(), &domain.RawDocument{MIMEType: "text/plain"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
