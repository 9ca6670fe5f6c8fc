package domain

// RawDocument represents opaque bytes read from the corpus.
// It is the connector's output before normalisation.
type RawDocument struct {
	// SourceID links to the corpus that produced this document.
	SourceID string

	// URI is the original location (file path).
	URI string

	// MIMEType is the content type (always "text/plain" for books).
	MIMEType string

	// Content is the raw bytes.
	Content []byte

	// Metadata contains connector-specific key-value pairs.
	Metadata map[string]any
}
