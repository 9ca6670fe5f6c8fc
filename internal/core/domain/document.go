package domain

import "time"

// Document represents a book after normalisation.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// SourceID links to the corpus that produced this document.
	SourceID string

	// URI is the original location (file path).
	URI string

	// Title is the human-readable title.
	Title string

	// Content is the full text content.
	Content string

	// Metadata contains arbitrary key-value pairs.
	Metadata map[string]any

	// CreatedAt is when the document was normalised.
	CreatedAt time.Time
}
