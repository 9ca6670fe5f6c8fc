// Package domain defines the core business entities for booksim.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A normalised book with its full text
//   - RawDocument: Opaque bytes read from a corpus directory
//   - StopWordSet: Tokens excluded from frequency counting
//   - Profile: The top-K normalised word frequencies of one document
//   - PairScore: The similarity of an unordered pair of documents
//   - CorpusResult: Profiles, ranked pairs and the similarity matrix of a run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
