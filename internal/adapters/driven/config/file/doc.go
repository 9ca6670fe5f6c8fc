// Package file provides the TOML-backed ConfigStore.
//
// Settings live in config.toml under the booksim config directory
// (~/.booksim by default). Tables are flattened into dot-notation keys on
// load, so [analysis] top_terms = 50 is read back as "analysis.top_terms".
package file
