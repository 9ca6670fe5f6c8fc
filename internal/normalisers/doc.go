// Package normalisers provides implementations of the Normaliser interface.
// A normaliser turns the raw bytes read by a connector into a Document whose
// Content is ready for frequency extraction.
package normalisers
