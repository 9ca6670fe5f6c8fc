package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSourceUnavailable indicates the corpus directory cannot be listed.
	// Unlike ErrFileRead this aborts the run: there is nothing to analyse.
	ErrSourceUnavailable = errors.New("corpus source unavailable")

	// I/O Errors.

	// ErrFileRead indicates a single document could not be opened or read.
	// The corpus service logs it and excludes the document from the run.
	ErrFileRead = errors.New("file read failed")

	// ErrOutputWrite indicates a report artifact could not be created or written.
	// In-memory results are unaffected and may be written elsewhere.
	ErrOutputWrite = errors.New("output write failed")
)
