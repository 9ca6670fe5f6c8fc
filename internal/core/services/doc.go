// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The analysis pipeline lives here: FrequencyExtractor turns a document
// into a top-K profile, HistogramIntersection scores two profiles, and
// CorpusService drives both over a whole corpus and ranks the pairs.
//
// Services are pure Go with no CGO or external dependencies.
package services
