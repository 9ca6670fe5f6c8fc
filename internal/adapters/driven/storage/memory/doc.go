// Package memory provides in-memory implementations of driven port interfaces.
//
// Adapters:
//   - ConfigStore: configuration without a backing file (tests, --config-dir "")
//   - ReportWriter: keeps rendered reports in memory (tests, --no-write runs)
package memory
