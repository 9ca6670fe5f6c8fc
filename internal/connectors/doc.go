// Package connectors provides DocumentSource implementations. A connector
// lists the books in a corpus and reads their raw bytes; normalisers turn
// those bytes into documents.
package connectors
