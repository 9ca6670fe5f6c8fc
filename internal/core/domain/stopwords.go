package domain

import "sort"

// DefaultStopWords are the tokens excluded when no stop-word list is configured.
func DefaultStopWords() []string {
	return []string{"A", "AND", "AN", "OF", "IN", "THE"}
}

// StopWordSet is an immutable set of tokens excluded from frequency counting.
// Entries are stored ASCII-uppercased so they compare against folded tokens.
type StopWordSet struct {
	words map[string]struct{}
}

// NewStopWordSet builds a set from the given words.
// Words are folded to uppercase; empty strings are ignored.
func NewStopWordSet(words ...string) StopWordSet {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		set[UpperASCII(w)] = struct{}{}
	}
	return StopWordSet{words: set}
}

// Contains reports whether the already-folded token is a stop-word.
func (s StopWordSet) Contains(token string) bool {
	_, ok := s.words[token]
	return ok
}

// Len returns the number of stop-words.
func (s StopWordSet) Len() int {
	return len(s.words)
}

// Words returns the stop-words in sorted order.
func (s StopWordSet) Words() []string {
	words := make([]string, 0, len(s.words))
	for w := range s.words {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// UpperASCII folds a-z to A-Z byte by byte. Every other byte, including
// the bytes of multi-byte UTF-8 sequences, is left untouched.
func UpperASCII(s string) string {
	i := 0
	for ; i < len(s); i++ {
		if c := s[i]; c >= 'a' && c <= 'z' {
			break
		}
	}
	if i == len(s) {
		return s
	}

	b := []byte(s)
	for ; i < len(b); i++ {
		if c := b[i]; c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}
