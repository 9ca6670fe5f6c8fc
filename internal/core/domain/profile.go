package domain

// TermFrequency is one entry of a Profile.
type TermFrequency struct {
	// Term is the case-folded token.
	Term string

	// Count is the number of occurrences in the document.
	Count int

	// Frequency is Count divided by the document's surviving-token total.
	Frequency float64
}

// Profile is the top-K word-frequency profile of one document.
// It is built once by the frequency extractor and never mutated.
type Profile struct {
	documentID  string
	uri         string
	title       string
	totalTokens int
	terms       []TermFrequency
	index       map[string]float64
}

// ProfileSource identifies the document a profile was built from.
type ProfileSource struct {
	DocumentID string
	URI        string
	Title      string
}

// NewProfile creates a profile from terms already in ranked order.
// totalTokens is the number of non-stop-word tokens in the document.
func NewProfile(src ProfileSource, totalTokens int, terms []TermFrequency) Profile {
	owned := make([]TermFrequency, len(terms))
	copy(owned, terms)

	index := make(map[string]float64, len(owned))
	for _, t := range owned {
		index[t.Term] = t.Frequency
	}

	return Profile{
		documentID:  src.DocumentID,
		uri:         src.URI,
		title:       src.Title,
		totalTokens: totalTokens,
		terms:       owned,
		index:       index,
	}
}

// DocumentID returns the ID of the profiled document.
func (p Profile) DocumentID() string { return p.documentID }

// URI returns the location of the profiled document.
func (p Profile) URI() string { return p.uri }

// Title returns the human-readable title of the profiled document.
func (p Profile) Title() string { return p.title }

// TotalTokens returns the number of non-stop-word tokens counted.
func (p Profile) TotalTokens() int { return p.totalTokens }

// Len returns the number of terms kept in the profile.
func (p Profile) Len() int { return len(p.terms) }

// IsEmpty reports whether the document had no surviving tokens.
func (p Profile) IsEmpty() bool { return len(p.terms) == 0 }

// Terms returns a copy of the ranked terms.
func (p Profile) Terms() []TermFrequency {
	out := make([]TermFrequency, len(p.terms))
	copy(out, p.terms)
	return out
}

// Frequency returns the normalised frequency of term, if present.
func (p Profile) Frequency(term string) (float64, bool) {
	f, ok := p.index[term]
	return f, ok
}

// Mass returns the sum of all kept frequencies.
// It equals 1 when no term was cut by the top-K limit.
func (p Profile) Mass() float64 {
	var sum float64
	for _, t := range p.terms {
		sum += t.Frequency
	}
	return sum
}
