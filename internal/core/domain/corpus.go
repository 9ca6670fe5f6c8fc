package domain

// PairScore is the similarity of an unordered pair of documents.
// Left and Right are 0-based indices into CorpusResult.Profiles, Left < Right.
type PairScore struct {
	Left  int
	Right int
	Score float64
}

// SimilarityMatrix is the upper triangle of the pairwise score matrix.
// Row i holds the scores for (i, i+1), (i, i+2), ... in increasing order,
// so the last row is always empty.
type SimilarityMatrix [][]float64

// At returns the score of the pair (i, j) regardless of argument order.
// The diagonal and out-of-range pairs return false.
func (m SimilarityMatrix) At(i, j int) (float64, bool) {
	if i > j {
		i, j = j, i
	}
	if i == j || i < 0 || i >= len(m) {
		return 0, false
	}
	k := j - i - 1
	if k >= len(m[i]) {
		return 0, false
	}
	return m[i][k], true
}

// SkippedDocument records a document excluded from a run.
type SkippedDocument struct {
	URI string
	Err error
}

// CorpusResult holds everything produced by one corpus analysis.
type CorpusResult struct {
	// Profiles are indexed in processing order; skipped documents leave no gap.
	Profiles []Profile

	// Pairs are all i<j pairs, ranked by score descending.
	Pairs []PairScore

	// Matrix is the upper-triangle similarity matrix.
	Matrix SimilarityMatrix

	// Skipped lists documents that failed to load.
	Skipped []SkippedDocument
}

// TopPairs returns the n highest-ranked pairs, or all pairs if fewer exist.
func (r *CorpusResult) TopPairs(n int) []PairScore {
	if r == nil || n <= 0 {
		return nil
	}
	if n > len(r.Pairs) {
		n = len(r.Pairs)
	}
	return r.Pairs[:n]
}
