package services

import (
	"sort"

	"github.com/custodia-labs/booksim/internal/core/domain"
)

// SimilarityFunc scores two profiles. Implementations must be symmetric and pure.
type SimilarityFunc func(a, b domain.Profile) float64

// HistogramIntersection sums min(freqA, freqB) over the terms both profiles share.
// Terms present in only one profile contribute nothing. For valid profiles the
// result lies in [0, 1].
//
// Shared terms are accumulated in term order, so HistogramIntersection(a, b)
// and HistogramIntersection(b, a) are equal bit for bit.
func HistogramIntersection(a, b domain.Profile) float64 {
	if a.Len() > b.Len() {
		a, b = b, a
	}

	type overlap struct {
		term   string
		weight float64
	}
	var shared []overlap
	for _, t := range a.Terms() {
		other, ok := b.Frequency(t.Term)
		if !ok {
			continue
		}
		shared = append(shared, overlap{term: t.Term, weight: min(t.Frequency, other)})
	}

	sort.Slice(shared, func(i, j int) bool { return shared[i].term < shared[j].term })

	var score float64
	for _, o := range shared {
		score += o.weight
	}
	return score
}
