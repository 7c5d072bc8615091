// Package ranking selects the best records of a dataset by a metric.
//
// Ordering: key DESC, absent keys last, ties keep their input order.
// No secondary key is applied.
package ranking

import (
	"slices"

	"github.com/okian/insertion/internal/domain/metric"
)

// SelectTop returns at most n records sorted by key descending. The input
// slice is never modified. n <= 0 yields an empty result.
func SelectTop[R any](records []R, key func(R) metric.Float, n int) []R {
	if n <= 0 || len(records) == 0 {
		return []R{}
	}
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b R) int {
		// reversed arguments: descending
		return metric.Compare(key(b), key(a))
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return slices.Clip(sorted)
}

// AscendingDisplayOrder returns a reversed copy of a ranking so that a
// horizontal bar chart, which draws from the bottom up, shows the first
// ranked record at the top.
func AscendingDisplayOrder[R any](top []R) []R {
	out := slices.Clone(top)
	slices.Reverse(out)
	if out == nil {
		out = []R{}
	}
	return out
}

// Ranked pairs a record with its 1-based position.
type Ranked[R any] struct {
	Rank   int
	Record R
}

// Positions numbers a ranking from 1. Records keep the ranking order.
func Positions[R any](top []R) []Ranked[R] {
	out := make([]Ranked[R], len(top))
	for i, r := range top {
		out[i] = Ranked[R]{Rank: i + 1, Record: r}
	}
	return out
}
