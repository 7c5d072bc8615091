// Package derive computes metrics that are not stored by the data service:
// percentage series, year-over-year deltas and overlays aligned to a ranking.
package derive

import (
	"cmp"
	"slices"

	"github.com/okian/insertion/internal/domain/metric"
	"github.com/okian/insertion/internal/domain/stats"
)

// Percentages scales the fraction returned by accessor for every record.
// The result is index-aligned with records.
func Percentages[R any](records []R, accessor func(R) metric.Float) []metric.Float {
	out := make([]metric.Float, len(records))
	for i, r := range records {
		out[i] = metric.ToPercent(accessor(r))
	}
	return out
}

// Overlay produces one secondary value per primary record, in the primary
// order. The accessors form a fallback chain: the first defined value wins,
// and the slot stays absent when none is defined.
func Overlay[R any](primary []R, chain ...func(R) metric.Float) []metric.Float {
	out := make([]metric.Float, len(primary))
	for i, r := range primary {
		for _, accessor := range chain {
			if v := accessor(r); v.Valid {
				out[i] = v
				break
			}
		}
	}
	return out
}

// OverlayStrings formats an overlay for hover details and tooltips.
func OverlayStrings[R any](primary []R, accessor func(R) metric.Float, formatter func(metric.Float) string) []string {
	out := make([]string, len(primary))
	for i, r := range primary {
		out[i] = formatter(accessor(r))
	}
	return out
}

// Labels extracts the category label of every record.
func Labels[R any](records []R, label func(R) string) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = label(r)
	}
	return out
}

// Trend holds the two most recent dated years of a series.
type Trend struct {
	Latest   *stats.YearStat
	Previous *stats.YearStat
}

// YearOverYear drops undated entries, orders the rest by year and keeps the
// last two. Missing years are not filled in: with 2019 and 2021 present the
// trend compares 2019 to 2021.
func YearOverYear(years []stats.YearStat) Trend {
	dated := Chronological(years, yearOf)
	var t Trend
	if n := len(dated); n > 0 {
		t.Latest = &dated[n-1]
		if n > 1 {
			t.Previous = &dated[n-2]
		}
	}
	return t
}

func yearOf(y stats.YearStat) metric.Int { return y.Year }

// Chronological returns the dated records sorted by ascending year. The
// input is not modified.
func Chronological[R any](records []R, year func(R) metric.Int) []R {
	dated := make([]R, 0, len(records))
	for _, r := range records {
		if year(r).Valid {
			dated = append(dated, r)
		}
	}
	slices.SortStableFunc(dated, func(a, b R) int {
		return cmp.Compare(year(a).Value, year(b).Value)
	})
	return dated
}

// Delta returns latest - previous for the metric, absent unless both years
// exist and both report it.
func (t Trend) Delta(accessor func(stats.YearStat) metric.Float) metric.Float {
	if t.Latest == nil || t.Previous == nil {
		return metric.None()
	}
	return metric.Sub(accessor(*t.Latest), accessor(*t.Previous))
}

// DeltaPoints returns the delta of a stored fraction in percentage points.
func (t Trend) DeltaPoints(accessor func(stats.YearStat) metric.Float) metric.Float {
	return metric.ToPercent(t.Delta(accessor))
}
