package views

import (
	"github.com/okian/insertion/internal/domain/derive"
	"github.com/okian/insertion/internal/domain/format"
	"github.com/okian/insertion/internal/domain/metric"
	"github.com/okian/insertion/internal/domain/ranking"
	"github.com/okian/insertion/internal/projection"
)

// Axis and legend labels shared by several pages.
const (
	labelYear          = "Année"
	labelInsertionPct  = "Taux d'insertion (%)"
	labelInsertionMean = "Taux d'insertion moyen (%)"
	labelMedianSalary  = "Salaire net médian (€/mois)"
	labelSalary        = "Salaire net (€/mois)"
	labelRespondents   = "Répondants"
	tickAngleCategory  = -35
	geoFeatureKey      = "properties.nom"
)

type seriesFunc func() (projection.SeriesSpec, error)

func chart(id, title string, layout projection.Layout, series ...seriesFunc) (projection.Chart, error) {
	c := projection.Chart{ID: id, Title: title, Layout: layout, Series: make([]projection.SeriesSpec, 0, len(series))}
	for _, build := range series {
		s, err := build()
		if err != nil {
			return projection.Chart{}, err
		}
		c.Series = append(c.Series, s)
	}
	return c, nil
}

func pct[R any](accessor func(R) metric.Float) func(R) metric.Float {
	return func(r R) metric.Float { return metric.ToPercent(accessor(r)) }
}

func counts[R any](n func(R) metric.Int) func(R) metric.Float {
	return func(r R) metric.Float { return n(r).Float() }
}

func rankColumn[R any]() projection.ColumnSpec[ranking.Ranked[R]] {
	return projection.Field[ranking.Ranked[R], int]("rank", "Rang", func(r ranking.Ranked[R]) int { return r.Rank }, nil)
}

// lift adapts a record accessor to a numbered ranking row.
func lift[R, V any](accessor func(R) V) func(ranking.Ranked[R]) V {
	return func(r ranking.Ranked[R]) V { return accessor(r.Record) }
}

func countStrings[R any](records []R, n func(R) metric.Int) []string {
	return derive.OverlayStrings(records, counts(n), format.CountFloat)
}
