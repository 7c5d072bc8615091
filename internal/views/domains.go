package views

import (
	"github.com/okian/insertion/internal/domain/derive"
	"github.com/okian/insertion/internal/domain/format"
	"github.com/okian/insertion/internal/domain/metric"
	"github.com/okian/insertion/internal/domain/ranking"
	"github.com/okian/insertion/internal/domain/stats"
	"github.com/okian/insertion/internal/projection"
)

func domainsBuilder() Builder {
	return Builder{
		Name:     ViewDomains,
		Title:    "Insertion par domaine",
		Datasets: []string{stats.DatasetByDomain},
		Build:    buildDomains,
	}
}

func domainLabel(d stats.DomainStat) string              { return d.Domain }
func domainMedianSalary(d stats.DomainStat) metric.Float { return d.MedianSalary }
func domainMeanSalary(d stats.DomainStat) metric.Float   { return d.MeanSalary }
func domainN(d stats.DomainStat) metric.Int              { return d.N }

func buildDomains(snap *Snapshot, settings Settings) (View, error) {
	top := ranking.SelectTop(snap.ByDomain, stats.DomainStat.Insertion, settings.TopDomains)
	display := ranking.AscendingDisplayOrder(top)

	bar, err := chart("chart_domaines_bar", "Top domaines par taux d'insertion",
		projection.Layout{XTitle: labelInsertionMean},
		func() (projection.SeriesSpec, error) {
			return projection.BuildSeries(display, pct(stats.DomainStat.Insertion), domainLabel,
				projection.WithKind(projection.KindBar),
				projection.WithHorizontal(),
				projection.WithLegend("Insertion"),
				projection.WithAxisLabels(labelInsertionMean, ""),
				projection.WithDetail(derive.OverlayStrings(display, stats.DomainStat.Salary, format.Currency)),
				projection.WithCounts(countStrings(display, domainN)))
		})
	if err != nil {
		return View{}, err
	}

	combo, err := insertionSalaryCombo("chart_domaines_scatter", "Domaine", top, domainLabel,
		stats.DomainStat.Insertion, domainMedianSalary, domainN,
		derive.Overlay(top, domainMeanSalary, domainMedianSalary))
	if err != nil {
		return View{}, err
	}

	return View{
		Charts: []projection.Chart{bar, combo},
		Tables: []projection.TableSpec{domainTable("table_domaines", top)},
	}, nil
}

func domainTable(id string, top []stats.DomainStat) projection.TableSpec {
	t := projection.BuildTable(id, ranking.Positions(top), []projection.ColumnSpec[ranking.Ranked[stats.DomainStat]]{
		rankColumn[stats.DomainStat](),
		projection.Text("domaine", "Domaine", lift(domainLabel)),
		projection.Rate("taux_dinsertion_moy", "Insertion", lift(stats.DomainStat.Insertion)),
		projection.Currency("salaire", labelSalary, lift(stats.DomainStat.Salary)),
		projection.Currency("salaire_median", "Salaire médian", lift(domainMedianSalary)),
		projection.Count("n", labelRespondents, lift(domainN)),
	})
	t.Title = "Classement des domaines"
	return t
}

// insertionSalaryCombo draws insertion bars with the median salary as a line
// on the secondary axis. color carries the salary overlay aligned with top.
func insertionSalaryCombo[R any](id, category string, top []R, label func(R) string,
	insertion, medianSalary func(R) metric.Float, n func(R) metric.Int, color []metric.Float,
) (projection.Chart, error) {
	return chart(id, "Insertion et salaire",
		projection.Layout{
			XTitle:           category,
			YTitle:           labelInsertionPct,
			Y2Title:          labelMedianSalary,
			TickAngle:        tickAngleCategory,
			LegendHorizontal: true,
		},
		func() (projection.SeriesSpec, error) {
			return projection.BuildSeries(top, label, pct(insertion),
				projection.WithKind(projection.KindBar),
				projection.WithLegend("Insertion (%)"),
				projection.WithAxisLabels(category, labelInsertionPct),
				projection.WithColor(labelSalary, color),
				projection.WithDetail(derive.OverlayStrings(top, medianSalary, format.Currency)),
				projection.WithCounts(countStrings(top, n)))
		},
		func() (projection.SeriesSpec, error) {
			return projection.BuildSeries(top, label, medianSalary,
				projection.WithKind(projection.KindLine),
				projection.WithSecondaryAxis(),
				projection.WithLegend(labelMedianSalary),
				projection.WithAxisLabels(category, labelMedianSalary))
		})
}
