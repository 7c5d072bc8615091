package views

import (
	"github.com/okian/insertion/internal/domain/derive"
	"github.com/okian/insertion/internal/domain/metric"
	"github.com/okian/insertion/internal/domain/ranking"
	"github.com/okian/insertion/internal/domain/stats"
	"github.com/okian/insertion/internal/narrative"
	"github.com/okian/insertion/internal/projection"
)

func equityBuilder() Builder {
	return Builder{
		Name:     ViewEquity,
		Title:    "Insertion et diplômés boursiers",
		Datasets: []string{stats.DatasetEquityByDomain},
		Build:    buildEquity,
	}
}

func equityLabel(d stats.EquityDomainStat) string              { return d.Domain }
func scholarshipShare(d stats.EquityDomainStat) metric.Float   { return d.ScholarshipShare }
func equityMedianSalary(d stats.EquityDomainStat) metric.Float { return d.MedianSalary }
func equityN(d stats.EquityDomainStat) metric.Int              { return d.N }

func buildEquity(snap *Snapshot, settings Settings) (View, error) {
	domains := ranking.SelectTop(snap.EquityByDomain, scholarshipShare, len(snap.EquityByDomain))

	scatter, err := chart("chart_equite_scatter", "Insertion et part de boursiers par domaine",
		projection.Layout{XTitle: "Part de boursiers (%)", YTitle: labelInsertionPct},
		func() (projection.SeriesSpec, error) {
			return projection.BuildSeries(domains, pct(scholarshipShare), pct(stats.EquityDomainStat.Insertion),
				projection.WithKind(projection.KindScatter),
				projection.WithLegend("Domaines"),
				projection.WithAxisLabels("Part de boursiers (%)", labelInsertionPct),
				projection.WithColor(labelMedianSalary, derive.Overlay(domains, equityMedianSalary)),
				projection.WithSize(derive.Overlay(domains, counts(equityN))),
				projection.WithDetail(derive.Labels(domains, equityLabel)),
				projection.WithCounts(countStrings(domains, equityN)))
		})
	if err != nil {
		return View{}, err
	}

	top := ranking.SelectTop(snap.EquityByDomain, scholarshipShare, settings.TopDomains)
	table := projection.BuildTable("table_equite", ranking.Positions(top), []projection.ColumnSpec[ranking.Ranked[stats.EquityDomainStat]]{
		rankColumn[stats.EquityDomainStat](),
		projection.Text("domaine", "Domaine", lift(equityLabel)),
		projection.Rate("part_boursiers", "Part de boursiers", lift(scholarshipShare)),
		projection.Rate("taux_dinsertion_moy", "Insertion", lift(stats.EquityDomainStat.Insertion)),
		projection.Currency("salaire_median", "Salaire médian", lift(equityMedianSalary)),
		projection.Count("n", labelRespondents, lift(equityN)),
	})
	table.Title = "Domaines accueillant le plus de boursiers"

	return View{
		Charts:   []projection.Chart{scatter},
		Tables:   []projection.TableSpec{table},
		Insights: narrative.SummarizeEquity(snap.EquityByDomain),
	}, nil
}
