package views

import (
	"github.com/okian/insertion/internal/domain/derive"
	"github.com/okian/insertion/internal/domain/metric"
	"github.com/okian/insertion/internal/domain/ranking"
	"github.com/okian/insertion/internal/domain/stats"
	"github.com/okian/insertion/internal/narrative"
	"github.com/okian/insertion/internal/projection"
)

func genderBuilder() Builder {
	return Builder{
		Name:     ViewGender,
		Title:    "Insertion et part des femmes",
		Datasets: []string{stats.DatasetGenderByDomain, stats.DatasetGenderByYear},
		Build:    buildGender,
	}
}

func genderDomainLabel(d stats.GenderDomainStat) string        { return d.Domain }
func femaleShare(d stats.GenderDomainStat) metric.Float        { return d.FemaleShare }
func genderMeanSalary(d stats.GenderDomainStat) metric.Float   { return d.MeanSalary }
func genderMedianSalary(d stats.GenderDomainStat) metric.Float { return d.MedianSalary }
func genderN(d stats.GenderDomainStat) metric.Int              { return d.N }

func buildGender(snap *Snapshot, settings Settings) (View, error) {
	domains := ranking.SelectTop(snap.GenderByDomain, stats.GenderDomainStat.Insertion, len(snap.GenderByDomain))

	scatter, err := chart("chart_genre_scatter", "Insertion et part des femmes par domaine",
		projection.Layout{XTitle: "Part de femmes (%)", YTitle: labelInsertionPct},
		func() (projection.SeriesSpec, error) {
			return projection.BuildSeries(domains, pct(femaleShare), pct(stats.GenderDomainStat.Insertion),
				projection.WithKind(projection.KindScatter),
				projection.WithLegend("Domaines"),
				projection.WithAxisLabels("Part de femmes (%)", labelInsertionPct),
				projection.WithColor(labelSalary, derive.Overlay(domains, genderMeanSalary, genderMedianSalary)),
				projection.WithSize(derive.Overlay(domains, counts(genderN))),
				projection.WithDetail(derive.Labels(domains, genderDomainLabel)),
				projection.WithCounts(countStrings(domains, genderN)))
		})
	if err != nil {
		return View{}, err
	}

	years := derive.Chronological(snap.GenderByYear, func(y stats.GenderYearStat) metric.Int { return y.Year })
	byYear, err := chart("chart_genre_by_year", "Part des femmes et insertion par année",
		projection.Layout{XTitle: labelYear, YTitle: "Pourcentage", LegendHorizontal: true},
		func() (projection.SeriesSpec, error) {
			return projection.BuildSeries(years, func(y stats.GenderYearStat) metric.Int { return y.Year },
				pct(func(y stats.GenderYearStat) metric.Float { return y.FemaleShare }),
				projection.WithKind(projection.KindLine),
				projection.WithLegend("Part de femmes (%)"),
				projection.WithAxisLabels(labelYear, "Pourcentage"),
				projection.WithCounts(countStrings(years, func(y stats.GenderYearStat) metric.Int { return y.N })))
		},
		func() (projection.SeriesSpec, error) {
			return projection.BuildSeries(years, func(y stats.GenderYearStat) metric.Int { return y.Year },
				pct(stats.GenderYearStat.Insertion),
				projection.WithKind(projection.KindLine),
				projection.WithLegend(labelInsertionPct),
				projection.WithAxisLabels(labelYear, "Pourcentage"))
		})
	if err != nil {
		return View{}, err
	}

	byShare := ranking.SelectTop(snap.GenderByDomain, femaleShare, settings.TopDomains)
	table := projection.BuildTable("table_genre", byShare, []projection.ColumnSpec[stats.GenderDomainStat]{
		projection.Text("domaine", "Domaine", genderDomainLabel),
		projection.Rate("part_femmes", "Part de femmes", femaleShare),
		projection.Rate("taux_dinsertion_moy", "Insertion", stats.GenderDomainStat.Insertion),
		projection.Currency("salaire", labelSalary, stats.GenderDomainStat.Salary),
		projection.Count("n", labelRespondents, genderN),
	})
	table.Title = "Domaines les plus féminisés"

	return View{
		Charts:   []projection.Chart{scatter, byYear},
		Tables:   []projection.TableSpec{table},
		Insights: narrative.SummarizeGender(snap.GenderByDomain),
	}, nil
}
