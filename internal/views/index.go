package views

import (
	"github.com/okian/insertion/internal/domain/derive"
	"github.com/okian/insertion/internal/domain/metric"
	"github.com/okian/insertion/internal/domain/stats"
	"github.com/okian/insertion/internal/narrative"
	"github.com/okian/insertion/internal/projection"
)

func indexBuilder() Builder {
	return Builder{
		Name:     ViewIndex,
		Title:    "Insertion professionnelle des diplômés",
		Datasets: []string{stats.DatasetByYear},
		Build:    buildIndex,
	}
}

func yearOf(y stats.YearStat) metric.Int               { return y.Year }
func medianSalaryOfYear(y stats.YearStat) metric.Float { return y.MedianSalary }

func buildIndex(snap *Snapshot, _ Settings) (View, error) {
	years := derive.Chronological(snap.ByYear, yearOf)
	n := countStrings(years, func(y stats.YearStat) metric.Int { return y.N })

	rates, err := chart("chart_by_year_rates", "Taux d'insertion par année",
		projection.Layout{XTitle: labelYear, YTitle: "Pourcentage", LegendHorizontal: true},
		func() (projection.SeriesSpec, error) {
			return projection.BuildSeries(years, yearOf, pct(stats.YearStat.Insertion),
				projection.WithKind(projection.KindLine),
				projection.WithLegend(labelInsertionPct),
				projection.WithAxisLabels(labelYear, "Pourcentage"),
				projection.WithCounts(n))
		},
		func() (projection.SeriesSpec, error) {
			return projection.BuildSeries(years, yearOf, pct(func(y stats.YearStat) metric.Float { return y.EmploymentRate }),
				projection.WithKind(projection.KindLine),
				projection.WithLegend("Taux d'emploi (%)"),
				projection.WithAxisLabels(labelYear, "Pourcentage"),
				projection.WithCounts(n))
		})
	if err != nil {
		return View{}, err
	}

	salary, err := chart("chart_by_year_salary", "Salaire net médian par année",
		projection.Layout{XTitle: labelYear, YTitle: "Salaire net médian"},
		func() (projection.SeriesSpec, error) {
			return projection.BuildSeries(years, yearOf, medianSalaryOfYear,
				projection.WithKind(projection.KindLine),
				projection.WithLegend(labelMedianSalary),
				projection.WithAxisLabels(labelYear, "Salaire net médian"),
				projection.WithCounts(n))
		})
	if err != nil {
		return View{}, err
	}

	table := projection.BuildTable("table_by_year", years, []projection.ColumnSpec[stats.YearStat]{
		projection.Field[stats.YearStat, metric.Int]("annee", labelYear, yearOf, nil),
		projection.Rate("taux_dinsertion_moy", "Insertion", stats.YearStat.Insertion),
		projection.Rate("taux_emploi_moy", "Emploi", func(y stats.YearStat) metric.Float { return y.EmploymentRate }),
		projection.Currency("salaire_median", "Salaire médian", medianSalaryOfYear),
		projection.Count("n", labelRespondents, func(y stats.YearStat) metric.Int { return y.N }),
	})
	table.Title = "Indicateurs annuels"

	trend := derive.YearOverYear(snap.ByYear)
	return View{
		Charts:   []projection.Chart{rates, salary},
		Tables:   []projection.TableSpec{table},
		Insights: narrative.SummarizeTrend(trend.Latest, trend.Previous),
	}, nil
}
