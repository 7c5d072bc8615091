package views

import (
	"github.com/okian/insertion/internal/domain/derive"
	"github.com/okian/insertion/internal/domain/format"
	"github.com/okian/insertion/internal/domain/ranking"
	"github.com/okian/insertion/internal/domain/stats"
	"github.com/okian/insertion/internal/narrative"
	"github.com/okian/insertion/internal/projection"
)

func conclusionBuilder() Builder {
	return Builder{
		Name:     ViewConclusion,
		Title:    "Synthèse",
		Datasets: []string{stats.DatasetByDomain, stats.DatasetByAcademy, stats.DatasetByYear},
		Build:    buildConclusion,
	}
}

type keyFigure struct {
	Label string
	Value string
}

func buildConclusion(snap *Snapshot, settings Settings) (View, error) {
	topDomains := ranking.SelectTop(snap.ByDomain, stats.DomainStat.Insertion, settings.TopConclusion)
	topAcademies := ranking.SelectTop(snap.ByAcademy, stats.AcademyStat.Insertion, settings.TopConclusion)
	trend := derive.YearOverYear(snap.ByYear)

	insights := narrative.Summarize(first(topDomains), first(topAcademies), trend.Latest, trend.Previous)

	figures := projection.BuildTable("table_key_figures", keyFigures(trend), []projection.ColumnSpec[keyFigure]{
		projection.Text("indicateur", "Indicateur", func(k keyFigure) string { return k.Label }),
		projection.Text("valeur", "Valeur", func(k keyFigure) string { return k.Value }),
	})
	figures.Title = "Chiffres clés"

	return View{
		Charts: []projection.Chart{},
		Tables: []projection.TableSpec{
			figures,
			domainTable("table_top_domaines", topDomains),
			academyTable("table_top_academies", topAcademies),
		},
		Insights: insights,
	}, nil
}

func keyFigures(trend derive.Trend) []keyFigure {
	var latest stats.YearStat
	if trend.Latest != nil {
		latest = *trend.Latest
	}
	return []keyFigure{
		{Label: "Dernière année disponible", Value: format.Year(latest.Year)},
		{Label: "Taux d'insertion", Value: format.Rate(latest.InsertionRate)},
		{Label: "Évolution depuis l'année précédente", Value: format.Points(trend.DeltaPoints(stats.YearStat.Insertion))},
		{Label: "Salaire net médian", Value: format.Currency(latest.MedianSalary)},
		{Label: "Évolution du salaire", Value: format.SignedCurrency(trend.Delta(medianSalaryOfYear))},
		{Label: labelRespondents, Value: format.Count(latest.N)},
	}
}

func first[R any](records []R) *R {
	if len(records) == 0 {
		return nil
	}
	return &records[0]
}
