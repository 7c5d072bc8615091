// Package narrative turns ranked results into short French sentences.
//
// Each insight is a pure function of typed inputs guarded by presence
// checks. Numbers only ever reach the text through package format, and an
// insight whose inputs are missing resolves to Neutral; callers always get a
// value for every known id.
package narrative

import (
	"fmt"
	"slices"

	"github.com/okian/insertion/internal/domain/format"
	"github.com/okian/insertion/internal/domain/metric"
	"github.com/okian/insertion/internal/domain/stats"
)

// Neutral replaces an insight whose inputs are not available.
const Neutral = "Donnée indisponible pour cet indicateur."

// Insight ids produced by Summarize.
const (
	InsightTopDomain   = "top_domain"
	InsightTopAcademy  = "top_academy"
	InsightLatestYear  = "latest_year"
	InsightTrend       = "trend"
	InsightSalaryTrend = "salary_trend"
)

// InsightMap maps an insight id to finished display text.
type InsightMap map[string]string

// Inputs is the state the summary insights are computed from. Nil means
// not available.
type Inputs struct {
	TopDomain  *stats.DomainStat
	TopAcademy *stats.AcademyStat
	Latest     *stats.YearStat
	Previous   *stats.YearStat
}

type template[I any] func(I) (string, bool)

var summaryTemplates = map[string]template[Inputs]{
	InsightTopDomain:   topDomain,
	InsightTopAcademy:  topAcademy,
	InsightLatestYear:  latestYear,
	InsightTrend:       insertionTrend,
	InsightSalaryTrend: salaryTrend,
}

// Summarize builds the conclusion insights.
func Summarize(topDomain *stats.DomainStat, topAcademy *stats.AcademyStat, latest, previous *stats.YearStat) InsightMap {
	return render(summaryTemplates, Inputs{
		TopDomain:  topDomain,
		TopAcademy: topAcademy,
		Latest:     latest,
		Previous:   previous,
	})
}

var trendTemplates = map[string]template[Inputs]{
	InsightLatestYear:  latestYear,
	InsightTrend:       insertionTrend,
	InsightSalaryTrend: salaryTrend,
}

// SummarizeTrend builds only the year-over-year insights.
func SummarizeTrend(latest, previous *stats.YearStat) InsightMap {
	return render(trendTemplates, Inputs{Latest: latest, Previous: previous})
}

// CountNeutral returns how many insights fell back to Neutral.
func (m InsightMap) CountNeutral() int {
	n := 0
	for _, text := range m {
		if text == Neutral {
			n++
		}
	}
	return n
}

// SummaryIDs lists the ids Summarize always returns, sorted.
func SummaryIDs() []string { return ids(summaryTemplates) }

func render[I any](templates map[string]template[I], in I) InsightMap {
	out := make(InsightMap, len(templates))
	for id, fn := range templates {
		text, ok := fn(in)
		if !ok {
			text = Neutral
		}
		out[id] = text
	}
	return out
}

func ids[I any](templates map[string]template[I]) []string {
	out := make([]string, 0, len(templates))
	for id := range templates {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

func topDomain(in Inputs) (string, bool) {
	d := in.TopDomain
	if d == nil || d.Domain == "" || !d.InsertionRate.Valid {
		return "", false
	}
	text := fmt.Sprintf("Le domaine « %s » affiche le meilleur taux d'insertion (%s)",
		d.Domain, format.Rate(d.InsertionRate))
	if salary := d.Salary(); salary.Valid {
		text += fmt.Sprintf(", pour un salaire net de %s par mois", format.Currency(salary))
	}
	if d.N.Valid {
		text += fmt.Sprintf(" (%s répondants)", format.Count(d.N))
	}
	return text + ".", true
}

func topAcademy(in Inputs) (string, bool) {
	a := in.TopAcademy
	if a == nil || a.Academy == "" || !a.InsertionRate.Valid {
		return "", false
	}
	text := fmt.Sprintf("L'académie de %s arrive en tête avec %s d'insertion",
		a.Academy, format.Rate(a.InsertionRate))
	if a.MedianSalary.Valid {
		text += fmt.Sprintf(" et un salaire médian de %s", format.Currency(a.MedianSalary))
	}
	return text + ".", true
}

func latestYear(in Inputs) (string, bool) {
	y := in.Latest
	if y == nil || !y.Year.Valid || !y.InsertionRate.Valid {
		return "", false
	}
	text := fmt.Sprintf("En %s, le taux d'insertion moyen atteint %s",
		format.Year(y.Year), format.Rate(y.InsertionRate))
	if y.MedianSalary.Valid {
		text += fmt.Sprintf(" pour un salaire net médian de %s", format.Currency(y.MedianSalary))
	}
	return text + ".", true
}

func insertionTrend(in Inputs) (string, bool) {
	delta, ok := yearDelta(in, stats.YearStat.Insertion)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("Entre %s et %s, le taux d'insertion %s (%s contre %s).",
		format.Year(in.Previous.Year), format.Year(in.Latest.Year),
		movement(format.Points(metric.ToPercent(delta))),
		format.Rate(in.Latest.InsertionRate), format.Rate(in.Previous.InsertionRate)), true
}

func salaryTrend(in Inputs) (string, bool) {
	delta, ok := yearDelta(in, func(y stats.YearStat) metric.Float { return y.MedianSalary })
	if !ok {
		return "", false
	}
	return fmt.Sprintf("Le salaire net médian passe de %s en %s à %s en %s (%s).",
		format.Currency(in.Previous.MedianSalary), format.Year(in.Previous.Year),
		format.Currency(in.Latest.MedianSalary), format.Year(in.Latest.Year),
		format.SignedCurrency(delta)), true
}

func yearDelta(in Inputs, accessor func(stats.YearStat) metric.Float) (metric.Float, bool) {
	if in.Latest == nil || in.Previous == nil || !in.Latest.Year.Valid || !in.Previous.Year.Valid {
		return metric.None(), false
	}
	delta := metric.Sub(accessor(*in.Latest), accessor(*in.Previous))
	return delta, delta.Valid
}

// movement reads the sign of the displayed delta so the verb never
// contradicts the rounded figure next to it.
func movement(points string) string {
	switch {
	case points == "+0.0 pts" || points == "-0.0 pts":
		return "reste stable (" + points + ")"
	case points[0] == '-':
		return "recule de " + points
	default:
		return "progresse de " + points
	}
}
