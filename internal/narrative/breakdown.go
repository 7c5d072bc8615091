package narrative

import (
	"fmt"

	"github.com/okian/insertion/internal/domain/format"
	"github.com/okian/insertion/internal/domain/metric"
	"github.com/okian/insertion/internal/domain/ranking"
	"github.com/okian/insertion/internal/domain/stats"
)

// Insight ids produced by SummarizeGender and SummarizeEquity.
const (
	InsightMostFemale           = "gender_most_female"
	InsightLeastFemale          = "gender_least_female"
	InsightTopScholarship       = "equity_top_scholarship"
	InsightScholarshipInsertion = "equity_top_scholarship_insertion"
)

type genderInputs struct {
	most, least *stats.GenderDomainStat
}

var genderTemplates = map[string]template[genderInputs]{
	InsightMostFemale: func(in genderInputs) (string, bool) {
		if in.most == nil || !in.most.FemaleShare.Valid {
			return "", false
		}
		return fmt.Sprintf("Le domaine « %s » compte la plus forte part de femmes parmi les diplômés (%s).",
			in.most.Domain, format.Rate(in.most.FemaleShare)), true
	},
	InsightLeastFemale: func(in genderInputs) (string, bool) {
		if in.least == nil || !in.least.FemaleShare.Valid {
			return "", false
		}
		return fmt.Sprintf("Le domaine « %s » compte la plus faible part de femmes (%s), pour un taux d'insertion de %s.",
			in.least.Domain, format.Rate(in.least.FemaleShare), format.Rate(in.least.InsertionRate)), true
	},
}

// SummarizeGender describes the domains with the highest and lowest female
// share. Domains without a reported share are ignored.
func SummarizeGender(domains []stats.GenderDomainStat) InsightMap {
	share := func(d stats.GenderDomainStat) metric.Float { return d.FemaleShare }
	var in genderInputs
	if top := ranking.SelectTop(domains, share, 1); len(top) == 1 {
		in.most = &top[0]
	}
	if bottom := ranking.SelectTop(domains, func(d stats.GenderDomainStat) metric.Float {
		return metric.Neg(d.FemaleShare)
	}, 1); len(bottom) == 1 {
		in.least = &bottom[0]
	}
	return render(genderTemplates, in)
}

var equityTemplates = map[string]template[*stats.EquityDomainStat]{
	InsightTopScholarship: func(d *stats.EquityDomainStat) (string, bool) {
		if d == nil || !d.ScholarshipShare.Valid {
			return "", false
		}
		return fmt.Sprintf("Le domaine « %s » accueille la plus forte part de diplômés boursiers (%s).",
			d.Domain, format.Rate(d.ScholarshipShare)), true
	},
	InsightScholarshipInsertion: func(d *stats.EquityDomainStat) (string, bool) {
		if d == nil || !d.ScholarshipShare.Valid || !d.InsertionRate.Valid || !d.N.Valid {
			return "", false
		}
		return fmt.Sprintf("Dans ce domaine, le taux d'insertion atteint %s sur %s répondants.",
			format.Rate(d.InsertionRate), format.Count(d.N)), true
	},
}

// SummarizeEquity describes the domain with the highest scholarship share.
func SummarizeEquity(domains []stats.EquityDomainStat) InsightMap {
	var top *stats.EquityDomainStat
	if t := ranking.SelectTop(domains, func(d stats.EquityDomainStat) metric.Float { return d.ScholarshipShare }, 1); len(t) == 1 {
		top = &t[0]
	}
	return render(equityTemplates, top)
}
