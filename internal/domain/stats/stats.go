// Package stats contains the record shapes delivered by the data service.
// Every numeric field is optional; see package metric.
package stats

import "github.com/okian/insertion/internal/domain/metric"

// Dataset names served by the data service.
const (
	DatasetByYear         = "by_year"
	DatasetByDomain       = "by_domaine"
	DatasetByAcademy      = "by_academie"
	DatasetByRegion       = "by_region"
	DatasetGenderByDomain = "genre_by_domaine"
	DatasetGenderByYear   = "genre_by_year"
	DatasetEquityByDomain = "equite_by_domaine"
)

// GeoRegions names the boundary collection whose feature property "nom"
// matches RegionStat.Region.
const GeoRegions = "regions"

// YearStat aggregates one survey year.
type YearStat struct {
	Year           metric.Int   `json:"annee"`
	InsertionRate  metric.Float `json:"taux_dinsertion_moy"`
	EmploymentRate metric.Float `json:"taux_emploi_moy"`
	MedianSalary   metric.Float `json:"salaire_median"`
	N              metric.Int   `json:"n"`
}

// DomainStat aggregates one academic domain.
type DomainStat struct {
	Domain        string       `json:"domaine"`
	InsertionRate metric.Float `json:"taux_dinsertion_moy"`
	MeanSalary    metric.Float `json:"salaire_moyen"`
	MedianSalary  metric.Float `json:"salaire_median"`
	N             metric.Int   `json:"n"`
}

// AcademyStat aggregates one academy.
type AcademyStat struct {
	Academy       string       `json:"academie"`
	InsertionRate metric.Float `json:"taux_dinsertion_moy"`
	MedianSalary  metric.Float `json:"salaire_median"`
	N             metric.Int   `json:"n"`
}

// RegionStat aggregates one administrative region.
type RegionStat struct {
	Region        string       `json:"region"`
	InsertionRate metric.Float `json:"taux_dinsertion_moy"`
	MedianSalary  metric.Float `json:"salaire_median"`
	N             metric.Int   `json:"n"`
}

// GenderDomainStat adds the female share to a domain aggregate.
type GenderDomainStat struct {
	Domain        string       `json:"domaine"`
	InsertionRate metric.Float `json:"taux_dinsertion_moy"`
	FemaleShare   metric.Float `json:"part_femmes"`
	MeanSalary    metric.Float `json:"salaire_moyen"`
	MedianSalary  metric.Float `json:"salaire_median"`
	N             metric.Int   `json:"n"`
}

// GenderYearStat tracks the female share per year.
type GenderYearStat struct {
	Year          metric.Int   `json:"annee"`
	InsertionRate metric.Float `json:"taux_dinsertion_moy"`
	FemaleShare   metric.Float `json:"part_femmes"`
	N             metric.Int   `json:"n"`
}

// EquityDomainStat adds the scholarship holders share to a domain aggregate.
type EquityDomainStat struct {
	Domain           string       `json:"domaine"`
	InsertionRate    metric.Float `json:"taux_dinsertion_moy"`
	ScholarshipShare metric.Float `json:"part_boursiers"`
	MedianSalary     metric.Float `json:"salaire_median"`
	N                metric.Int   `json:"n"`
}
