// Package format renders statistics for display. Every function returns
// Placeholder for absent values so tables and sentences never show a bare
// zero for data that was not reported.
package format

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/okian/insertion/internal/domain/metric"
)

// Placeholder is shown wherever a statistic is absent.
const Placeholder = "n/d"

const (
	// DefaultPercentDecimals is the precision used for rates and shares.
	DefaultPercentDecimals = 1

	// CurrencySuffix follows every formatted salary.
	CurrencySuffix = " EUR"

	// groupedInteger groups thousands with a space and drops decimals.
	groupedInteger = "# ###."
)

// Percent formats an already scaled percentage with fixed decimals.
func Percent(v metric.Float, decimals int) string {
	if !v.Valid {
		return Placeholder
	}
	if decimals < 0 {
		decimals = 0
	}
	return strconv.FormatFloat(v.Value, 'f', decimals, 64) + "%"
}

// PercentDefault formats with DefaultPercentDecimals.
func PercentDefault(v metric.Float) string {
	return Percent(v, DefaultPercentDecimals)
}

// Rate scales a stored fraction and formats it as a percentage.
func Rate(fraction metric.Float) string {
	return PercentDefault(metric.ToPercent(fraction))
}

// Currency formats a monthly salary, e.g. "3 200 EUR".
func Currency(v metric.Float) string {
	if !v.Valid {
		return Placeholder
	}
	return grouped(v.Value) + CurrencySuffix
}

// Count formats a respondent count, e.g. "1 500".
func Count(v metric.Int) string {
	return CountFloat(v.Float())
}

// CountFloat formats a count carried as a float.
func CountFloat(v metric.Float) string {
	if !v.Valid {
		return Placeholder
	}
	return grouped(v.Value)
}

// Points formats a signed difference of percentages, e.g. "+5.0 pts".
func Points(delta metric.Float) string {
	if !delta.Valid {
		return Placeholder
	}
	s := strconv.FormatFloat(delta.Value, 'f', DefaultPercentDecimals, 64)
	if delta.Value >= 0 && s[0] != '-' {
		s = "+" + s
	}
	return s + " pts"
}

// SignedCurrency formats a salary difference with an explicit sign.
func SignedCurrency(delta metric.Float) string {
	if !delta.Valid {
		return Placeholder
	}
	s := Currency(delta)
	if math.Round(delta.Value) >= 0 {
		s = "+" + s
	}
	return s
}

// Year formats a calendar year without grouping.
func Year(v metric.Int) string {
	if !v.Valid {
		return Placeholder
	}
	return strconv.FormatInt(v.Value, 10)
}

// grouped rounds half away from zero, then groups thousands.
func grouped(v float64) string {
	return humanize.FormatFloat(groupedInteger, math.Round(v))
}
