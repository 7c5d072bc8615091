package views

import (
	"fmt"
	"sort"

	"github.com/okian/insertion/internal/adapters/source"
	"github.com/okian/insertion/internal/domain/derive"
	"github.com/okian/insertion/internal/domain/format"
	"github.com/okian/insertion/internal/domain/metric"
	"github.com/okian/insertion/internal/domain/ranking"
	"github.com/okian/insertion/internal/domain/stats"
	"github.com/okian/insertion/internal/projection"
)

func academiesBuilder() Builder {
	return Builder{
		Name:       ViewAcademies,
		Title:      "Insertion par académie et par région",
		Datasets:   []string{stats.DatasetByAcademy, stats.DatasetByRegion},
		Boundaries: []string{stats.GeoRegions},
		Build:      buildAcademies,
	}
}

func academyLabel(a stats.AcademyStat) string              { return a.Academy }
func academyMedianSalary(a stats.AcademyStat) metric.Float { return a.MedianSalary }
func academyN(a stats.AcademyStat) metric.Int              { return a.N }

func regionLabel(r stats.RegionStat) string { return r.Region }

func buildAcademies(snap *Snapshot, settings Settings) (View, error) {
	regionMap, err := chart("map_regions", "Taux d'insertion par région",
		projection.Layout{Geo: stats.GeoRegions, YTitle: "Insertion (%)"},
		func() (projection.SeriesSpec, error) {
			return projection.BuildSeries(snap.ByRegion, regionLabel, pct(stats.RegionStat.Insertion),
				projection.WithKind(projection.KindChoropleth),
				projection.WithGeoKey(geoFeatureKey),
				projection.WithDetail(derive.OverlayStrings(snap.ByRegion, func(r stats.RegionStat) metric.Float { return r.MedianSalary }, format.Currency)),
				projection.WithCounts(countStrings(snap.ByRegion, func(r stats.RegionStat) metric.Int { return r.N })))
		})
	if err != nil {
		return View{}, err
	}

	top := ranking.SelectTop(snap.ByAcademy, stats.AcademyStat.Insertion, settings.TopAcademies)
	display := ranking.AscendingDisplayOrder(top)

	bar, err := chart("chart_academies_bar", "Top académies par taux d'insertion",
		projection.Layout{XTitle: labelInsertionMean},
		func() (projection.SeriesSpec, error) {
			return projection.BuildSeries(display, pct(stats.AcademyStat.Insertion), academyLabel,
				projection.WithKind(projection.KindBar),
				projection.WithHorizontal(),
				projection.WithLegend("Insertion"),
				projection.WithAxisLabels(labelInsertionMean, ""),
				projection.WithCounts(countStrings(display, academyN)))
		})
	if err != nil {
		return View{}, err
	}

	combo, err := insertionSalaryCombo("chart_academies_scatter", "Académie", top, academyLabel,
		stats.AcademyStat.Insertion, academyMedianSalary, academyN,
		derive.Overlay(top, academyMedianSalary))
	if err != nil {
		return View{}, err
	}

	v := View{
		Charts: []projection.Chart{regionMap, bar, combo},
		Tables: []projection.TableSpec{academyTable("table_academies", top)},
		Notes:  unmatchedRegions(snap),
	}
	if g, ok := snap.Geo[stats.GeoRegions]; ok {
		v.Boundaries = map[string]source.GeoCollection{stats.GeoRegions: g}
	}
	return v, nil
}

func academyTable(id string, top []stats.AcademyStat) projection.TableSpec {
	t := projection.BuildTable(id, ranking.Positions(top), []projection.ColumnSpec[ranking.Ranked[stats.AcademyStat]]{
		rankColumn[stats.AcademyStat](),
		projection.Text("academie", "Académie", lift(academyLabel)),
		projection.Rate("taux_dinsertion_moy", "Insertion", lift(stats.AcademyStat.Insertion)),
		projection.Currency("salaire_median", "Salaire médian", lift(academyMedianSalary)),
		projection.Count("n", labelRespondents, lift(academyN)),
	})
	t.Title = "Classement des académies"
	return t
}

// unmatchedRegions reports regions the map cannot place because no boundary
// carries their name.
func unmatchedRegions(snap *Snapshot) []string {
	g, ok := snap.Geo[stats.GeoRegions]
	if !ok {
		return nil
	}
	known := g.PropertyValues("nom")
	var missing []string
	for _, r := range snap.ByRegion {
		if _, found := known[r.Region]; !found {
			missing = append(missing, r.Region)
		}
	}
	sort.Strings(missing)
	notes := make([]string, 0, len(missing))
	for _, name := range missing {
		notes = append(notes, fmt.Sprintf("Région sans contour géographique : %q", name))
	}
	if len(notes) == 0 {
		return nil
	}
	return notes
}
