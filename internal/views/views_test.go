package views_test

import (
	"context"
	"errors"
	"testing"

	"github.com/okian/insertion/internal/adapters/source"
	"github.com/okian/insertion/internal/adapters/source/sourcetest"
	"github.com/okian/insertion/internal/domain/metric"
	"github.com/okian/insertion/internal/domain/stats"
	"github.com/okian/insertion/internal/narrative"
	"github.com/okian/insertion/internal/projection"
	"github.com/okian/insertion/internal/views"
	. "github.com/smartystreets/goconvey/convey"
)

func build(src source.Source, name string) (views.View, error) {
	return views.Default().Build(context.Background(), src, name, views.DefaultSettings(), 4)
}

func chartByID(v views.View, id string) projection.Chart {
	for _, c := range v.Charts {
		if c.ID == id {
			return c
		}
	}
	return projection.Chart{}
}

func TestRegistry(t *testing.T) {
	Convey("Given the default registry", t, func() {
		r := views.Default()

		Convey("Then every dashboard page should be registered in order", func() {
			So(r.Names(), ShouldResemble, []string{"index", "domaines", "academies", "genre", "equite", "conclusion"})
		})

		Convey("When looking up an unknown view", func() {
			_, ok := r.Lookup("nope")
			_, err := r.Build(context.Background(), sourcetest.Complete(), "nope", views.DefaultSettings(), 0)

			Convey("Then it should not be found", func() {
				So(ok, ShouldBeFalse)
				So(errors.Is(err, views.ErrUnknownView), ShouldBeTrue)
			})
		})

		Convey("When a builder is registered twice", func() {
			b := views.Builder{Name: "x", Build: func(*views.Snapshot, views.Settings) (views.View, error) { return views.View{}, nil }}
			r := views.NewRegistry(b, views.Builder{Name: "y", Build: b.Build}, b)

			Convey("Then its first position should be kept", func() {
				So(r.Names(), ShouldResemble, []string{"x", "y"})
			})
		})
	})
}

func TestIndexView(t *testing.T) {
	Convey("Given complete yearly datasets", t, func() {
		v, err := build(sourcetest.Complete(), views.ViewIndex)
		So(err, ShouldBeNil)

		Convey("Then the rate lines should follow the years in order", func() {
			rates := chartByID(v, "chart_by_year_rates")
			So(rates.Series, ShouldHaveLength, 2)
			So(rates.Series[0].X, ShouldResemble, []any{metric.IntOf(2019), metric.IntOf(2021), metric.IntOf(2022)})
			So(rates.Series[0].Counts, ShouldResemble, []string{"1 000", "1 100", "1 200"})
		})

		Convey("And the yearly table should be formatted", func() {
			table, ok := v.Table("table_by_year")
			So(ok, ShouldBeTrue)
			So(table.Rows[2], ShouldResemble, []string{"2022", "92.0%", "93.0%", "2 100 EUR", "1 200"})
		})

		Convey("And the trend insights should compare the last two years", func() {
			So(v.Insights[narrative.InsightTrend], ShouldContainSubstring, "Entre 2021 et 2022")
			So(v.Insights[narrative.InsightTrend], ShouldContainSubstring, "+5.0 pts")
		})
	})

	Convey("Given an empty yearly dataset", t, func() {
		v, err := build(sourcetest.New().WithDataset(stats.DatasetByYear, `[]`), views.ViewIndex)

		Convey("Then the view should build with neutral insights", func() {
			So(err, ShouldBeNil)
			So(chartByID(v, "chart_by_year_rates").Series[0].Len(), ShouldEqual, 0)
			So(v.Insights.CountNeutral(), ShouldEqual, len(v.Insights))
		})
	})
}

func TestDomainsView(t *testing.T) {
	Convey("Given domain statistics", t, func() {
		v, err := build(sourcetest.Complete(), views.ViewDomains)
		So(err, ShouldBeNil)

		Convey("Then the bar chart should draw the best domain at the top", func() {
			bar := chartByID(v, "chart_domaines_bar").Series[0]
			So(bar.Orientation, ShouldEqual, projection.OrientationHorizontal)
			So(bar.Y, ShouldResemble, []any{"Lettres", "Droit", "Informatique", "Santé"})
			So(bar.Detail, ShouldResemble, []string{"1 800 EUR", "2 500 EUR", "3 200 EUR", "2 900 EUR"})
		})

		Convey("And the combo chart should overlay salaries in ranking order", func() {
			combo := chartByID(v, "chart_domaines_scatter")
			So(combo.Series, ShouldHaveLength, 2)
			So(combo.Series[0].X, ShouldResemble, []any{"Santé", "Informatique", "Droit", "Lettres"})
			So(combo.Series[0].Color, ShouldResemble, []metric.Float{metric.Of(2900), metric.Of(3200), metric.Of(2500), metric.Of(1800)})
			So(combo.Series[1].Axis, ShouldEqual, projection.AxisSecondary)
		})

		Convey("And the table should rank domains with absent rates last", func() {
			table, _ := v.Table("table_domaines")
			So(table.Rows, ShouldHaveLength, 4)
			So(table.Rows[1], ShouldResemble, []string{"2", "Informatique", "92.0%", "3 200 EUR", "3 000 EUR", "150"})
			So(table.Rows[3][1], ShouldEqual, "Lettres")
			So(table.Rows[3][2], ShouldEqual, "n/d")
		})
	})

	Convey("Given a smaller ranking size", t, func() {
		settings := views.DefaultSettings()
		settings.TopDomains = 2
		v, err := views.Default().Build(context.Background(), sourcetest.Complete(), views.ViewDomains, settings, 0)

		Convey("Then only the top domains should be kept", func() {
			So(err, ShouldBeNil)
			table, _ := v.Table("table_domaines")
			So(table.Rows, ShouldHaveLength, 2)
		})
	})
}

func TestAcademiesView(t *testing.T) {
	Convey("Given academy and region statistics with boundaries", t, func() {
		v, err := build(sourcetest.Complete(), views.ViewAcademies)
		So(err, ShouldBeNil)

		Convey("Then the region map should reference the boundaries", func() {
			m := chartByID(v, "map_regions")
			So(m.Layout.Geo, ShouldEqual, stats.GeoRegions)
			So(m.Series[0].Kind, ShouldEqual, projection.KindChoropleth)
			So(m.Series[0].GeoKey, ShouldEqual, "properties.nom")
			So(v.Boundaries, ShouldContainKey, stats.GeoRegions)
		})

		Convey("And regions without a boundary should be noted", func() {
			So(v.Notes, ShouldHaveLength, 1)
			So(v.Notes[0], ShouldContainSubstring, "Atlantide")
		})

		Convey("And the academy table should be ranked", func() {
			table, _ := v.Table("table_academies")
			So(table.Rows[0], ShouldResemble, []string{"1", "Paris", "90.0%", "2 400 EUR", "300"})
			So(table.Rows[2], ShouldResemble, []string{"3", "Lille", "84.0%", "n/d", "200"})
		})
	})

	Convey("Given a missing boundary file", t, func() {
		src := sourcetest.New().
			WithDataset(stats.DatasetByAcademy, sourcetest.ByAcademy).
			WithDataset(stats.DatasetByRegion, sourcetest.ByRegion)
		_, err := build(src, views.ViewAcademies)

		Convey("Then the whole view should fail", func() {
			So(errors.Is(err, source.ErrTransport), ShouldBeTrue)
		})
	})
}

func TestGenderAndEquityViews(t *testing.T) {
	Convey("Given gender statistics", t, func() {
		v, err := build(sourcetest.Complete(), views.ViewGender)
		So(err, ShouldBeNil)

		Convey("Then the scatter should carry salary color and respondent size", func() {
			s := chartByID(v, "chart_genre_scatter").Series[0]
			So(s.Kind, ShouldEqual, projection.KindScatter)
			So(s.Detail, ShouldResemble, []string{"Informatique", "Lettres"})
			So(s.Color, ShouldResemble, []metric.Float{metric.Of(3200), metric.Of(1800)})
			So(s.Size, ShouldResemble, []metric.Float{metric.Of(150), metric.Of(40)})
		})

		Convey("And the table should start with the most female domain", func() {
			table, _ := v.Table("table_genre")
			So(table.Rows[0][0], ShouldEqual, "Lettres")
			So(table.Rows[0][1], ShouldEqual, "75.0%")
		})

		Convey("And the insights should name both extremes", func() {
			So(v.Insights[narrative.InsightMostFemale], ShouldContainSubstring, "Lettres")
			So(v.Insights[narrative.InsightLeastFemale], ShouldContainSubstring, "Informatique")
		})
	})

	Convey("Given equity statistics", t, func() {
		v, err := build(sourcetest.Complete(), views.ViewEquity)
		So(err, ShouldBeNil)

		Convey("Then the table should rank by scholarship share", func() {
			table, _ := v.Table("table_equite")
			So(table.Rows[0], ShouldResemble, []string{"1", "Lettres", "45.0%", "78.0%", "n/d", "40"})
		})

		Convey("And the insights should describe the top domain", func() {
			So(v.Insights[narrative.InsightTopScholarship], ShouldContainSubstring, "Lettres")
			So(v.Insights[narrative.InsightScholarshipInsertion], ShouldContainSubstring, "40 répondants")
		})
	})
}

func TestConclusionView(t *testing.T) {
	Convey("Given every dataset", t, func() {
		v, err := build(sourcetest.Complete(), views.ViewConclusion)
		So(err, ShouldBeNil)

		Convey("Then the key figures should summarize the latest year", func() {
			figures, ok := v.Table("table_key_figures")
			So(ok, ShouldBeTrue)
			values := make([]string, len(figures.Rows))
			for i, row := range figures.Rows {
				values[i] = row[1]
			}
			So(values, ShouldResemble, []string{"2022", "92.0%", "+5.0 pts", "2 100 EUR", "+100 EUR", "1 200"})
		})

		Convey("And every summary insight should be filled", func() {
			So(v.Insights.CountNeutral(), ShouldEqual, 0)
			So(v.Insights[narrative.InsightTopDomain], ShouldEqual,
				"Le domaine « Santé » affiche le meilleur taux d'insertion (95.0%), pour un salaire net de 2 900 EUR par mois (60 répondants).")
		})
	})

	Convey("Given empty datasets", t, func() {
		src := sourcetest.New().
			WithDataset(stats.DatasetByDomain, `[]`).
			WithDataset(stats.DatasetByAcademy, `[]`).
			WithDataset(stats.DatasetByYear, `[]`)
		v, err := build(src, views.ViewConclusion)

		Convey("Then every insight should be neutral and every figure a placeholder", func() {
			So(err, ShouldBeNil)
			So(v.Insights.CountNeutral(), ShouldEqual, len(narrative.SummaryIDs()))
			figures, _ := v.Table("table_key_figures")
			for _, row := range figures.Rows {
				So(row[1], ShouldEqual, "n/d")
			}
		})
	})
}

func TestRetrieve(t *testing.T) {
	Convey("Given a source with every dataset", t, func() {
		src := sourcetest.Complete()
		ctx := context.Background()

		Convey("When a dataset is requested twice", func() {
			snap, err := views.Retrieve(ctx, src, []string{stats.DatasetByYear, stats.DatasetByYear}, nil, 1)

			Convey("Then it should be fetched once", func() {
				So(err, ShouldBeNil)
				So(snap.ByYear, ShouldHaveLength, 3)
				So(src.Calls(stats.DatasetByYear), ShouldEqual, 1)
				So(snap.Geo, ShouldBeNil)
			})
		})

		Convey("When an unknown dataset is requested", func() {
			_, err := views.Retrieve(ctx, src, []string{"by_planet"}, nil, 0)

			Convey("Then nothing should be fetched", func() {
				So(errors.Is(err, views.ErrUnknownDataset), ShouldBeTrue)
				So(src.Calls("by_planet"), ShouldEqual, 0)
			})
		})

		Convey("When one of several datasets fails", func() {
			src.WithFailure(stats.DatasetByRegion, errors.New("connection reset"))
			snap, err := views.Retrieve(ctx, src, []string{stats.DatasetByAcademy, stats.DatasetByRegion}, []string{stats.GeoRegions}, 0)

			Convey("Then no partial snapshot should be returned", func() {
				So(snap, ShouldBeNil)
				So(errors.Is(err, source.ErrTransport), ShouldBeTrue)
			})
		})

		Convey("When a payload is not a JSON array", func() {
			bad := sourcetest.New().WithDataset(stats.DatasetByYear, `{"annee": 2022}`)
			_, err := views.Retrieve(ctx, bad, []string{stats.DatasetByYear}, nil, 0)

			Convey("Then it should fail as a transport error", func() {
				So(errors.Is(err, source.ErrTransport), ShouldBeTrue)
			})
		})

		Convey("When the context is already cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			_, err := views.Retrieve(cctx, src, []string{stats.DatasetByYear}, nil, 0)

			Convey("Then retrieval should fail", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
