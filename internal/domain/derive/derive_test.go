package derive_test

import (
	"testing"

	"github.com/okian/insertion/internal/domain/derive"
	"github.com/okian/insertion/internal/domain/format"
	"github.com/okian/insertion/internal/domain/metric"
	"github.com/okian/insertion/internal/domain/stats"
	. "github.com/smartystreets/goconvey/convey"
)

func year(y int64, rate float64) stats.YearStat {
	return stats.YearStat{Year: metric.IntOf(y), InsertionRate: metric.Of(rate)}
}

func TestPercentages(t *testing.T) {
	Convey("Given stored fractions", t, func() {
		records := []stats.YearStat{year(2021, 0.873), {InsertionRate: metric.None()}}

		Convey("When converting to percentages", func() {
			out := derive.Percentages(records, stats.YearStat.Insertion)

			Convey("Then values are scaled and absence kept", func() {
				So(out, ShouldHaveLength, 2)
				So(out[0].Value, ShouldAlmostEqual, 87.3, 1e-9)
				So(out[1].Valid, ShouldBeFalse)
			})
		})
	})
}

func TestYearOverYear(t *testing.T) {
	Convey("Given yearly statistics", t, func() {
		Convey("When the last two years are consecutive", func() {
			trend := derive.YearOverYear([]stats.YearStat{year(2022, 0.92), year(2021, 0.87), year(2020, 0.8)})

			Convey("Then the delta is in percentage points", func() {
				So(trend.Latest.Year.Value, ShouldEqual, int64(2022))
				So(trend.Previous.Year.Value, ShouldEqual, int64(2021))
				So(trend.DeltaPoints(stats.YearStat.Insertion).Value, ShouldAlmostEqual, 5.0, 1e-9)
				So(format.Points(trend.DeltaPoints(stats.YearStat.Insertion)), ShouldEqual, "+5.0 pts")
			})
		})

		Convey("When a year is missing in between", func() {
			trend := derive.YearOverYear([]stats.YearStat{year(2019, 0.85), year(2021, 0.87)})

			Convey("Then the two dated years are compared without filling the gap", func() {
				So(trend.Previous.Year.Value, ShouldEqual, int64(2019))
				So(trend.Latest.Year.Value, ShouldEqual, int64(2021))
				So(trend.DeltaPoints(stats.YearStat.Insertion).Value, ShouldAlmostEqual, 2.0, 1e-9)
			})
		})

		Convey("When undated entries are present", func() {
			trend := derive.YearOverYear([]stats.YearStat{year(2021, 0.87), {InsertionRate: metric.Of(0.99)}})

			Convey("Then they are ignored", func() {
				So(trend.Latest.Year.Value, ShouldEqual, int64(2021))
				So(trend.Previous, ShouldBeNil)
			})
		})

		Convey("When fewer than two years exist", func() {
			single := derive.YearOverYear([]stats.YearStat{year(2022, 0.92)})
			empty := derive.YearOverYear(nil)

			Convey("Then the delta is absent", func() {
				So(single.Delta(stats.YearStat.Insertion).Valid, ShouldBeFalse)
				So(empty.Delta(stats.YearStat.Insertion).Valid, ShouldBeFalse)
				So(empty.Latest, ShouldBeNil)
			})
		})

		Convey("When one of the two years lacks the metric", func() {
			trend := derive.YearOverYear([]stats.YearStat{year(2021, 0.87), {Year: metric.IntOf(2022)}})

			Convey("Then the delta is absent", func() {
				So(trend.DeltaPoints(stats.YearStat.Insertion).Valid, ShouldBeFalse)
			})
		})
	})
}

func TestChronological(t *testing.T) {
	Convey("Given years out of order", t, func() {
		in := []stats.YearStat{year(2022, 0.92), {}, year(2019, 0.85), year(2021, 0.87)}

		Convey("When ordering them", func() {
			out := derive.Chronological(in, func(y stats.YearStat) metric.Int { return y.Year })

			Convey("Then undated entries are dropped and the input is untouched", func() {
				So(out, ShouldHaveLength, 3)
				So(out[0].Year.Value, ShouldEqual, int64(2019))
				So(out[2].Year.Value, ShouldEqual, int64(2022))
				So(in[0].Year.Value, ShouldEqual, int64(2022))
			})
		})
	})
}

func TestOverlay(t *testing.T) {
	Convey("Given ranked domains with partial salaries", t, func() {
		top := []stats.DomainStat{
			{Domain: "Informatique", MeanSalary: metric.Of(3200), MedianSalary: metric.Of(3000)},
			{Domain: "Santé", MedianSalary: metric.Of(2500)},
			{Domain: "Lettres"},
		}
		mean := func(d stats.DomainStat) metric.Float { return d.MeanSalary }
		median := func(d stats.DomainStat) metric.Float { return d.MedianSalary }

		Convey("When overlaying mean salary with a median fallback", func() {
			out := derive.Overlay(top, mean, median)

			Convey("Then the overlay is aligned with the ranking", func() {
				So(out, ShouldHaveLength, len(top))
				So(out[0], ShouldResemble, metric.Of(3200))
				So(out[1], ShouldResemble, metric.Of(2500))
				So(out[2].Valid, ShouldBeFalse)
			})
		})

		Convey("When overlaying without a fallback", func() {
			out := derive.Overlay(top, mean)

			Convey("Then missing values stay absent", func() {
				So(out[1].Valid, ShouldBeFalse)
			})
		})

		Convey("When formatting an overlay", func() {
			out := derive.OverlayStrings(top, stats.DomainStat.Salary, format.Currency)

			Convey("Then absent values show the placeholder", func() {
				So(out, ShouldResemble, []string{"3 200 EUR", "2 500 EUR", "n/d"})
				So(derive.Labels(top, func(d stats.DomainStat) string { return d.Domain }), ShouldResemble, []string{"Informatique", "Santé", "Lettres"})
			})
		})
	})
}
