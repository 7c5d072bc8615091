package format_test

import (
	"testing"

	"github.com/okian/insertion/internal/domain/format"
	"github.com/okian/insertion/internal/domain/metric"
	"github.com/smartystreets/goconvey/convey"
)

func TestFormat(t *testing.T) {
	convey.Convey("Given display formatters", t, func() {
		convey.Convey("When formatting rates", func() {
			convey.So(format.Rate(metric.Of(0.92)), convey.ShouldEqual, "92.0%")
			convey.So(format.Rate(metric.Of(0.8734)), convey.ShouldEqual, "87.3%")
			convey.So(format.Percent(metric.Of(87.35), 2), convey.ShouldEqual, "87.35%")
			convey.So(format.Percent(metric.Of(87.35), -1), convey.ShouldEqual, "87%")
			convey.So(format.PercentDefault(metric.Of(0)), convey.ShouldEqual, "0.0%")
		})

		convey.Convey("When formatting salaries and counts", func() {
			convey.So(format.Currency(metric.Of(3200)), convey.ShouldEqual, "3 200 EUR")
			convey.So(format.Currency(metric.Of(1849.6)), convey.ShouldEqual, "1 850 EUR")
			convey.So(format.Currency(metric.Of(950)), convey.ShouldEqual, "950 EUR")
			convey.So(format.Count(metric.IntOf(150)), convey.ShouldEqual, "150")
			convey.So(format.Count(metric.IntOf(1234567)), convey.ShouldEqual, "1 234 567")
		})

		convey.Convey("When formatting differences", func() {
			convey.So(format.Points(metric.Of(5)), convey.ShouldEqual, "+5.0 pts")
			convey.So(format.Points(metric.Of(-2.25)), convey.ShouldEqual, "-2.2 pts")
			convey.So(format.Points(metric.Of(0)), convey.ShouldEqual, "+0.0 pts")
			convey.So(format.SignedCurrency(metric.Of(100)), convey.ShouldEqual, "+100 EUR")
			convey.So(format.SignedCurrency(metric.Of(-1500)), convey.ShouldEqual, "-1 500 EUR")
		})

		convey.Convey("When formatting years", func() {
			convey.So(format.Year(metric.IntOf(2022)), convey.ShouldEqual, "2022")
		})

		convey.Convey("When a value is absent", func() {
			convey.Convey("Then every formatter should return the placeholder", func() {
				convey.So(format.Rate(metric.None()), convey.ShouldEqual, format.Placeholder)
				convey.So(format.Percent(metric.None(), 1), convey.ShouldEqual, format.Placeholder)
				convey.So(format.Currency(metric.None()), convey.ShouldEqual, format.Placeholder)
				convey.So(format.Count(metric.Int{}), convey.ShouldEqual, format.Placeholder)
				convey.So(format.Points(metric.None()), convey.ShouldEqual, format.Placeholder)
				convey.So(format.SignedCurrency(metric.None()), convey.ShouldEqual, format.Placeholder)
				convey.So(format.Year(metric.Int{}), convey.ShouldEqual, format.Placeholder)
			})
		})
	})
}
