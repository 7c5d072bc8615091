package ranking_test

import (
	"testing"

	"github.com/okian/insertion/internal/domain/metric"
	"github.com/okian/insertion/internal/domain/ranking"
	. "github.com/smartystreets/goconvey/convey"
)

type item struct {
	name string
	rate metric.Float
}

func rateOf(i item) metric.Float { return i.rate }

func names(items []item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.name
	}
	return out
}

func TestSelectTop(t *testing.T) {
	Convey("Given records with ties and absent keys", t, func() {
		records := []item{
			{"a", metric.Of(0.80)},
			{"b", metric.None()},
			{"c", metric.Of(0.92)},
			{"d", metric.Of(0.80)},
			{"e", metric.None()},
			{"f", metric.Of(0.85)},
		}
		original := append([]item(nil), records...)

		Convey("When selecting more than available", func() {
			top := ranking.SelectTop(records, rateOf, 10)

			Convey("Then all records come back descending, ties stable, absent last", func() {
				So(names(top), ShouldResemble, []string{"c", "f", "a", "d", "b", "e"})
			})

			Convey("And the input should not be modified", func() {
				So(records, ShouldResemble, original)
			})
		})

		Convey("When selecting fewer than available", func() {
			top := ranking.SelectTop(records, rateOf, 3)

			Convey("Then exactly n records are returned", func() {
				So(names(top), ShouldResemble, []string{"c", "f", "a"})
			})

			Convey("And appending to the result should not touch the input", func() {
				_ = append(top, item{name: "z"})
				So(records, ShouldResemble, original)
			})
		})

		Convey("When n is zero or negative", func() {
			Convey("Then the result is empty", func() {
				So(ranking.SelectTop(records, rateOf, 0), ShouldBeEmpty)
				So(ranking.SelectTop(records, rateOf, -3), ShouldBeEmpty)
				So(ranking.SelectTop(records, rateOf, 0), ShouldNotBeNil)
			})
		})

		Convey("When the input is empty", func() {
			Convey("Then the result is empty", func() {
				So(ranking.SelectTop([]item{}, rateOf, 5), ShouldBeEmpty)
				So(ranking.SelectTop[item](nil, rateOf, 5), ShouldBeEmpty)
			})
		})

		Convey("When every key is absent", func() {
			top := ranking.SelectTop([]item{{"x", metric.None()}, {"y", metric.None()}}, rateOf, 2)

			Convey("Then input order is kept", func() {
				So(names(top), ShouldResemble, []string{"x", "y"})
			})
		})
	})
}

func TestAscendingDisplayOrder(t *testing.T) {
	Convey("Given a ranking", t, func() {
		top := []item{{"c", metric.Of(0.92)}, {"f", metric.Of(0.85)}, {"a", metric.Of(0.8)}}

		Convey("When reversing it for a horizontal bar chart", func() {
			display := ranking.AscendingDisplayOrder(top)

			Convey("Then the order is reversed on a copy", func() {
				So(names(display), ShouldResemble, []string{"a", "f", "c"})
				So(names(top), ShouldResemble, []string{"c", "f", "a"})
			})
		})

		Convey("When the ranking is empty", func() {
			So(ranking.AscendingDisplayOrder([]item(nil)), ShouldNotBeNil)
		})
	})
}

func TestPositions(t *testing.T) {
	Convey("Given a ranking", t, func() {
		ranked := ranking.Positions([]item{{"c", metric.Of(0.92)}, {"f", metric.Of(0.85)}})

		Convey("Then positions start at one", func() {
			So(ranked, ShouldHaveLength, 2)
			So(ranked[0].Rank, ShouldEqual, 1)
			So(ranked[0].Record.name, ShouldEqual, "c")
			So(ranked[1].Rank, ShouldEqual, 2)
		})
	})
}
