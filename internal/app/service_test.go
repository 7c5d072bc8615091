package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	service "github.com/okian/insertion/internal/app"
	"github.com/okian/insertion/internal/adapters/source"
	"github.com/okian/insertion/internal/adapters/source/sourcetest"
	"github.com/okian/insertion/internal/views"
	"github.com/okian/insertion/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

func TestService_New(t *testing.T) {
	Convey("Given a new service with default options", t, func() {
		svc := service.New()

		Convey("Then it should have sensible defaults", func() {
			So(svc, ShouldNotBeNil)
			So(svc.ViewNames(), ShouldResemble, []string{"index", "domaines", "academies", "genre", "equite", "conclusion"})
			So(svc.GetStats()["fetchLimit"], ShouldEqual, 4)
		})
	})

	Convey("Given a new service with custom options", t, func() {
		svc := service.New(
			service.WithSource(sourcetest.Complete()),
			service.WithSettings(views.Settings{TopDomains: 2, TopAcademies: 2, TopConclusion: 1}),
			service.WithFetchLimit(1),
			service.WithLogger(logger.Nop()),
		)

		Convey("Then it should be created successfully", func() {
			So(svc, ShouldNotBeNil)
			So(svc.GetStats()["fetchLimit"], ShouldEqual, 1)
		})
	})
}

func TestService_Start(t *testing.T) {
	Convey("Given a service without a source", t, func() {
		svc := service.New(service.WithLogger(logger.Nop()))

		Convey("When starting the service", func() {
			err := svc.Start(context.Background())

			Convey("Then it should refuse to start", func() {
				So(errors.Is(err, source.ErrNoSource), ShouldBeTrue)
				So(svc.GetStats()["started"], ShouldEqual, false)
			})
		})
	})

	Convey("Given a service with a source", t, func() {
		svc := service.New(service.WithSource(sourcetest.Complete()))
		defer svc.Stop()

		Convey("When starting the service twice", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			So(svc.Start(ctx), ShouldBeNil)
			So(svc.Start(ctx), ShouldBeNil)

			Convey("Then it should be marked as started", func() {
				So(svc.GetStats()["started"], ShouldEqual, true)
			})
		})
	})
}

func TestService_Stop(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := service.New(service.WithSource(sourcetest.Complete()), service.WithLogger(logger.Nop()))
		So(svc.Start(context.Background()), ShouldBeNil)

		Convey("When stopping the service", func() {
			svc.Stop()

			Convey("Then it should be marked as stopped", func() {
				So(svc.GetStats()["started"], ShouldEqual, false)
			})

			Convey("And building views should fail", func() {
				_, err := svc.BuildView(context.Background(), views.ViewIndex)
				So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
			})

			Convey("And stopping again should be a no-op", func() {
				So(func() { svc.Stop() }, ShouldNotPanic)
			})
		})
	})
}

func TestService_BuildView(t *testing.T) {
	Convey("Given a started service over complete datasets", t, func() {
		src := sourcetest.Complete()
		svc := service.New(service.WithSource(src), service.WithLogger(logger.Nop()))
		So(svc.Start(context.Background()), ShouldBeNil)
		defer svc.Stop()
		ctx := context.Background()

		Convey("When building every registered view", func() {
			for _, name := range svc.ViewNames() {
				v, err := svc.BuildView(ctx, name)

				So(err, ShouldBeNil)
				So(v.Name, ShouldEqual, name)
				So(v.Title, ShouldNotBeEmpty)
			}

			Convey("Then the build counters should reflect it", func() {
				stats := svc.GetStats()
				So(stats["builds"], ShouldEqual, int64(6))
				So(stats["failedBuilds"], ShouldEqual, int64(0))
			})
		})

		Convey("When building the same view twice", func() {
			_, err := svc.BuildView(ctx, views.ViewIndex)
			So(err, ShouldBeNil)
			_, err = svc.BuildView(ctx, views.ViewIndex)
			So(err, ShouldBeNil)

			Convey("Then the source should be read each time", func() {
				So(src.Calls("by_year"), ShouldEqual, 2)
			})
		})

		Convey("When building an unknown view", func() {
			_, err := svc.BuildView(ctx, "nope")

			Convey("Then it should report the unknown view", func() {
				So(errors.Is(err, views.ErrUnknownView), ShouldBeTrue)
				So(svc.GetStats()["failedBuilds"], ShouldEqual, int64(1))
			})
		})

		Convey("When requesting a table", func() {
			table, err := svc.Table(ctx, views.ViewDomains, "table_domaines")

			Convey("Then it should return the table rows", func() {
				So(err, ShouldBeNil)
				So(table.Rows, ShouldNotBeEmpty)
			})
		})

		Convey("When requesting a missing table", func() {
			_, err := svc.Table(ctx, views.ViewDomains, "table_nope")

			Convey("Then it should report the unknown table", func() {
				So(errors.Is(err, service.ErrUnknownTable), ShouldBeTrue)
			})
		})
	})

	Convey("Given a started service whose source fails", t, func() {
		src := sourcetest.Complete().WithFailure("by_region", errors.New("connection refused"))
		svc := service.New(service.WithSource(src), service.WithLogger(logger.Nop()))
		So(svc.Start(context.Background()), ShouldBeNil)
		defer svc.Stop()

		Convey("When building a view that needs the failing dataset", func() {
			v, err := svc.BuildView(context.Background(), views.ViewAcademies)

			Convey("Then the whole view should fail with a transport error", func() {
				So(errors.Is(err, source.ErrTransport), ShouldBeTrue)
				So(v.Charts, ShouldBeEmpty)
			})
		})

		Convey("When building a view that does not need it", func() {
			_, err := svc.BuildView(context.Background(), views.ViewDomains)

			Convey("Then it should succeed", func() {
				So(err, ShouldBeNil)
			})
		})
	})
}
