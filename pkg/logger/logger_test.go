package logger_test

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/fieldside/clubmetrics/pkg/logger"
)

func TestLogger(t *testing.T) {
	Convey("Given an initialized global logger", t, func() {
		So(logger.Init(), ShouldBeNil)
		ctx := context.Background()

		Convey("When getting the global logger", func() {
			log := logger.Get()
			So(log, ShouldNotBeNil)

			Convey("Then logging with fields does not panic", func() {
				So(func() {
					log.Info(ctx, "test message",
						logger.String("key", "value"),
						logger.Int("count", 3),
						logger.Uint64("version", 9),
						logger.Float64("score", 56.5),
						logger.Any("payload", map[string]int{"a": 1}),
						logger.Error(errors.New("boom")),
					)
				}, ShouldNotPanic)
			})
		})

		Convey("When deriving a named logger", func() {
			named := logger.Named("worker")
			So(named, ShouldNotBeNil)
			So(func() { named.Debug(ctx, "named message") }, ShouldNotPanic)
		})

		Convey("When setting levels by string", func() {
			So(logger.SetLevelString("debug"), ShouldBeNil)
			So(logger.SetLevelString("WARN"), ShouldBeNil)
			So(logger.SetLevelString(""), ShouldBeNil)
			So(logger.SetLevelString("chatty"), ShouldNotBeNil)
		})

		Convey("When syncing", func() {
			So(logger.Sync(), ShouldBeNil)
		})
	})
}

func TestFieldConstructors(t *testing.T) {
	Convey("Given the field constructors", t, func() {
		Convey("Then each carries its key and value", func() {
			So(logger.String("k", "v").Key, ShouldEqual, "k")
			So(logger.String("k", "v").Value, ShouldEqual, "v")
			So(logger.Int("n", 7).Value, ShouldEqual, 7)
			So(logger.Error(errors.New("x")).Key, ShouldEqual, "error")
		})
	})
}
