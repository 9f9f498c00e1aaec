package logger

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/zap/zapcore"
)

func TestLoggerInit(t *testing.T) {
	Convey("Given the logger package", t, func() {
		So(Init(), ShouldBeNil)
		defer func() { _ = Sync() }()

		Convey("Then Get returns the global logger", func() {
			So(Get(), ShouldNotBeNil)
		})

		Convey("And logging with fields does not panic", func() {
			ctx := context.Background()
			So(func() {
				Get().Info(ctx, "test message", String("k", "v"), Int("n", 1), Bool("b", true))
				Get().Debug(ctx, "debug message", Float64("f", 1.5))
				Get().Warn(ctx, "warn message", Any("a", []int{1}))
				Get().Error(ctx, "error message", Error(errors.New("boom")))
			}, ShouldNotPanic)
		})

		Convey("And named loggers are derived from the global one", func() {
			named := Named("test")
			So(named, ShouldNotBeNil)
			So(func() { named.Info(context.Background(), "named message") }, ShouldNotPanic)
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given the global level", t, func() {
		defer SetLevel(zapcore.InfoLevel)

		Convey("When setting known levels", func() {
			So(SetLevelString("debug"), ShouldBeNil)
			So(Level(), ShouldEqual, zapcore.DebugLevel)
			So(SetLevelString(" WARNING "), ShouldBeNil)
			So(Level(), ShouldEqual, zapcore.WarnLevel)
			So(SetLevelString("error"), ShouldBeNil)
			So(Level(), ShouldEqual, zapcore.ErrorLevel)
			So(SetLevelString(""), ShouldBeNil)
			So(Level(), ShouldEqual, zapcore.InfoLevel)
		})

		Convey("When setting an unknown level", func() {
			err := SetLevelString("verbose")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "unknown log level")
		})
	})
}

func TestRequestID(t *testing.T) {
	Convey("Given a context carrying a request id", t, func() {
		ctx := WithRequestID(context.Background(), "req-1")

		Convey("Then it can be read back", func() {
			So(RequestID(ctx), ShouldEqual, "req-1")
			So(RequestID(context.Background()), ShouldEqual, "")
		})

		Convey("And the nop logger accepts it", func() {
			So(func() { Nop().Info(ctx, "ignored") }, ShouldNotPanic)
		})
	})
}
