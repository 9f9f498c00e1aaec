package mongodb_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/okian/lovecalc/internal/adapters/mongodb"
	. "github.com/smartystreets/goconvey/convey"
)

// offlineClient builds a client without contacting any server.
func offlineClient(ctx context.Context) (*mongo.Client, error) {
	return mongo.Connect(ctx, options.Client().ApplyURI("mongodb://127.0.0.1:1"))
}

func TestConnector_MissingURI(t *testing.T) {
	Convey("Given a connector without a connection string", t, func() {
		var dials atomic.Int32
		c := mongodb.NewConnector(mongodb.WithDialer(func(ctx context.Context, uri string, _ time.Duration) (*mongo.Client, error) {
			dials.Add(1)
			return offlineClient(ctx)
		}))

		Convey("When the collection is requested", func() {
			_, err := c.Collection(context.Background())

			Convey("Then the configuration error surfaces on use, without dialling", func() {
				So(errors.Is(err, mongodb.ErrMissingURI), ShouldBeTrue)
				So(dials.Load(), ShouldEqual, 0)
				So(c.Connected(), ShouldBeFalse)
			})

			Convey("And it keeps failing until configuration is fixed", func() {
				_, err := c.Collection(context.Background())
				So(errors.Is(err, mongodb.ErrMissingURI), ShouldBeTrue)
			})
		})
	})
}

func TestConnector_LazyAndShared(t *testing.T) {
	Convey("Given a connector with a slow dialer", t, func() {
		var dials atomic.Int32
		release := make(chan struct{})
		c := mongodb.NewConnector(
			mongodb.WithURI("mongodb://example.invalid"),
			mongodb.WithDatabase("testdb"),
			mongodb.WithCollection("testcoll"),
			mongodb.WithDialer(func(ctx context.Context, uri string, _ time.Duration) (*mongo.Client, error) {
				dials.Add(1)
				<-release
				return offlineClient(ctx)
			}),
		)
		defer func() { _ = c.Close(context.Background()) }()

		Convey("When nothing has used it yet", func() {
			Convey("Then no connection has been established", func() {
				So(c.Connected(), ShouldBeFalse)
				So(dials.Load(), ShouldEqual, 0)
			})
		})

		Convey("When several requests arrive before the connection exists", func() {
			const callers = 8
			var wg sync.WaitGroup
			colls := make([]*mongo.Collection, callers)
			errs := make([]error, callers)
			for i := 0; i < callers; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					colls[i], errs[i] = c.Collection(context.Background())
				}(i)
			}
			time.Sleep(30 * time.Millisecond)
			close(release)
			wg.Wait()

			Convey("Then exactly one establishment occurs and every caller gets the collection", func() {
				So(dials.Load(), ShouldEqual, 1)
				for i := 0; i < callers; i++ {
					So(errs[i], ShouldBeNil)
					So(colls[i].Name(), ShouldEqual, "testcoll")
					So(colls[i].Database().Name(), ShouldEqual, "testdb")
				}
				So(c.Connected(), ShouldBeTrue)
			})

			Convey("And Close drops the cached client", func() {
				So(c.Close(context.Background()), ShouldBeNil)
				So(c.Connected(), ShouldBeFalse)
			})
		})
	})
}

func TestConnector_ResetOnFailure(t *testing.T) {
	Convey("Given a dialer that fails once", t, func() {
		var dials atomic.Int32
		boom := errors.New("server selection timeout")
		c := mongodb.NewConnector(
			mongodb.WithURI("mongodb://example.invalid"),
			mongodb.WithDialer(func(ctx context.Context, uri string, _ time.Duration) (*mongo.Client, error) {
				if dials.Add(1) == 1 {
					return nil, boom
				}
				return offlineClient(ctx)
			}),
		)
		defer func() { _ = c.Close(context.Background()) }()

		Convey("When the first use fails", func() {
			_, err := c.Client(context.Background())
			So(err, ShouldEqual, boom)
			So(c.Connected(), ShouldBeFalse)

			Convey("Then the next use retries from scratch", func() {
				client, err := c.Client(context.Background())
				So(err, ShouldBeNil)
				So(client, ShouldNotBeNil)
				So(dials.Load(), ShouldEqual, 2)
			})
		})
	})
}

func TestDial_Unreachable(t *testing.T) {
	Convey("Given a server that is not listening", t, func() {
		ctx := context.Background()

		Convey("When dialling with a short timeout", func() {
			client, err := mongodb.Dial(ctx, "mongodb://127.0.0.1:1/?directConnection=true", 200*time.Millisecond)

			Convey("Then the ping fails the establishment", func() {
				So(client, ShouldBeNil)
				So(errors.Is(err, mongodb.ErrConnect), ShouldBeTrue)
			})
		})

		Convey("When the connection string is malformed", func() {
			_, err := mongodb.Dial(ctx, "not-a-uri", 200*time.Millisecond)

			Convey("Then the error is a connect error", func() {
				So(errors.Is(err, mongodb.ErrConnect), ShouldBeTrue)
			})
		})
	})
}

func TestConnector_Close(t *testing.T) {
	Convey("Given a connector that never connected", t, func() {
		c := mongodb.NewConnector(mongodb.WithURI("mongodb://example.invalid"))

		Convey("Then Close is a no-op", func() {
			So(c.Close(context.Background()), ShouldBeNil)
		})
	})
}
