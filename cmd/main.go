package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/okian/lovecalc/internal/adapters/http/api"
	"github.com/okian/lovecalc/internal/adapters/http/swagger"
	"github.com/okian/lovecalc/internal/adapters/mongodb"
	"github.com/okian/lovecalc/internal/adapters/repository"
	app "github.com/okian/lovecalc/internal/app"
	"github.com/okian/lovecalc/internal/config"
	"github.com/okian/lovecalc/pkg/logger"
	"github.com/okian/lovecalc/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout           = 10 * time.Second
	writeTimeout          = 15 * time.Second
	idleTimeout           = 60 * time.Second
	readHeaderTimeout     = 5 * time.Second
	shutdownTimeout       = 30 * time.Second
	systemMetricsInterval = 10 * time.Second
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		// Use fmt for initialization errors since logger isn't available yet
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	loggerInstance := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (.env -> defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		loggerInstance.Error(ctx, "failed to load config", logger.Error(err))
		os.Exit(1)
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	if cfg.MongoURI == "" {
		loggerInstance.Warn(ctx, "MONGODB_URI is not set; submissions will fail until it is configured")
	}

	handler, conn := newHandler(ctx, cfg, loggerInstance)
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := conn.Close(closeCtx); err != nil {
			loggerInstance.Error(ctx, "database disconnect failed", logger.Error(err))
		}
	}()

	// Start system metrics updater
	go startSystemMetricsUpdater(ctx)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	// Start the HTTP server
	go func() {
		loggerInstance.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			loggerInstance.Error(ctx, "HTTP server failed", logger.Error(err))
			stop()
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	loggerInstance.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		loggerInstance.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	loggerInstance.Info(ctx, "server stopped")
}

// newHandler wires storage, the service and every route. The returned
// connector has not dialled yet; the first submission does that.
func newHandler(ctx context.Context, cfg *config.Config, l logger.Logger) (http.Handler, *mongodb.Connector) {
	conn := mongodb.NewConnector(
		mongodb.WithURI(cfg.MongoURI),
		mongodb.WithDatabase(cfg.Database),
		mongodb.WithCollection(cfg.Collection),
		mongodb.WithTimeout(cfg.ConnectTimeout()),
		mongodb.WithLogger(l.Named("mongodb")),
	)
	store := repository.NewMongoStore(conn,
		repository.WithWriteTimeout(cfg.WriteTimeout()),
		repository.WithLogger(l.Named("repository")),
	)
	svc := app.New(
		app.WithStore(store),
		app.WithLogger(l.Named("service")),
		app.WithVerifyScore(cfg.VerifyScore),
		app.WithConnectionState(conn.Connected),
	)

	r := mux.NewRouter()
	swagger.Register(ctx, r)
	api.NewServer(svc, api.WithLogger(l.Named("http"))).Register(ctx, r)
	return r, conn
}

// startSystemMetricsUpdater starts a background goroutine that updates system metrics.
func startSystemMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateSystemMetrics()
		}
	}
}

// updateSystemMetrics updates system-level metrics.
func updateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	metrics.UpdateSystemMemoryUsage(m.Alloc)
	metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())
}
