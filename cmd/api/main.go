package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"

	"catalog-api/internal/config"
	memRepo "catalog-api/internal/infra/adapter/persistence/memory"
	pgRepo "catalog-api/internal/infra/adapter/persistence/postgres"
	"catalog-api/internal/infra/db"
	"catalog-api/internal/observability/logging"
	"catalog-api/internal/observability/tracing"
	"catalog-api/internal/repository"
	"catalog-api/internal/resilience/circuitbreaker"

	prodUC "catalog-api/internal/usecase/product"

	hhttp "catalog-api/internal/handler/http"
	hproduct "catalog-api/internal/handler/http/product"
	"catalog-api/internal/handler/http/requestid"

	_ "catalog-api/docs" // swagger docs
)

// @title           Catalog API
// @version         1.0
// @description     Product catalog REST API with offset pagination.

// @contact.name   API Support

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	repo, database := initStorage(logger, cfg)
	if database != nil {
		defer func() {
			if err := database.Close(); err != nil {
				logger.Error("failed to close database", slog.Any("error", err))
			}
		}()
	}

	version := getVersion()
	handler := setupServer(logger, cfg, repo, database, version)

	runServer(logger, cfg, handler, repo, version)
}

// initStorage selects the storage backend from configuration. The postgres
// backend is wrapped in a circuit breaker so an unreachable database surfaces
// as an unavailability error instead of hanging requests.
func initStorage(logger *slog.Logger, cfg *config.AppConfig) (repository.ProductRepository, *sql.DB) {
	if cfg.Database.Backend == "memory" {
		logger.Info("storage backend: in-memory")
		return memRepo.NewProductRepo(), nil
	}

	database, err := db.Open(cfg.Database.DSN)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}

	breaker := circuitbreaker.NewDBCircuitBreaker(database)
	logger.Info("storage backend: postgres (circuit breaker enabled)")
	return pgRepo.NewProductRepo(breaker), database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer configures and returns the HTTP handler with all routes and middleware.
func setupServer(
	logger *slog.Logger,
	cfg *config.AppConfig,
	repo repository.ProductRepository,
	database *sql.DB,
	version string,
) http.Handler {
	svc := &prodUC.Service{Repo: repo}

	publicMux := http.NewServeMux()
	publicMux.Handle("/health", &hhttp.HealthHandler{DB: database, Version: version})
	publicMux.Handle("/ready", &hhttp.ReadyHandler{DB: database})
	publicMux.Handle("/live", &hhttp.LiveHandler{})
	publicMux.Handle("/metrics", hhttp.MetricsHandler())
	publicMux.Handle("/swagger/", httpSwagger.WrapHandler)

	apiMux := http.NewServeMux()
	hproduct.Register(apiMux, svc, cfg.PaginationConfig(), logger)

	rootMux := http.NewServeMux()
	rootMux.Handle("/health", publicMux)
	rootMux.Handle("/ready", publicMux)
	rootMux.Handle("/live", publicMux)
	rootMux.Handle("/metrics", publicMux)
	rootMux.Handle("/swagger/", publicMux)
	rootMux.Handle("/", apiMux)

	return applyMiddleware(logger, cfg, rootMux)
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outermost first): Tracing -> Request ID -> Throttle -> Recovery ->
// Logging -> Timeout -> Body Limit -> Metrics.
func applyMiddleware(logger *slog.Logger, cfg *config.AppConfig, handler http.Handler) http.Handler {
	chain := handler

	// Apply in reverse order (innermost to outermost)
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	chain = hhttp.Timeout(cfg.Server.RequestTimeout)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = hhttp.Throttle(cfg.Throttle.RPS, cfg.Throttle.Burst)(chain)
	chain = requestid.Middleware(chain)
	chain = tracing.Middleware(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(
	logger *slog.Logger,
	cfg *config.AppConfig,
	handler http.Handler,
	repo repository.ProductRepository,
	version string,
) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.Server.Addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Keep the catalog size gauge fresh for dashboards.
	g.Go(func() error {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				start := time.Now()
				count, err := repo.Count(gctx)
				if err != nil {
					logger.Warn("failed to refresh product count", slog.Any("error", err))
					continue
				}
				hhttp.RecordDBQuery("count", time.Since(start))
				hhttp.UpdateProductsTotal(count)
			}
		}
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
