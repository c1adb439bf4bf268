package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/panacureo/panacureo-backend/internal/adapter/postgres"
	profilerepo "github.com/panacureo/panacureo-backend/internal/adapter/postgres/profile"
	tokenrepo "github.com/panacureo/panacureo-backend/internal/adapter/postgres/token"
	userrepo "github.com/panacureo/panacureo-backend/internal/adapter/postgres/user"
	"github.com/panacureo/panacureo-backend/internal/auth"
	"github.com/panacureo/panacureo-backend/internal/catalog"
	"github.com/panacureo/panacureo-backend/internal/config"
	authsvc "github.com/panacureo/panacureo-backend/internal/service/auth"
	catalogsvc "github.com/panacureo/panacureo-backend/internal/service/catalog"
	dashboardsvc "github.com/panacureo/panacureo-backend/internal/service/dashboard"
	profilesvc "github.com/panacureo/panacureo-backend/internal/service/profile"
	"github.com/panacureo/panacureo-backend/internal/transport/middleware"
	"github.com/panacureo/panacureo-backend/internal/transport/rest"
	"github.com/panacureo/panacureo-backend/migrations"
)

const rateLimitPerMinute = 300

// Run is the application entry point. It loads configuration, initializes
// the logger and the database pool, applies migrations, wires the services
// and HTTP transport, and serves until ctx is cancelled or a shutdown
// signal arrives.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app.Run: %w", err)
	}
	defer pool.Close()

	if err := applyMigrations(ctx, cfg.Database.DSN, logger); err != nil {
		return fmt.Errorf("app.Run: %w", err)
	}

	// Repositories and infrastructure.
	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	profiles := profilerepo.New(pool)
	txManager := postgres.NewTxManager(pool)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	store := catalog.NewStore()

	// Services.
	authService := authsvc.NewService(logger, users, profiles, tokens, txManager, jwtManager, cfg.Auth)
	catalogService := catalogsvc.NewService(logger, store)
	profileService := profilesvc.NewService(logger, profiles, store)
	dashboardService := dashboardsvc.NewService(logger, profileService, catalogService)

	// Metrics registry with the standard process and Go collectors.
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := middleware.NewHTTPMetrics(registry)

	// HTTP transport.
	handlers := rest.Handlers{
		Auth:       rest.NewAuthHandler(authService, logger),
		Catalog:    rest.NewCatalogHandler(catalogService, logger),
		Assessment: rest.NewAssessmentHandler(logger),
		Profile:    rest.NewProfileHandler(profileService, logger),
		Dashboard:  rest.NewDashboardHandler(dashboardService, logger),
		Health:     rest.NewHealthHandler(pool, BuildVersion()),
		Metrics:    promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}
	router := rest.NewRouter(handlers)

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		httpMetrics.Middleware(),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(rateLimitPerMinute),
		middleware.Auth(authService),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      chain(router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("app.Run: serve: %w", err)
	case sig := <-quit:
		logger.Info("shutting down", slog.String("signal", sig.String()))
	case <-ctx.Done():
		logger.Info("shutting down", slog.String("reason", "context cancelled"))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app.Run: shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// applyMigrations brings the schema up to date using the embedded goose
// migrations. goose requires database/sql, so it gets its own short-lived
// connection instead of the pgx pool.
func applyMigrations(ctx context.Context, dsn string, logger *slog.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	for _, r := range results {
		logger.Info("applied migration", slog.String("source", r.Source.Path))
	}

	return nil
}
