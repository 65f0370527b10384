package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/legends-backend/internal/adapter/media"
	"github.com/heartmarshall/legends-backend/internal/adapter/postgres"
	categoryrepo "github.com/heartmarshall/legends-backend/internal/adapter/postgres/category"
	georepo "github.com/heartmarshall/legends-backend/internal/adapter/postgres/geo"
	legendrepo "github.com/heartmarshall/legends-backend/internal/adapter/postgres/legend"
	userrepo "github.com/heartmarshall/legends-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/legends-backend/internal/auth"
	"github.com/heartmarshall/legends-backend/internal/config"
	authsvc "github.com/heartmarshall/legends-backend/internal/service/auth"
	categorysvc "github.com/heartmarshall/legends-backend/internal/service/category"
	geosvc "github.com/heartmarshall/legends-backend/internal/service/geo"
	legendsvc "github.com/heartmarshall/legends-backend/internal/service/legend"
	mw "github.com/heartmarshall/legends-backend/internal/transport/middleware"
	"github.com/heartmarshall/legends-backend/internal/transport/rest"
)

// rateLimitSweep is how often idle rate limit buckets are evicted.
const rateLimitSweep = time.Minute

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services and handlers, and serves HTTP
// until ctx is cancelled.
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
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	assets, err := media.NewCloudinary(cfg.Media, logger)
	if err != nil {
		return err
	}

	limiter := mw.NewRateLimiter(rateLimitSweep)
	defer limiter.Stop()

	handler := newRouter(cfg, logger, pool, assets, limiter)
	return serve(ctx, logger, cfg.Server, handler)
}

func newRouter(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, assets *media.Cloudinary, limiter *mw.RateLimiter) http.Handler {
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, userrepo.New(pool), jwtManager, cfg.Auth)
	geoService := geosvc.NewService(logger, georepo.New(pool))
	categoryService := categorysvc.NewService(logger, categoryrepo.New(pool))
	legendService := legendsvc.NewService(logger, legendrepo.New(pool), assets)

	return rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
		Auth:     rest.NewAuthHandler(authService, logger),
		Geo:      rest.NewGeoHandler(geoService, logger),
		Category: rest.NewCategoryHandler(categoryService, logger),
		Legend:   rest.NewLegendHandler(legendService, logger, cfg.Media.MaxUploadBytes),
	}, rest.RouterDeps{
		Logger:         logger,
		CORS:           cfg.CORS,
		TokenValidator: authService,
		RateLimiter:    limiter,
		LoginRateLimit: cfg.Auth.LoginRateLimit,
	})
}

// serve runs an HTTP server for handler and shuts it down gracefully once
// ctx is done.
func serve(ctx context.Context, logger *slog.Logger, cfg config.ServerConfig, handler http.Handler) error {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down", slog.String("reason", context.Cause(ctx).Error()))
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
