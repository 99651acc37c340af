package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/SscSPs/payment_recon_app/cmd/docs"
	rediscache "github.com/SscSPs/payment_recon_app/internal/adapters/cache/redis"
	"github.com/SscSPs/payment_recon_app/internal/adapters/database/memory"
	"github.com/SscSPs/payment_recon_app/internal/adapters/database/pgsql"
	portsrepo "github.com/SscSPs/payment_recon_app/internal/core/ports/repositories"
	"github.com/SscSPs/payment_recon_app/internal/core/services"
	"github.com/SscSPs/payment_recon_app/internal/handlers"
	"github.com/SscSPs/payment_recon_app/internal/middleware"
	"github.com/SscSPs/payment_recon_app/internal/platform/config"
	"github.com/SscSPs/payment_recon_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"
	limiterredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

const shutdownTimeout = 15 * time.Second

// @title Payment Reconciliation API
// @version 1.0
// @description Records manual payment receipts, routes them through compliance approval, tracks treasury transfers and serves reconciliation totals.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	repos, closeStore, err := newLedgerStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	var redisClient, limiterClient *goredis.Client
	if cfg.RedisAddr != "" {
		redisClient = goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer func() {
			if cerr := redisClient.Close(); cerr != nil {
				logger.Error("Error closing redis client", slog.String("error", cerr.Error()))
			}
		}()
		// Idempotency records stay authoritative in the ledger store.
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warn("Redis unreachable, idempotent responses will be served from the ledger store", slog.String("error", err.Error()))
		} else {
			limiterClient = redisClient
		}
		repos.IdempotencyCache = rediscache.NewIdempotencyCache(redisClient, cfg.IdempotencyTTL)
		logger.Info("Idempotency response cache enabled", slog.String("redis_addr", cfg.RedisAddr))
	}

	serviceContainer := services.NewServiceContainer(repos, cfg.ServiceRules())

	rateLimiter, err := newRateLimiter(cfg, limiterClient)
	if err != nil {
		return err
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.IdempotencyKeyHeader},
		ExposeHeaders:    []string{"Content-Length", "Retry-After", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimit(rateLimiter))

	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("store_driver", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("Server stopped")
	return nil
}

// newLedgerStore builds the repositories for the configured driver and
// returns a func releasing its resources.
func newLedgerStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		store := memory.NewStore(memory.WithTimeout(cfg.StoreTimeout))
		return memory.NewRepositoryProvider(store), func() {}, nil
	}

	logger.Info("Running database migrations...", slog.String("path", cfg.MigrationsPath))
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")

	repos := pgsql.NewRepositoryProvider(dbPool,
		pgsql.WithStoreTimeout(cfg.StoreTimeout),
		pgsql.WithBreaker(pgsql.BreakerConfig{
			MaxFailures: cfg.BreakerMaxFailures,
			OpenTimeout: cfg.BreakerOpenTimeout,
		}),
	)
	return repos, func() { database.ClosePgxPool(dbPool) }, nil
}

// newRateLimiter shares limits across instances through redis when it is
// configured and falls back to a per-process store otherwise.
func newRateLimiter(cfg *config.Config, redisClient *goredis.Client) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		return nil, err
	}

	if redisClient == nil {
		return limiter.New(limitermemory.NewStore(), rate), nil
	}

	store, err := limiterredis.NewStoreWithOptions(redisClient, limiter.StoreOptions{
		Prefix: "recon:ratelimit",
	})
	if err != nil {
		return nil, err
	}
	return limiter.New(store, rate), nil
}
