// @title                       Professionals API
// @version                     1.0
// @description                 Professional users directory with x-auth session tokens.
// @BasePath                    /
// @securityDefinitions.apikey  XAuth
// @in                          header
// @name                        x-auth
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/manodeobra/professionals-api/internal/api"
	"github.com/manodeobra/professionals-api/internal/core/ports"
	"github.com/manodeobra/professionals-api/internal/core/service"
	mongodb "github.com/manodeobra/professionals-api/internal/infrastructure/db/mongo"
	"github.com/manodeobra/professionals-api/internal/infrastructure/db/postgres"
	redisdb "github.com/manodeobra/professionals-api/internal/infrastructure/db/redis"
	"github.com/manodeobra/professionals-api/internal/infrastructure/http/handlers"
	"github.com/manodeobra/professionals-api/internal/pkg/config"
	"github.com/manodeobra/professionals-api/pkg/logger"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "professionals-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	checks := map[string]handlers.CheckFunc{}

	repo, closeStore, err := openStore(ctx, cfg, checks, log)
	if err != nil {
		return err
	}
	defer closeStore()

	var cache ports.UserCache
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, running without user cache")
	} else {
		defer rdb.Close()
		cache = redisdb.NewUserCache(rdb, cfg.Redis.UserTTL)
		checks["redis"] = func(ctx context.Context) error { return redisdb.Ping(ctx, rdb) }
	}

	tokens := service.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	authService := service.NewAuthService(repo, tokens, logger.Component("auth"))
	userService := service.NewProfessionalUserService(repo, cache, tokens, logger.Component("professional_user"))

	e := api.NewRouter(api.Deps{
		AuthService:  authService,
		UserService:  userService,
		Logger:       log,
		CORSOrigins:  cfg.HTTP.CORSOrigins,
		PhoneRegion:  cfg.HTTP.PhoneRegion,
		HealthChecks: checks,
		Registerer:   prometheus.DefaultRegisterer,
		Gatherer:     prometheus.DefaultGatherer,
		Swagger:      true,
	})

	srvErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("storage", cfg.StorageDriver).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			srvErr <- err
		}
		close(srvErr)
	}()

	select {
	case err := <-srvErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	log.Info().Msg("shutdown complete")
	return nil
}

// openStore connects the configured backend, prepares its schema and
// registers its readiness check.
func openStore(ctx context.Context, cfg *config.Config, checks map[string]handlers.CheckFunc, log zerolog.Logger) (ports.ProfessionalUserRepository, func(), error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := postgres.Connect(ctx, postgres.Config{
			DSN:          cfg.Postgres.DSN,
			MaxOpenConns: cfg.Postgres.MaxOpenConns,
			MaxIdleConns: cfg.Postgres.MaxIdleConns,
			Debug:        cfg.LogLevel == "debug" || cfg.LogLevel == "trace",
		})
		if err != nil {
			return nil, nil, err
		}
		repo := postgres.NewProfessionalUserRepository(db)
		if err := repo.Migrate(ctx); err != nil {
			_ = postgres.Close(db)
			return nil, nil, fmt.Errorf("postgres migrate: %w", err)
		}
		checks["postgres"] = func(ctx context.Context) error { return postgres.Ping(ctx, db) }
		log.Info().Msg("postgres connected")
		return repo, func() { _ = postgres.Close(db) }, nil

	default:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, nil, err
		}
		repo := mongodb.NewProfessionalUserRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, fmt.Errorf("mongo indexes: %w", err)
		}
		checks["mongo"] = func(ctx context.Context) error { return mongodb.Ping(ctx, db) }
		log.Info().Str("database", cfg.Mongo.Database).Msg("mongo connected")
		return repo, func() { _ = client.Disconnect(context.Background()) }, nil
	}
}
