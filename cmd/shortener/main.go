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

	"shortener-service/internal/config"
	"shortener-service/internal/http-server/router"
	"shortener-service/internal/lib/logger/slogcute"
	"shortener-service/internal/service/alias"
	"shortener-service/internal/storage"
	"shortener-service/internal/storage/cache"
	"shortener-service/internal/storage/instrumented"
	"shortener-service/internal/storage/postgres"
	"shortener-service/internal/storage/sqlite"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := SetupLogger(cfg.Env)

	log.Info("starting shortener service", slog.String("env", cfg.Env), slog.String("storage", cfg.Storage.Driver))
	log.Debug("debug messages are enabled")

	store, opts, closeStorage, err := setupStorage(log, cfg)
	if err != nil {
		log.Error("failed to initialize storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStorage()

	svc, err := alias.New(log, store, cfg.Alias.MaxSize, cfg.Alias.GenerateAttempts, opts...)
	if err != nil {
		log.Error("failed to initialize alias service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router.New(log, svc, router.Options{AllowedOrigins: cfg.CORS.AllowedOrigins}),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	servers := []*http.Server{srv}

	if cfg.Metrics.Address != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())

		servers = append(servers, &http.Server{
			Addr:              cfg.Metrics.Address,
			Handler:           mux,
			ReadHeaderTimeout: cfg.HTTPServer.Timeout,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, len(servers))
	for _, s := range servers {
		log.Info("starting HTTP server", slog.String("addr", s.Addr))

		go func() {
			if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		log.Info("stopping servers")
	case err := <-errCh:
		log.Error("server failed", slog.String("error", err.Error()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for _, s := range servers {
		if err := s.Shutdown(shutdownCtx); err != nil {
			log.Error("failed to stop server", slog.String("addr", s.Addr), slog.String("error", err.Error()))
		}
	}

	log.Info("servers stopped")
}

// setupStorage builds the storage chain: the configured database, instrumented
// with metrics and optionally fronted by a Redis cache, plus the service options that
// route redirects through that cache. The returned func releases everything the chain holds.
func setupStorage(log *slog.Logger, cfg *config.Config) (storage.Storage, []alias.Option, func(), error) {
	var base interface {
		storage.Storage
		MigrateUp(table string) error
	}

	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		s, err := postgres.New(cfg.Storage.DSN)
		if err != nil {
			return nil, nil, nil, err
		}
		base = s
	default:
		s, err := sqlite.New(cfg.Storage.Path)
		if err != nil {
			return nil, nil, nil, err
		}
		base = s
	}

	if cfg.Migrations.Auto {
		if err := base.MigrateUp(cfg.Migrations.MigrationTable); err != nil {
			_ = base.Close()
			return nil, nil, nil, err
		}
		log.Info("migrations applied")
	}

	var store storage.Storage = instrumented.New(base)
	var client *redis.Client
	var opts []alias.Option

	if cfg.Cache.RedisAddr != "" {
		client = redis.NewClient(&redis.Options{Addr: cfg.Cache.RedisAddr})
		cached := cache.New(log, store, client, cfg.Cache.TTL)
		store = cached
		opts = append(opts, alias.WithResolver(cached))

		log.Info("redis cache enabled", slog.String("addr", cfg.Cache.RedisAddr), slog.Duration("ttl", cfg.Cache.TTL))
	}

	closeFn := func() {
		if err := store.Close(); err != nil {
			log.Error("failed to close storage", slog.String("error", err.Error()))
		}
		if client != nil {
			if err := client.Close(); err != nil {
				log.Error("failed to close redis client", slog.String("error", err.Error()))
			}
		}
	}

	return store, opts, closeFn, nil
}

func SetupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = SetupCuteSlog()
	}

	return log
}

func SetupCuteSlog() *slog.Logger {
	opts := slogcute.CuteHandlerOptions{
		SlogOptions: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewCuteHandler(os.Stdout)

	return slog.New(handler)
}
