package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roomBooker/internal/catalog"
	"roomBooker/internal/config"
	"roomBooker/internal/http-server/router"
	"roomBooker/internal/lib/logger/handlers/slogpretty"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/service"
	"roomBooker/internal/storage/jsonfile"
	"roomBooker/internal/storage/memory"
	"roomBooker/internal/storage/postgres"
	redisstore "roomBooker/internal/storage/redis"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting room booker", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	store, err := setupStore(context.Background(), cfg)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	log.Info("storage ready", slog.String("driver", cfg.Storage.Driver))

	rooms := catalog.Default()
	svc := service.New(log, store, rooms)

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router.New(log, cfg, svc, rooms),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if closer, ok := store.(io.Closer); ok {
		if err = closer.Close(); err != nil {
			log.Error("failed to close storage", sl.Err(err))
		}

		log.Info("storage connection closed")
	}
}

func setupStore(ctx context.Context, cfg *config.Config) (service.Store, error) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		return postgres.InitDB(&cfg.Database)
	case config.StorageRedis:
		return redisstore.New(ctx, &cfg.Redis)
	case config.StorageMemory:
		return memory.New(), nil
	default:
		return jsonfile.New(cfg.Storage.Path), nil
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
