package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"buggy/internal/cli"
	"buggy/internal/config"
	apphttp "buggy/internal/http"
	applog "buggy/internal/log"
	"buggy/internal/screens"
	"buggy/internal/settings"
	"buggy/internal/storage"
)

func main() {
	cli.LoadEnvFile()

	bootLog := cli.SetupLogger(slog.LevelInfo)
	cfg := cli.LoadAndValidateConfig(bootLog)

	level, _ := config.ParseLogLevel(cfg.LogLevel)
	logger := cli.SetupLogger(level)

	store := cli.OpenStore(logger, cfg)
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close store", "error", err)
		}
	}()

	gateway := storage.New(store)
	session := settings.NewSession(gateway)
	home := screens.NewHome(gateway)
	profile := screens.NewProfile(gateway, session)

	appLogger := applog.New(applog.Config{
		Level:     level,
		Component: applog.ComponentApp,
		Handler:   logger.Handler(),
	})

	srv := apphttp.NewServer(":"+cfg.Port, store, home, profile, session, appLogger)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	shutdownCtx, done := cli.GracefulShutdown(logger, cfg.ShutdownTimeout, func(ctx context.Context) {
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
	})

	g, _ := errgroup.WithContext(context.Background())
	g.Go(func() error {
		logger.Info("Starting server", "port", cfg.Port, "backend", cfg.DataBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		cli.WaitForShutdown(shutdownCtx, done)
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
