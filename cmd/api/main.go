// @title           User Directory API
// @version         1.0
// @description     In-memory signup/login backend for client development.
// @host            localhost:3000
// @BasePath        /api
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"userdir/internal/app"
	"userdir/internal/config"
	"userdir/internal/logging"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v\n%s", err, config.Usage())
	}

	logger, err := logging.New(cfg.App.IsProd())
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	application := app.New(cfg, logger)
	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.HTTP.Port,
		Handler:      application.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout.Duration(),
		WriteTimeout: cfg.HTTP.WriteTimeout.Duration(),
		IdleTimeout:  cfg.HTTP.IdleTimeout.Duration(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", zap.String("url", "http://localhost:"+cfg.HTTP.Port), zap.String("env", cfg.App.Env))
		for _, e := range app.Endpoints {
			logger.Info("endpoint", zap.String("route", fmt.Sprintf("%-6s http://localhost:%s%s", e.Method, cfg.HTTP.Port, e.Path)))
		}
		errCh <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server", zap.Error(err))
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout.Duration())
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
	if err := application.Close(ctx); err != nil {
		logger.Error("close app", zap.Error(err))
	}
}
