package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ricirt/k8s-lab-demo/internal/api"
	"github.com/ricirt/k8s-lab-demo/internal/config"
	"github.com/ricirt/k8s-lab-demo/internal/metrics"
	"github.com/ricirt/k8s-lab-demo/internal/ratelimiter"
	"github.com/ricirt/k8s-lab-demo/internal/service"
)

func main() {
	// ---- configuration ----
	cfg, err := config.Load()
	if err != nil {
		boot, _ := zap.NewProduction()
		boot.Fatal("failed to load config", zap.Error(err))
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		boot, _ := zap.NewProduction()
		boot.Fatal("failed to build logger", zap.Error(err))
	}
	defer logger.Sync() //nolint:errcheck

	// ---- core dependencies ----
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)
	limiter := ratelimiter.New(cfg.RateLimit)
	svc := service.NewPodService(os.Getenv, time.Now, cfg.ServiceName, cfg.Namespace)

	// ---- HTTP server ----
	router := api.NewRouter(svc, limiter, m, reg, logger)
	srv := &http.Server{
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ln, err := net.Listen("tcp", ":"+cfg.HTTPPort)
	if err != nil {
		logger.Fatal("failed to bind listener", zap.String("port", cfg.HTTPPort), zap.Error(err))
	}
	port := ln.Addr().(*net.TCPAddr).Port
	if err := api.PrintEndpoints(os.Stdout, port); err != nil {
		logger.Warn("failed to print endpoints", zap.Error(err))
	}

	// Serve in a goroutine so it does not block the shutdown listener.
	go func() {
		logger.Info("server starting", zap.Int("port", port))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// ---- graceful shutdown ----
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped cleanly")
}

// newLogger builds a production JSON logger at the given level name.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}
