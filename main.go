package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brunolapastina/rinha-de-backend-2025/client"
	"github.com/brunolapastina/rinha-de-backend-2025/config"
	"github.com/brunolapastina/rinha-de-backend-2025/handler"
	"github.com/brunolapastina/rinha-de-backend-2025/health"
	"github.com/brunolapastina/rinha-de-backend-2025/model"
	"github.com/brunolapastina/rinha-de-backend-2025/queue"
	"github.com/brunolapastina/rinha-de-backend-2025/repository"
	"github.com/brunolapastina/rinha-de-backend-2025/worker"
	"github.com/valyala/fasthttp"
)

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func logStats(ctx context.Context, interval time.Duration, pool *worker.Pool, q *queue.Queue) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s := pool.Stats()
			slog.Info("Payment stats",
				"queued", q.Len(),
				"errors", s.Errors,
				"defaultSucceeded", s.Default.Succeeded,
				"defaultFailed", s.Default.Failed,
				"defaultAvgLatency", s.Default.AverageLatency().String(),
				"fallbackSucceeded", s.Fallback.Succeeded,
				"fallbackFailed", s.Fallback.Failed,
				"fallbackAvgLatency", s.Fallback.AverageLatency().String(),
			)
		}
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(newLogger(cfg.LogLevel))

	store, err := repository.New(ctx, cfg.StoreURL)
	if err != nil {
		slog.Error("Error connecting to transaction store", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	if r, ok := store.(*repository.RedisRepository); ok {
		r.FireAndForget = cfg.StoreFireAndForget
	} else if cfg.StoreFireAndForget {
		slog.Warn("STORE_FIRE_AND_FORGET only applies to the Redis store")
	}

	defaultClient := client.NewClient(model.ProcessorDefault, cfg.Default)
	fallbackClient := client.NewClient(model.ProcessorFallback, cfg.Fallback)

	healthOpts := health.Options{Interval: cfg.HealthInterval, Timeout: cfg.HealthTimeout}
	var monitor *health.Monitor
	if cfg.HealthRole == health.RoleAuthority {
		monitor = health.NewAuthority(store, defaultClient, fallbackClient, healthOpts)
	} else {
		monitor = health.NewObserver(store, healthOpts)
	}

	q := queue.New()
	pool := worker.NewPool(q, store, monitor, defaultClient, fallbackClient, worker.Options{
		BatchSize:      cfg.BatchSize,
		Concurrency:    cfg.WorkerConcurrency,
		StartFresh:     cfg.StartFresh,
		PaymentTimeout: cfg.Default.Timeout,
	})
	h := handler.NewHandler(q, store)

	server := &fasthttp.Server{
		Handler: h.Route,
		Name:    "rinha-gateway",
	}

	go func() {
		slog.Info("Listening", "port", cfg.ServerPort, "healthRole", cfg.HealthRole.String())
		if err := server.ListenAndServe(fmt.Sprintf(":%s", cfg.ServerPort)); err != nil {
			slog.Error("HTTP server error", "error", err)
			stop()
		}
	}()

	go monitor.Run(ctx)
	go pool.Run(ctx)
	go logStats(ctx, cfg.StatsInterval, pool, q)

	<-ctx.Done()
	slog.Info("Shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("HTTP shutdown error", "error", err)
	}
	slog.Info("Application closed", "unprocessed", q.Len())
}
