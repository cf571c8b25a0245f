package main

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

	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"tincheck/internal/admin"
	"tincheck/internal/audit"
	"tincheck/internal/audit/kafka"
	"tincheck/internal/audit/publisher"
	"tincheck/internal/audit/store/memory"
	"tincheck/internal/audit/store/postgres"
	"tincheck/internal/platform/config"
	"tincheck/internal/platform/httpserver"
	"tincheck/internal/platform/logger"
	"tincheck/internal/platform/metrics"
	platformredis "tincheck/internal/platform/redis"
	"tincheck/internal/ratelimit"
	httptransport "tincheck/internal/transport/http"
	"tincheck/internal/validation"
	"tincheck/internal/validation/handler"
	"tincheck/pkg/tin/registry"
)

const auditBufferSize = 1024

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal packages.
func main() {
	log := logger.New()
	if err := run(log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.FromEnv()
	m := metrics.New()

	// Audit trail: in-memory unless a database is configured.
	var store audit.Store = memory.NewInMemoryStore()
	if cfg.PostgresDSN != "" {
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			return fmt.Errorf("open postgres: %w", err)
		}
		defer db.Close()

		pg := postgres.New(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			return err
		}
		store = pg
		log.Info("audit store: postgres")
	}

	publisherOpts := []publisher.Option{
		publisher.WithAsyncBuffer(auditBufferSize),
		publisher.WithLogger(log),
	}
	if len(cfg.KafkaBrokers) > 0 {
		sinkCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		sink, err := kafka.NewSink(sinkCtx, cfg.KafkaBrokers, cfg.KafkaTopic)
		cancel()
		if err != nil {
			return fmt.Errorf("connect kafka: %w", err)
		}
		defer sink.Close()
		publisherOpts = append(publisherOpts, publisher.WithSink(sink))
		log.Info("audit sink: kafka", "topic", cfg.KafkaTopic)
	}
	pub := publisher.NewPublisher(store, publisherOpts...)
	defer pub.Close()

	// Rate limiting: distributed via redis when configured, otherwise
	// per-instance in memory.
	var limiter ratelimit.Limiter = ratelimit.NewMemoryLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)
	redisClient, err := platformredis.New(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
		limiter = ratelimit.NewRedisLimiter(redisClient.Client, cfg.RateLimitMax, cfg.RateLimitWindow)
		log.Info("rate limiter: redis")
	}

	svc := validation.New(registry.Default(), pub, m, log)
	router := httptransport.NewRouter(httptransport.Deps{
		Logger:     log,
		Validation: handler.New(svc, log),
		Admin:      admin.New(store, cfg.JWTSigningKey, cfg.AdminSecretHash, cfg.RegulatedMode, log),
		RateLimit:  ratelimit.NewMiddleware(limiter, log, m),
	})

	srv := httpserver.New(cfg.Addr, router)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting tincheck", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
