// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal packages.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"lanyard/internal/audit"
	"lanyard/internal/badge/handler"
	"lanyard/internal/badge/metrics"
	"lanyard/internal/badge/ports"
	"lanyard/internal/badge/service"
	httpapi "lanyard/internal/http"
	"lanyard/internal/issued"
	"lanyard/internal/platform/config"
	"lanyard/internal/platform/httpserver"
	"lanyard/internal/platform/logger"
	platformredis "lanyard/internal/platform/redis"
	"lanyard/internal/registry/store"
	"lanyard/internal/render"
	"lanyard/internal/render/assets"
)

// registryStore is everything the badge service needs from one registry
// backend. Both the memory and postgres stores satisfy it.
type registryStore interface {
	ports.AttendeeStore
	ports.EventStore
	ports.TemplateStore
	ports.RenderMetadataStore
}

func main() {
	cfg := config.FromEnv()
	log := logger.New()
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var registry registryStore
	var auditStore audit.Store = audit.NewInMemoryStore()
	if cfg.PostgresDSN != "" {
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Error("postgres connection failed", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		registry = store.NewPostgres(pool)
		auditStore = audit.NewPostgresStore(pool)
	} else {
		log.Warn("no postgres DSN configured, using in-memory registry")
		registry = store.NewInMemory()
	}

	auditQueue := audit.NewQueue(auditStore, 256)
	go func() {
		if err := auditQueue.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("audit worker stopped", "error", err)
		}
	}()

	redisClient, err := platformredis.New(ctx, cfg.Redis())
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}

	var copies issued.Store
	var health httpapi.HealthChecker
	if redisClient != nil {
		defer redisClient.Close()
		copies = issued.NewRedisStore(redisClient.Client)
		health = redisClient
	}

	fetcher := assets.NewFetcher(cfg.AssetFetchTimeout)

	svc := service.New(service.Config{
		Attendees:          registry,
		Events:             registry,
		Templates:          registry,
		Metadata:           registry,
		Copies:             copies,
		Assembler:          render.NewAssembler(fetcher, log),
		Audit:              audit.NewPublisher(auditQueue),
		Metrics:            metrics.New(),
		Logger:             log,
		VerifyBaseURL:      cfg.VerifyBaseURL,
		TrustedStorageHost: cfg.TrustedStorageHost,
	})

	router := httpapi.NewRouter(handler.New(svc, log), health, log)
	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting lanyard", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
