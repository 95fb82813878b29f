package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"innflow/internal/audit"
	idservice "innflow/internal/identity/service"
	idstore "innflow/internal/identity/store"
	"innflow/internal/media"
	"innflow/internal/notify"
	"innflow/internal/objectstore"
	"innflow/internal/onboarding/handler"
	"innflow/internal/onboarding/metrics"
	"innflow/internal/onboarding/service"
	"innflow/internal/onboarding/store"
	"innflow/internal/platform/config"
	"innflow/internal/platform/httpserver"
	"innflow/internal/platform/logger"
	"innflow/internal/platform/middleware"
	redisplatform "innflow/internal/platform/redis"
	"innflow/internal/property/availability"
	propstore "innflow/internal/property/store"
)

const auditInboxSize = 256

// main wires the onboarding pipeline together: storage, the image and
// notification workers, and the HTTP surface. Business logic lives in the
// internal service packages.
func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Error("open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Error("ping database", "error", err)
		os.Exit(1)
	}

	objects, err := objectstore.NewS3(ctx, cfg.ObjectStore)
	if err != nil {
		log.Error("connect object store", "error", err)
		os.Exit(1)
	}

	var notifier service.Notifier = notify.NewInMemoryQueue()
	if len(cfg.Kafka.Brokers) > 0 {
		queue, err := notify.NewKafkaQueue(ctx, cfg.Kafka, log)
		if err != nil {
			log.Error("connect kafka", "error", err)
			os.Exit(1)
		}
		defer queue.Close()
		notifier = queue

		worker, err := notify.NewWorker(cfg.Kafka, notify.NewSMTPSender(cfg.SMTP), log)
		if err != nil {
			log.Error("start notification worker", "error", err)
			os.Exit(1)
		}
		go func() {
			if err := worker.Run(ctx); err != nil && ctx.Err() == nil {
				log.Error("notification worker stopped", "error", err)
			}
		}()
	} else {
		log.Warn("kafka brokers not configured, notifications stay in memory")
	}

	auditStore := audit.NewPostgresStore(db)
	auditInbox := make(chan audit.Event, auditInboxSize)
	auditor := audit.NewPublisher(audit.NewChannelStore(auditInbox, auditStore))
	go func() {
		if err := audit.NewWorker(auditStore, auditInbox, log).Run(ctx); err != nil && ctx.Err() == nil {
			log.Error("audit worker stopped", "error", err)
		}
	}()

	users := idservice.New(idstore.NewPostgres(db), idservice.WithLogger(log))
	properties := propstore.NewPostgres(db)

	opts := []service.Option{
		service.WithLogger(log),
		service.WithMetrics(metrics.New()),
		service.WithAuditor(auditor),
		service.WithDashboardURL(cfg.DashboardBaseURL),
	}

	redisClient, err := redisplatform.New(cfg.Redis)
	if err != nil {
		log.Error("connect redis", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		opts = append(opts, service.WithCache(redisplatform.NewCache(redisClient)))
	} else {
		log.Warn("redis not configured, statistics served uncached")
	}

	svc := service.New(
		store.NewPostgres(db),
		newOnboardingPostgresTx(db),
		service.Deps{
			Users:        users,
			Properties:   properties,
			Availability: availability.New(properties),
			Objects:      objects,
			Transcoder:   media.NewTranscoder(),
			Notifier:     notifier,
		},
		opts...,
	)

	router := chi.NewRouter()
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	handler.New(svc, log, middleware.NewJWTValidator(cfg.JWTSigningKey)).Register(router)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting innflow onboarding server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
