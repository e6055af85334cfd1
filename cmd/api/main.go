package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"studydesk/internal/config"
	handlers "studydesk/internal/http/handler"
	"studydesk/internal/http/middleware"
	"studydesk/internal/logger"
	"studydesk/internal/metrics"
	"studydesk/internal/otel"
	"studydesk/internal/service"
	"studydesk/internal/store"
	"studydesk/internal/upload"
	"studydesk/internal/view"
)

// @title Studydesk API
// @version 1.0
// @description Study assistant: upload a document and browse mock notebook, resources, mind map and chat views of it.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Env, cfg.Log)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if err := run(cfg, zl); err != nil {
		zl.Fatal("server_failed", zap.Error(err))
	}
}

func run(cfg *config.AppConfig, zl *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, zl.Named("otel"))
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rec, err := metrics.New(reg)
	if err != nil {
		return err
	}

	snapshots, closer, err := openSnapshots(ctx, cfg, zl.Named("snapshot"))
	if err != nil {
		return err
	}
	defer closer.Close()

	adapter := store.NewAdapter(snapshots, cfg.Snapshot.Key, zl.Named("adapter"), rec)
	docs := store.Open(ctx, adapter, zl.Named("store"), rec)

	uploads := upload.NewManager(docs, upload.Config{
		Tick:      cfg.Simulation.UploadTick,
		Step:      cfg.Simulation.UploadStep,
		Threshold: cfg.Simulation.UploadThreshold,
	}, zl.Named("upload"), rec)
	defer uploads.Close()

	seed := cfg.Simulation.ChatSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	chats := view.NewChatHub(cfg.Simulation.Delay, view.NewSeededPicker(seed), zl.Named("chat"), rec)

	views := service.NewViewService(docs, chats, cfg.Simulation.Delay, zl.Named("views"))
	defer views.Close()

	documents, err := service.NewDocumentService(docs, uploads, validator.New(), zl.Named("documents"))
	if err != nil {
		return err
	}

	promMW, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		BodyLimit:             cfg.BodyLimitMB * 1024 * 1024,
		DisableStartupMessage: cfg.Env == config.EnvProduction,
	})

	// Tracing first so request spans cover the rest of the chain
	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(zl.Named("http")))
	app.Use(promMW.Handler())

	handlers.RegisterRoutes(app, handlers.Deps{
		Health:    snapshots,
		Documents: documents,
		Views:     views,
		Gatherer:  reg,
	})

	go sweep(ctx, cfg.Retention, uploads, chats, zl.Named("janitor"))

	errCh := make(chan error, 1)
	go func() {
		zl.Info("server_starting",
			zap.String("addr", ":"+cfg.Port),
			zap.String("snapshot_backend", cfg.Snapshot.Backend),
			zap.Int("documents", len(docs.Documents())),
		)
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zl.Info("server_stopping")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(sctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

// sweep drops finished upload jobs and idle chat sessions until ctx ends.
func sweep(ctx context.Context, cfg config.RetentionConfig, uploads *upload.Manager, chats *view.ChatHub, zl *zap.Logger) {
	if cfg.SweepInterval <= 0 {
		return
	}
	ticker := time.NewTicker(cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			jobs := uploads.Cleanup(cfg.UploadJobTTL)
			sessions := chats.CloseIdle(cfg.ChatSessionTTL)
			if jobs > 0 || sessions > 0 {
				zl.Info("sweep_done", zap.Int("upload_jobs", jobs), zap.Int("chat_sessions", sessions))
			}
		}
	}
}
