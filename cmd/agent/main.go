// Package main is the entry point for the finance dashboard sync agent.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/finance-dashboard/agent/config"
	"github.com/finance-dashboard/agent/internal/application/adapter"
	"github.com/finance-dashboard/agent/internal/application/classifier"
	"github.com/finance-dashboard/agent/internal/application/store"
	syncmgr "github.com/finance-dashboard/agent/internal/application/sync"
	"github.com/finance-dashboard/agent/internal/application/usecase/capture"
	"github.com/finance-dashboard/agent/internal/domain/valueobject"
	"github.com/finance-dashboard/agent/internal/infra/db"
	"github.com/finance-dashboard/agent/internal/infra/server/router"
	"github.com/finance-dashboard/agent/internal/integration/adapters"
	"github.com/finance-dashboard/agent/internal/integration/entrypoint/controller"
	"github.com/finance-dashboard/agent/internal/integration/events"
	"github.com/finance-dashboard/agent/internal/integration/persistence"
	"github.com/finance-dashboard/agent/internal/integration/persistence/model"
	"github.com/finance-dashboard/agent/internal/integration/remote"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting finance dashboard agent",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection
	var database *db.Database
	var dbHealthChecker func() bool

	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running with in-memory cache only",
			"error", err,
		)
		database = nil
		dbHealthChecker = func() bool { return false }
	} else {
		if err := database.AutoMigrate(
			&model.SyncItemModel{},
			&model.MetaModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		dbHealthChecker = database.HealthCheck
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	// Optional Redis event bridge
	var publisher adapter.EventPublisher
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		publisher = events.NewRedisBridge(redisClient, cfg.Redis.Channel)
		defer redisClient.Close()
		slog.Info("Redis event bridge enabled", "channel", cfg.Redis.Channel)
	}

	// Record store over the local database
	var recordRepo adapter.RecordRepository
	var metaRepo adapter.MetaRepository
	var queueRepo adapter.SyncQueueRepository
	if database != nil {
		recordRepo = persistence.NewRecordRepository(database.DB())
		metaRepo = persistence.NewMetaRepository(database.DB())
		queueRepo = persistence.NewSyncQueueRepository(database.DB())
	} else {
		queueRepo = persistence.NewMemorySyncQueueRepository()
	}

	records := store.NewRecordStore(recordRepo, metaRepo, publisher)
	if err := records.Initialize(ctx); err != nil {
		slog.Warn("Record store running degraded, data is memory-only", "error", err)
	}

	// Connectivity monitor probes the remote health endpoint
	monitor := remote.NewMonitor(cfg.Remote.BaseURL+"/health", cfg.Sync.ProbeInterval)
	go monitor.Start(ctx)

	// Sync manager drains the durable queue to the remote API
	remoteClient := remote.NewClient(cfg.Remote.BaseURL, cfg.Remote.Timeout)
	manager := syncmgr.NewManager(queueRepo, remoteClient, monitor, syncmgr.Config{
		PollInterval: cfg.Sync.PollInterval,
		ItemTimeout:  cfg.Sync.ItemTimeout,
		Notify: func(result syncmgr.DrainResult) {
			slog.Info("Sync drain finished",
				"success", result.Success,
				"failed", result.Failed,
			)
		},
	})
	go manager.Start(ctx)

	// Classification: rule cascade with optional Gemini fallback
	formatter := valueobject.NewFormatter(cfg.Locale.CurrencySymbol, cfg.Locale.IndianGrouping)
	rules := classifier.NewRuleBased(formatter)

	var aiClassifier adapter.AIClassifier
	if cfg.AI.GeminiAPIKey != "" {
		aiClassifier = adapters.NewGeminiClassifier(cfg.AI.GeminiAPIKey, formatter)
		slog.Info("Online classification fallback enabled")
	}

	captureUseCase := capture.NewCaptureUtteranceUseCase(rules, aiClassifier, records, manager, monitor)

	// Controllers
	healthController := controller.NewHealthController(dbHealthChecker)
	recordController := controller.NewRecordController(records)
	captureController := controller.NewCaptureController(rules, captureUseCase)
	syncController := controller.NewSyncController(manager, monitor, records, queueRepo)
	tipsController := controller.NewTipsController(rules, records)

	// Setup router
	r := router.NewRouter(healthController, recordController, captureController, syncController, tipsController)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down agent...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Agent exited properly")
}
