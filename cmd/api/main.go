package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/docflow/internal/api/middleware"
	"github.com/linskybing/docflow/internal/api/routes"
	"github.com/linskybing/docflow/internal/application"
	"github.com/linskybing/docflow/internal/archive"
	"github.com/linskybing/docflow/internal/config"
	"github.com/linskybing/docflow/internal/config/db"
	"github.com/linskybing/docflow/internal/cron"
	"github.com/linskybing/docflow/internal/migrations"
	"github.com/linskybing/docflow/internal/notify"
	"github.com/linskybing/docflow/internal/repository"
	"github.com/linskybing/docflow/pkg/logger"
	"go.uber.org/zap"
)

// @title docflow API
// @version 1.0
// @description Collaborative document workflow service.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	l, err := logger.Init(&logger.Config{Level: config.LogLevel, Format: config.LogFormat})
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() { _ = l.Sync() }()

	// Initialize JWT signing key
	middleware.Init()

	db.Init()
	if err := migrations.Run(db.DB); err != nil {
		zap.L().Fatal("failed to migrate database", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos := repository.NewRepositories(db.DB)

	catalog, err := notify.DefaultCatalog()
	if err != nil {
		zap.L().Fatal("failed to load message catalog", zap.Error(err))
	}

	var archiver notify.Archiver
	if config.MinioEnabled {
		a, err := archive.NewMinioArchiver(ctx)
		if err != nil {
			// Completion still works without the archive copy.
			zap.L().Warn("archive disabled", zap.Error(err))
		} else {
			archiver = a
		}
	}

	hub := notify.NewHub()
	mailer := notify.NewBreakerMailer(notify.NewQueueMailer(repos, catalog, config.PublicURL, config.SigningTokenTTL))
	dispatcher := notify.NewDispatcher(catalog, notify.NewStoreNotifier(repos.Notification, hub), mailer, archiver, config.DispatchQueueSize)
	dispatcher.Start(config.DispatchWorkers)

	services := application.New(repos, dispatcher)
	reminders := cron.StartReminderTask(ctx, services.Workflow, config.ReminderInterval)

	if config.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.NewRouter(services, hub)

	srv := &http.Server{
		Addr:              ":" + config.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zap.L().Info("starting API server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("failed to start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zap.L().Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("server shutdown failed", zap.Error(err))
	}
	<-reminders
	dispatcher.Close()
}
