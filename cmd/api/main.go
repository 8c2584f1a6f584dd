package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/clientdesk/internal/api/routes"
	"github.com/linskybing/clientdesk/internal/config"
	"github.com/linskybing/clientdesk/internal/config/db"
	"github.com/linskybing/clientdesk/internal/cron"
	"github.com/linskybing/clientdesk/internal/migrations"
	"github.com/linskybing/clientdesk/internal/repository"
	"github.com/linskybing/clientdesk/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title clientdesk API
// @version 1.0
// @description Clients, their projects and the users assigned to them.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger.Init(cfg.LogLevel)

	if err := run(cfg); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if err := migrations.Up(cfg.DatabaseURL()); err != nil {
		return err
	}

	gormDB, err := db.Open(cfg)
	if err != nil {
		return err
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		defer sqlDB.Close()
	}

	gin.SetMode(cfg.GinMode)
	repos := repository.NewRepositories(gormDB)
	router, svc := routes.NewRouter(cfg, repos, db.Pinger{DB: gormDB})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cleanupDone := cron.StartCleanupTask(ctx, svc.Audit, cfg.AuditRetentionDays, cron.CleanupInterval)

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("starting API server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		stop()
		<-cleanupDone
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	<-cleanupDone
	return nil
}
