package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/api"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/service"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/infrastructure/backend"
	mongodb "github.com/pooja-dev3/erp-lead-admin-sub000/internal/infrastructure/db/mongo"
	redisdb "github.com/pooja-dev3/erp-lead-admin-sub000/internal/infrastructure/db/redis"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/infrastructure/export"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/infrastructure/queue"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/pkg/config"
	"github.com/pooja-dev3/erp-lead-admin-sub000/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func serve(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Development(), Service: "console"})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		return err
	}
	defer rdb.Close()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	settingsRepo := mongodb.NewSettingsRepository(db)
	if err := settingsRepo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("settings indexes: %w", err)
	}

	sessions := redisdb.NewSessionStore(rdb)
	notificationStore := redisdb.NewNotificationStore(rdb, cfg.SessionTTL)
	exportStore := redisdb.NewExportStore(rdb, cfg.Export.TTL)
	dedup := redisdb.NewDedupChecker(rdb, cfg.Export.TTL)

	// --- Backend ---
	client := backend.New(backend.Config{BaseURL: cfg.Backend.URL, Timeout: cfg.Backend.Timeout}, logger.Component("backend"))

	// --- Services ---
	notify := service.NewNotificationService(notificationStore, cfg.NotificationTTL, log)
	flights := service.NewSuperseder()

	auth := service.NewAuthService(client, sessions, notificationStore, cfg.JWTSecret, cfg.SessionTTL, log)
	client.OnUnauthorized(auth.Invalidate)

	exports := service.NewExportService(client, client, exportStore, dedup, export.NewXLSXRenderer(), notify, log)
	dispatcher := queue.NewDispatcher(cfg.Export.Workers, exports, logger.Component("exports"))
	exports.UseQueue(dispatcher)
	dispatcher.Start(ctx)

	settings := service.NewSettingsService(settingsRepo, notify, log)

	svc := api.Services{
		Auth:          auth,
		Notifications: notify,
		Companies:     service.NewCompanyService(client, notify, flights, log),
		CompanyAdmins: service.NewCompanyAdminService(client, notify, flights, log),
		Employees:     service.NewEmployeeService(client, notify, flights, log),
		Visitors:      service.NewVisitorService(client, notify, flights, log),
		Leads:         service.NewLeadService(client, client, notify, flights, log),
		Badges:        service.NewBadgeService(client, notify, flights, log),
		Audit:         service.NewAuditService(client, notify, flights, log),
		Dashboard:     service.NewDashboardService(client, notify, log),
		Exports:       exports,
		Settings:      settings,
	}

	// Saved settings drive notification lifetimes and default page sizes.
	for _, p := range []interface {
		UsePreferences(service.PreferenceLookup)
	}{
		notify, svc.Companies, svc.CompanyAdmins, svc.Employees,
		svc.Visitors, svc.Leads, svc.Badges, svc.Audit,
	} {
		p.UsePreferences(settings)
	}

	e := api.NewRouter(svc, api.Options{
		JWTSecret:   cfg.JWTSecret,
		Development: cfg.Development(),
		Log:         log,
		Mongo:       db,
		Redis:       rdb,
		Backend:     client.Ping,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.Backend.URL).Str("version", version).Msg("console listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
