package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SANTHOSHG-WEB/disaster/internal/cache"
	"github.com/SANTHOSHG-WEB/disaster/internal/config"
	"github.com/SANTHOSHG-WEB/disaster/internal/domain"
	"github.com/SANTHOSHG-WEB/disaster/internal/handler"
	"github.com/SANTHOSHG-WEB/disaster/internal/repository/memory"
	"github.com/SANTHOSHG-WEB/disaster/internal/repository/postgres"
	"github.com/SANTHOSHG-WEB/disaster/internal/service"
)

func main() {
	logOpts := &slog.HandlerOptions{Level: slog.LevelInfo}
	logger := slog.New(slog.NewTextHandler(os.Stdout, logOpts))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load configuration", "error", err)
		os.Exit(1)
	}

	var (
		users        domain.UserRepository
		progressRepo domain.ProgressStore
		contacts     domain.EmergencyContactRepository
		shelters     domain.ShelterRepository
		certificates domain.CertificateRepository
	)

	if cfg.DatabaseURL != "" {
		db, err := postgres.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			slog.Error("connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := db.Migrate(context.Background()); err != nil {
			slog.Error("run migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("database migrations applied")

		users = db.Users()
		progressRepo = db.Progress()
		contacts = db.Contacts()
		shelters = db.Shelters()
		certificates = db.Certificates()
	} else {
		// Mock mode: everything lives in memory. Useful for local
		// development and demos without a database.
		slog.Warn("DATABASE_URL not set, running in mock mode with in-memory storage")
		users = memory.NewUserRepository()
		progressRepo = memory.NewProgressStore()
		contacts = memory.NewEmergencyContactRepository()
		shelters = memory.NewShelterRepository()
		certificates = memory.NewCertificateRepository()
	}

	localCache, err := cache.NewByEngine(cfg.CacheEngine, cfg.CachePath)
	if err != nil {
		slog.Error("open progress cache", "engine", cfg.CacheEngine, "error", err)
		os.Exit(1)
	}
	slog.Info("progress cache ready", "engine", cfg.CacheEngine, "path", cfg.CachePath)

	authService := service.NewAuthService(users, cfg.JWTSecret, cfg.BcryptCost)
	sessionManager := service.NewSessionManager(localCache, progressRepo)
	contactService := service.NewContactService(contacts)
	shelterService := service.NewShelterService(shelters)
	certificateService := service.NewCertificateService(certificates, sessionManager)
	alertProvider := service.NewStaticAlertProvider()

	// Seed the shelter directory (idempotent).
	if err := shelterService.SeedPredefined(context.Background()); err != nil {
		slog.Error("seed shelters", "error", err)
		os.Exit(1)
	}
	slog.Info("shelter directory seeded")

	// Load the static alert set for the configured region so the alerts
	// endpoint has content without a live feed.
	alertProvider.SeedPredefined(cfg.AlertRegion)
	slog.Info("static alerts loaded", "region", cfg.AlertRegion)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, authService, sessionManager, contactService, shelterService, certificateService, alertProvider, cfg.AlertRegion, cfg.CookieSecure)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.SecurityHeaders(mux),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}

	// Let in-flight progress pushes land before exit.
	sessionManager.Wait()
	slog.Info("server stopped")
}
