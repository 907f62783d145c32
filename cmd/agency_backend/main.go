package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/agency_ledger_app/internal/adapters/database/pgsql"
	"github.com/SscSPs/agency_ledger_app/internal/adapters/memory"
	"github.com/SscSPs/agency_ledger_app/internal/core/services"
	"github.com/SscSPs/agency_ledger_app/internal/dto"
	"github.com/SscSPs/agency_ledger_app/internal/handlers"
	"github.com/SscSPs/agency_ledger_app/internal/middleware"
	"github.com/SscSPs/agency_ledger_app/internal/platform/config"
	"github.com/SscSPs/agency_ledger_app/internal/utils"
	"github.com/SscSPs/agency_ledger_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if err := dto.RegisterValidators(); err != nil {
		logger.Error("Failed to register validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store := memory.NewStore()
	if cfg.SeedDemoData {
		memory.SeedDemoData(store)
		logger.Info("Demo data seeded")
	}
	repos := store.Provider()

	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, logger)
		cancel()
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer database.ClosePgxPool(dbPool, logger)

		if cfg.RunMigrations {
			if err := runMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
				logger.Error("Database migrations failed", slog.String("error", err.Error()))
				os.Exit(1)
			}
		}
		repos = pgsql.WithLedgerRepositories(dbPool, repos)
		logger.Info("Ledgers are stored in PostgreSQL")
	}

	container := services.NewServiceContainer(cfg, repos)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	r.Use(cors.New(corsConfig))
	r.Use(middleware.PosthogMiddleware(posthogClient))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, container, repos.Health, posthogClient); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
