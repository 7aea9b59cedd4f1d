package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	sqliteadapter "github.com/appfinanceiro/ledger_view_app/internal/adapters/database/sqlite"
	"github.com/appfinanceiro/ledger_view_app/internal/adapters/jsonstore"
	portsrepo "github.com/appfinanceiro/ledger_view_app/internal/core/ports/repositories"
	"github.com/appfinanceiro/ledger_view_app/internal/core/services"
	"github.com/appfinanceiro/ledger_view_app/internal/handlers"
	"github.com/appfinanceiro/ledger_view_app/internal/middleware"
	"github.com/appfinanceiro/ledger_view_app/pkg/config"
	"github.com/appfinanceiro/ledger_view_app/pkg/database"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServer() error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	repos, cleanup, err := buildRepositories(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	serviceContainer := services.NewServiceContainer(repos, cfg.DefaultRetentionPercent)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("set trusted proxies: %w", err)
	}

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("parse rate limit %q: %w", cfg.RateLimit, err)
	}
	limiterInstance := limiter.New(memory.NewStore(), rate)

	handlers.RegisterRoutes(r, cfg, serviceContainer, limiterInstance)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		return fmt.Errorf("server failed to run: %w", err)
	}
	return nil
}

// buildRepositories picks the persistence backend: the external JSON store
// when STORE_URL is set, the local SQLite database otherwise. The returned
// cleanup closes whatever resources were opened.
func buildRepositories(cfg *config.Config, logger *slog.Logger) (*portsrepo.RepositoryProvider, func(), error) {
	if cfg.StoreURL != "" {
		logger.Info("Using external JSON store", slog.String("url", cfg.StoreURL))
		client := jsonstore.NewClient(cfg.StoreURL)
		return &portsrepo.RepositoryProvider{
			MovementRepo: jsonstore.NewMovementRepository(client),
			SupplierRepo: jsonstore.NewSupplierRepository(client),
		}, func() {}, nil
	}

	logger.Info("Using local SQLite store", slog.String("path", cfg.SQLitePath))
	db, err := database.NewSQLiteDB(context.Background(), cfg.SQLitePath)
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := sqliteadapter.RunMigrations(cfg.SQLitePath); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("apply migrations: %w", err)
	}
	logger.Info("Database migrations applied.")

	return &portsrepo.RepositoryProvider{
		MovementRepo: sqliteadapter.NewMovementRepository(db),
		SupplierRepo: sqliteadapter.NewSupplierRepository(db),
	}, func() { db.Close() }, nil
}
