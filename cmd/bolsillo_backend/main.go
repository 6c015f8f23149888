package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/bolsillo-app/bolsillo_backend/internal/adapters/connectivity"
	"github.com/bolsillo-app/bolsillo_backend/internal/adapters/database/pgsql"
	"github.com/bolsillo-app/bolsillo_backend/internal/adapters/localstore"
	portssvc "github.com/bolsillo-app/bolsillo_backend/internal/core/ports/services"
	"github.com/bolsillo-app/bolsillo_backend/internal/core/services"
	"github.com/bolsillo-app/bolsillo_backend/internal/dto"
	"github.com/bolsillo-app/bolsillo_backend/internal/handlers"
	"github.com/bolsillo-app/bolsillo_backend/internal/middleware"
	"github.com/bolsillo-app/bolsillo_backend/pkg/config"
	"github.com/bolsillo-app/bolsillo_backend/pkg/database"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Device-local persistence: offline queue, drafts, reference cache, PIN vault.
	store, err := localstore.NewStore(cfg.LocalDataDir)
	if err != nil {
		logger.Error("Failed to open local store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	queue := localstore.NewQueue(store)
	drafts := localstore.NewDraftStore(store)
	cache := localstore.NewReferenceCache(store)
	vault := localstore.NewPINVault(store)

	// Connectivity: start pessimistic, let the prober flip us online.
	monitor := connectivity.NewMonitor(false)
	prober := connectivity.NewProber(monitor, cfg.ProbeURL, cfg.ProbeInterval, logger)
	go prober.Run(ctx)

	// Repositories
	accountRepo := pgsql.NewAccountRepository(dbPool)
	movementRepo := pgsql.NewMovementRepository(dbPool)
	categoryRepo := pgsql.NewCategoryRepository(dbPool)
	rateRepo := pgsql.NewExchangeRateRepository(dbPool)

	// Services
	rateService := services.NewExchangeRateService(rateRepo)
	movementService := services.NewMovementService(movementRepo, rateService, queue, monitor, cache)
	accountService := services.NewAccountService(accountRepo, movementRepo, rateService, cache)
	categoryService := services.NewCategoryService(categoryRepo, cache)
	syncService := services.NewSyncService(queue, movementRepo, monitor, logger)
	reportingService := services.NewReportingService(movementRepo, categoryRepo)
	pinService := services.NewPINService(vault)

	// Auto-sync on reconnect with a non-empty queue.
	stopSync := syncService.Start(ctx)
	defer stopSync()

	container := &portssvc.ServiceContainer{
		Account:      accountService,
		Movement:     movementService,
		Category:     categoryService,
		ExchangeRate: rateService,
		Sync:         syncService,
		Reporting:    reportingService,
		StrongAuth:   pinService,
		Connectivity: monitor,
		Drafts:       drafts,
	}

	dto.RegisterCustomValidators()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memorystore.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations over a temporary
// database/sql connection using the pgx stdlib driver.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}
	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
