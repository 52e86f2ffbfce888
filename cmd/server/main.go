package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"car-api-go/internal/config"
	"car-api-go/internal/constants"
	"car-api-go/internal/controller"
	"car-api-go/internal/handlers"
	"car-api-go/internal/repository"
	"car-api-go/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var logger *zap.Logger
	if cfg.LogLevel == "debug" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info(fmt.Sprintf("%s Starting Car API server", constants.APIName()),
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.LogLevel),
		zap.String("store_backend", cfg.Store.Backend),
	)

	ctx := context.Background()
	carStore, cleanup, err := openStore(ctx, cfg.Store, logger)
	if err != nil {
		logger.Fatal("Failed to open car store", zap.Error(err))
	}
	defer cleanup()

	if cfg.Store.SeedFixtures {
		if err := carStore.Reset(ctx); err != nil {
			logger.Fatal("Failed to seed fixtures", zap.Error(err))
		}
		logger.Info(fmt.Sprintf("%s Seeded fixture cars", constants.APIName()))
	}

	carController := controller.NewCarController(carStore, logger)
	carHandler := handlers.NewCarHandler(carController)
	healthHandler := handlers.NewHealthHandler()

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := handlers.NewRouter(carHandler, healthHandler, logger)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info(fmt.Sprintf("%s Server listening", constants.APIName()), zap.String("address", addr))

	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// openStore returns the configured backend and a function releasing it
func openStore(ctx context.Context, cfg config.StoreConfig, logger *zap.Logger) (store.CarStore, func(), error) {
	if cfg.Backend != config.BackendPostgres {
		return store.NewMemoryStore(), func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create database connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}
	logger.Info(fmt.Sprintf("%s Connected to database", constants.APIName()))

	repo := repository.NewCarRepository(pool)
	if err := repo.EnsureTable(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return repo, pool.Close, nil
}
