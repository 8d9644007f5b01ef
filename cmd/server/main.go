package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"card_ledger/internal/config"
	"card_ledger/internal/handlers"
	"card_ledger/internal/logging"
	"card_ledger/internal/metrics"
	"card_ledger/internal/repository"
	"card_ledger/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("failed to load config:", err)
	}

	logger := logging.SetupLogger(cfg.LogLevel)

	gin.SetMode(gin.ReleaseMode)

	store, closeStore, err := openStore(cfg, logger)
	if err != nil {
		logger.Error("failed to open storage", "backend", cfg.Storage, "err", err)
		os.Exit(1)
	}
	defer closeStore()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	ledgerMetrics := metrics.NewLedgerMetrics(reg)

	ledger := service.NewLedgerService(store, logger, ledgerMetrics)
	query := service.NewQueryService(store, logger)
	handler := handlers.NewCardHTTPHandler(ledger, query)

	r := gin.New()
	r.Use(gin.Recovery(), handlers.RequestID(), handlers.RequestLogger(logger), ledgerMetrics.Middleware())
	handler.RegisterRoutes(r)
	r.GET("/metrics", metrics.Handler(reg))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Starting server", "port", cfg.Port, "storage", cfg.Storage)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Error("Server forced to shutdown", "err", err)
	}
	logger.Info("Server exiting")
}

func openStore(cfg *config.Config, logger *slog.Logger) (service.CardStore, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch cfg.Storage {
	case config.StorageMemory:
		logger.Warn("Using in-memory storage; data is lost on exit")
		return repository.NewMemoryRepository(), func() {}, nil

	case config.StorageMySQL:
		db, err := repository.OpenMySQL(repository.MySQLOptions{
			DSN:             cfg.MySQL.DSN(),
			MaxOpenConns:    cfg.MySQL.MaxOpenConns,
			MaxIdleConns:    cfg.MySQL.MaxIdleConns,
			ConnMaxLifetime: cfg.MySQL.ConnMaxLifetime,
			LogLevel:        cfg.MySQL.LogLevel,
			ConnectAttempts: 10,
			RetryInterval:   2 * time.Second,
		}, logger)
		if err != nil {
			return nil, nil, err
		}
		repo := repository.NewCardGormRepository(db, logger)
		if cfg.AutoMigrate {
			if err := repo.Migrate(ctx); err != nil {
				return nil, nil, err
			}
		}
		closeFn := func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}
		return repo, closeFn, nil

	default:
		poolConfig, err := pgxpool.ParseConfig(cfg.DBURL)
		if err != nil {
			return nil, nil, fmt.Errorf("parse db config: %w", err)
		}
		poolConfig.MaxConns = int32(cfg.DBMaxConns)
		pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		if cfg.AutoMigrate {
			if err := repository.MigratePG(ctx, pool); err != nil {
				pool.Close()
				return nil, nil, err
			}
		}
		return repository.NewCardPGRepository(pool, logger), pool.Close, nil
	}
}
