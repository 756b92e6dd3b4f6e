package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/stakegate/ledgersync/internal/adapter"
	"github.com/stakegate/ledgersync/internal/api/rest"
	"github.com/stakegate/ledgersync/internal/api/server"
	"github.com/stakegate/ledgersync/internal/config"
	"github.com/stakegate/ledgersync/internal/confirm"
	"github.com/stakegate/ledgersync/internal/entries"
	"github.com/stakegate/ledgersync/internal/epoch"
	"github.com/stakegate/ledgersync/internal/escrow"
	"github.com/stakegate/ledgersync/internal/events"
	"github.com/stakegate/ledgersync/internal/ledger"
	"github.com/stakegate/ledgersync/internal/logger"
	"github.com/stakegate/ledgersync/internal/ownership"
	"github.com/stakegate/ledgersync/internal/ratelimit"
	"github.com/stakegate/ledgersync/internal/store"
	"github.com/stakegate/ledgersync/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting LedgerSync API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	httpClient := adapter.NewHTTPClient(cfg.Ledger.HTTPTimeout)
	settlementHTTP := adapter.NewHTTPClient(cfg.Settlement.HTTPTimeout)

	// Initialize rate limit proxy
	redisClient := adapter.NewRedisClient(cfg.RateLimiter.RedisAddr, cfg.RateLimiter.RedisPassword, cfg.RateLimiter.RedisDB)
	proxy, err := ratelimit.NewProxy(cfg.RateLimiter, redisClient, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create rate limit proxy", zap.Error(err))
	}
	defer proxy.Close()

	// Wire domain services
	ledgerClient := ledger.NewClient(cfg.Ledger, httpClient, proxy)
	watcher := confirm.NewWatcher(ledgerClient, clock, cfg.Escrow.ConfirmInterval, cfg.Escrow.ConfirmMaxAttempts)
	resolver := ownership.NewResolver(ledgerClient, cfg.Ownership, cfg.Ledger.PageSize)
	epochService := epoch.NewService(dataStore, ledgerClient, clock)
	aggregator := entries.NewAggregator(cfg.Entries, resolver, dataStore, jsonAdapter, clock)
	settlementClient := escrow.NewSettlementClient(cfg.Settlement, settlementHTTP, proxy)

	// Connect to NATS for swap events
	publisher, err := events.NewPublisher(cfg.NATS, adapter.NewNatsJetStream(), jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err))
	}
	defer publisher.Close()

	// The API runs sweep passes on demand only; the sweeper binary owns
	// the periodic loop
	escrowSweeper := sweeper.NewEscrowSweeper(
		&sweeper.EscrowSweeperConfig{
			WaitWindow:    cfg.Escrow.WaitWindow,
			SweepInterval: cfg.Escrow.SweepInterval,
			SettleLease:   cfg.Escrow.SettleLease,
			BatchSize:     cfg.Escrow.BatchSize,
		},
		dataStore, ledgerClient, watcher, settlementClient, publisher, clock,
	)

	handler := rest.NewHandler(resolver, epochService, aggregator, escrowSweeper, clock)

	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth:         cfg.Auth,
	}

	srv := server.New(serverConfig, handler)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
