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
	"github.com/stakegate/ledgersync/internal/config"
	"github.com/stakegate/ledgersync/internal/confirm"
	"github.com/stakegate/ledgersync/internal/escrow"
	"github.com/stakegate/ledgersync/internal/events"
	"github.com/stakegate/ledgersync/internal/ledger"
	"github.com/stakegate/ledgersync/internal/logger"
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
	cfg, err := config.LoadSweeperConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "sweeper",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Escrow Sweeper")

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

	// Initialize store
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

	// Wire the ledger client and confirmation watcher
	ledgerClient := ledger.NewClient(cfg.Ledger, httpClient, proxy)
	watcher := confirm.NewWatcher(ledgerClient, clock, cfg.Escrow.ConfirmInterval, cfg.Escrow.ConfirmMaxAttempts)
	settlementClient := escrow.NewSettlementClient(cfg.Settlement, settlementHTTP, proxy)

	// Connect to NATS for swap events
	publisher, err := events.NewPublisher(cfg.NATS, adapter.NewNatsJetStream(), jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err))
	}
	defer publisher.Close()

	// Initialize escrow sweeper
	sweeperConfig := &sweeper.EscrowSweeperConfig{
		WaitWindow:    cfg.Escrow.WaitWindow,
		SweepInterval: cfg.Escrow.SweepInterval,
		SettleLease:   cfg.Escrow.SettleLease,
		BatchSize:     cfg.Escrow.BatchSize,
	}
	escrowSweeper := sweeper.NewEscrowSweeper(sweeperConfig, dataStore, ledgerClient, watcher, settlementClient, publisher, clock)

	logger.InfoCtx(ctx, "Initialized escrow sweeper",
		zap.Duration("wait_window", cfg.Escrow.WaitWindow),
		zap.Duration("sweep_interval", cfg.Escrow.SweepInterval),
		zap.Int("batch_size", cfg.Escrow.BatchSize),
	)

	// Start the sweeper in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := escrowSweeper.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Cancel context to stop the sweeper
	cancel()

	// Give the sweeper time to shut down gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()

	if err := escrowSweeper.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.InfoCtx(shutdownCtx, "Sweeper stopped")
}
