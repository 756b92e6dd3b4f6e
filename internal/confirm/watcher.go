package confirm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/stakegate/ledgersync/internal/adapter"
	"github.com/stakegate/ledgersync/internal/domain"
	"github.com/stakegate/ledgersync/internal/ledger"
	"github.com/stakegate/ledgersync/internal/logger"
)

const (
	DEFAULT_POLL_INTERVAL = 1 * time.Second
	DEFAULT_MAX_ATTEMPTS  = 600
)

// Watcher resolves a transaction hash to a block-included record,
// polling until finality, a fatal error, or the attempt ceiling.
//
//go:generate mockgen -source=watcher.go -destination=../mocks/confirm_watcher.go -package=mocks -mock_names=Watcher=MockWatcher
type Watcher interface {
	// Confirm blocks until the transaction is included in a block.
	// It returns domain.ErrConfirmTimeout once the attempt ceiling is
	// exhausted and propagates any non-lookup error immediately.
	Confirm(ctx context.Context, txHash string) (*ledger.Transaction, error)
}

type watcher struct {
	ledger       ledger.Client
	clock        adapter.Clock
	pollInterval time.Duration
	maxAttempts  int
}

// NewWatcher creates a confirmation watcher. Zero interval or attempts
// fall back to the defaults.
func NewWatcher(lc ledger.Client, clock adapter.Clock, pollInterval time.Duration, maxAttempts int) Watcher {
	if pollInterval <= 0 {
		pollInterval = DEFAULT_POLL_INTERVAL
	}
	if maxAttempts <= 0 {
		maxAttempts = DEFAULT_MAX_ATTEMPTS
	}
	return &watcher{
		ledger:       lc,
		clock:        clock,
		pollInterval: pollInterval,
		maxAttempts:  maxAttempts,
	}
}

// Confirm polls the ledger for the transaction until it reports a
// containing block. A not-found lookup is treated as transient: a
// freshly submitted transaction may not have propagated to the indexer
// yet. Any other error is fatal and returned without retry.
func (w *watcher) Confirm(ctx context.Context, txHash string) (*ledger.Transaction, error) {
	for attempt := 1; attempt <= w.maxAttempts; attempt++ {
		tx, err := w.ledger.GetTransaction(ctx, txHash)
		switch {
		case err == nil && tx.Confirmed():
			// Success path, no extra delay
			return tx, nil
		case err == nil:
			// Known but not yet in a block
		case errors.Is(err, domain.ErrNotFound):
			logger.DebugCtx(ctx, "Transaction not indexed yet",
				zap.String("tx_hash", txHash),
				zap.Int("attempt", attempt),
			)
		default:
			return nil, fmt.Errorf("failed to look up transaction %s: %w", txHash, err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-w.clock.After(w.pollInterval):
		}
	}

	return nil, fmt.Errorf("%w: %s after %d attempts", domain.ErrConfirmTimeout, txHash, w.maxAttempts)
}
