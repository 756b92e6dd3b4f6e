package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/stakegate/ledgersync/internal/adapter"
	"github.com/stakegate/ledgersync/internal/confirm"
	"github.com/stakegate/ledgersync/internal/domain"
	"github.com/stakegate/ledgersync/internal/escrow"
	"github.com/stakegate/ledgersync/internal/events"
	"github.com/stakegate/ledgersync/internal/ledger"
	"github.com/stakegate/ledgersync/internal/logger"
	"github.com/stakegate/ledgersync/internal/store"
	"github.com/stakegate/ledgersync/internal/store/schema"
)

const (
	DEFAULT_SWEEP_INTERVAL = 15 * time.Minute // Time to sleep between sweep cycles
	DEFAULT_SWEEP_BATCH    = 100
)

// EscrowSweeper extends Sweeper with an on-demand sweep pass, used by the
// API's sweep trigger endpoint
type EscrowSweeper interface {
	Sweeper
	RunSweepCycle(ctx context.Context) error
}

// EscrowSweeperConfig holds configuration for the escrow sweeper
type EscrowSweeperConfig struct {
	WaitWindow    time.Duration // How long a swap may sit without a confirmed deposit
	SweepInterval time.Duration // Time between sweep cycles
	SettleLease   time.Duration // How long a settlement claim stays exclusive
	BatchSize     int           // Swaps to examine per cycle
}

// escrowSweeper implements the Sweeper interface for swap escrow settlement
type escrowSweeper struct {
	config     *EscrowSweeperConfig
	store      store.Store
	ledger     ledger.Client
	watcher    confirm.Watcher
	settlement escrow.SettlementClient
	publisher  events.Publisher
	clock      adapter.Clock
	running    atomic.Bool
	stopChan   chan struct{}
	stoppedCh  chan struct{}
}

// NewEscrowSweeper creates a new escrow sweeper
func NewEscrowSweeper(
	config *EscrowSweeperConfig,
	st store.Store,
	lc ledger.Client,
	watcher confirm.Watcher,
	settlement escrow.SettlementClient,
	publisher events.Publisher,
	clock adapter.Clock,
) EscrowSweeper {
	if config.WaitWindow <= 0 {
		config.WaitWindow = domain.SWAP_WAIT_WINDOW
	}
	if config.SweepInterval <= 0 {
		config.SweepInterval = DEFAULT_SWEEP_INTERVAL
	}
	if config.BatchSize <= 0 {
		config.BatchSize = DEFAULT_SWEEP_BATCH
	}
	return &escrowSweeper{
		config:     config,
		store:      st,
		ledger:     lc,
		watcher:    watcher,
		settlement: settlement,
		publisher:  publisher,
		clock:      clock,
		stopChan:   make(chan struct{}),
		stoppedCh:  make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *escrowSweeper) Name() string {
	return "escrow-sweeper"
}

// Start begins the sweeper's main loop
func (s *escrowSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh) // Signal that we've stopped
	}()

	logger.InfoCtx(ctx, "Starting escrow sweeper",
		zap.Duration("wait_window", s.config.WaitWindow),
		zap.Duration("sweep_interval", s.config.SweepInterval),
		zap.Int("batch_size", s.config.BatchSize),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Escrow sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Escrow sweeper stop requested")
			return nil
		default:
			if err := s.RunSweepCycle(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err)
				}
			}
			if !s.sleep(ctx, s.config.SweepInterval) {
				return nil // Context canceled during sleep
			}
		}
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *escrowSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping escrow sweeper")

	// Signal stop to the main loop
	close(s.stopChan)

	// Wait for main loop to exit, but respect context cancellation
	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Escrow sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Escrow sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// sleep waits for the given duration or until the context is canceled or
// stop is requested. Returns false when interrupted.
func (s *escrowSweeper) sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-s.clock.After(d):
		return true
	case <-s.stopChan:
		return false
	case <-ctx.Done():
		return false
	}
}

// RunSweepCycle examines every swap older than the wait window and drives
// each to its next state. Failures on one swap never block the others.
func (s *escrowSweeper) RunSweepCycle(ctx context.Context) error {
	startTime := s.clock.Now()
	cutoff := startTime.Add(-s.config.WaitWindow)

	swaps, err := s.store.ListSwapsCreatedBefore(ctx, cutoff, s.config.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to list swaps for sweeping: %w", err)
	}

	if len(swaps) == 0 {
		return nil
	}

	logger.InfoCtx(ctx, "Sweeping swaps past the wait window", zap.Int("count", len(swaps)))

	var settled, expired, failed int
	for i := range swaps {
		swap := &swaps[i]
		outcome, err := s.sweepSwap(ctx, swap)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			failed++
			logger.ErrorCtx(ctx, err, zap.String("swap_id", swap.ID))
			continue
		}
		switch outcome {
		case schema.SwapStateWithdrawn:
			settled++
		case escrow.SwapStateExpired:
			expired++
		}
	}

	logger.InfoCtx(ctx, "Sweep cycle complete",
		zap.Int("settled", settled),
		zap.Int("expired", expired),
		zap.Int("failed", failed),
		zap.Duration("elapsed", s.clock.Since(startTime)),
	)
	return nil
}

// sweepSwap advances a single swap and returns the state it ended in.
func (s *escrowSweeper) sweepSwap(ctx context.Context, swap *schema.Swap) (schema.SwapState, error) {
	state := escrow.EffectiveState(swap)

	if state == schema.SwapStateAwaitingDeposit {
		next, err := s.resolveDeposit(ctx, swap)
		if err != nil {
			return state, err
		}
		state = next
	}

	if state == schema.SwapStateDeposited {
		return s.settle(ctx, swap)
	}
	if state == escrow.SwapStateExpired {
		return state, s.expire(ctx, swap)
	}
	return state, nil
}

// resolveDeposit decides whether an awaiting swap actually received its
// deposit. A claimed hash gets one confirmation-and-verification pass;
// anything else past the wait window is expired.
func (s *escrowSweeper) resolveDeposit(ctx context.Context, swap *schema.Swap) (schema.SwapState, error) {
	if swap.ClaimedDepositTxHash == nil || *swap.ClaimedDepositTxHash == "" {
		return escrow.Transition(schema.SwapStateAwaitingDeposit, escrow.EventExpired)
	}

	txHash := *swap.ClaimedDepositTxHash
	if _, err := s.watcher.Confirm(ctx, txHash); err != nil {
		if errors.Is(err, domain.ErrConfirmTimeout) || errors.Is(err, domain.ErrNotFound) {
			logger.WarnCtx(ctx, "Claimed deposit never confirmed, expiring swap",
				zap.String("swap_id", swap.ID),
				zap.String("tx_hash", txHash),
			)
			return escrow.Transition(schema.SwapStateAwaitingDeposit, escrow.EventExpired)
		}
		return schema.SwapStateAwaitingDeposit, fmt.Errorf("failed to confirm deposit for swap %s: %w", swap.ID, err)
	}

	utxos, err := s.ledger.GetTransactionUTXOs(ctx, txHash)
	if err != nil {
		return schema.SwapStateAwaitingDeposit, fmt.Errorf("failed to fetch deposit UTXOs for swap %s: %w", swap.ID, err)
	}
	if !depositPaysEscrow(utxos, swap.EscrowAddress, swap.AssetID) {
		logger.WarnCtx(ctx, "Claimed deposit does not pay the escrow address, expiring swap",
			zap.String("swap_id", swap.ID),
			zap.String("tx_hash", txHash),
		)
		return escrow.Transition(schema.SwapStateAwaitingDeposit, escrow.EventExpired)
	}

	updated, err := s.store.MarkSwapDeposited(ctx, swap.ID, txHash)
	if err != nil {
		return schema.SwapStateAwaitingDeposit, fmt.Errorf("failed to mark swap %s deposited: %w", swap.ID, err)
	}
	if updated {
		swap.DepositTxHash = &txHash
		s.publish(ctx, swap, events.SwapDeposited, txHash)
	}
	return escrow.Transition(schema.SwapStateAwaitingDeposit, escrow.EventDepositConfirmed)
}

// settle submits the withdrawal under the settlement lease.
func (s *escrowSweeper) settle(ctx context.Context, swap *schema.Swap) (schema.SwapState, error) {
	claimed, err := s.store.ClaimSwapForSettlement(ctx, swap.ID, s.clock.Now(), s.config.SettleLease)
	if err != nil {
		return schema.SwapStateDeposited, fmt.Errorf("failed to claim swap %s for settlement: %w", swap.ID, err)
	}
	if !claimed {
		// Another sweep holds the lease or already settled this swap
		return schema.SwapStateDeposited, nil
	}

	txHash, err := s.settlement.SubmitWithdrawal(ctx, swap.ID, swap.AssetID)
	if err != nil {
		return schema.SwapStateDeposited, err
	}

	if err := s.store.MarkSwapWithdrawn(ctx, swap.ID, txHash); err != nil {
		return schema.SwapStateDeposited, fmt.Errorf("failed to mark swap %s withdrawn: %w", swap.ID, err)
	}
	s.publish(ctx, swap, events.SwapWithdrawn, txHash)
	return escrow.Transition(schema.SwapStateDeposited, escrow.EventWithdrawalSubmitted)
}

// expire deletes an abandoned swap record.
func (s *escrowSweeper) expire(ctx context.Context, swap *schema.Swap) error {
	if err := s.store.DeleteSwap(ctx, swap.ID); err != nil {
		return fmt.Errorf("failed to delete expired swap %s: %w", swap.ID, err)
	}
	s.publish(ctx, swap, events.SwapExpired, "")
	return nil
}

func (s *escrowSweeper) publish(ctx context.Context, swap *schema.Swap, eventType events.SwapEventType, txHash string) {
	if s.publisher == nil {
		return
	}
	event := &events.SwapEvent{
		EventID:   ulid.MustNewDefault(s.clock.Now()).String(),
		EventType: eventType,
		SwapID:    swap.ID,
		AssetID:   swap.AssetID,
		TxHash:    txHash,
		Timestamp: s.clock.Now(),
	}
	if err := s.publisher.PublishSwapEvent(ctx, event); err != nil {
		// Event delivery is best effort; the swap state is already durable
		logger.ErrorCtx(ctx, err, zap.String("swap_id", swap.ID), zap.String("event_type", string(eventType)))
	}
}

// depositPaysEscrow reports whether any output of the transaction pays the
// escrow address with a positive quantity of the escrowed asset.
func depositPaysEscrow(utxos *ledger.TransactionUTXOs, escrowAddress, assetID string) bool {
	for _, out := range utxos.Outputs {
		if out.Address != escrowAddress {
			continue
		}
		for _, amt := range out.Amount {
			if amt.Unit == assetID && amt.Quantity != "" && amt.Quantity != "0" {
				return true
			}
		}
	}
	return false
}
