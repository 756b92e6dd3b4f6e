package sweeper_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakegate/ledgersync/internal/domain"
	"github.com/stakegate/ledgersync/internal/events"
	"github.com/stakegate/ledgersync/internal/ledger"
	"github.com/stakegate/ledgersync/internal/logger"
	"github.com/stakegate/ledgersync/internal/mocks"
	"github.com/stakegate/ledgersync/internal/store/schema"
	"github.com/stakegate/ledgersync/internal/sweeper"
)

const (
	testEscrowAddr = "addr1escrow000"
	testAssetID    = "d5e6bf0500378d4f0da4e8dde6becec7621cd8cbf5cbb9b87013d4cc4d794e4654"
)

// testEscrowMocks contains all the mocks needed for testing the sweeper
type testEscrowMocks struct {
	ctrl       *gomock.Controller
	store      *mocks.MockStore
	ledger     *mocks.MockLedgerClient
	watcher    *mocks.MockWatcher
	settlement *mocks.MockSettlementClient
	publisher  *mocks.MockPublisher
	clock      *mocks.MockClock
	sweeper    sweeper.EscrowSweeper
	now        time.Time
}

// setupEscrowSweeper creates all the mocks and the sweeper for testing
func setupEscrowSweeper(t *testing.T) *testEscrowMocks {
	err := logger.Initialize(logger.Config{Debug: true})
	require.NoError(t, err)

	ctrl := gomock.NewController(t)

	tm := &testEscrowMocks{
		ctrl:       ctrl,
		store:      mocks.NewMockStore(ctrl),
		ledger:     mocks.NewMockLedgerClient(ctrl),
		watcher:    mocks.NewMockWatcher(ctrl),
		settlement: mocks.NewMockSettlementClient(ctrl),
		publisher:  mocks.NewMockPublisher(ctrl),
		clock:      mocks.NewMockClock(ctrl),
		now:        time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC),
	}

	config := &sweeper.EscrowSweeperConfig{
		WaitWindow:    domain.SWAP_WAIT_WINDOW,
		SweepInterval: time.Minute,
		SettleLease:   2 * time.Minute,
		BatchSize:     100,
	}

	tm.sweeper = sweeper.NewEscrowSweeper(
		config,
		tm.store,
		tm.ledger,
		tm.watcher,
		tm.settlement,
		tm.publisher,
		tm.clock,
	)

	tm.clock.EXPECT().Now().Return(tm.now).AnyTimes()
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Second).AnyTimes()

	return tm
}

// agedSwap returns a swap created age before the test's fixed now
func (tm *testEscrowMocks) agedSwap(id string, state schema.SwapState, age time.Duration) schema.Swap {
	return schema.Swap{
		ID:                  id,
		State:               state,
		AssetID:             testAssetID,
		CollectionID:        testAssetID[:56],
		EscrowAddress:       testEscrowAddr,
		CounterpartyAddress: "addr1counterparty",
		CreatedAt:           tm.now.Add(-age),
	}
}

func escrowUTXOs(txHash, address, unit string) *ledger.TransactionUTXOs {
	return &ledger.TransactionUTXOs{
		Hash: txHash,
		Outputs: []ledger.UTXOOutput{
			{Address: address, Amount: []ledger.UTXOAmount{{Unit: unit, Quantity: "1"}}},
		},
	}
}

func TestEscrowSweeper_Name(t *testing.T) {
	tm := setupEscrowSweeper(t)
	defer tm.ctrl.Finish()

	assert.Equal(t, "escrow-sweeper", tm.sweeper.Name())
}

func TestRunSweepCycle_CutoffIsWaitWindow(t *testing.T) {
	tm := setupEscrowSweeper(t)
	defer tm.ctrl.Finish()

	// A swap 500,000 ms old sits inside the wait window, so the store
	// query must exclude it via the cutoff
	wantCutoff := tm.now.Add(-domain.SWAP_WAIT_WINDOW)
	tm.store.EXPECT().
		ListSwapsCreatedBefore(gomock.Any(), wantCutoff, 100).
		Return(nil, nil)

	err := tm.sweeper.RunSweepCycle(context.Background())
	require.NoError(t, err)
}

func TestRunSweepCycle_WithdrawnSwapUntouched(t *testing.T) {
	tm := setupEscrowSweeper(t)
	defer tm.ctrl.Finish()

	// No legal transition leaves withdrawn, so the sweep must leave the
	// swap alone entirely
	swap := tm.agedSwap("swap-done", schema.SwapStateWithdrawn, 1_000_000*time.Millisecond)
	tm.store.EXPECT().
		ListSwapsCreatedBefore(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]schema.Swap{swap}, nil)

	err := tm.sweeper.RunSweepCycle(context.Background())
	require.NoError(t, err)
}

func TestRunSweepCycle_DepositedSwapIsSettled(t *testing.T) {
	tm := setupEscrowSweeper(t)
	defer tm.ctrl.Finish()

	swap := tm.agedSwap("swap-1", schema.SwapStateDeposited, 1_000_000*time.Millisecond)
	deposit := strings.Repeat("aa", 32)
	swap.DepositTxHash = &deposit
	withdrawHash := strings.Repeat("bb", 32)

	tm.store.EXPECT().
		ListSwapsCreatedBefore(gomock.Any(), gomock.Any(), 100).
		Return([]schema.Swap{swap}, nil)
	tm.store.EXPECT().
		ClaimSwapForSettlement(gomock.Any(), "swap-1", tm.now, 2*time.Minute).
		Return(true, nil)
	tm.settlement.EXPECT().
		SubmitWithdrawal(gomock.Any(), "swap-1", testAssetID).
		Return(withdrawHash, nil)
	tm.store.EXPECT().
		MarkSwapWithdrawn(gomock.Any(), "swap-1", withdrawHash).
		Return(nil)
	tm.publisher.EXPECT().
		PublishSwapEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *events.SwapEvent) error {
			assert.Equal(t, events.SwapWithdrawn, event.EventType)
			assert.Equal(t, "swap-1", event.SwapID)
			assert.Equal(t, withdrawHash, event.TxHash)
			assert.NotEmpty(t, event.EventID)
			return nil
		})

	err := tm.sweeper.RunSweepCycle(context.Background())
	require.NoError(t, err)
}

func TestRunSweepCycle_AbandonedSwapIsDeleted(t *testing.T) {
	tm := setupEscrowSweeper(t)
	defer tm.ctrl.Finish()

	// Neither leg ever completed and no deposit was even claimed
	swap := tm.agedSwap("swap-2", schema.SwapStateAwaitingDeposit, 1_000_000*time.Millisecond)

	tm.store.EXPECT().
		ListSwapsCreatedBefore(gomock.Any(), gomock.Any(), 100).
		Return([]schema.Swap{swap}, nil)
	tm.store.EXPECT().
		DeleteSwap(gomock.Any(), "swap-2").
		Return(nil)
	tm.publisher.EXPECT().
		PublishSwapEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *events.SwapEvent) error {
			assert.Equal(t, events.SwapExpired, event.EventType)
			assert.Empty(t, event.TxHash)
			return nil
		})

	err := tm.sweeper.RunSweepCycle(context.Background())
	require.NoError(t, err)
}

func TestRunSweepCycle_ClaimedDepositConfirmedAndSettled(t *testing.T) {
	tm := setupEscrowSweeper(t)
	defer tm.ctrl.Finish()

	swap := tm.agedSwap("swap-3", schema.SwapStateAwaitingDeposit, 1_000_000*time.Millisecond)
	claimed := strings.Repeat("cc", 32)
	swap.ClaimedDepositTxHash = &claimed
	withdrawHash := strings.Repeat("dd", 32)

	tm.store.EXPECT().
		ListSwapsCreatedBefore(gomock.Any(), gomock.Any(), 100).
		Return([]schema.Swap{swap}, nil)
	tm.watcher.EXPECT().
		Confirm(gomock.Any(), claimed).
		Return(&ledger.Transaction{Hash: claimed}, nil)
	tm.ledger.EXPECT().
		GetTransactionUTXOs(gomock.Any(), claimed).
		Return(escrowUTXOs(claimed, testEscrowAddr, testAssetID), nil)
	tm.store.EXPECT().
		MarkSwapDeposited(gomock.Any(), "swap-3", claimed).
		Return(true, nil)
	tm.store.EXPECT().
		ClaimSwapForSettlement(gomock.Any(), "swap-3", tm.now, 2*time.Minute).
		Return(true, nil)
	tm.settlement.EXPECT().
		SubmitWithdrawal(gomock.Any(), "swap-3", testAssetID).
		Return(withdrawHash, nil)
	tm.store.EXPECT().
		MarkSwapWithdrawn(gomock.Any(), "swap-3", withdrawHash).
		Return(nil)

	eventTypes := make([]events.SwapEventType, 0, 2)
	tm.publisher.EXPECT().
		PublishSwapEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *events.SwapEvent) error {
			eventTypes = append(eventTypes, event.EventType)
			return nil
		}).
		Times(2)

	err := tm.sweeper.RunSweepCycle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []events.SwapEventType{events.SwapDeposited, events.SwapWithdrawn}, eventTypes)
}

func TestRunSweepCycle_UnconfirmedClaimExpires(t *testing.T) {
	tm := setupEscrowSweeper(t)
	defer tm.ctrl.Finish()

	swap := tm.agedSwap("swap-4", schema.SwapStateAwaitingDeposit, 1_000_000*time.Millisecond)
	claimed := strings.Repeat("ee", 32)
	swap.ClaimedDepositTxHash = &claimed

	tm.store.EXPECT().
		ListSwapsCreatedBefore(gomock.Any(), gomock.Any(), 100).
		Return([]schema.Swap{swap}, nil)
	tm.watcher.EXPECT().
		Confirm(gomock.Any(), claimed).
		Return(nil, domain.ErrConfirmTimeout)
	tm.store.EXPECT().
		DeleteSwap(gomock.Any(), "swap-4").
		Return(nil)
	tm.publisher.EXPECT().
		PublishSwapEvent(gomock.Any(), gomock.Any()).
		Return(nil)

	err := tm.sweeper.RunSweepCycle(context.Background())
	require.NoError(t, err)
}

func TestRunSweepCycle_DepositMissingEscrowPaymentExpires(t *testing.T) {
	tm := setupEscrowSweeper(t)
	defer tm.ctrl.Finish()

	swap := tm.agedSwap("swap-5", schema.SwapStateAwaitingDeposit, 1_000_000*time.Millisecond)
	claimed := strings.Repeat("ff", 32)
	swap.ClaimedDepositTxHash = &claimed

	tm.store.EXPECT().
		ListSwapsCreatedBefore(gomock.Any(), gomock.Any(), 100).
		Return([]schema.Swap{swap}, nil)
	tm.watcher.EXPECT().
		Confirm(gomock.Any(), claimed).
		Return(&ledger.Transaction{Hash: claimed}, nil)
	// The confirmed transaction pays somebody else entirely
	tm.ledger.EXPECT().
		GetTransactionUTXOs(gomock.Any(), claimed).
		Return(escrowUTXOs(claimed, "addr1somebodyelse", testAssetID), nil)
	tm.store.EXPECT().
		DeleteSwap(gomock.Any(), "swap-5").
		Return(nil)
	tm.publisher.EXPECT().
		PublishSwapEvent(gomock.Any(), gomock.Any()).
		Return(nil)

	err := tm.sweeper.RunSweepCycle(context.Background())
	require.NoError(t, err)
}

func TestRunSweepCycle_LeaseHeldElsewhereSkips(t *testing.T) {
	tm := setupEscrowSweeper(t)
	defer tm.ctrl.Finish()

	swap := tm.agedSwap("swap-6", schema.SwapStateDeposited, 1_000_000*time.Millisecond)

	tm.store.EXPECT().
		ListSwapsCreatedBefore(gomock.Any(), gomock.Any(), 100).
		Return([]schema.Swap{swap}, nil)
	tm.store.EXPECT().
		ClaimSwapForSettlement(gomock.Any(), "swap-6", tm.now, 2*time.Minute).
		Return(false, nil)

	// No settlement submission, no state change, no event
	err := tm.sweeper.RunSweepCycle(context.Background())
	require.NoError(t, err)
}

func TestRunSweepCycle_FailuresIsolatedPerSwap(t *testing.T) {
	tm := setupEscrowSweeper(t)
	defer tm.ctrl.Finish()

	broken := tm.agedSwap("swap-7", schema.SwapStateDeposited, 1_000_000*time.Millisecond)
	healthy := tm.agedSwap("swap-8", schema.SwapStateDeposited, 1_000_000*time.Millisecond)
	withdrawHash := strings.Repeat("ab", 32)

	tm.store.EXPECT().
		ListSwapsCreatedBefore(gomock.Any(), gomock.Any(), 100).
		Return([]schema.Swap{broken, healthy}, nil)

	tm.store.EXPECT().
		ClaimSwapForSettlement(gomock.Any(), "swap-7", tm.now, 2*time.Minute).
		Return(true, nil)
	tm.settlement.EXPECT().
		SubmitWithdrawal(gomock.Any(), "swap-7", testAssetID).
		Return("", errors.New("settlement unavailable"))

	tm.store.EXPECT().
		ClaimSwapForSettlement(gomock.Any(), "swap-8", tm.now, 2*time.Minute).
		Return(true, nil)
	tm.settlement.EXPECT().
		SubmitWithdrawal(gomock.Any(), "swap-8", testAssetID).
		Return(withdrawHash, nil)
	tm.store.EXPECT().
		MarkSwapWithdrawn(gomock.Any(), "swap-8", withdrawHash).
		Return(nil)
	tm.publisher.EXPECT().
		PublishSwapEvent(gomock.Any(), gomock.Any()).
		Return(nil)

	// The first swap's failure must not abort the cycle
	err := tm.sweeper.RunSweepCycle(context.Background())
	require.NoError(t, err)
}

func TestRunSweepCycle_PublishFailureDoesNotFailSweep(t *testing.T) {
	tm := setupEscrowSweeper(t)
	defer tm.ctrl.Finish()

	swap := tm.agedSwap("swap-9", schema.SwapStateAwaitingDeposit, 1_000_000*time.Millisecond)

	tm.store.EXPECT().
		ListSwapsCreatedBefore(gomock.Any(), gomock.Any(), 100).
		Return([]schema.Swap{swap}, nil)
	tm.store.EXPECT().
		DeleteSwap(gomock.Any(), "swap-9").
		Return(nil)
	tm.publisher.EXPECT().
		PublishSwapEvent(gomock.Any(), gomock.Any()).
		Return(errors.New("nats down"))

	err := tm.sweeper.RunSweepCycle(context.Background())
	require.NoError(t, err)
}

func TestEscrowSweeper_StartAndStop(t *testing.T) {
	tm := setupEscrowSweeper(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()

	tm.store.EXPECT().
		ListSwapsCreatedBefore(gomock.Any(), gomock.Any(), 100).
		Return(nil, nil).
		MinTimes(1)
	tm.clock.EXPECT().After(time.Minute).DoAndReturn(func(time.Duration) <-chan time.Time {
		ch := make(chan time.Time, 1)
		go func() {
			time.Sleep(10 * time.Millisecond)
			ch <- time.Now()
		}()
		return ch
	}).AnyTimes()

	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = tm.sweeper.Stop(ctx)
	}()

	err := tm.sweeper.Start(ctx)
	require.NoError(t, err)
}
