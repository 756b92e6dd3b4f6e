package store

import (
	"context"
	"time"

	"github.com/stakegate/ledgersync/internal/store/schema"
)

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateSwap inserts a new swap record
	CreateSwap(ctx context.Context, swap *schema.Swap) error
	// GetSwap retrieves a swap by ID; returns domain.ErrSwapNotFound when missing
	GetSwap(ctx context.Context, id string) (*schema.Swap, error)
	// ListSwapsCreatedBefore lists swaps whose creation time is at or
	// before the cutoff, in backing-store order
	ListSwapsCreatedBefore(ctx context.Context, cutoff time.Time, limit int) ([]schema.Swap, error)
	// MarkSwapDeposited records the confirmed deposit hash and advances
	// state; a no-op returning false if the swap already left awaiting_deposit
	MarkSwapDeposited(ctx context.Context, id string, txHash string) (bool, error)
	// ClaimSwapForSettlement takes the settlement lease for a deposited
	// swap; returns false when another sweep holds a live lease or the
	// withdrawal is already recorded
	ClaimSwapForSettlement(ctx context.Context, id string, now time.Time, lease time.Duration) (bool, error)
	// MarkSwapWithdrawn records the withdrawal hash and advances state
	MarkSwapWithdrawn(ctx context.Context, id string, txHash string) error
	// DeleteSwap removes an abandoned swap record
	DeleteSwap(ctx context.Context, id string) error

	// GetActiveEpoch returns the cached epoch whose end time is still in
	// the future, or nil when the cache is stale
	GetActiveEpoch(ctx context.Context, nowMillis int64) (*schema.Epoch, error)
	// InsertEpoch appends a fresh epoch row; rows are never updated in place
	InsertEpoch(ctx context.Context, epoch *schema.Epoch) error

	// SaveEntrySnapshot upserts the detailed entry snapshot for a poll
	SaveEntrySnapshot(ctx context.Context, snapshot *schema.EntrySnapshot) error
	// GetEntrySnapshot retrieves a poll's entry snapshot
	GetEntrySnapshot(ctx context.Context, pollID string) (*schema.EntrySnapshot, error)
	// FinalizeEntrySnapshot truncates the snapshot detail, preserving
	// only TotalEntries; returns domain.ErrSnapshotFinalized when the
	// snapshot is already finalized
	FinalizeEntrySnapshot(ctx context.Context, pollID string, now time.Time) error
}
