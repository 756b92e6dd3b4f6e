package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/stakegate/ledgersync/internal/domain"
	"github.com/stakegate/ledgersync/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a
// GORM database connection. Zero settings fall back to defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// CreateSwap inserts a new swap record
func (s *pgStore) CreateSwap(ctx context.Context, swap *schema.Swap) error {
	if err := s.db.WithContext(ctx).Create(swap).Error; err != nil {
		return fmt.Errorf("failed to create swap: %w", err)
	}
	return nil
}

// GetSwap retrieves a swap by ID
func (s *pgStore) GetSwap(ctx context.Context, id string) (*schema.Swap, error) {
	var swap schema.Swap
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&swap).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSwapNotFound, id)
		}
		return nil, fmt.Errorf("failed to get swap: %w", err)
	}
	return &swap, nil
}

// ListSwapsCreatedBefore lists swaps whose creation time is at or before
// the cutoff, oldest first
func (s *pgStore) ListSwapsCreatedBefore(ctx context.Context, cutoff time.Time, limit int) ([]schema.Swap, error) {
	var swaps []schema.Swap
	q := s.db.WithContext(ctx).
		Where("created_at <= ?", cutoff).
		Order("created_at ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&swaps).Error; err != nil {
		return nil, fmt.Errorf("failed to list swaps: %w", err)
	}
	return swaps, nil
}

// MarkSwapDeposited records the confirmed deposit hash and advances
// state. The state guard makes re-application a no-op.
func (s *pgStore) MarkSwapDeposited(ctx context.Context, id string, txHash string) (bool, error) {
	result := s.db.WithContext(ctx).Model(&schema.Swap{}).
		Where("id = ? AND state = ?", id, schema.SwapStateAwaitingDeposit).
		Updates(map[string]interface{}{
			"state":           schema.SwapStateDeposited,
			"deposit_tx_hash": txHash,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to mark swap deposited: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// ClaimSwapForSettlement takes the settlement lease for a deposited
// swap. The conditional update is the guard that makes concurrent sweep
// triggers safe: only one claimant can move settling_at forward.
func (s *pgStore) ClaimSwapForSettlement(ctx context.Context, id string, now time.Time, lease time.Duration) (bool, error) {
	staleBefore := now.Add(-lease)
	result := s.db.WithContext(ctx).Model(&schema.Swap{}).
		Where("id = ? AND state = ? AND withdraw_tx_hash IS NULL AND (settling_at IS NULL OR settling_at < ?)",
			id, schema.SwapStateDeposited, staleBefore).
		Update("settling_at", now)
	if result.Error != nil {
		return false, fmt.Errorf("failed to claim swap for settlement: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// MarkSwapWithdrawn records the withdrawal hash and advances state
func (s *pgStore) MarkSwapWithdrawn(ctx context.Context, id string, txHash string) error {
	result := s.db.WithContext(ctx).Model(&schema.Swap{}).
		Where("id = ? AND state = ?", id, schema.SwapStateDeposited).
		Updates(map[string]interface{}{
			"state":            schema.SwapStateWithdrawn,
			"withdraw_tx_hash": txHash,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark swap withdrawn: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrSwapNotFound, id)
	}
	return nil
}

// DeleteSwap removes an abandoned swap record
func (s *pgStore) DeleteSwap(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&schema.Swap{}).Error; err != nil {
		return fmt.Errorf("failed to delete swap: %w", err)
	}
	return nil
}

// GetActiveEpoch returns the cached epoch whose end time is still in the
// future, or nil when no such row exists
func (s *pgStore) GetActiveEpoch(ctx context.Context, nowMillis int64) (*schema.Epoch, error) {
	var epoch schema.Epoch
	err := s.db.WithContext(ctx).
		Where("end_time > ?", nowMillis).
		Order("end_time DESC").
		First(&epoch).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active epoch: %w", err)
	}
	return &epoch, nil
}

// InsertEpoch appends a fresh epoch row
func (s *pgStore) InsertEpoch(ctx context.Context, epoch *schema.Epoch) error {
	if err := s.db.WithContext(ctx).Create(epoch).Error; err != nil {
		return fmt.Errorf("failed to insert epoch: %w", err)
	}
	return nil
}

// SaveEntrySnapshot upserts the detailed entry snapshot for a poll
func (s *pgStore) SaveEntrySnapshot(ctx context.Context, snapshot *schema.EntrySnapshot) error {
	if err := s.db.WithContext(ctx).Save(snapshot).Error; err != nil {
		return fmt.Errorf("failed to save entry snapshot: %w", err)
	}
	return nil
}

// GetEntrySnapshot retrieves a poll's entry snapshot
func (s *pgStore) GetEntrySnapshot(ctx context.Context, pollID string) (*schema.EntrySnapshot, error) {
	var snapshot schema.EntrySnapshot
	err := s.db.WithContext(ctx).Where("poll_id = ?", pollID).First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get entry snapshot: %w", err)
	}
	return &snapshot, nil
}

// FinalizeEntrySnapshot truncates the snapshot detail, preserving only
// TotalEntries
func (s *pgStore) FinalizeEntrySnapshot(ctx context.Context, pollID string, now time.Time) error {
	snapshot, err := s.GetEntrySnapshot(ctx, pollID)
	if err != nil {
		return err
	}
	if snapshot == nil {
		return fmt.Errorf("%w: entry snapshot %s", domain.ErrNotFound, pollID)
	}
	if snapshot.Status == schema.EntrySnapshotStatusFinalized {
		return fmt.Errorf("%w: %s", domain.ErrSnapshotFinalized, pollID)
	}

	result := s.db.WithContext(ctx).Model(&schema.EntrySnapshot{}).
		Where("poll_id = ? AND status = ?", pollID, schema.EntrySnapshotStatusOpen).
		Updates(map[string]interface{}{
			"status":           schema.EntrySnapshotStatusFinalized,
			"fungible_holders": nil,
			"used_units":       nil,
			"entries":          nil,
			"finalized_at":     now,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to finalize entry snapshot: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrSnapshotFinalized, pollID)
	}
	return nil
}
