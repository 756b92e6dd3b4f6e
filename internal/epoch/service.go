package epoch

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/stakegate/ledgersync/internal/adapter"
	"github.com/stakegate/ledgersync/internal/ledger"
	"github.com/stakegate/ledgersync/internal/logger"
	"github.com/stakegate/ledgersync/internal/store"
	"github.com/stakegate/ledgersync/internal/store/schema"
)

// Status describes where the chain currently sits inside an epoch.
type Status struct {
	Epoch          uint64  `json:"epoch"`
	StartTime      int64   `json:"start_time"`
	EndTime        int64   `json:"end_time"`
	ElapsedPercent float64 `json:"elapsed_percent"`
}

//go:generate mockgen -source=service.go -destination=../mocks/epoch_service.go -package=mocks -mock_names=Service=MockService

// Service serves epoch boundaries from the database cache, falling back
// to the upstream only when every cached row has expired.
type Service interface {
	// CurrentEpoch returns the active epoch, fetching and caching it
	// when no cached row is still live
	CurrentEpoch(ctx context.Context) (*schema.Epoch, error)
	// Status returns the active epoch with elapsed progress
	Status(ctx context.Context) (*Status, error)
}

type service struct {
	store  store.Store
	ledger ledger.Client
	clock  adapter.Clock
}

// NewService creates an epoch cache service
func NewService(st store.Store, lc ledger.Client, clock adapter.Clock) Service {
	return &service{
		store:  st,
		ledger: lc,
		clock:  clock,
	}
}

func (s *service) CurrentEpoch(ctx context.Context) (*schema.Epoch, error) {
	now := s.clock.Now().UnixMilli()

	cached, err := s.store.GetActiveEpoch(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to read epoch cache: %w", err)
	}
	if cached != nil {
		return cached, nil
	}

	info, err := s.ledger.GetLatestEpoch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest epoch: %w", err)
	}

	fresh := &schema.Epoch{
		Epoch:     info.Epoch,
		StartTime: NormalizeMillis(info.StartTime),
		EndTime:   NormalizeMillis(info.EndTime),
	}
	if err := s.store.InsertEpoch(ctx, fresh); err != nil {
		return nil, fmt.Errorf("failed to cache epoch %d: %w", info.Epoch, err)
	}

	logger.InfoCtx(ctx, "Cached fresh epoch",
		zap.Uint64("epoch", fresh.Epoch),
		zap.Int64("end_time", fresh.EndTime),
	)
	return fresh, nil
}

func (s *service) Status(ctx context.Context) (*Status, error) {
	current, err := s.CurrentEpoch(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UnixMilli()
	elapsed := float64(0)
	if span := current.EndTime - current.StartTime; span > 0 {
		elapsed = float64(now-current.StartTime) / float64(span) * 100
		if elapsed < 0 {
			elapsed = 0
		}
		if elapsed > 100 {
			elapsed = 100
		}
	}

	return &Status{
		Epoch:          current.Epoch,
		StartTime:      current.StartTime,
		EndTime:        current.EndTime,
		ElapsedPercent: elapsed,
	}, nil
}

// NormalizeMillis widens a timestamp to 13-digit millisecond precision.
// Upstream epochs arrive second-grained; anything shorter than 13 digits
// is padded with trailing zeros rather than multiplied, so a value that
// is already millisecond-grained passes through unchanged.
func NormalizeMillis(ts int64) int64 {
	if ts <= 0 {
		return ts
	}
	for ts < 1_000_000_000_000 {
		ts *= 10
	}
	return ts
}
