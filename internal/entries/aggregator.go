package entries

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/stakegate/ledgersync/internal/adapter"
	"github.com/stakegate/ledgersync/internal/config"
	"github.com/stakegate/ledgersync/internal/domain"
	"github.com/stakegate/ledgersync/internal/logger"
	"github.com/stakegate/ledgersync/internal/ownership"
	"github.com/stakegate/ledgersync/internal/store"
	"github.com/stakegate/ledgersync/internal/store/schema"
)

// Entry is one weighted participation slot in a poll or giveaway.
type Entry struct {
	StakeKey string `json:"stake_key,omitempty"`
	Address  string `json:"address,omitempty"`
	// Source is the asset or unit that earned the entry
	Source string `json:"source"`
	Weight uint64 `json:"weight"`
}

// FungibleHolder records one holder's fungible position and the entries
// it earned.
type FungibleHolder struct {
	AssetID  string `json:"asset_id"`
	StakeKey string `json:"stake_key,omitempty"`
	Address  string `json:"address,omitempty"`
	Quantity uint64 `json:"quantity"`
	Entries  uint64 `json:"entries"`
}

// EntrySet is the full output of one aggregation pass. UsedUnits guards
// non-fungible dedup: a unit already present contributes no further
// entries no matter which wallet holds it.
type EntrySet struct {
	FungibleHolders []FungibleHolder
	UsedUnits       map[string]struct{}
	Entries         []Entry
	// TotalEntries sums entry weights, not rows: a weight-N holder
	// counts N times in the draw
	TotalEntries int64
}

//go:generate mockgen -source=aggregator.go -destination=../mocks/entries_aggregator.go -package=mocks -mock_names=Aggregator=MockAggregator

// Aggregator builds and persists weighted entry snapshots
type Aggregator interface {
	// BuildEntrySet aggregates the configured fungible assets and
	// non-fungible units into a weighted, deduplicated entry list
	BuildEntrySet(ctx context.Context) (*EntrySet, error)
	// SaveSnapshot persists a built entry set for a poll
	SaveSnapshot(ctx context.Context, pollID string, set *EntrySet) error
	// Finalize truncates a snapshot's detail, keeping only the total
	Finalize(ctx context.Context, pollID string) error
}

type aggregator struct {
	config   config.EntriesConfig
	resolver ownership.Resolver
	store    store.Store
	json     adapter.JSON
	clock    adapter.Clock
}

// NewAggregator creates a weighted entry aggregator
func NewAggregator(
	cfg config.EntriesConfig,
	resolver ownership.Resolver,
	st store.Store,
	jsonAdapter adapter.JSON,
	clock adapter.Clock,
) Aggregator {
	return &aggregator{
		config:   cfg,
		resolver: resolver,
		store:    st,
		json:     jsonAdapter,
		clock:    clock,
	}
}

func (a *aggregator) BuildEntrySet(ctx context.Context) (*EntrySet, error) {
	set := &EntrySet{
		UsedUnits: make(map[string]struct{}),
	}

	for _, rule := range a.config.FungibleAssets {
		if err := a.aggregateFungible(ctx, rule, set); err != nil {
			return nil, err
		}
	}

	for _, unit := range a.config.Collections {
		if err := a.aggregateNonFungible(ctx, unit, set); err != nil {
			return nil, err
		}
	}

	for _, entry := range set.Entries {
		set.TotalEntries += int64(entry.Weight)
	}

	logger.InfoCtx(ctx, "Built entry set",
		zap.Int("fungible_holders", len(set.FungibleHolders)),
		zap.Int("used_units", len(set.UsedUnits)),
		zap.Int64("total_entries", set.TotalEntries),
	)
	return set, nil
}

// aggregateFungible grants each holder floor(quantity / UnitsPerEntry)
// entries for one configured fungible asset.
func (a *aggregator) aggregateFungible(ctx context.Context, rule config.FungibleAssetRule, set *EntrySet) error {
	assetID := domain.AssetID(rule.AssetID)
	if !assetID.Valid() {
		return fmt.Errorf("invalid fungible asset rule %q", rule.AssetID)
	}
	if rule.UnitsPerEntry == 0 {
		return fmt.Errorf("fungible asset rule %s has zero units per entry", rule.AssetID)
	}

	owners, err := a.resolver.ResolveOwners(ctx, assetID)
	if err != nil {
		return fmt.Errorf("failed to resolve holders of %s: %w", rule.AssetID, err)
	}

	for _, owner := range owners {
		weight := owner.Quantity / rule.UnitsPerEntry
		holder := FungibleHolder{
			AssetID:  rule.AssetID,
			StakeKey: string(owner.StakeKey),
			Quantity: owner.Quantity,
			Entries:  weight,
		}
		if len(owner.Addresses) > 0 {
			holder.Address = owner.Addresses[0]
		}
		set.FungibleHolders = append(set.FungibleHolders, holder)

		if weight == 0 {
			continue
		}
		entry := Entry{
			StakeKey: holder.StakeKey,
			Address:  holder.Address,
			Source:   rule.AssetID,
			Weight:   weight,
		}
		set.Entries = append(set.Entries, entry)
	}
	return nil
}

// aggregateNonFungible grants one entry per distinct unit. The dedup set
// is checked before the append and updated with it, so a unit sitting in
// two wallets within one pass still yields exactly one entry.
func (a *aggregator) aggregateNonFungible(ctx context.Context, unit string, set *EntrySet) error {
	assetID := domain.AssetID(unit)
	if !assetID.Valid() {
		return fmt.Errorf("invalid collection unit %q", unit)
	}

	owners, err := a.resolver.ResolveOwners(ctx, assetID)
	if err != nil {
		return fmt.Errorf("failed to resolve holders of %s: %w", unit, err)
	}

	for _, owner := range owners {
		if _, used := set.UsedUnits[unit]; used {
			break
		}
		entry := Entry{
			StakeKey: string(owner.StakeKey),
			Source:   unit,
			Weight:   1,
		}
		if len(owner.Addresses) > 0 {
			entry.Address = owner.Addresses[0]
		}
		set.Entries = append(set.Entries, entry)
		set.UsedUnits[unit] = struct{}{}
	}
	return nil
}

func (a *aggregator) SaveSnapshot(ctx context.Context, pollID string, set *EntrySet) error {
	holders, err := a.json.Marshal(set.FungibleHolders)
	if err != nil {
		return fmt.Errorf("failed to marshal fungible holders: %w", err)
	}

	units := make([]string, 0, len(set.UsedUnits))
	for unit := range set.UsedUnits {
		units = append(units, unit)
	}
	sort.Strings(units)
	usedUnits, err := a.json.Marshal(units)
	if err != nil {
		return fmt.Errorf("failed to marshal used units: %w", err)
	}

	entryList, err := a.json.Marshal(set.Entries)
	if err != nil {
		return fmt.Errorf("failed to marshal entries: %w", err)
	}

	snapshot := &schema.EntrySnapshot{
		PollID:          pollID,
		Status:          schema.EntrySnapshotStatusOpen,
		FungibleHolders: holders,
		UsedUnits:       usedUnits,
		Entries:         entryList,
		TotalEntries:    set.TotalEntries,
		CreatedAt:       a.clock.Now(),
	}
	if err := a.store.SaveEntrySnapshot(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to save entry snapshot for poll %s: %w", pollID, err)
	}
	return nil
}

func (a *aggregator) Finalize(ctx context.Context, pollID string) error {
	if err := a.store.FinalizeEntrySnapshot(ctx, pollID, a.clock.Now()); err != nil {
		return err
	}
	logger.InfoCtx(ctx, "Finalized entry snapshot", zap.String("poll_id", pollID))
	return nil
}
