package ownership

import (
	"context"
	"fmt"
	"strconv"

	"github.com/stakegate/ledgersync/internal/config"
	"github.com/stakegate/ledgersync/internal/domain"
	"github.com/stakegate/ledgersync/internal/ledger"
)

// Resolver aggregates paginated raw holdings into owners grouped by
// stake key. Output is a read-only view and is never persisted.
//
//go:generate mockgen -source=resolver.go -destination=../mocks/ownership_resolver.go -package=mocks -mock_names=Resolver=MockResolver
type Resolver interface {
	// ResolveOwners walks every holder page of the asset
	ResolveOwners(ctx context.Context, assetID domain.AssetID) ([]domain.Owner, error)

	// ResolveOwnersPage resolves a single 1-indexed holder page
	ResolveOwnersPage(ctx context.Context, assetID domain.AssetID, page int) ([]domain.Owner, error)
}

type resolver struct {
	ledger          ledger.Client
	pageSize        int
	mergeByStakeKey bool
}

// NewResolver creates an ownership resolver
func NewResolver(lc ledger.Client, cfg config.OwnershipConfig, pageSize int) Resolver {
	if pageSize <= 0 {
		pageSize = domain.DEFAULT_PAGE_SIZE
	}
	return &resolver{
		ledger:          lc,
		pageSize:        pageSize,
		mergeByStakeKey: cfg.MergeByStakeKey,
	}
}

// ResolveOwners streams holder tuples page by page, sequentially, until
// a page comes back shorter than the page size. Holder iteration order
// follows the upstream's own ascending order; no independent sort is
// applied.
func (r *resolver) ResolveOwners(ctx context.Context, assetID domain.AssetID) ([]domain.Owner, error) {
	var owners []domain.Owner
	for page := 1; ; page++ {
		holders, err := r.ledger.GetAssetHolders(ctx, assetID, page, r.pageSize, domain.ORDER_ASC)
		if err != nil {
			return nil, err
		}

		resolved, err := r.resolveHolders(ctx, holders)
		if err != nil {
			return nil, err
		}
		owners = append(owners, resolved...)

		// A short page is the sole termination signal; the upstream
		// has no total-count field
		if len(holders) < r.pageSize {
			break
		}
	}

	if r.mergeByStakeKey {
		owners = mergeByStakeKey(owners)
	}
	return owners, nil
}

// ResolveOwnersPage resolves one holder page for the paginated HTTP surface
func (r *resolver) ResolveOwnersPage(ctx context.Context, assetID domain.AssetID, page int) ([]domain.Owner, error) {
	holders, err := r.ledger.GetAssetHolders(ctx, assetID, page, r.pageSize, domain.ORDER_ASC)
	if err != nil {
		return nil, err
	}

	owners, err := r.resolveHolders(ctx, holders)
	if err != nil {
		return nil, err
	}

	if r.mergeByStakeKey {
		owners = mergeByStakeKey(owners)
	}
	return owners, nil
}

// resolveHolders reverse-resolves each tuple's stake key and coerces the
// quantity. One owner row is emitted per (address, quantity) pair;
// addresses sharing a stake key are not coalesced here.
func (r *resolver) resolveHolders(ctx context.Context, holders []ledger.AssetHolder) ([]domain.Owner, error) {
	owners := make([]domain.Owner, 0, len(holders))
	for _, holder := range holders {
		info, err := r.ledger.ResolveStakeKey(ctx, holder.Address)
		if err != nil {
			return nil, err
		}

		quantity, err := strconv.ParseUint(holder.Quantity, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse quantity %q for address %s: %w", holder.Quantity, holder.Address, err)
		}

		stakeKey := domain.StakeKey("")
		if info.StakeKey != nil {
			stakeKey = domain.StakeKey(*info.StakeKey)
		}

		owners = append(owners, domain.Owner{
			StakeKey:  stakeKey,
			Quantity:  quantity,
			Addresses: []string{holder.Address},
		})
	}
	return owners, nil
}

// mergeByStakeKey coalesces owner rows sharing a stake key, summing
// quantities and unioning address sets. First-seen order is preserved.
func mergeByStakeKey(owners []domain.Owner) []domain.Owner {
	index := make(map[domain.StakeKey]int, len(owners))
	merged := make([]domain.Owner, 0, len(owners))

	for _, owner := range owners {
		i, seen := index[owner.StakeKey]
		if !seen {
			index[owner.StakeKey] = len(merged)
			merged = append(merged, owner)
			continue
		}

		merged[i].Quantity += owner.Quantity
		for _, addr := range owner.Addresses {
			if !containsAddress(merged[i].Addresses, addr) {
				merged[i].Addresses = append(merged[i].Addresses, addr)
			}
		}
	}
	return merged
}

func containsAddress(addresses []string, address string) bool {
	for _, a := range addresses {
		if a == address {
			return true
		}
	}
	return false
}
