package ledger

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/stakegate/ledgersync/internal/adapter"
	"github.com/stakegate/ledgersync/internal/config"
	"github.com/stakegate/ledgersync/internal/domain"
	"github.com/stakegate/ledgersync/internal/ratelimit"
)

// providerName identifies the ledger upstream in the rate limit proxy
const providerName = "ledger"

// Client defines the ledger indexing API contract. Pagination is
// 1-indexed with a fixed page size; a page shorter than the page size is
// the sole termination signal. Pages must be requested sequentially.
//
//go:generate mockgen -source=client.go -destination=../mocks/ledger_client.go -package=mocks -mock_names=Client=MockLedgerClient
type Client interface {
	// GetAssetHolders lists raw (address, quantity) tuples for one asset page
	GetAssetHolders(ctx context.Context, assetID domain.AssetID, page int, pageSize int, order string) ([]AssetHolder, error)

	// ResolveStakeKey reverse-resolves a payment address to its stake key
	ResolveStakeKey(ctx context.Context, address string) (*AddressInfo, error)

	// GetPoolDelegators lists delegators of a stake pool page by page
	GetPoolDelegators(ctx context.Context, poolID string, page int, pageSize int, order string) ([]Delegator, error)

	// GetTransaction looks up a transaction by hash
	GetTransaction(ctx context.Context, txHash string) (*Transaction, error)

	// GetTransactionUTXOs returns the UTXO breakdown of a transaction
	GetTransactionUTXOs(ctx context.Context, txHash string) (*TransactionUTXOs, error)

	// GetLatestEpoch returns the current epoch boundaries
	GetLatestEpoch(ctx context.Context) (*EpochInfo, error)

	// GetAssetInfo resolves asset identity with metadata fallbacks
	GetAssetInfo(ctx context.Context, assetID domain.AssetID) (*domain.AssetInfo, error)
}

type client struct {
	baseURL    string
	projectID  string
	httpClient adapter.HTTPClient
	proxy      ratelimit.Proxy
}

// NewClient creates a new ledger indexing API client. All requests are
// routed through the rate limit proxy; a nil proxy executes directly.
func NewClient(cfg config.LedgerConfig, httpClient adapter.HTTPClient, proxy ratelimit.Proxy) Client {
	return &client{
		baseURL:    cfg.APIURL,
		projectID:  cfg.ProjectID,
		httpClient: httpClient,
		proxy:      proxy,
	}
}

func (c *client) headers() map[string]string {
	if c.projectID == "" {
		return nil
	}
	return map[string]string{"project_id": c.projectID}
}

// get performs a rate-limited GET and maps upstream bad-identifier
// responses to domain.ErrNotFound. The identifier is echoed in the
// wrapped error so request boundaries can surface it.
func get[T any](ctx context.Context, c *client, path string, identifier string) (T, error) {
	return ratelimit.Request(ctx, c.proxy, providerName, func(ctx context.Context) (T, error) {
		var result T
		err := c.httpClient.Get(ctx, c.baseURL+path, c.headers(), &result)
		if err != nil {
			var statusErr *adapter.StatusError
			if errors.As(err, &statusErr) &&
				(statusErr.StatusCode == http.StatusBadRequest || statusErr.StatusCode == http.StatusNotFound) {
				return result, fmt.Errorf("%w: %s", domain.ErrNotFound, identifier)
			}
			return result, err
		}
		return result, nil
	})
}

// GetAssetHolders lists raw (address, quantity) tuples for one asset page
func (c *client) GetAssetHolders(ctx context.Context, assetID domain.AssetID, page int, pageSize int, order string) ([]AssetHolder, error) {
	path := fmt.Sprintf("/assets/%s/addresses?page=%d&count=%d&order=%s", assetID, page, pageSize, order)
	return get[[]AssetHolder](ctx, c, path, assetID.String())
}

// ResolveStakeKey reverse-resolves a payment address to its stake key
func (c *client) ResolveStakeKey(ctx context.Context, address string) (*AddressInfo, error) {
	path := fmt.Sprintf("/addresses/%s", address)
	return get[*AddressInfo](ctx, c, path, address)
}

// GetPoolDelegators lists delegators of a stake pool page by page
func (c *client) GetPoolDelegators(ctx context.Context, poolID string, page int, pageSize int, order string) ([]Delegator, error) {
	path := fmt.Sprintf("/pools/%s/delegators?page=%d&count=%d&order=%s", poolID, page, pageSize, order)
	return get[[]Delegator](ctx, c, path, poolID)
}

// GetTransaction looks up a transaction by hash
func (c *client) GetTransaction(ctx context.Context, txHash string) (*Transaction, error) {
	path := fmt.Sprintf("/txs/%s", txHash)
	return get[*Transaction](ctx, c, path, txHash)
}

// GetTransactionUTXOs returns the UTXO breakdown of a transaction
func (c *client) GetTransactionUTXOs(ctx context.Context, txHash string) (*TransactionUTXOs, error) {
	path := fmt.Sprintf("/txs/%s/utxos", txHash)
	return get[*TransactionUTXOs](ctx, c, path, txHash)
}

// GetLatestEpoch returns the current epoch boundaries
func (c *client) GetLatestEpoch(ctx context.Context) (*EpochInfo, error) {
	return get[*EpochInfo](ctx, c, "/epochs/latest", "latest epoch")
}

// GetAssetInfo resolves asset identity. Decimals and ticker fall back
// from the token registry entry to on-chain metadata to zero/empty;
// metadata gaps never surface as errors.
func (c *client) GetAssetInfo(ctx context.Context, assetID domain.AssetID) (*domain.AssetInfo, error) {
	path := fmt.Sprintf("/assets/%s", assetID)
	details, err := get[*assetDetails](ctx, c, path, assetID.String())
	if err != nil {
		return nil, err
	}

	info := &domain.AssetInfo{
		AssetID:  assetID,
		Fungible: details.Quantity != "1",
	}

	switch {
	case details.Metadata != nil:
		if details.Metadata.Decimals != nil {
			info.Decimals = *details.Metadata.Decimals
		}
		if details.Metadata.Ticker != nil {
			info.Ticker = *details.Metadata.Ticker
		}
	case details.OnchainMetadata != nil:
		if details.OnchainMetadata.Decimals != nil {
			info.Decimals = *details.OnchainMetadata.Decimals
		}
		if details.OnchainMetadata.Ticker != nil {
			info.Ticker = *details.OnchainMetadata.Ticker
		}
	}

	return info, nil
}
