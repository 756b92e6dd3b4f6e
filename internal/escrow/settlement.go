package escrow

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gowebpki/jcs"
	"github.com/sony/gobreaker"

	"github.com/stakegate/ledgersync/internal/adapter"
	"github.com/stakegate/ledgersync/internal/config"
	"github.com/stakegate/ledgersync/internal/ratelimit"
)

const settlementProviderName = "settlement"

//go:generate mockgen -source=settlement.go -destination=../mocks/escrow_settlement.go -package=mocks -mock_names=SettlementClient=MockSettlementClient

// SettlementClient submits escrow withdrawals to the settlement service.
type SettlementClient interface {
	// SubmitWithdrawal asks the settlement service to pay out the swap and
	// returns the hash of the withdrawal transaction it submitted.
	SubmitWithdrawal(ctx context.Context, swapID, assetID string) (string, error)
}

type settlementRequest struct {
	SwapID         string `json:"swap_id"`
	AssetID        string `json:"asset_id"`
	IdempotencyKey string `json:"idempotency_key"`
}

type settlementResponse struct {
	TxHash string `json:"tx_hash"`
}

type settlementClient struct {
	url        string
	apiKey     string
	httpClient adapter.HTTPClient
	proxy      ratelimit.Proxy
	breaker    *gobreaker.CircuitBreaker
}

// NewSettlementClient creates a settlement client. Submissions are paced
// through the rate limit proxy and guarded by a circuit breaker so a
// misbehaving settlement service cannot absorb every sweep cycle.
func NewSettlementClient(cfg config.SettlementConfig, httpClient adapter.HTTPClient, proxy ratelimit.Proxy) SettlementClient {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "settlement",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
	})

	return &settlementClient{
		url:        cfg.URL,
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		proxy:      proxy,
		breaker:    breaker,
	}
}

func (c *settlementClient) SubmitWithdrawal(ctx context.Context, swapID, assetID string) (string, error) {
	key, err := idempotencyKey(swapID, assetID)
	if err != nil {
		return "", fmt.Errorf("failed to derive idempotency key: %w", err)
	}

	body, err := json.Marshal(settlementRequest{
		SwapID:         swapID,
		AssetID:        assetID,
		IdempotencyKey: key,
	})
	if err != nil {
		return "", err
	}

	headers := map[string]string{
		"Content-Type": "application/json",
	}
	if c.apiKey != "" {
		headers["Authorization"] = "Bearer " + c.apiKey
	}

	return ratelimit.Request(ctx, c.proxy, settlementProviderName, func(ctx context.Context) (string, error) {
		raw, err := c.breaker.Execute(func() (interface{}, error) {
			return c.httpClient.Post(ctx, c.url+"/v1/withdrawals", headers, bytes.NewReader(body))
		})
		if err != nil {
			return "", fmt.Errorf("settlement submission for swap %s failed: %w", swapID, err)
		}

		var resp settlementResponse
		if err := json.Unmarshal(raw.([]byte), &resp); err != nil {
			return "", fmt.Errorf("failed to decode settlement response: %w", err)
		}
		if resp.TxHash == "" {
			return "", fmt.Errorf("settlement response for swap %s carried no tx hash", swapID)
		}
		return resp.TxHash, nil
	})
}

// idempotencyKey hashes the canonical JSON form of the swap identity so
// retries of the same swap always present the same key to the settlement
// service.
func idempotencyKey(swapID, assetID string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"swap_id":  swapID,
		"asset_id": assetID,
	})
	if err != nil {
		return "", err
	}
	canonical, err := jcs.Transform(payload)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}
