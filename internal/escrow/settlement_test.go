package escrow_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakegate/ledgersync/internal/config"
	"github.com/stakegate/ledgersync/internal/escrow"
	"github.com/stakegate/ledgersync/internal/mocks"
)

const (
	testSwapID  = "3f2f6f0e-9f2c-4c8e-9d2e-5b9d9f6a1c77"
	testAssetID = "d5e6bf0500378d4f0da4e8dde6becec7621cd8cbf5cbb9b87013d4cc4d794e4654"
)

func newSettlementClient(t *testing.T) (escrow.SettlementClient, *mocks.MockHTTPClient) {
	ctrl := gomock.NewController(t)
	httpClient := mocks.NewMockHTTPClient(ctrl)

	client := escrow.NewSettlementClient(config.SettlementConfig{
		URL:         "https://settle.example.com",
		APIKey:      "secret",
		HTTPTimeout: 5 * time.Second,
	}, httpClient, nil)

	return client, httpClient
}

func TestSubmitWithdrawal(t *testing.T) {
	client, httpClient := newSettlementClient(t)

	var captured map[string]string
	httpClient.EXPECT().
		Post(gomock.Any(), "https://settle.example.com/v1/withdrawals", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, headers map[string]string, body io.Reader) ([]byte, error) {
			assert.Equal(t, "Bearer secret", headers["Authorization"])
			raw, err := io.ReadAll(body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(raw, &captured))
			return []byte(`{"tx_hash":"deadbeef"}`), nil
		})

	txHash, err := client.SubmitWithdrawal(context.Background(), testSwapID, testAssetID)
	require.NoError(t, err)
	assert.Equal(t, "deadbeef", txHash)

	assert.Equal(t, testSwapID, captured["swap_id"])
	assert.Equal(t, testAssetID, captured["asset_id"])
	assert.Len(t, captured["idempotency_key"], 64)
}

func TestSubmitWithdrawal_IdempotencyKeyStable(t *testing.T) {
	client, httpClient := newSettlementClient(t)

	keys := make([]string, 0, 2)
	httpClient.EXPECT().
		Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ map[string]string, body io.Reader) ([]byte, error) {
			var req map[string]string
			raw, _ := io.ReadAll(body)
			require.NoError(t, json.Unmarshal(raw, &req))
			keys = append(keys, req["idempotency_key"])
			return []byte(`{"tx_hash":"deadbeef"}`), nil
		}).
		Times(2)

	_, err := client.SubmitWithdrawal(context.Background(), testSwapID, testAssetID)
	require.NoError(t, err)
	_, err = client.SubmitWithdrawal(context.Background(), testSwapID, testAssetID)
	require.NoError(t, err)

	// Retries of the same swap must present the same key
	assert.Equal(t, keys[0], keys[1])
}

func TestSubmitWithdrawal_NoTxHash(t *testing.T) {
	client, httpClient := newSettlementClient(t)

	httpClient.EXPECT().
		Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte(`{}`), nil)

	_, err := client.SubmitWithdrawal(context.Background(), testSwapID, testAssetID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no tx hash")
}

func TestSubmitWithdrawal_BreakerOpensAfterFailures(t *testing.T) {
	client, httpClient := newSettlementClient(t)

	httpClient.EXPECT().
		Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("settlement unavailable")).
		Times(6)

	for i := 0; i < 6; i++ {
		_, err := client.SubmitWithdrawal(context.Background(), testSwapID, testAssetID)
		require.Error(t, err)
	}

	// Breaker is open now; the HTTP client must not be called again
	_, err := client.SubmitWithdrawal(context.Background(), testSwapID, testAssetID)
	require.Error(t, err)
}

func TestSubmitWithdrawal_BodyIsCanonicalJSON(t *testing.T) {
	client, httpClient := newSettlementClient(t)

	httpClient.EXPECT().
		Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ map[string]string, body io.Reader) ([]byte, error) {
			raw, _ := io.ReadAll(body)
			assert.True(t, bytes.HasPrefix(raw, []byte(`{"swap_id"`)))
			return []byte(`{"tx_hash":"deadbeef"}`), nil
		})

	_, err := client.SubmitWithdrawal(context.Background(), testSwapID, testAssetID)
	require.NoError(t, err)
}
