package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakegate/ledgersync/internal/adapter"
	"github.com/stakegate/ledgersync/internal/config"
	"github.com/stakegate/ledgersync/internal/events"
	"github.com/stakegate/ledgersync/internal/logger"
	"github.com/stakegate/ledgersync/internal/mocks"
)

type publisherMocks struct {
	ctrl   *gomock.Controller
	natsJS *mocks.MockNatsJetStream
	conn   *mocks.MockNatsConn
	js     *mocks.MockJetStream
}

func setupPublisher(t *testing.T) (events.Publisher, *publisherMocks) {
	err := logger.Initialize(logger.Config{Debug: true})
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	pm := &publisherMocks{
		ctrl:   ctrl,
		natsJS: mocks.NewMockNatsJetStream(ctrl),
		conn:   mocks.NewMockNatsConn(ctrl),
		js:     mocks.NewMockJetStream(ctrl),
	}

	cfg := config.NATSConfig{
		URL:            "nats://localhost:4222",
		ConnectionName: "ledgersync-test",
		MaxReconnects:  3,
		ReconnectWait:  time.Second,
	}
	pm.natsJS.EXPECT().
		Connect("nats://localhost:4222", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(pm.conn, pm.js, nil)

	pub, err := events.NewPublisher(cfg, pm.natsJS, adapter.NewJSON())
	require.NoError(t, err)
	return pub, pm
}

func TestPublishSwapEvent(t *testing.T) {
	pub, pm := setupPublisher(t)
	defer pm.ctrl.Finish()

	event := &events.SwapEvent{
		EventID:   "01JKXYZ0000000000000000000",
		EventType: events.SwapDeposited,
		SwapID:    "swap-1",
		AssetID:   "asset-1",
		TxHash:    "abcd1234",
		Timestamp: time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC),
	}

	pm.js.EXPECT().
		Publish(gomock.Any(), "escrow.swap.deposited", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte, _ ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
			var got events.SwapEvent
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, *event, got)
			return &jetstream.PubAck{Stream: "ESCROW", Sequence: 1}, nil
		})

	err := pub.PublishSwapEvent(context.Background(), event)
	require.NoError(t, err)
}

func TestPublishSwapEvent_PublishError(t *testing.T) {
	pub, pm := setupPublisher(t)
	defer pm.ctrl.Finish()

	pm.js.EXPECT().
		Publish(gomock.Any(), "escrow.swap.expired", gomock.Any()).
		Return(nil, errors.New("stream unavailable"))

	err := pub.PublishSwapEvent(context.Background(), &events.SwapEvent{EventType: events.SwapExpired})
	assert.ErrorContains(t, err, "failed to publish event")
}

func TestNewPublisher_ConnectError(t *testing.T) {
	err := logger.Initialize(logger.Config{Debug: true})
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	natsJS.EXPECT().
		Connect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil, errors.New("connection refused"))

	_, err = events.NewPublisher(config.NATSConfig{}, natsJS, adapter.NewJSON())
	assert.ErrorContains(t, err, "failed to connect to NATS")
}

func TestPublisher_Close(t *testing.T) {
	pub, pm := setupPublisher(t)
	defer pm.ctrl.Finish()

	pm.conn.EXPECT().Close()
	pub.Close()
}
