package events

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/stakegate/ledgersync/internal/adapter"
	"github.com/stakegate/ledgersync/internal/config"
	"github.com/stakegate/ledgersync/internal/logger"
)

// SwapEventType identifies what happened to a swap.
type SwapEventType string

const (
	SwapDeposited SwapEventType = "deposited"
	SwapWithdrawn SwapEventType = "withdrawn"
	SwapExpired   SwapEventType = "expired"
)

// SwapEvent is the payload published when a swap changes state.
type SwapEvent struct {
	EventID   string        `json:"event_id"`
	EventType SwapEventType `json:"event_type"`
	SwapID    string        `json:"swap_id"`
	AssetID   string        `json:"asset_id"`
	TxHash    string        `json:"tx_hash,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

//go:generate mockgen -source=publisher.go -destination=../mocks/events_publisher.go -package=mocks -mock_names=Publisher=MockPublisher

// Publisher publishes swap lifecycle events
type Publisher interface {
	PublishSwapEvent(ctx context.Context, event *SwapEvent) error
	Close()
}

type publisher struct {
	nc   adapter.NatsConn
	js   adapter.JetStream
	json adapter.JSON
}

// NewPublisher creates a NATS JetStream publisher for swap events
func NewPublisher(cfg config.NATSConfig, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (Publisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &publisher{
		nc:   nc,
		js:   js,
		json: jsonAdapter,
	}, nil
}

// PublishSwapEvent publishes a swap lifecycle event to NATS JetStream
func (p *publisher) PublishSwapEvent(ctx context.Context, event *SwapEvent) error {
	logger.Debug("Publishing swap event", zap.Any("event", event))

	data, err := p.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := fmt.Sprintf("escrow.swap.%s", event.EventType)

	_, err = p.js.Publish(ctx, subject, data)
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
