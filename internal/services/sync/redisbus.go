package sync

import (
	"context"
	"encoding/json"
	"fmt"
	gosync "sync"
	"time"

	"github.com/redis/go-redis/v9"

	"coinsync/internal/models"
)

// resubscribeDelay is how long the receive loop waits before reattaching
// after the subscription drops
const resubscribeDelay = 2 * time.Second

// RedisBusConfig holds the transport-specific configuration for the Redis
// pub/sub messenger
type RedisBusConfig struct {
	// RedisClient is a connected go-redis client
	RedisClient *redis.Client

	// Channel is the pub/sub channel shared by every node in the economy
	Channel string
}

// redisBusMessenger fans envelopes out over a Redis pub/sub channel. Redis
// echoes published messages back to the subscribing node, so the loop
// suppression in the shared dispatch layer is load-bearing here.
type redisBusMessenger struct {
	*service

	client  *redis.Client
	channel string

	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce gosync.Once
}

// NewRedisBus creates a messenger backed by a Redis pub/sub channel
func NewRedisBus(cfg *Config, busCfg *RedisBusConfig) (*redisBusMessenger, error) {
	if busCfg == nil {
		return nil, ErrNilConfig
	}
	if busCfg.RedisClient == nil {
		return nil, ErrNilRedisClient
	}
	if busCfg.Channel == "" {
		return nil, ErrEmptyChannel
	}

	m := &redisBusMessenger{
		client:  busCfg.RedisClient,
		channel: busCfg.Channel,
		done:    make(chan struct{}),
	}

	base, err := newService(cfg, m.publish)
	if err != nil {
		return nil, err
	}
	m.service = base

	return m, nil
}

// Start verifies the connection and launches the receive loop
func (m *redisBusMessenger) Start(ctx context.Context) error {
	if err := m.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	go m.receiveLoop(loopCtx)

	return nil
}

// Stop tears the receive loop down; safe to call more than once
func (m *redisBusMessenger) Stop() error {
	m.stopOnce.Do(func() {
		if m.cancel != nil {
			m.cancel()
		}
		<-m.done
	})
	return nil
}

// Type identifies the transport variant
func (m *redisBusMessenger) Type() MessengerType {
	return MessengerRedisBus
}

// publish serializes and sends one envelope on the shared channel
func (m *redisBusMessenger) publish(ctx context.Context, env *models.Envelope) error {
	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	if err := m.client.Publish(ctx, m.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish envelope: %w", err)
	}

	return nil
}

// receiveLoop subscribes to the shared channel and dispatches every message
// until Stop. A dropped subscription is reattached after a short delay
// instead of killing the loop.
func (m *redisBusMessenger) receiveLoop(ctx context.Context) {
	defer close(m.done)

	for {
		sub := m.client.Subscribe(ctx, m.channel)
		ch := sub.Channel()

	recv:
		for {
			select {
			case <-ctx.Done():
				sub.Close()
				return
			case msg, ok := <-ch:
				if !ok {
					break recv
				}
				m.handleInbound(ctx, []byte(msg.Payload), m.publish, nil)
			}
		}

		sub.Close()
		m.logger.Warn().Str("channel", m.channel).Msg("redis subscription dropped, resubscribing")

		select {
		case <-ctx.Done():
			return
		case <-time.After(resubscribeDelay):
		}
	}
}
