package sync

import (
	"context"
	"encoding/json"
	"fmt"
	gosync "sync"
	"time"

	"github.com/gorilla/websocket"

	"coinsync/internal/models"
)

// reconnectDelay is how long the connect loop waits between dial attempts
const reconnectDelay = 5 * time.Second

// ProxyChannelConfig holds the transport-specific configuration for the
// proxy plugin channel messenger
type ProxyChannelConfig struct {
	// URL is the proxy plugin's websocket endpoint
	URL string
}

// proxyChannelMessenger exchanges envelopes with a proxy plugin over a
// websocket. Unlike the pub/sub bus the proxy does not echo messages back,
// but loop suppression still applies in case the proxy rebroadcasts to the
// originating node. Requests this node cannot answer are forwarded upstream
// on the same connection.
type proxyChannelMessenger struct {
	*service

	url string

	connMu gosync.Mutex
	conn   *websocket.Conn

	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce gosync.Once
}

// NewProxyChannel creates a messenger backed by a proxy plugin channel
func NewProxyChannel(cfg *Config, proxyCfg *ProxyChannelConfig) (*proxyChannelMessenger, error) {
	if proxyCfg == nil {
		return nil, ErrNilConfig
	}
	if proxyCfg.URL == "" {
		return nil, ErrEmptyProxyURL
	}

	m := &proxyChannelMessenger{
		url:  proxyCfg.URL,
		done: make(chan struct{}),
	}

	base, err := newService(cfg, m.write)
	if err != nil {
		return nil, err
	}
	m.service = base

	return m, nil
}

// Start launches the connect/receive loop
func (m *proxyChannelMessenger) Start(ctx context.Context) error {
	loopCtx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	go m.connectLoop(loopCtx)

	return nil
}

// Stop tears the connection and loop down; safe to call more than once
func (m *proxyChannelMessenger) Stop() error {
	m.stopOnce.Do(func() {
		if m.cancel != nil {
			m.cancel()
		}
		m.closeConn()
		<-m.done
	})
	return nil
}

// Type identifies the transport variant
func (m *proxyChannelMessenger) Type() MessengerType {
	return MessengerProxyChannel
}

// write serializes and sends one envelope on the proxy connection. With no
// connection up the envelope is dropped with an error; the local state
// change already happened and the next reconnect restores freshness.
func (m *proxyChannelMessenger) write(ctx context.Context, env *models.Envelope) error {
	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	m.connMu.Lock()
	defer m.connMu.Unlock()

	if m.conn == nil {
		return ErrNotConnected
	}

	if err := m.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		return fmt.Errorf("write envelope: %w", err)
	}

	return nil
}

func (m *proxyChannelMessenger) setConn(conn *websocket.Conn) {
	m.connMu.Lock()
	m.conn = conn
	m.connMu.Unlock()
}

func (m *proxyChannelMessenger) closeConn() {
	m.connMu.Lock()
	if m.conn != nil {
		m.conn.Close()
		m.conn = nil
	}
	m.connMu.Unlock()
}

// connectLoop dials the proxy and pumps inbound frames through the shared
// dispatch until Stop, reconnecting after any drop
func (m *proxyChannelMessenger) connectLoop(ctx context.Context) {
	defer close(m.done)

	for {
		conn, _, err := websocket.DefaultDialer.DialContext(ctx, m.url, nil)
		if err != nil {
			m.logger.Warn().Err(err).Str("url", m.url).Msg("could not reach proxy channel, retrying")

			select {
			case <-ctx.Done():
				return
			case <-time.After(reconnectDelay):
				continue
			}
		}

		m.setConn(conn)
		m.logger.Info().Str("url", m.url).Msg("proxy channel connected")

		m.readFrames(ctx, conn)

		m.closeConn()

		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectDelay):
		}
	}
}

// readFrames dispatches inbound frames until the connection drops
func (m *proxyChannelMessenger) readFrames(ctx context.Context, conn *websocket.Conn) {
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				m.logger.Warn().Err(err).Msg("proxy channel read failed, reconnecting")
			}
			return
		}

		m.handleInbound(ctx, payload, m.write, m.write)
	}
}
