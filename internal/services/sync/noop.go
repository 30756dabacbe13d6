package sync

import "context"

// noopMessenger serves single-node deployments: publishes update the local
// caches and nothing leaves the process
type noopMessenger struct {
	*service
}

// NewNoop creates a messenger without a transport
func NewNoop(cfg *Config) (*noopMessenger, error) {
	base, err := newService(cfg, nil)
	if err != nil {
		return nil, err
	}

	return &noopMessenger{service: base}, nil
}

// Start is a no-op; there is no transport to connect
func (n *noopMessenger) Start(ctx context.Context) error {
	return nil
}

// Stop is a no-op
func (n *noopMessenger) Stop() error {
	return nil
}

// Type identifies the transport variant
func (n *noopMessenger) Type() MessengerType {
	return MessengerNone
}
