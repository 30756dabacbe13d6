package sync

import (
	"context"

	"coinsync/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_messenger.go coinsync/internal/services/sync Messenger

// Messenger propagates balance and multiplier changes between nodes. Every
// publish applies the change to this node's caches first; the envelope send
// is best-effort and a transport outage only degrades cross-node freshness.
type Messenger interface {
	// Start establishes the transport connection and its receive loop
	Start(ctx context.Context) error

	// Stop tears the transport down; safe to call more than once
	Stop() error

	// Type identifies the transport variant
	Type() MessengerType

	// PublishBalance writes the balance through to the local balance cache
	// and broadcasts a USER_UPDATE envelope
	PublishBalance(ctx context.Context, playerID string, balance float64) error

	// PublishMultiplierEnable mirrors the multiplier into the local cache
	// and broadcasts a MULTIPLIER_UPDATE envelope with Enable set
	PublishMultiplierEnable(ctx context.Context, m *models.Multiplier) error

	// PublishMultiplierUpdate mirrors the multiplier into the local cache
	// and broadcasts a MULTIPLIER_UPDATE envelope
	PublishMultiplierUpdate(ctx context.Context, m *models.Multiplier) error

	// PublishMultiplierDisable removes the multiplier from the local cache
	// and broadcasts a MULTIPLIER_DISABLE envelope
	PublishMultiplierDisable(ctx context.Context, m *models.Multiplier) error

	// RequestAllMultipliers broadcasts an empty-payload GET_MULTIPLIERS;
	// nodes holding active multipliers reply one envelope per multiplier
	RequestAllMultipliers(ctx context.Context) error

	// RequestAllExecutors broadcasts an empty-payload GET_EXECUTORS; hub
	// nodes reply one envelope per executor definition, leaves forward the
	// request upstream
	RequestAllExecutors(ctx context.Context) error
}
