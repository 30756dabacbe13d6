package economy

import "context"

// Service defines the interface for economy operations
type Service interface {
	// GetCoins returns a player's balance, served from the cache when fresh
	GetCoins(ctx context.Context, input *GetCoinsInput) (*GetCoinsOutput, error)

	// SetCoins overwrites a player's balance in the store and propagates it
	SetCoins(ctx context.Context, input *SetCoinsInput) (*SetCoinsOutput, error)

	// AddCoins credits a player, optionally applying the active multiplier
	AddCoins(ctx context.Context, input *AddCoinsInput) (*AddCoinsOutput, error)

	// TakeCoins debits a player, rejecting overdrafts
	TakeCoins(ctx context.Context, input *TakeCoinsInput) (*TakeCoinsOutput, error)

	// TopCoins returns the highest balances in descending order
	TopCoins(ctx context.Context, input *TopCoinsInput) (*TopCoinsOutput, error)

	// EnsurePlayer creates or reconciles a player row on login
	EnsurePlayer(ctx context.Context, input *EnsurePlayerInput) (*EnsurePlayerOutput, error)

	// HandleDisconnect evicts a player's cache entry on disconnect
	HandleDisconnect(ctx context.Context, input *HandleDisconnectInput) (*HandleDisconnectOutput, error)

	// CreateMultiplier builds a multiplier and optionally enables it
	CreateMultiplier(ctx context.Context, input *CreateMultiplierInput) (*CreateMultiplierOutput, error)

	// EnableMultiplier activates or queues a multiplier for its scope
	EnableMultiplier(ctx context.Context, input *EnableMultiplierInput) (*EnableMultiplierOutput, error)

	// DisableMultiplier deactivates a multiplier everywhere it is tracked
	DisableMultiplier(ctx context.Context, input *DisableMultiplierInput) (*DisableMultiplierOutput, error)

	// GetActiveMultiplier returns the scope's active multiplier with its
	// remaining time, lazily expiring it when the time has run out
	GetActiveMultiplier(ctx context.Context, input *GetActiveMultiplierInput) (*GetActiveMultiplierOutput, error)

	// ListMultipliers returns a player's stored multipliers
	ListMultipliers(ctx context.Context, input *ListMultipliersInput) (*ListMultipliersOutput, error)
}
