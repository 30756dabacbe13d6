package ledger

import (
	"context"

	"coinsync/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go coinsync/internal/repositories/ledger Repository

// Repository defines the interface for the relational ledger store, the
// single source of truth for balances and multiplier rows
type Repository interface {
	// GetBalance returns a player's stored balance, or models.UnknownBalance
	// if the player has no row
	GetBalance(ctx context.Context, input *GetBalanceInput) (float64, error)

	// SetBalance overwrites a player's stored balance. Returns
	// ErrPlayerNotFound if the player has no row.
	SetBalance(ctx context.Context, input *SetBalanceInput) error

	// ExistsPlayer reports whether a player row exists, matched by ID or name
	ExistsPlayer(ctx context.Context, input *ExistsPlayerInput) (bool, error)

	// CreatePlayer inserts a player row; a no-op if the player already exists
	CreatePlayer(ctx context.Context, input *CreatePlayerInput) error

	// UpdatePlayerIdentity reconciles a changed name or ID for an existing row
	UpdatePlayerIdentity(ctx context.Context, input *UpdatePlayerIdentityInput) error

	// TopBalances returns up to Limit players ordered by balance descending
	TopBalances(ctx context.Context, input *TopBalancesInput) ([]*models.PlayerBalance, error)

	// CreateMultiplier inserts a multiplier row and returns its assigned ID
	CreateMultiplier(ctx context.Context, input *CreateMultiplierInput) (int64, error)

	// GetMultiplier retrieves a multiplier row by ID
	GetMultiplier(ctx context.Context, input *GetMultiplierInput) (*models.Multiplier, error)

	// EnableMultiplier marks a multiplier row enabled with its end time
	EnableMultiplier(ctx context.Context, input *EnableMultiplierInput) error

	// DeleteMultiplier removes a multiplier row; a no-op if absent
	DeleteMultiplier(ctx context.Context, input *DeleteMultiplierInput) error

	// ListMultipliers returns a player's multiplier rows, optionally
	// filtered by scope
	ListMultipliers(ctx context.Context, input *ListMultipliersInput) ([]*models.Multiplier, error)
}
