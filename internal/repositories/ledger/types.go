package ledger

import (
	"errors"

	"coinsync/internal/models"
)

// ErrPlayerNotFound is returned when a player row does not exist
var ErrPlayerNotFound = errors.New("player not found")

// ErrMultiplierNotFound is returned when a multiplier row does not exist
var ErrMultiplierNotFound = errors.New("multiplier not found")

// GetBalanceInput contains parameters for reading a balance
type GetBalanceInput struct {
	PlayerID string
}

// SetBalanceInput contains parameters for overwriting a balance
type SetBalanceInput struct {
	PlayerID string
	Balance  float64
}

// ExistsPlayerInput matches a player row by ID or, if ID is empty, by name
type ExistsPlayerInput struct {
	PlayerID string
	Name     string
}

// CreatePlayerInput contains parameters for inserting a player row
type CreatePlayerInput struct {
	PlayerID string
	Name     string
	Balance  float64
}

// UpdatePlayerIdentityInput contains the authoritative ID/name pair
type UpdatePlayerIdentityInput struct {
	PlayerID string
	Name     string
}

// TopBalancesInput contains parameters for the balance leaderboard
type TopBalancesInput struct {
	Limit int
}

// CreateMultiplierInput contains the multiplier to persist
type CreateMultiplierInput struct {
	Multiplier *models.Multiplier
}

// GetMultiplierInput contains parameters for reading a multiplier row
type GetMultiplierInput struct {
	ID int64
}

// EnableMultiplierInput contains the enabled multiplier's authoritative state
type EnableMultiplierInput struct {
	Multiplier *models.Multiplier
}

// DeleteMultiplierInput contains parameters for removing a multiplier row
type DeleteMultiplierInput struct {
	ID int64
}

// ListMultipliersInput filters multiplier rows by enabler and optional scope
type ListMultipliersInput struct {
	PlayerID string
	Scope    models.MultiplierScope
}
