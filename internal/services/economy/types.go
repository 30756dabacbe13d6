package economy

import "coinsync/internal/models"

// Result reports the outcome of a balance mutation. Store failures surface
// here as a reason string, never as a raw error across the cache boundary.
type Result struct {
	Success bool
	Reason  string
}

// success is the shared all-good result
var success = &Result{Success: true}

func failed(reason string) *Result {
	return &Result{Reason: reason}
}

// GetCoinsInput contains parameters for reading a balance
type GetCoinsInput struct {
	PlayerID string
}

// GetCoinsOutput contains a player's balance; models.UnknownBalance when
// the player cannot be resolved
type GetCoinsOutput struct {
	Balance float64
}

// SetCoinsInput contains parameters for overwriting a balance
type SetCoinsInput struct {
	PlayerID string
	Amount   float64
}

// SetCoinsOutput contains the result of a balance overwrite
type SetCoinsOutput struct {
	Result *Result
}

// AddCoinsInput contains parameters for crediting a player. With Multiply
// set the amount is scaled by the scope's active multiplier.
type AddCoinsInput struct {
	PlayerID string
	Amount   float64
	Multiply bool
}

// AddCoinsOutput contains the result and the new balance on success
type AddCoinsOutput struct {
	Result  *Result
	Balance float64
}

// TakeCoinsInput contains parameters for debiting a player
type TakeCoinsInput struct {
	PlayerID string
	Amount   float64
}

// TakeCoinsOutput contains the result and the new balance on success
type TakeCoinsOutput struct {
	Result  *Result
	Balance float64
}

// TopCoinsInput contains parameters for the balance leaderboard
type TopCoinsInput struct {
	Limit int
}

// TopCoinsOutput contains the highest balances in descending order
type TopCoinsOutput struct {
	Balances []*models.PlayerBalance
}

// EnsurePlayerInput contains a player's authoritative identity on login
type EnsurePlayerInput struct {
	PlayerID string
	Name     string
}

// EnsurePlayerOutput contains the result of the login reconciliation
type EnsurePlayerOutput struct {
	Created bool
}

// HandleDisconnectInput contains the disconnecting player
type HandleDisconnectInput struct {
	PlayerID string
}

// HandleDisconnectOutput is empty; eviction cannot fail
type HandleDisconnectOutput struct{}

// CreateMultiplierInput contains parameters for building a multiplier
type CreateMultiplierInput struct {
	PlayerID   string
	PlayerName string
	Amount     int
	Minutes    int64
	Scope      models.MultiplierScope
	Server     string

	// Enable activates the multiplier immediately after creation
	Enable bool

	// Queue defers activation until the scope frees up
	Queue bool
}

// CreateMultiplierOutput contains the built multiplier
type CreateMultiplierOutput struct {
	Multiplier *models.Multiplier
}

// EnableMultiplierInput contains parameters for activating a multiplier
type EnableMultiplierInput struct {
	Multiplier  *models.Multiplier
	EnablerID   string
	EnablerName string
	Queue       bool
}

// EnableMultiplierOutput reports whether the multiplier became active,
// was queued, or was rejected by the end-time guard
type EnableMultiplierOutput struct {
	Enabled bool
	Queued  bool
}

// DisableMultiplierInput contains the multiplier to deactivate
type DisableMultiplierInput struct {
	Multiplier *models.Multiplier
}

// DisableMultiplierOutput is empty; disabling is idempotent
type DisableMultiplierOutput struct{}

// GetActiveMultiplierInput contains the scope key to look up
type GetActiveMultiplierInput struct {
	Server string
}

// GetActiveMultiplierOutput contains the active multiplier and its
// remaining time; Multiplier is nil when nothing is active
type GetActiveMultiplierOutput struct {
	Multiplier      *models.Multiplier
	RemainingMillis int64
}

// ListMultipliersInput filters a player's stored multipliers
type ListMultipliersInput struct {
	PlayerID string
	Scope    models.MultiplierScope
}

// ListMultipliersOutput contains the matching multiplier rows
type ListMultipliersOutput struct {
	Multipliers []*models.Multiplier
}
