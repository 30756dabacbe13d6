package economy

// EconomyError is a custom error type for economy-related errors
type EconomyError string

// Error implements the error interface
func (e EconomyError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig          EconomyError = "config cannot be nil"
	ErrNilLedgerRepo      EconomyError = "ledger repository cannot be nil"
	ErrNilBalanceCache    EconomyError = "balance cache cannot be nil"
	ErrNilMultiplierCache EconomyError = "multiplier cache cannot be nil"
	ErrNilMessenger       EconomyError = "messenger cannot be nil"
	ErrNilClock           EconomyError = "clock cannot be nil"
	ErrInvalidAmount      EconomyError = "amount must be positive"
	ErrMultiplierNotFound EconomyError = "multiplier not found"
)

// Failure reasons surfaced to callers through Result, worded so the host
// can give different guidance for each
const (
	ReasonNotInDatabase = "player not in database"
	ReasonStoreFailure  = "an exception occurred while updating the balance"
	ReasonNotEnough     = "not enough coins"
	ReasonUnresolvable  = "player could not be resolved"
)
