package sync

// MessengerType identifies a transport variant
type MessengerType string

const (
	// MessengerNone runs without a transport; publishes only update the
	// local caches (single-node deployments)
	MessengerNone MessengerType = "none"

	// MessengerRedisBus fans envelopes out over a Redis pub/sub channel
	MessengerRedisBus MessengerType = "redis"

	// MessengerProxyChannel exchanges envelopes with a proxy plugin over a
	// websocket channel
	MessengerProxyChannel MessengerType = "proxy"
)

// SyncError is a custom error type for messaging errors
type SyncError string

// Error implements the error interface
func (e SyncError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig          SyncError = "config cannot be nil"
	ErrNilBalanceCache    SyncError = "balance cache cannot be nil"
	ErrNilMultiplierCache SyncError = "multiplier cache cannot be nil"
	ErrNilLedgerRepo      SyncError = "ledger repository cannot be nil"
	ErrNilUUIDGenerator   SyncError = "UUID generator cannot be nil"
	ErrNilClock           SyncError = "clock cannot be nil"
	ErrNilRedisClient     SyncError = "redis client cannot be nil"
	ErrEmptyChannel       SyncError = "channel name cannot be empty"
	ErrEmptyProxyURL      SyncError = "proxy URL cannot be empty"
	ErrNotConnected       SyncError = "transport is not connected"
)
