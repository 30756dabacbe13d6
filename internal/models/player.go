package models

// UnknownBalance is the sentinel returned when a player cannot be resolved
// from the cache or the ledger store. It must never be persisted.
const UnknownBalance float64 = -1

// PlayerBalance represents a player's coin balance on this node
type PlayerBalance struct {
	// ID is the stable player identifier (UUID)
	ID string

	// Name is the player's current display name
	Name string

	// Balance is the player's coin balance; UnknownBalance means unresolved
	Balance float64
}
