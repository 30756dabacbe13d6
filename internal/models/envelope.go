package models

// MessageType tags the payload carried by an envelope
type MessageType string

const (
	// MessageUserUpdate carries a player's authoritative balance
	MessageUserUpdate MessageType = "USER_UPDATE"

	// MessageMultiplierUpdate carries a multiplier's full state; the
	// optional Enable flag promotes it to active on receiving nodes
	MessageMultiplierUpdate MessageType = "MULTIPLIER_UPDATE"

	// MessageMultiplierDisable removes a multiplier on receiving nodes
	MessageMultiplierDisable MessageType = "MULTIPLIER_DISABLE"

	// MessageGetMultipliers is an empty-payload broadcast asking every node
	// for its active multipliers
	MessageGetMultipliers MessageType = "GET_MULTIPLIERS"

	// MessageGetExecutors is an empty-payload broadcast asking hub nodes
	// for their executor definitions
	MessageGetExecutors MessageType = "GET_EXECUTORS"

	// MessageExecutor carries one executor definition in reply to
	// MessageGetExecutors
	MessageExecutor MessageType = "EXECUTOR"
)

// Envelope is the typed message unit exchanged between nodes
type Envelope struct {
	// MessageID is a random ID used only for loop suppression
	MessageID string `json:"messageid"`

	// Type tags the payload
	Type MessageType `json:"type"`

	// UUID is the player ID (USER_UPDATE only)
	UUID string `json:"uuid,omitempty"`

	// Coins is the player's balance (USER_UPDATE only)
	Coins *float64 `json:"coins,omitempty"`

	// Multiplier is the serialized multiplier (MULTIPLIER_* only)
	Multiplier *Multiplier `json:"multiplier,omitempty"`

	// Enable marks a MULTIPLIER_UPDATE that activates the multiplier
	Enable bool `json:"enable,omitempty"`

	// Executor is one executor definition (EXECUTOR only)
	Executor *Executor `json:"executor,omitempty"`
}
