package models

// Executor is a named command bundle players can buy with coins. Definitions
// live on hub nodes and are replicated to leaves on request.
type Executor struct {
	// ID is the definition's unique name
	ID string `json:"id"`

	// DisplayName is shown in menus on the host server
	DisplayName string `json:"displayname"`

	// Cost is the coin price of running the executor
	Cost float64 `json:"cost"`

	// Commands are run on the host server when the executor is bought
	Commands []string `json:"commands"`
}
