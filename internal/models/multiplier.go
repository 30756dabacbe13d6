package models

// MultiplierScope represents the breadth over which a multiplier applies
type MultiplierScope string

const (
	// ScopeServer applies the multiplier to a single named server
	ScopeServer MultiplierScope = "SERVER"

	// ScopeGlobal applies the multiplier to every server
	ScopeGlobal MultiplierScope = "GLOBAL"

	// ScopePersonal applies the multiplier only to the enabling player
	ScopePersonal MultiplierScope = "PERSONAL"
)

// UnassignedMultiplierID marks a multiplier that has not been persisted yet
const UnassignedMultiplierID int64 = -1

// MultiplierData is the base payload of a multiplier and the shape of each
// stacked extra-data contribution
type MultiplierData struct {
	// Enabler is the display name of the enabling player
	Enabler string `json:"enabler"`

	// EnablerUUID is the ID of the enabling player
	EnablerUUID string `json:"enableruuid"`

	// Amount is the multiplier factor contributed
	Amount int `json:"amount"`

	// Minutes is the duration of the contribution
	Minutes int64 `json:"minutes"`

	// EndTime is when this contribution expires, in wall-clock millis.
	// Zero until the contribution is merged into an active multiplier.
	EndTime int64 `json:"endtime,omitempty"`
}

// Multiplier represents an amount-of-coins multiplier active for a scope
type Multiplier struct {
	// ID is assigned by the ledger store once persisted; -1 until then
	ID int64 `json:"id"`

	// Server is the scope key. SERVER and GLOBAL multipliers use the server
	// name; PERSONAL multipliers append the enabler UUID after a space.
	Server string `json:"server"`

	// Type is the multiplier's scope
	Type MultiplierScope `json:"type"`

	// Amount is the base multiplier factor
	Amount int `json:"amount"`

	// Minutes is the duration of the multiplier once enabled
	Minutes int64 `json:"minutes"`

	// Enabler is the display name of the enabling player
	Enabler string `json:"enabler"`

	// EnablerUUID is the ID of the enabling player
	EnablerUUID string `json:"enableruuid"`

	// Enabled reports whether the multiplier is currently active
	Enabled bool `json:"enabled"`

	// Queue reports whether the multiplier is waiting for its scope to free up
	Queue bool `json:"queue"`

	// EndTime is when the multiplier expires, in wall-clock millis
	EndTime int64 `json:"endtime"`

	// ExtraData holds contributions stacked by overlapping multipliers
	ExtraData []MultiplierData `json:"extradata,omitempty"`
}

// EffectiveAmount returns the base amount plus every stacked contribution
// that has not expired as of now (millis).
func (m *Multiplier) EffectiveAmount(nowMillis int64) int {
	amount := m.Amount
	for _, extra := range m.ExtraData {
		if extra.EndTime > nowMillis {
			amount += extra.Amount
		}
	}
	return amount
}

// Data returns the multiplier's base payload
func (m *Multiplier) Data() MultiplierData {
	return MultiplierData{
		Enabler:     m.Enabler,
		EnablerUUID: m.EnablerUUID,
		Amount:      m.Amount,
		Minutes:     m.Minutes,
		EndTime:     m.EndTime,
	}
}
