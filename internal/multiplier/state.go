// Package multiplier holds the multiplier state machine. Transitions are
// pure: they mutate the multiplier in memory and return an Effects plan the
// economy service applies against the store, the caches and the messenger.
// Keeping the side effects out of the entity breaks the cycle between
// enable, the caches and the messaging layer, and makes the transitions
// testable without a live transport.
package multiplier

import (
	"errors"
	"time"

	"coinsync/internal/common/clock"
	"coinsync/internal/models"
)

// ErrShorterThanActive rejects an enable whose end time would not outlast
// the multiplier already active in the same scope
var ErrShorterThanActive = errors.New("an active multiplier with more remaining time already exists")

// trivialRemainder is how little active time left no longer blocks a
// replacement enable
const trivialRemainder = time.Second

// Effects describes the side effects a transition requires, in application
// order: store writes first, then cache changes, then envelopes.
type Effects struct {
	// Persist inserts the multiplier into the ledger store (assigns its ID)
	Persist bool

	// EnableRow updates the multiplier's existing store row to enabled
	EnableRow bool

	// DeleteRow removes the multiplier's store row
	DeleteRow bool

	// ReplaceActive is a SERVER-scope occupant to disable before this
	// multiplier takes over its scope
	ReplaceActive *models.Multiplier

	// MergeInto is a GLOBAL/PERSONAL-scope occupant that absorbed this
	// multiplier as extra data; publish it as an update instead
	MergeInto *models.Multiplier

	// CachePut registers the multiplier as its scope's active entry
	CachePut bool

	// CacheDelete removes the multiplier from the multiplier cache
	CacheDelete bool

	// QueueAppend appends the multiplier to the local enablement queue
	QueueAppend bool

	// QueueRemove removes the multiplier from the local enablement queue
	QueueRemove bool

	// PublishEnable sends a MULTIPLIER_UPDATE envelope with Enable set
	PublishEnable bool

	// PublishUpdate sends a plain MULTIPLIER_UPDATE envelope
	PublishUpdate bool

	// PublishDisable sends a MULTIPLIER_DISABLE envelope
	PublishDisable bool
}

// Enable transitions a multiplier toward Enabled or Queued.
//
// The transition is rejected when the scope already holds an active
// multiplier whose end time the new one would not outlast, unless the
// occupant has only a trivial remainder left. On success the multiplier's
// enabler fields, enabled flag and end time are set and the returned
// Effects say how the scope collision (if any) was resolved:
//
//   - scope free: persist, cache and publish as the new active multiplier
//   - SERVER colliding with a SERVER occupant: the occupant is deleted and
//     replaced
//   - any overlap involving a GLOBAL or PERSONAL party: the occupant absorbs
//     this multiplier's payload as extra data and is republished
//
// With wantsQueue the multiplier is only appended to the local queue; its
// end time is computed by the fresh Enable issued at promotion time.
func Enable(m *models.Multiplier, active *models.Multiplier, now time.Time, enablerID, enablerName string, wantsQueue bool) (*Effects, error) {
	nowMillis := clock.Millis(now)
	newEnd := nowMillis + m.Minutes*60_000

	if wantsQueue {
		// Queueing is exactly for scopes that are already taken; the
		// end-time guard does not apply until promotion
		m.EnablerUUID = enablerID
		m.Enabler = enablerName
		m.Queue = true
		m.Enabled = false
		m.EndTime = 0
		return &Effects{QueueAppend: true}, nil
	}

	// The guard binds re-enables of the active multiplier too: a window,
	// once set, only ever grows
	if active != nil {
		remaining := active.EndTime - nowMillis
		if remaining > trivialRemainder.Milliseconds() && newEnd <= active.EndTime {
			return nil, ErrShorterThanActive
		}
	}

	m.EnablerUUID = enablerID
	m.Enabler = enablerName

	m.Queue = false
	m.Enabled = true
	m.EndTime = newEnd

	effects := &Effects{}

	switch {
	case active == nil || active.ID == m.ID:
		// Scope is free (or this is a re-enable extending our own window)
		effects.Persist = m.ID == models.UnassignedMultiplierID
		effects.EnableRow = m.ID != models.UnassignedMultiplierID
		effects.CachePut = true
		effects.PublishEnable = true

	case m.Type == models.ScopeServer && active.Type == models.ScopeServer:
		// A second SERVER promotion for the same server evicts the first
		effects.ReplaceActive = active
		effects.Persist = m.ID == models.UnassignedMultiplierID
		effects.EnableRow = m.ID != models.UnassignedMultiplierID
		effects.CachePut = true
		effects.PublishEnable = true

	default:
		// Overlaps with a GLOBAL or PERSONAL party stack instead of evicting
		Merge(active, m)
		effects.MergeInto = active
		effects.PublishUpdate = true
	}

	return effects, nil
}

// Disable transitions a multiplier to Disabled. It clears the enabler
// fields and returns the removal effects. Safe to apply to a multiplier
// that was never persisted or cached.
func Disable(m *models.Multiplier) *Effects {
	m.Enabler = ""
	m.EnablerUUID = ""
	m.Enabled = false
	m.Queue = false

	return &Effects{
		DeleteRow:      m.ID != models.UnassignedMultiplierID,
		QueueRemove:    true,
		CacheDelete:    true,
		PublishDisable: true,
	}
}

// CheckTime returns the multiplier's remaining millis as of now, pruning
// expired extra-data contributions along the way. A zero return means the
// multiplier itself has expired and must be disabled by the caller.
func CheckTime(m *models.Multiplier, now time.Time) int64 {
	nowMillis := clock.Millis(now)

	remaining := m.EndTime - nowMillis
	if remaining <= 0 {
		return 0
	}

	if len(m.ExtraData) > 0 {
		kept := m.ExtraData[:0]
		for _, extra := range m.ExtraData {
			if extra.EndTime > nowMillis {
				kept = append(kept, extra)
			}
		}
		m.ExtraData = kept
	}

	return remaining
}

// Merge stacks the incoming multiplier's payload onto an active occupant of
// the scope as an extra-data contribution. The merge is commutative: the
// effective amount is the occupant's base plus the sum of unexpired extras,
// so the order overlapping multipliers arrive in does not matter. The
// contribution keeps the end time the enabling node computed, so every node
// sees the same expiry and a redelivered envelope matches an existing entry
// exactly instead of stacking again.
func Merge(active, incoming *models.Multiplier) {
	data := incoming.Data()

	for _, extra := range active.ExtraData {
		if extra.EnablerUUID == data.EnablerUUID && extra.EndTime == data.EndTime && extra.Amount == data.Amount {
			// Already merged; replayed envelopes must not stack twice
			return
		}
	}

	active.ExtraData = append(active.ExtraData, data)
}
