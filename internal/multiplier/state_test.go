package multiplier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"coinsync/internal/common/clock"
	"coinsync/internal/models"
)

type StateMachineTestSuite struct {
	suite.Suite
	testNow time.Time
}

func (s *StateMachineTestSuite) SetupTest() {
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func TestStateMachineTestSuite(t *testing.T) {
	suite.Run(t, new(StateMachineTestSuite))
}

func (s *StateMachineTestSuite) newMultiplier(scope models.MultiplierScope, amount int, minutes int64) *models.Multiplier {
	return &models.Multiplier{
		ID:      models.UnassignedMultiplierID,
		Server:  "lobby",
		Type:    scope,
		Amount:  amount,
		Minutes: minutes,
	}
}

func (s *StateMachineTestSuite) TestEnableFreeScope() {
	m := s.newMultiplier(models.ScopeServer, 3, 10)

	effects, err := Enable(m, nil, s.testNow, "player-1", "Steve", false)
	s.Require().NoError(err)

	s.True(m.Enabled)
	s.False(m.Queue)
	s.Equal("player-1", m.EnablerUUID)
	s.Equal("Steve", m.Enabler)
	s.Equal(clock.Millis(s.testNow)+10*60_000, m.EndTime)

	s.True(effects.Persist)
	s.True(effects.CachePut)
	s.True(effects.PublishEnable)
	s.Nil(effects.ReplaceActive)
	s.Nil(effects.MergeInto)
}

func (s *StateMachineTestSuite) TestEnableExistingRowUpdatesInsteadOfInserting() {
	m := s.newMultiplier(models.ScopeServer, 3, 10)
	m.ID = 42

	effects, err := Enable(m, nil, s.testNow, "player-1", "Steve", false)
	s.Require().NoError(err)

	s.False(effects.Persist)
	s.True(effects.EnableRow)
}

func (s *StateMachineTestSuite) TestEnableRejectsShorterThanActive() {
	active := s.newMultiplier(models.ScopeServer, 2, 30)
	active.ID = 1
	active.Enabled = true
	active.EndTime = clock.Millis(s.testNow) + 30*60_000

	m := s.newMultiplier(models.ScopeServer, 5, 1)

	effects, err := Enable(m, active, s.testNow, "player-2", "Alex", false)
	s.Require().ErrorIs(err, ErrShorterThanActive)
	s.Nil(effects)

	// The rejected multiplier must be left untouched
	s.False(m.Enabled)
	s.Empty(m.EnablerUUID)
	s.Zero(m.EndTime)
}

func (s *StateMachineTestSuite) TestEnableRejectsShorterReenableOfSameMultiplier() {
	m := s.newMultiplier(models.ScopeServer, 3, 1)
	m.ID = 42
	m.Enabled = true
	m.EndTime = clock.Millis(s.testNow) + 10*60_000

	effects, err := Enable(m, m, s.testNow, "player-1", "Steve", false)
	s.Require().ErrorIs(err, ErrShorterThanActive)
	s.Nil(effects)

	s.Equal(clock.Millis(s.testNow)+10*60_000, m.EndTime, "the window never shrinks")
}

func (s *StateMachineTestSuite) TestEnableSameMultiplierExtendsWindow() {
	m := s.newMultiplier(models.ScopeServer, 3, 10)
	m.ID = 42
	m.Enabled = true
	m.EndTime = clock.Millis(s.testNow) + 60_000

	effects, err := Enable(m, m, s.testNow, "player-1", "Steve", false)
	s.Require().NoError(err)

	s.True(effects.EnableRow)
	s.False(effects.Persist)
	s.Equal(clock.Millis(s.testNow)+10*60_000, m.EndTime)
}

func (s *StateMachineTestSuite) TestEnableAllowedWhenActiveNearlyExpired() {
	active := s.newMultiplier(models.ScopeServer, 2, 30)
	active.ID = 1
	active.Enabled = true
	active.EndTime = clock.Millis(s.testNow) + 500 // half a second left

	m := s.newMultiplier(models.ScopeServer, 5, 1)

	effects, err := Enable(m, active, s.testNow, "player-2", "Alex", false)
	s.Require().NoError(err)
	s.True(m.Enabled)
	s.Equal(active, effects.ReplaceActive)
}

func (s *StateMachineTestSuite) TestEnableServerCollisionReplacesOccupant() {
	active := s.newMultiplier(models.ScopeServer, 2, 5)
	active.ID = 1
	active.Enabled = true
	active.EndTime = clock.Millis(s.testNow) + 5*60_000

	m := s.newMultiplier(models.ScopeServer, 4, 60)

	effects, err := Enable(m, active, s.testNow, "player-2", "Alex", false)
	s.Require().NoError(err)

	s.Equal(active, effects.ReplaceActive)
	s.True(effects.CachePut)
	s.True(effects.PublishEnable)
	s.Nil(effects.MergeInto)
}

func (s *StateMachineTestSuite) TestEnableGlobalCollisionStacksExtraData() {
	active := s.newMultiplier(models.ScopeGlobal, 2, 5)
	active.ID = 1
	active.Enabled = true
	active.EndTime = clock.Millis(s.testNow) + 5*60_000

	m := s.newMultiplier(models.ScopeGlobal, 4, 60)

	effects, err := Enable(m, active, s.testNow, "player-2", "Alex", false)
	s.Require().NoError(err)

	s.Nil(effects.ReplaceActive)
	s.Equal(active, effects.MergeInto)
	s.True(effects.PublishUpdate)
	s.False(effects.CachePut)

	s.Require().Len(active.ExtraData, 1)
	s.Equal(4, active.ExtraData[0].Amount)
	s.Equal("player-2", active.ExtraData[0].EnablerUUID)
	s.Equal(6, active.EffectiveAmount(clock.Millis(s.testNow)))
}

func (s *StateMachineTestSuite) TestEnableServerOverGlobalOccupantStacks() {
	active := s.newMultiplier(models.ScopeGlobal, 2, 5)
	active.ID = 1
	active.Enabled = true
	active.EndTime = clock.Millis(s.testNow) + 5*60_000

	m := s.newMultiplier(models.ScopeServer, 4, 60)

	effects, err := Enable(m, active, s.testNow, "player-2", "Alex", false)
	s.Require().NoError(err)

	s.Nil(effects.ReplaceActive, "a fleet-wide multiplier is never evicted by one server's")
	s.Equal(active, effects.MergeInto)
	s.Require().Len(active.ExtraData, 1)
	s.Equal(4, active.ExtraData[0].Amount)
}

func (s *StateMachineTestSuite) TestEnableWithQueue() {
	m := s.newMultiplier(models.ScopeServer, 3, 10)

	effects, err := Enable(m, nil, s.testNow, "player-1", "Steve", true)
	s.Require().NoError(err)

	s.True(m.Queue)
	s.False(m.Enabled)
	s.Zero(m.EndTime)

	s.True(effects.QueueAppend)
	s.False(effects.Persist)
	s.False(effects.CachePut)
	s.False(effects.PublishEnable)
}

func (s *StateMachineTestSuite) TestQueueBypassesEndTimeGuard() {
	active := s.newMultiplier(models.ScopeServer, 2, 30)
	active.ID = 1
	active.Enabled = true
	active.EndTime = clock.Millis(s.testNow) + 30*60_000

	m := s.newMultiplier(models.ScopeServer, 5, 5)

	effects, err := Enable(m, active, s.testNow, "player-2", "Alex", true)
	s.Require().NoError(err, "queueing behind a longer multiplier is the whole point of the queue")
	s.True(effects.QueueAppend)
	s.True(m.Queue)
}

func (s *StateMachineTestSuite) TestDisableClearsStateAndRemovesEverywhere() {
	m := s.newMultiplier(models.ScopeServer, 3, 10)
	m.ID = 7
	m.Enabled = true
	m.Enabler = "Steve"
	m.EnablerUUID = "player-1"

	effects := Disable(m)

	s.False(m.Enabled)
	s.False(m.Queue)
	s.Empty(m.Enabler)
	s.Empty(m.EnablerUUID)

	s.True(effects.DeleteRow)
	s.True(effects.QueueRemove)
	s.True(effects.CacheDelete)
	s.True(effects.PublishDisable)
}

func (s *StateMachineTestSuite) TestDisableTransientMultiplierSkipsStore() {
	m := s.newMultiplier(models.ScopePersonal, 3, 10)

	effects := Disable(m)

	s.False(effects.DeleteRow)
	s.True(effects.CacheDelete)
}

func (s *StateMachineTestSuite) TestCheckTimeReturnsRemaining() {
	m := s.newMultiplier(models.ScopeServer, 3, 10)
	m.EndTime = clock.Millis(s.testNow) + 90_000

	s.Equal(int64(90_000), CheckTime(m, s.testNow))
}

func (s *StateMachineTestSuite) TestCheckTimeExpired() {
	m := s.newMultiplier(models.ScopeServer, 3, 10)
	m.EndTime = clock.Millis(s.testNow) - 1

	s.Zero(CheckTime(m, s.testNow))
}

func (s *StateMachineTestSuite) TestCheckTimePrunesExpiredExtras() {
	m := s.newMultiplier(models.ScopeGlobal, 2, 10)
	m.EndTime = clock.Millis(s.testNow) + 60_000
	m.ExtraData = []models.MultiplierData{
		{EnablerUUID: "player-2", Amount: 3, EndTime: clock.Millis(s.testNow) - 1},
		{EnablerUUID: "player-3", Amount: 4, EndTime: clock.Millis(s.testNow) + 30_000},
	}

	s.Equal(int64(60_000), CheckTime(m, s.testNow))
	s.Require().Len(m.ExtraData, 1)
	s.Equal("player-3", m.ExtraData[0].EnablerUUID)
	s.Equal(6, m.EffectiveAmount(clock.Millis(s.testNow)))
}

func (s *StateMachineTestSuite) TestMergeIsIdempotentForRedeliveredEnvelopes() {
	active := s.newMultiplier(models.ScopeGlobal, 2, 10)
	active.ID = 1
	active.EndTime = clock.Millis(s.testNow) + 10*60_000

	// The contribution carries the end time its enabling node computed
	incoming := s.newMultiplier(models.ScopeGlobal, 3, 5)
	incoming.EnablerUUID = "player-2"
	incoming.EndTime = clock.Millis(s.testNow) + 5*60_000

	// The transport is at-least-once: the second delivery lands some time
	// after the first and must match the existing contribution exactly
	Merge(active, incoming)
	Merge(active, incoming)

	s.Require().Len(active.ExtraData, 1)
	s.Equal(clock.Millis(s.testNow)+5*60_000, active.ExtraData[0].EndTime)
	s.Equal(5, active.EffectiveAmount(clock.Millis(s.testNow)))
}
