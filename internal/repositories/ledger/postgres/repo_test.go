package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"

	"coinsync/internal/models"
	"coinsync/internal/repositories/ledger"
)

// PgRepositoryTestSuite runs against a real PostgreSQL instance. Set
// LEDGER_TEST_DSN to run it; everything in it is skipped otherwise.
type PgRepositoryTestSuite struct {
	suite.Suite
	repo ledger.Repository
	ctx  context.Context
}

func (s *PgRepositoryTestSuite) SetupSuite() {
	dsn := os.Getenv("LEDGER_TEST_DSN")
	if dsn == "" {
		s.T().Skip("LEDGER_TEST_DSN not set")
	}

	s.ctx = context.Background()

	db, err := OpenDB(s.ctx, dsn)
	s.Require().NoError(err)

	_, err = db.ExecContext(s.ctx, `
		CREATE TABLE IF NOT EXISTS players (
			id      TEXT PRIMARY KEY,
			name    TEXT NOT NULL DEFAULT '',
			balance DOUBLE PRECISION NOT NULL DEFAULT 0
		);
		CREATE TABLE IF NOT EXISTS multipliers (
			id           BIGSERIAL PRIMARY KEY,
			server       TEXT NOT NULL,
			type         TEXT NOT NULL,
			amount       INTEGER NOT NULL,
			minutes      BIGINT NOT NULL,
			enabler      TEXT NOT NULL DEFAULT '',
			enabler_uuid TEXT NOT NULL DEFAULT '',
			enabled      BOOLEAN NOT NULL DEFAULT FALSE,
			queued       BOOLEAN NOT NULL DEFAULT FALSE,
			endtime      BIGINT NOT NULL DEFAULT 0
		);
	`)
	s.Require().NoError(err)

	repo, err := New(&Config{DB: db})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *PgRepositoryTestSuite) SetupTest() {
	repo, ok := s.repo.(*pgRepository)
	s.Require().True(ok)

	_, err := repo.db.ExecContext(s.ctx, `TRUNCATE players, multipliers`)
	s.Require().NoError(err)
}

func TestPgRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PgRepositoryTestSuite))
}

func (s *PgRepositoryTestSuite) TestGetBalanceUnknownPlayer() {
	balance, err := s.repo.GetBalance(s.ctx, &ledger.GetBalanceInput{PlayerID: "ghost"})
	s.Require().NoError(err)
	s.Equal(models.UnknownBalance, balance)
}

func (s *PgRepositoryTestSuite) TestCreateAndReadBalance() {
	err := s.repo.CreatePlayer(s.ctx, &ledger.CreatePlayerInput{
		PlayerID: "player-1",
		Name:     "Steve",
		Balance:  100,
	})
	s.Require().NoError(err)

	balance, err := s.repo.GetBalance(s.ctx, &ledger.GetBalanceInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Equal(float64(100), balance)
}

func (s *PgRepositoryTestSuite) TestCreatePlayerIsIdempotent() {
	input := &ledger.CreatePlayerInput{PlayerID: "player-1", Name: "Steve", Balance: 100}
	s.Require().NoError(s.repo.CreatePlayer(s.ctx, input))

	input.Balance = 999
	s.Require().NoError(s.repo.CreatePlayer(s.ctx, input))

	balance, err := s.repo.GetBalance(s.ctx, &ledger.GetBalanceInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Equal(float64(100), balance, "the existing row wins")
}

func (s *PgRepositoryTestSuite) TestSetBalanceMissingPlayer() {
	err := s.repo.SetBalance(s.ctx, &ledger.SetBalanceInput{PlayerID: "ghost", Balance: 50})
	s.Require().ErrorIs(err, ledger.ErrPlayerNotFound)
}

func (s *PgRepositoryTestSuite) TestUpdatePlayerIdentityFollowsTheName() {
	s.Require().NoError(s.repo.CreatePlayer(s.ctx, &ledger.CreatePlayerInput{
		PlayerID: "old-id",
		Name:     "Steve",
		Balance:  100,
	}))

	// Same name came back under a new ID; the row follows the name
	err := s.repo.UpdatePlayerIdentity(s.ctx, &ledger.UpdatePlayerIdentityInput{
		PlayerID: "new-id",
		Name:     "Steve",
	})
	s.Require().NoError(err)

	balance, err := s.repo.GetBalance(s.ctx, &ledger.GetBalanceInput{PlayerID: "new-id"})
	s.Require().NoError(err)
	s.Equal(float64(100), balance)
}

func (s *PgRepositoryTestSuite) TestTopBalancesOrdering() {
	s.Require().NoError(s.repo.CreatePlayer(s.ctx, &ledger.CreatePlayerInput{PlayerID: "a", Name: "A", Balance: 10}))
	s.Require().NoError(s.repo.CreatePlayer(s.ctx, &ledger.CreatePlayerInput{PlayerID: "b", Name: "B", Balance: 30}))
	s.Require().NoError(s.repo.CreatePlayer(s.ctx, &ledger.CreatePlayerInput{PlayerID: "c", Name: "C", Balance: 20}))

	top, err := s.repo.TopBalances(s.ctx, &ledger.TopBalancesInput{Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(top, 2)
	s.Equal("b", top[0].ID)
	s.Equal("c", top[1].ID)
}

func (s *PgRepositoryTestSuite) TestMultiplierRoundTrip() {
	id, err := s.repo.CreateMultiplier(s.ctx, &ledger.CreateMultiplierInput{
		Multiplier: &models.Multiplier{
			Server:      "lobby",
			Type:        models.ScopeServer,
			Amount:      3,
			Minutes:     10,
			Enabler:     "Steve",
			EnablerUUID: "player-1",
			Enabled:     true,
			EndTime:     123456,
		},
	})
	s.Require().NoError(err)
	s.Greater(id, int64(0))

	m, err := s.repo.GetMultiplier(s.ctx, &ledger.GetMultiplierInput{ID: id})
	s.Require().NoError(err)
	s.Equal("lobby", m.Server)
	s.Equal(models.ScopeServer, m.Type)
	s.Equal(3, m.Amount)
	s.Equal(int64(123456), m.EndTime)
}

func (s *PgRepositoryTestSuite) TestGetMultiplierMissing() {
	_, err := s.repo.GetMultiplier(s.ctx, &ledger.GetMultiplierInput{ID: 12345})
	s.Require().ErrorIs(err, ledger.ErrMultiplierNotFound)
}

func (s *PgRepositoryTestSuite) TestEnableMultiplierUpdatesRow() {
	id, err := s.repo.CreateMultiplier(s.ctx, &ledger.CreateMultiplierInput{
		Multiplier: &models.Multiplier{
			Server:  "lobby",
			Type:    models.ScopeServer,
			Amount:  3,
			Minutes: 10,
		},
	})
	s.Require().NoError(err)

	err = s.repo.EnableMultiplier(s.ctx, &ledger.EnableMultiplierInput{
		Multiplier: &models.Multiplier{
			ID:          id,
			Enabler:     "Steve",
			EnablerUUID: "player-1",
			EndTime:     999999,
		},
	})
	s.Require().NoError(err)

	m, err := s.repo.GetMultiplier(s.ctx, &ledger.GetMultiplierInput{ID: id})
	s.Require().NoError(err)
	s.True(m.Enabled)
	s.False(m.Queue)
	s.Equal(int64(999999), m.EndTime)
}

func (s *PgRepositoryTestSuite) TestDeleteMultiplierIsIdempotent() {
	id, err := s.repo.CreateMultiplier(s.ctx, &ledger.CreateMultiplierInput{
		Multiplier: &models.Multiplier{Server: "lobby", Type: models.ScopeServer, Amount: 3, Minutes: 10},
	})
	s.Require().NoError(err)

	s.Require().NoError(s.repo.DeleteMultiplier(s.ctx, &ledger.DeleteMultiplierInput{ID: id}))
	s.Require().NoError(s.repo.DeleteMultiplier(s.ctx, &ledger.DeleteMultiplierInput{ID: id}))
}

func (s *PgRepositoryTestSuite) TestListMultipliersFiltersByScope() {
	for _, scope := range []models.MultiplierScope{models.ScopeServer, models.ScopeGlobal} {
		_, err := s.repo.CreateMultiplier(s.ctx, &ledger.CreateMultiplierInput{
			Multiplier: &models.Multiplier{
				Server:      "lobby",
				Type:        scope,
				Amount:      3,
				Minutes:     10,
				EnablerUUID: "player-1",
			},
		})
		s.Require().NoError(err)
	}

	all, err := s.repo.ListMultipliers(s.ctx, &ledger.ListMultipliersInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Len(all, 2)

	global, err := s.repo.ListMultipliers(s.ctx, &ledger.ListMultipliersInput{
		PlayerID: "player-1",
		Scope:    models.ScopeGlobal,
	})
	s.Require().NoError(err)
	s.Require().Len(global, 1)
	s.Equal(models.ScopeGlobal, global[0].Type)
}
