package economy

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	balancecache "coinsync/internal/cache/balance"
	multipliercache "coinsync/internal/cache/multiplier"
	"coinsync/internal/common/clock"
	"coinsync/internal/models"
	"coinsync/internal/multiplier"
	"coinsync/internal/repositories/ledger"
	syncsvc "coinsync/internal/services/sync"
)

// ResolveNameFunc reports a player's display name if the player is
// currently connected somewhere; supplied by the host server integration
type ResolveNameFunc func(playerID string) (string, bool)

// Config holds configuration for the economy service
type Config struct {
	// ServerName is this node's name, used as the multiplier scope key
	ServerName string

	// StartingBalance seeds rows created for first-seen players
	StartingBalance float64

	// MinMultiplierAmount rejects pointless multipliers; defaults to 2
	MinMultiplierAmount int

	// LedgerRepo is the authoritative store
	LedgerRepo ledger.Repository

	// BalanceCache is this node's balance cache
	BalanceCache *balancecache.Cache

	// MultiplierCache is this node's multiplier cache
	MultiplierCache *multipliercache.Cache

	// Messenger propagates changes to the other nodes
	Messenger syncsvc.Messenger

	// Clock supplies the current time
	Clock clock.Clock

	// Logger reports best-effort failures
	Logger zerolog.Logger
}

// service implements the Service interface. It is the application context
// that owns the caches and messenger; one instance per process, passed
// explicitly to everything that needs it.
type service struct {
	config      *Config
	ledgerRepo  ledger.Repository
	balances    *balancecache.Cache
	multipliers *multipliercache.Cache
	messenger   syncsvc.Messenger
	clock       clock.Clock
	logger      zerolog.Logger
}

// New creates a new economy service and wires itself in as the multiplier
// cache's queue promoter
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.LedgerRepo == nil {
		return nil, ErrNilLedgerRepo
	}
	if cfg.BalanceCache == nil {
		return nil, ErrNilBalanceCache
	}
	if cfg.MultiplierCache == nil {
		return nil, ErrNilMultiplierCache
	}
	if cfg.Messenger == nil {
		return nil, ErrNilMessenger
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.MinMultiplierAmount <= 0 {
		cfg.MinMultiplierAmount = 2
	}

	s := &service{
		config:      cfg,
		ledgerRepo:  cfg.LedgerRepo,
		balances:    cfg.BalanceCache,
		multipliers: cfg.MultiplierCache,
		messenger:   cfg.Messenger,
		clock:       cfg.Clock,
		logger:      cfg.Logger,
	}

	cfg.MultiplierCache.SetPromoter(s.promoteQueued)

	return s, nil
}

// NewBalanceLoader builds the balance cache's load-on-miss function: read
// the store, and when the player has no row but is connected somewhere,
// create one with the starting balance.
func NewBalanceLoader(repo ledger.Repository, resolveName ResolveNameFunc, startingBalance float64) balancecache.LoadFunc {
	return func(ctx context.Context, playerID string) (float64, error) {
		bal, err := repo.GetBalance(ctx, &ledger.GetBalanceInput{PlayerID: playerID})
		if err != nil {
			return models.UnknownBalance, err
		}

		if bal != models.UnknownBalance {
			return bal, nil
		}

		if resolveName == nil {
			return models.UnknownBalance, nil
		}

		name, online := resolveName(playerID)
		if !online {
			return models.UnknownBalance, nil
		}

		err = repo.CreatePlayer(ctx, &ledger.CreatePlayerInput{
			PlayerID: playerID,
			Name:     name,
			Balance:  startingBalance,
		})
		if err != nil {
			return models.UnknownBalance, err
		}

		return startingBalance, nil
	}
}

// GetCoins returns a player's balance. Store failures on the load path are
// logged and degrade to the unknown sentinel; callers on the hot path never
// see an error for an unresolvable player.
func (s *service) GetCoins(ctx context.Context, input *GetCoinsInput) (*GetCoinsOutput, error) {
	balance, err := s.balances.GetBalance(ctx, input.PlayerID)
	if err != nil {
		s.logger.Error().Err(err).Str("player_id", input.PlayerID).Msg("balance load failed")
		return &GetCoinsOutput{Balance: models.UnknownBalance}, nil
	}

	return &GetCoinsOutput{Balance: balance}, nil
}

// SetCoins overwrites a player's balance. The store write must succeed for
// the mutation to count; propagation after that is best-effort.
func (s *service) SetCoins(ctx context.Context, input *SetCoinsInput) (*SetCoinsOutput, error) {
	if input.Amount < 0 {
		return nil, ErrInvalidAmount
	}

	err := s.ledgerRepo.SetBalance(ctx, &ledger.SetBalanceInput{
		PlayerID: input.PlayerID,
		Balance:  input.Amount,
	})
	if err != nil {
		if errors.Is(err, ledger.ErrPlayerNotFound) {
			return &SetCoinsOutput{Result: failed(ReasonNotInDatabase)}, nil
		}

		s.logger.Error().Err(err).Str("player_id", input.PlayerID).Msg("store write failed")
		return &SetCoinsOutput{Result: failed(ReasonStoreFailure)}, nil
	}

	// Local cache write happens inside the publish; a transport failure
	// only delays the other nodes
	if err := s.messenger.PublishBalance(ctx, input.PlayerID, input.Amount); err != nil {
		s.logger.Warn().Err(err).Str("player_id", input.PlayerID).Msg("balance propagation failed")
	}

	return &SetCoinsOutput{Result: success}, nil
}

// AddCoins credits a player, scaling by the scope's active multiplier when
// asked to
func (s *service) AddCoins(ctx context.Context, input *AddCoinsInput) (*AddCoinsOutput, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	current, err := s.balances.GetBalance(ctx, input.PlayerID)
	if err != nil {
		s.logger.Error().Err(err).Str("player_id", input.PlayerID).Msg("balance load failed")
		return &AddCoinsOutput{Result: failed(ReasonStoreFailure)}, nil
	}

	if current == models.UnknownBalance {
		return &AddCoinsOutput{Result: failed(ReasonUnresolvable)}, nil
	}

	amount := input.Amount
	if input.Multiply {
		amount *= float64(s.effectiveMultiplier(ctx, input.PlayerID))
	}

	newBalance := current + amount

	out, err := s.SetCoins(ctx, &SetCoinsInput{PlayerID: input.PlayerID, Amount: newBalance})
	if err != nil {
		return nil, err
	}

	result := out.Result
	if !result.Success {
		return &AddCoinsOutput{Result: result}, nil
	}

	return &AddCoinsOutput{Result: result, Balance: newBalance}, nil
}

// TakeCoins debits a player. A debit that would push the balance below
// zero is rejected rather than clamped, so callers can report the shortfall.
func (s *service) TakeCoins(ctx context.Context, input *TakeCoinsInput) (*TakeCoinsOutput, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	current, err := s.balances.GetBalance(ctx, input.PlayerID)
	if err != nil {
		s.logger.Error().Err(err).Str("player_id", input.PlayerID).Msg("balance load failed")
		return &TakeCoinsOutput{Result: failed(ReasonStoreFailure)}, nil
	}

	if current == models.UnknownBalance {
		return &TakeCoinsOutput{Result: failed(ReasonUnresolvable)}, nil
	}

	newBalance := current - input.Amount
	if newBalance < 0 {
		return &TakeCoinsOutput{Result: failed(ReasonNotEnough)}, nil
	}

	out, err := s.SetCoins(ctx, &SetCoinsInput{PlayerID: input.PlayerID, Amount: newBalance})
	if err != nil {
		return nil, err
	}

	result := out.Result
	if !result.Success {
		return &TakeCoinsOutput{Result: result}, nil
	}

	return &TakeCoinsOutput{Result: result, Balance: newBalance}, nil
}

// TopCoins returns the highest balances in descending order
func (s *service) TopCoins(ctx context.Context, input *TopCoinsInput) (*TopCoinsOutput, error) {
	top, err := s.ledgerRepo.TopBalances(ctx, &ledger.TopBalancesInput{Limit: input.Limit})
	if err != nil {
		return nil, fmt.Errorf("top balances: %w", err)
	}

	return &TopCoinsOutput{Balances: top}, nil
}

// EnsurePlayer creates or reconciles a player row on login
func (s *service) EnsurePlayer(ctx context.Context, input *EnsurePlayerInput) (*EnsurePlayerOutput, error) {
	byID, err := s.ledgerRepo.ExistsPlayer(ctx, &ledger.ExistsPlayerInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, fmt.Errorf("check player by id: %w", err)
	}

	if byID {
		err = s.ledgerRepo.UpdatePlayerIdentity(ctx, &ledger.UpdatePlayerIdentityInput{
			PlayerID: input.PlayerID,
			Name:     input.Name,
		})
		if err != nil {
			return nil, fmt.Errorf("reconcile player name: %w", err)
		}

		// A negatively cached entry must not outlive the row
		s.balances.Evict(input.PlayerID)
		return &EnsurePlayerOutput{}, nil
	}

	byName, err := s.ledgerRepo.ExistsPlayer(ctx, &ledger.ExistsPlayerInput{Name: input.Name})
	if err != nil {
		return nil, fmt.Errorf("check player by name: %w", err)
	}

	if byName {
		// Same name, new ID: the row follows the name
		err = s.ledgerRepo.UpdatePlayerIdentity(ctx, &ledger.UpdatePlayerIdentityInput{
			PlayerID: input.PlayerID,
			Name:     input.Name,
		})
		if err != nil {
			return nil, fmt.Errorf("reconcile player id: %w", err)
		}

		s.balances.Evict(input.PlayerID)
		return &EnsurePlayerOutput{}, nil
	}

	err = s.ledgerRepo.CreatePlayer(ctx, &ledger.CreatePlayerInput{
		PlayerID: input.PlayerID,
		Name:     input.Name,
		Balance:  s.config.StartingBalance,
	})
	if err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}

	s.balances.SetBalance(input.PlayerID, s.config.StartingBalance)

	return &EnsurePlayerOutput{Created: true}, nil
}

// HandleDisconnect evicts the player's balance entry to bound cache memory
func (s *service) HandleDisconnect(ctx context.Context, input *HandleDisconnectInput) (*HandleDisconnectOutput, error) {
	s.balances.Evict(input.PlayerID)
	return &HandleDisconnectOutput{}, nil
}

// CreateMultiplier builds a multiplier for the player and optionally
// enables or queues it right away
func (s *service) CreateMultiplier(ctx context.Context, input *CreateMultiplierInput) (*CreateMultiplierOutput, error) {
	if input.Amount < s.config.MinMultiplierAmount {
		return nil, ErrInvalidAmount
	}
	if input.Minutes <= 0 {
		return nil, ErrInvalidAmount
	}

	server := input.Server
	if server == "" {
		server = s.config.ServerName
	}
	if input.Scope == models.ScopePersonal {
		// Suffix the scope key so one player's boost never collides with
		// the server-wide one
		server = server + " " + input.PlayerID
	}

	m := &models.Multiplier{
		ID:          models.UnassignedMultiplierID,
		Server:      server,
		Type:        input.Scope,
		Amount:      input.Amount,
		Minutes:     input.Minutes,
		Enabler:     input.PlayerName,
		EnablerUUID: input.PlayerID,
	}

	if input.Enable || input.Queue {
		_, err := s.EnableMultiplier(ctx, &EnableMultiplierInput{
			Multiplier:  m,
			EnablerID:   input.PlayerID,
			EnablerName: input.PlayerName,
			Queue:       input.Queue,
		})
		if err != nil {
			return nil, err
		}
	}

	return &CreateMultiplierOutput{Multiplier: m}, nil
}

// EnableMultiplier runs the enable transition and applies its effects. A
// rejection by the end-time guard is reported as Enabled=false, not as an
// error; the caller's multiplier is left untouched in that case.
func (s *service) EnableMultiplier(ctx context.Context, input *EnableMultiplierInput) (*EnableMultiplierOutput, error) {
	m := input.Multiplier
	now := s.clock.Now()

	active := s.multipliers.Peek(m.Server)
	if active != nil && multiplier.CheckTime(active, now) == 0 {
		// The occupant already ran out; expire it before deciding
		s.applyRemoval(ctx, active, multiplier.Disable(active))
		active = s.multipliers.Peek(m.Server)
	}

	effects, err := multiplier.Enable(m, active, now, input.EnablerID, input.EnablerName, input.Queue)
	if err != nil {
		if errors.Is(err, multiplier.ErrShorterThanActive) {
			return &EnableMultiplierOutput{}, nil
		}
		return nil, err
	}

	s.applyEnable(ctx, m, effects)

	return &EnableMultiplierOutput{
		Enabled: m.Enabled,
		Queued:  m.Queue,
	}, nil
}

// DisableMultiplier deactivates a multiplier. Idempotent: a multiplier with
// no store row or cache entry disables as a safe no-op.
func (s *service) DisableMultiplier(ctx context.Context, input *DisableMultiplierInput) (*DisableMultiplierOutput, error) {
	m := input.Multiplier
	s.applyRemoval(ctx, m, multiplier.Disable(m))
	return &DisableMultiplierOutput{}, nil
}

// GetActiveMultiplier returns the scope's active multiplier and remaining
// time, disabling it on the spot when its time has run out
func (s *service) GetActiveMultiplier(ctx context.Context, input *GetActiveMultiplierInput) (*GetActiveMultiplierOutput, error) {
	m := s.multipliers.Get(input.Server)
	if m == nil {
		return &GetActiveMultiplierOutput{}, nil
	}

	remaining := multiplier.CheckTime(m, s.clock.Now())
	if remaining == 0 {
		s.applyRemoval(ctx, m, multiplier.Disable(m))
		return &GetActiveMultiplierOutput{}, nil
	}

	return &GetActiveMultiplierOutput{Multiplier: m, RemainingMillis: remaining}, nil
}

// ListMultipliers returns a player's stored multipliers
func (s *service) ListMultipliers(ctx context.Context, input *ListMultipliersInput) (*ListMultipliersOutput, error) {
	multipliers, err := s.ledgerRepo.ListMultipliers(ctx, &ledger.ListMultipliersInput{
		PlayerID: input.PlayerID,
		Scope:    input.Scope,
	})
	if err != nil {
		return nil, fmt.Errorf("list multipliers: %w", err)
	}

	return &ListMultipliersOutput{Multipliers: multipliers}, nil
}

// effectiveMultiplier returns the factor to scale a credit by: the active
// multiplier's effective amount, or 1 when none applies to this player
func (s *service) effectiveMultiplier(ctx context.Context, playerID string) int {
	m := s.multipliers.Get(s.config.ServerName)
	if m == nil {
		return 1
	}

	now := s.clock.Now()
	if multiplier.CheckTime(m, now) == 0 {
		s.applyRemoval(ctx, m, multiplier.Disable(m))
		return 1
	}

	if m.Type == models.ScopePersonal && m.EnablerUUID != playerID {
		return 1
	}

	if amount := m.EffectiveAmount(clock.Millis(now)); amount > 1 {
		return amount
	}
	return 1
}

// applyEnable executes an enable transition's effects in order: store
// writes, queue/cache changes, then envelopes. Store and transport errors
// are logged and the in-memory state keeps the caller's intent.
func (s *service) applyEnable(ctx context.Context, m *models.Multiplier, effects *multiplier.Effects) {
	if effects.ReplaceActive != nil {
		s.applyRemoval(ctx, effects.ReplaceActive, multiplier.Disable(effects.ReplaceActive))
	}

	if effects.Persist {
		id, err := s.ledgerRepo.CreateMultiplier(ctx, &ledger.CreateMultiplierInput{Multiplier: m})
		if err != nil {
			s.logger.Error().Err(err).Str("server", m.Server).Msg("could not persist multiplier")
		} else {
			m.ID = id
		}
	}

	if effects.EnableRow {
		err := s.ledgerRepo.EnableMultiplier(ctx, &ledger.EnableMultiplierInput{Multiplier: m})
		if err != nil {
			s.logger.Error().Err(err).Int64("multiplier_id", m.ID).Msg("could not enable multiplier row")
		}
	}

	if effects.QueueAppend {
		s.multipliers.Enqueue(m)
	}

	if effects.MergeInto != nil && effects.PublishUpdate {
		if err := s.messenger.PublishMultiplierUpdate(ctx, effects.MergeInto); err != nil {
			s.logger.Warn().Err(err).Msg("merged multiplier propagation failed")
		}
	}

	if effects.CachePut && effects.PublishEnable {
		if err := s.messenger.PublishMultiplierEnable(ctx, m); err != nil {
			s.logger.Warn().Err(err).Msg("multiplier propagation failed")
		}
	}
}

// applyRemoval executes a disable transition's effects. The cache and
// queue removals come first so a store or transport failure can never
// resurrect the multiplier locally.
func (s *service) applyRemoval(ctx context.Context, m *models.Multiplier, effects *multiplier.Effects) {
	if effects.QueueRemove {
		s.multipliers.RemoveQueued(m)
	}

	if effects.CacheDelete && effects.PublishDisable {
		if err := s.messenger.PublishMultiplierDisable(ctx, m); err != nil {
			s.logger.Warn().Err(err).Msg("multiplier disable propagation failed")
		}
	}

	if effects.DeleteRow {
		err := s.ledgerRepo.DeleteMultiplier(ctx, &ledger.DeleteMultiplierInput{ID: m.ID})
		if err != nil {
			s.logger.Error().Err(err).Int64("multiplier_id", m.ID).Msg("could not delete multiplier row")
		}
	}
}

// promoteQueued is the multiplier cache's promotion hook: a queued
// multiplier whose scope freed up gets a fresh enable with queueing off
func (s *service) promoteQueued(m *models.Multiplier) {
	out, err := s.EnableMultiplier(context.Background(), &EnableMultiplierInput{
		Multiplier:  m,
		EnablerID:   m.EnablerUUID,
		EnablerName: m.Enabler,
		Queue:       false,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("server", m.Server).Msg("queued multiplier promotion failed")
		return
	}

	if !out.Enabled {
		s.logger.Warn().Str("server", m.Server).Msg("queued multiplier promotion rejected")
	}
}
