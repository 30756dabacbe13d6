package sync

import (
	"context"
	"encoding/json"
	gosync "sync"

	"github.com/rs/zerolog"

	balancecache "coinsync/internal/cache/balance"
	multipliercache "coinsync/internal/cache/multiplier"
	"coinsync/internal/common/clock"
	"coinsync/internal/common/uuid"
	"coinsync/internal/models"
	"coinsync/internal/multiplier"
	"coinsync/internal/repositories/ledger"
)

// Config holds the collaborators every messenger variant needs
type Config struct {
	// BalanceCache is this node's balance cache
	BalanceCache *balancecache.Cache

	// MultiplierCache is this node's multiplier cache
	MultiplierCache *multipliercache.Cache

	// LedgerRepo is the authoritative store, written through on inbound
	// balance updates
	LedgerRepo ledger.Repository

	// Executors is this node's executor definition registry; may hold no
	// definitions on leaf nodes
	Executors *Registry

	// UUIDGenerator supplies envelope message IDs
	UUIDGenerator uuid.UUID

	// Clock supplies the current time for merge bookkeeping
	Clock clock.Clock

	// Logger reports transport and dispatch activity
	Logger zerolog.Logger
}

func (cfg *Config) validate() error {
	if cfg == nil {
		return ErrNilConfig
	}
	if cfg.BalanceCache == nil {
		return ErrNilBalanceCache
	}
	if cfg.MultiplierCache == nil {
		return ErrNilMultiplierCache
	}
	if cfg.LedgerRepo == nil {
		return ErrNilLedgerRepo
	}
	if cfg.UUIDGenerator == nil {
		return ErrNilUUIDGenerator
	}
	if cfg.Clock == nil {
		return ErrNilClock
	}
	return nil
}

// sendFunc delivers one envelope over a transport; nil means no transport
type sendFunc func(ctx context.Context, env *models.Envelope) error

// service carries the transport-independent half of every messenger: local
// cache writes, envelope construction, loop suppression and inbound
// dispatch. Variants supply the send function and the receive loop.
type service struct {
	balances    *balancecache.Cache
	multipliers *multipliercache.Cache
	ledgerRepo  ledger.Repository
	executors   *Registry
	uuidGen     uuid.UUID
	clock       clock.Clock
	logger      zerolog.Logger

	send sendFunc

	mu   gosync.Mutex
	sent map[string]struct{}
}

func newService(cfg *Config, send sendFunc) (*service, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	executors := cfg.Executors
	if executors == nil {
		executors = NewRegistry(nil)
	}

	return &service{
		balances:    cfg.BalanceCache,
		multipliers: cfg.MultiplierCache,
		ledgerRepo:  cfg.LedgerRepo,
		executors:   executors,
		uuidGen:     cfg.UUIDGenerator,
		clock:       cfg.Clock,
		logger:      cfg.Logger,
		send:        send,
		sent:        make(map[string]struct{}),
	}, nil
}

// recordSent remembers an outbound envelope's ID so the node recognizes its
// own echo. Request broadcasts are not recorded; their replies matter, not
// their echoes.
func (s *service) recordSent(id string) {
	s.mu.Lock()
	s.sent[id] = struct{}{}
	s.mu.Unlock()
}

// isOwnEcho reports whether the ID belongs to an envelope this node sent,
// forgetting it on a match
func (s *service) isOwnEcho(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sent[id]; ok {
		delete(s.sent, id)
		return true
	}
	return false
}

// dispatch transmits an envelope, recording its ID first unless it is a
// request broadcast. A nil send means no transport is configured and the
// envelope is silently dropped; the local state change already happened.
func (s *service) dispatch(ctx context.Context, env *models.Envelope) error {
	if s.send == nil {
		return nil
	}

	if env.Type != models.MessageGetMultipliers && env.Type != models.MessageGetExecutors {
		s.recordSent(env.MessageID)
	}

	if err := s.send(ctx, env); err != nil {
		s.logger.Error().Err(err).Str("type", string(env.Type)).Msg("could not publish envelope")
		return err
	}

	return nil
}

// PublishBalance writes the balance through to the local cache and
// broadcasts it
func (s *service) PublishBalance(ctx context.Context, playerID string, balance float64) error {
	s.balances.SetBalance(playerID, balance)

	coins := balance
	return s.dispatch(ctx, &models.Envelope{
		MessageID: s.uuidGen.NewUUID(),
		Type:      models.MessageUserUpdate,
		UUID:      playerID,
		Coins:     &coins,
	})
}

// PublishMultiplierEnable mirrors the multiplier locally and broadcasts it
// with the enable flag set
func (s *service) PublishMultiplierEnable(ctx context.Context, m *models.Multiplier) error {
	s.multipliers.Put(m.Server, m)

	return s.dispatch(ctx, &models.Envelope{
		MessageID:  s.uuidGen.NewUUID(),
		Type:       models.MessageMultiplierUpdate,
		Multiplier: m,
		Enable:     true,
	})
}

// PublishMultiplierUpdate mirrors the multiplier locally and broadcasts it
func (s *service) PublishMultiplierUpdate(ctx context.Context, m *models.Multiplier) error {
	s.multipliers.Put(m.Server, m)

	return s.dispatch(ctx, &models.Envelope{
		MessageID:  s.uuidGen.NewUUID(),
		Type:       models.MessageMultiplierUpdate,
		Multiplier: m,
	})
}

// PublishMultiplierDisable removes the multiplier locally and broadcasts
// its removal
func (s *service) PublishMultiplierDisable(ctx context.Context, m *models.Multiplier) error {
	s.multipliers.Delete(m)

	return s.dispatch(ctx, &models.Envelope{
		MessageID:  s.uuidGen.NewUUID(),
		Type:       models.MessageMultiplierDisable,
		Multiplier: m,
	})
}

// RequestAllMultipliers broadcasts an empty-payload GET_MULTIPLIERS
func (s *service) RequestAllMultipliers(ctx context.Context) error {
	return s.dispatch(ctx, &models.Envelope{
		MessageID: s.uuidGen.NewUUID(),
		Type:      models.MessageGetMultipliers,
	})
}

// RequestAllExecutors broadcasts an empty-payload GET_EXECUTORS
func (s *service) RequestAllExecutors(ctx context.Context) error {
	return s.dispatch(ctx, &models.Envelope{
		MessageID: s.uuidGen.NewUUID(),
		Type:      models.MessageGetExecutors,
	})
}

// handleInbound deserializes and dispatches one raw envelope. reply sends a
// response envelope back over the transport; forward pushes an unanswerable
// request further upstream (proxy topologies). Either may be nil. Malformed
// payloads are dropped with a debug log and never propagate an error into
// the receive loop.
func (s *service) handleInbound(ctx context.Context, payload []byte, reply, forward sendFunc) {
	var env models.Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		s.logger.Debug().Err(err).Msg("dropping unparseable envelope")
		return
	}

	if s.isOwnEcho(env.MessageID) {
		return
	}

	switch env.Type {
	case models.MessageUserUpdate:
		s.applyBalanceUpdate(ctx, &env)

	case models.MessageMultiplierUpdate:
		s.applyMultiplierUpdate(&env)

	case models.MessageMultiplierDisable:
		s.applyMultiplierDisable(ctx, &env)

	case models.MessageGetMultipliers:
		s.replyActiveMultipliers(ctx, reply)

	case models.MessageGetExecutors:
		s.replyExecutors(ctx, &env, reply, forward)

	case models.MessageExecutor:
		if env.Executor != nil {
			s.executors.Put(env.Executor)
		}

	default:
		s.logger.Debug().Str("type", string(env.Type)).Msg("dropping envelope with unknown type")
	}
}

// applyBalanceUpdate writes a foreign balance through to the store and the
// local cache
func (s *service) applyBalanceUpdate(ctx context.Context, env *models.Envelope) {
	if env.UUID == "" || env.Coins == nil {
		s.logger.Debug().Msg("dropping USER_UPDATE with missing payload")
		return
	}

	err := s.ledgerRepo.SetBalance(ctx, &ledger.SetBalanceInput{
		PlayerID: env.UUID,
		Balance:  *env.Coins,
	})
	if err != nil {
		// The row may simply not exist on this side yet; the cache write
		// below still keeps this node's view current
		s.logger.Debug().Err(err).Str("player_id", env.UUID).Msg("could not write foreign balance to store")
	}

	s.balances.SetBalance(env.UUID, *env.Coins)
}

// applyMultiplierUpdate merges a foreign multiplier into the local cache
// using the scope collision rules
func (s *service) applyMultiplierUpdate(env *models.Envelope) {
	m := env.Multiplier
	if m == nil {
		s.logger.Debug().Msg("dropping MULTIPLIER_UPDATE with missing payload")
		return
	}

	if m.Queue && !env.Enable {
		s.multipliers.Enqueue(m)
		return
	}

	active := s.multipliers.Peek(m.Server)

	switch {
	case active == nil || active.ID == m.ID:
		s.multipliers.Put(m.Server, m)

	case m.Type == models.ScopeServer && active.Type == models.ScopeServer:
		s.multipliers.Delete(active)
		s.multipliers.Put(m.Server, m)

	default:
		multiplier.Merge(active, m)
		s.multipliers.Put(active.Server, active)
	}
}

// applyMultiplierDisable removes a foreign multiplier from the cache and,
// if a row still exists locally, from the store. The store delete guards
// against the disable arriving before this node ever created the row.
func (s *service) applyMultiplierDisable(ctx context.Context, env *models.Envelope) {
	m := env.Multiplier
	if m == nil {
		s.logger.Debug().Msg("dropping MULTIPLIER_DISABLE with missing payload")
		return
	}

	s.multipliers.Delete(m)
	s.multipliers.RemoveQueued(m)

	if m.ID != models.UnassignedMultiplierID {
		err := s.ledgerRepo.DeleteMultiplier(ctx, &ledger.DeleteMultiplierInput{ID: m.ID})
		if err != nil {
			s.logger.Debug().Err(err).Int64("multiplier_id", m.ID).Msg("could not delete disabled multiplier row")
		}
	}
}

// replyActiveMultipliers answers a GET_MULTIPLIERS broadcast with one
// envelope per active multiplier
func (s *service) replyActiveMultipliers(ctx context.Context, reply sendFunc) {
	if reply == nil {
		return
	}

	for _, m := range s.multipliers.Active() {
		env := &models.Envelope{
			MessageID:  s.uuidGen.NewUUID(),
			Type:       models.MessageMultiplierUpdate,
			Multiplier: m,
			Enable:     m.Enabled,
		}
		s.recordSent(env.MessageID)

		if err := reply(ctx, env); err != nil {
			s.logger.Error().Err(err).Msg("could not reply with active multiplier")
			return
		}
	}
}

// replyExecutors answers a GET_EXECUTORS broadcast with this node's
// definitions, or forwards the request upstream when it has none to share
func (s *service) replyExecutors(ctx context.Context, env *models.Envelope, reply, forward sendFunc) {
	if s.executors.Len() == 0 {
		if forward == nil {
			return
		}
		if err := forward(ctx, env); err != nil {
			s.logger.Error().Err(err).Msg("could not forward executor request upstream")
		}
		return
	}

	if reply == nil {
		return
	}

	for _, def := range s.executors.All() {
		out := &models.Envelope{
			MessageID: s.uuidGen.NewUUID(),
			Type:      models.MessageExecutor,
			Executor:  def,
		}
		s.recordSent(out.MessageID)

		if err := reply(ctx, out); err != nil {
			s.logger.Error().Err(err).Msg("could not reply with executor definition")
			return
		}
	}
}
