package ai

import (
	"log/slog"
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"github.com/udisondev/pvpsim/internal/battle"
)

// debugDecisions gates the per-decision debug records below.
var debugDecisions atomic.Bool

// EnableDebugLogging turns per-decision debug records on or off.
func EnableDebugLogging(enabled bool) { debugDecisions.Store(enabled) }

// IsDebugEnabled reports whether per-decision debug records are on.
func IsDebugEnabled() bool { return debugDecisions.Load() }

// BasicStrategy fires the strongest affordable charge move, otherwise the fast move.
// Stays idle while a fast move is in progress.
type BasicStrategy struct{}

func (BasicStrategy) NextAction(self *battle.Player) battle.Action {
	if self.HasEnded() || self.IsLockedOut() {
		return battle.None()
	}

	active := self.ActivePokemon()
	best, ok := active.BestChargeMove()
	if !ok {
		return battle.FastMove()
	}
	if debugDecisions.Load() {
		slog.Debug("charge move chosen",
			"player", self.Name,
			"pokemon", active.Name(),
			"move", active.ChargeMove(best).Name,
			"energy", active.Energy)
	}
	return battle.ChargeMove(best)
}

// RandomStrategy picks uniformly among the legal actions.
// Safe for concurrent use; the sequence is reproducible for a given seed
// as long as calls are not interleaved between battles.
type RandomStrategy struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomStrategy creates a RandomStrategy with a PCG source seeded by seed.
func NewRandomStrategy(seed uint64) *RandomStrategy {
	return &RandomStrategy{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *RandomStrategy) NextAction(self *battle.Player) battle.Action {
	legal := self.LegalActions()

	s.mu.Lock()
	a := legal[s.rng.IntN(len(legal))]
	s.mu.Unlock()

	if debugDecisions.Load() {
		slog.Debug("random action", "player", self.Name, "action", a.String(), "choices", len(legal))
	}
	return a
}

// ShouldShield flips a coin.
func (s *RandomStrategy) ShouldShield(*battle.Player) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(2) == 0
}

// PassiveStrategy never acts.
type PassiveStrategy struct{}

func (PassiveStrategy) NextAction(*battle.Player) battle.Action {
	return battle.None()
}
