package battle

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/udisondev/pvpsim/internal/model"
)

// Battle errors.
var (
	ErrEmptyTeam      = errors.New("team must not be empty")
	ErrNilPokemon     = errors.New("team member is nil")
	ErrNoSwitchTarget = errors.New("forced switch found no eligible creature")
)

// Battle is an append-only history of resolved ticks.
// States[0] is the initial state; Actions[i] produced States[i+1].
// A Battle is not safe for concurrent writes; past states never change.
type Battle struct {
	States  []*State
	Actions [][2]Action

	rules              Rules
	rng                *rand.Rand
	logger             *slog.Logger
	agents             [2]Agent
	typeEffectDisabled [2]bool
}

// Option configures a Battle.
type Option func(*Battle)

// WithRand sets the random source used for coin flips and buff rolls.
func WithRand(r *rand.Rand) Option {
	return func(b *Battle) { b.rng = r }
}

// WithSeed uses a deterministic PCG source.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed)))
}

// WithRules overrides the default trainer battle rules.
func WithRules(r Rules) Option {
	return func(b *Battle) { b.rules = r }
}

// WithLogger sets the logger for per-tick diagnostics (Debug level).
func WithLogger(l *slog.Logger) Option {
	return func(b *Battle) { b.logger = l }
}

// WithAgents sets the decision functions of both sides.
func WithAgents(a0, a1 Agent) Option {
	return func(b *Battle) { b.agents = [2]Agent{a0, a1} }
}

// WithTypeEffectDisabled makes player's creatures ignore type effectiveness.
// Used by power estimation; live battles keep type effects.
func WithTypeEffectDisabled(player int) Option {
	return func(b *Battle) { b.typeEffectDisabled[player] = true }
}

// New creates a battle between two non-empty teams.
func New(name0 string, team0 []*model.Pokemon, name1 string, team1 []*model.Pokemon, opts ...Option) (*Battle, error) {
	for i, team := range [2][]*model.Pokemon{team0, team1} {
		if len(team) == 0 {
			return nil, fmt.Errorf("player %d: %w", i, ErrEmptyTeam)
		}
		for slot, p := range team {
			if p == nil {
				return nil, fmt.Errorf("player %d slot %d: %w", i, slot, ErrNilPokemon)
			}
		}
	}

	b := &Battle{
		rules:  DefaultRules(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	s := &State{Phase: Phase{Kind: PhaseNeutral}}
	s.Players[0] = newPlayer(name0, team0, b.rules.Shields)
	s.Players[1] = newPlayer(name1, team1, b.rules.Shields)
	for i, disabled := range b.typeEffectDisabled {
		if !disabled {
			continue
		}
		for k := range s.Players[i].Team {
			s.Players[i].Team[k].TypeEffectDisabled = true
		}
	}

	b.States = []*State{s}
	return b, nil
}

// State returns the latest snapshot.
func (b *Battle) State() *State {
	return b.States[len(b.States)-1]
}

// Rules returns the rules the battle runs with.
func (b *Battle) Rules() Rules {
	return b.rules
}

// IsOver reports whether the battle reached a terminal phase.
func (b *Battle) IsOver() bool {
	return b.State().Phase.IsTerminal()
}

// Outcome returns the result; ok is false while the battle is running.
func (b *Battle) Outcome() (Outcome, bool) {
	ph := b.State().Phase
	return ph.Outcome, ph.IsTerminal()
}

// Start plays the battle with the configured agents until it ends or
// MaxIterations ticks were resolved. Returns the final phase.
func (b *Battle) Start() Phase {
	for range b.rules.MaxIterations {
		s := b.State()
		actions := [2]Action{
			b.agents[0].nextAction(&s.Players[0]),
			b.agents[1].nextAction(&s.Players[1]),
		}
		if !b.DoAction(actions) {
			break
		}
	}

	ph := b.State().Phase
	if !ph.IsTerminal() {
		b.logger.Warn("battle stopped by iteration limit",
			"iterations", b.rules.MaxIterations,
			"turn", b.State().Turn)
	}
	return ph
}
