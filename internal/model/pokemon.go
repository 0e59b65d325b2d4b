package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/udisondev/pvpsim/internal/data"
)

// Creature construction errors.
var (
	ErrIVOutOfRange      = errors.New("individual value out of range [0,15]")
	ErrInvalidLevel      = errors.New("invalid level")
	ErrLevelNotFound     = errors.New("no level reproduces the given CP")
	ErrNoSpecies         = errors.New("species is required")
	ErrNoFastMove        = errors.New("fast move is required")
	ErrChargeMoveCount   = errors.New("one or two charge moves are required")
	ErrInvalidChargeMove = errors.New("invalid charge move")
)

// LevelNotFoundError is returned when no level reproduces the requested CP.
// Suggestions lists nearby IV combinations that would work.
type LevelNotFoundError struct {
	Species     string
	CP          int
	IVs         IVs
	Suggestions []IVs
}

func (e *LevelNotFoundError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: no level for CP %d with IVs %s", e.Species, e.CP, e.IVs)
	if len(e.Suggestions) > 0 {
		b.WriteString("; did you mean")
		for i, s := range e.Suggestions {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte(' ')
			b.WriteString(s.String())
		}
		b.WriteByte('?')
	}
	return b.String()
}

func (e *LevelNotFoundError) Unwrap() error {
	return ErrLevelNotFound
}

// Pokemon is a configured creature: species, level, IVs and chosen moves.
// Immutable after construction; battles share it by pointer.
type Pokemon struct {
	Species     *data.Species
	Level       float64
	IVs         IVs
	FastMove    *data.FastMove
	ChargeMoves []*data.ChargeMove // 1 or 2
}

// NewPokemon validates and builds a configured creature at an explicit level.
func NewPokemon(sp *data.Species, level float64, ivs IVs, fast *data.FastMove, charge ...*data.ChargeMove) (*Pokemon, error) {
	if sp == nil {
		return nil, ErrNoSpecies
	}
	if !data.IsValidLevel(level) {
		return nil, fmt.Errorf("%s: %w: %v", sp.Name, ErrInvalidLevel, level)
	}
	if err := ivs.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", sp.Name, err)
	}
	if fast == nil {
		return nil, fmt.Errorf("%s: %w", sp.Name, ErrNoFastMove)
	}
	if len(charge) == 0 || len(charge) > 2 {
		return nil, fmt.Errorf("%s: %w: got %d", sp.Name, ErrChargeMoveCount, len(charge))
	}
	for i, cm := range charge {
		if cm == nil {
			return nil, fmt.Errorf("%s: %w: slot %d is empty", sp.Name, ErrInvalidChargeMove, i)
		}
	}

	return &Pokemon{
		Species:     sp,
		Level:       level,
		IVs:         ivs,
		FastMove:    fast,
		ChargeMoves: append([]*data.ChargeMove(nil), charge...),
	}, nil
}

// NewPokemonFromCP resolves the level from the observed CP and builds the creature.
// Fails with *LevelNotFoundError when the CP/IV combination is impossible.
func NewPokemonFromCP(sp *data.Species, cp int, ivs IVs, fast *data.FastMove, charge ...*data.ChargeMove) (*Pokemon, error) {
	if sp == nil {
		return nil, ErrNoSpecies
	}
	if err := ivs.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", sp.Name, err)
	}

	base := BaseStatsOf(sp)
	level, ok := LevelFromCP(base, cp, ivs)
	if !ok {
		return nil, &LevelNotFoundError{
			Species:     sp.Name,
			CP:          cp,
			IVs:         ivs,
			Suggestions: NearIVs(base, cp, ivs),
		}
	}
	return NewPokemon(sp, level, ivs, fast, charge...)
}

// Name returns the species name.
func (p *Pokemon) Name() string {
	return p.Species.Name
}

// Types returns the species types.
func (p *Pokemon) Types() []data.Type {
	return p.Species.Types
}

// Stats returns effective stats at the configured level.
func (p *Pokemon) Stats() Stats {
	return ComputeStats(BaseStatsOf(p.Species), p.Level, p.IVs)
}

func (p *Pokemon) CP() int          { return p.Stats().CP() }
func (p *Pokemon) SCP() int         { return p.Stats().SCP() }
func (p *Pokemon) DCP() int         { return p.Stats().DCP() }
func (p *Pokemon) HP() int          { return p.Stats().HP() }
func (p *Pokemon) Attack() float64  { return p.Stats().Attack }
func (p *Pokemon) Defense() float64 { return p.Stats().Defense }

// ChargeMove returns the charge move in slot (0 or 1), or nil.
func (p *Pokemon) ChargeMove(slot int) *data.ChargeMove {
	if slot < 0 || slot >= len(p.ChargeMoves) {
		return nil
	}
	return p.ChargeMoves[slot]
}

func (p *Pokemon) String() string {
	return fmt.Sprintf("%s CP%d Lv%.1f %s", p.Species.Name, p.CP(), p.Level, p.IVs)
}
