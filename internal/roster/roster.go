package roster

import (
	"errors"
	"fmt"

	"github.com/udisondev/pvpsim/internal/data"
	"github.com/udisondev/pvpsim/internal/model"
)

// Roster errors.
var (
	ErrUnknownFormat = errors.New("unknown roster format")
	ErrEmptyTeam     = errors.New("team has no members")
	ErrNoLevel       = errors.New("either cp or level is required")
	ErrNotLearnable  = errors.New("species cannot learn move")
)

// Entry describes one team member as written in a roster file.
// Level takes precedence over CP; moves default to the species' first listed moves.
type Entry struct {
	Species     string  `json:"species" yaml:"species" toml:"species"`
	CP          int     `json:"cp,omitempty" yaml:"cp,omitempty" toml:"cp,omitempty"`
	Level       float64 `json:"level,omitempty" yaml:"level,omitempty" toml:"level,omitempty"`
	AttackIV    int     `json:"attack_iv" yaml:"attack_iv" toml:"attack_iv"`
	DefenseIV   int     `json:"defense_iv" yaml:"defense_iv" toml:"defense_iv"`
	StaminaIV   int     `json:"stamina_iv" yaml:"stamina_iv" toml:"stamina_iv"`
	FastMove    string  `json:"fast_move,omitempty" yaml:"fast_move,omitempty" toml:"fast_move,omitempty"`
	ChargeMove1 string  `json:"charge_move1,omitempty" yaml:"charge_move1,omitempty" toml:"charge_move1,omitempty"`
	ChargeMove2 string  `json:"charge_move2,omitempty" yaml:"charge_move2,omitempty" toml:"charge_move2,omitempty"`
}

// Team is a named roster. Member order is the switch order in battle.
type Team struct {
	Name    string  `json:"name" yaml:"name" toml:"name"`
	Members []Entry `json:"members" yaml:"members" toml:"members"`
}

// Build resolves every member against the catalogs.
// All member failures are reported together.
func (t *Team) Build() ([]*model.Pokemon, error) {
	if len(t.Members) == 0 {
		return nil, fmt.Errorf("team %q: %w", t.Name, ErrEmptyTeam)
	}

	team := make([]*model.Pokemon, 0, len(t.Members))
	var errs []error
	for i, e := range t.Members {
		p, err := e.Build()
		if err != nil {
			errs = append(errs, fmt.Errorf("member %d (%s): %w", i+1, e.Species, err))
			continue
		}
		team = append(team, p)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("team %q: %w", t.Name, errors.Join(errs...))
	}
	return team, nil
}

// Build resolves the entry into a configured creature.
func (e Entry) Build() (*model.Pokemon, error) {
	sp, ok := data.SpeciesByName(e.Species)
	if !ok {
		return nil, fmt.Errorf("%w: %q", data.ErrUnknownSpecies, e.Species)
	}

	ivs, err := model.NewIVs(e.AttackIV, e.DefenseIV, e.StaminaIV)
	if err != nil {
		return nil, err
	}

	fast, err := fastMove(sp, e.FastMove)
	if err != nil {
		return nil, err
	}
	charge, err := chargeMoves(sp, e.ChargeMove1, e.ChargeMove2)
	if err != nil {
		return nil, err
	}

	switch {
	case e.Level > 0:
		return model.NewPokemon(sp, e.Level, ivs, fast, charge...)
	case e.CP > 0:
		return model.NewPokemonFromCP(sp, e.CP, ivs, fast, charge...)
	default:
		return nil, ErrNoLevel
	}
}

func fastMove(sp *data.Species, name string) (*data.FastMove, error) {
	if name == "" {
		return sp.DefaultFastMove(), nil
	}
	mv, ok := data.FastMoveByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: fast move %q", data.ErrUnknownMove, name)
	}
	if !sp.LearnsFastMove(mv.ID) {
		return nil, fmt.Errorf("%w: %s %s", ErrNotLearnable, sp.Name, mv.Name)
	}
	return mv, nil
}

func chargeMoves(sp *data.Species, names ...string) ([]*data.ChargeMove, error) {
	moves := make([]*data.ChargeMove, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		mv, ok := data.ChargeMoveByName(name)
		if !ok {
			return nil, fmt.Errorf("%w: charge move %q", data.ErrUnknownMove, name)
		}
		if !sp.LearnsChargeMove(mv.ID) {
			return nil, fmt.Errorf("%w: %s %s", ErrNotLearnable, sp.Name, mv.Name)
		}
		moves = append(moves, mv)
	}
	if len(moves) == 0 {
		moves = append(moves, sp.DefaultChargeMove())
	}
	return moves, nil
}

// EntryOf describes an existing creature as a roster entry.
func EntryOf(p *model.Pokemon) Entry {
	e := Entry{
		Species:   p.Species.Name,
		Level:     p.Level,
		AttackIV:  p.IVs.Attack,
		DefenseIV: p.IVs.Defense,
		StaminaIV: p.IVs.Stamina,
		FastMove:  p.FastMove.Name,
	}
	if mv := p.ChargeMove(0); mv != nil {
		e.ChargeMove1 = mv.Name
	}
	if mv := p.ChargeMove(1); mv != nil {
		e.ChargeMove2 = mv.Name
	}
	return e
}
