package testutil

import (
	"errors"
	"testing"

	"github.com/udisondev/pvpsim/internal/data"
	"github.com/udisondev/pvpsim/internal/model"
)

// ErrSimulated -- ошибка-заглушка для фейковых хранилищ в тестах.
var ErrSimulated = errors.New("simulated store failure")

// Fixtures содержит известные значения из каталога, проверенные вручную.
var Fixtures = struct {
	// Cresselia Lv20 2/15/13
	CresseliaCP    int
	CresseliaIVs   model.IVs
	CresseliaLevel float64
	CresseliaHP    int

	// Hydreigon CP2276 10/15/13 -> Lv22.5
	HydreigonCP    int
	HydreigonIVs   model.IVs
	HydreigonLevel float64

	// Damage(3, 130, 97, 1.3)
	DamagePower   float64
	DamageAttack  float64
	DamageDefense float64
	DamageBonus   float64
	Damage        int
}{
	CresseliaCP:    1500,
	CresseliaIVs:   model.IVs{Attack: 2, Defense: 15, Stamina: 13},
	CresseliaLevel: 20.0,
	CresseliaHP:    163,

	HydreigonCP:    2276,
	HydreigonIVs:   model.IVs{Attack: 10, Defense: 15, Stamina: 13},
	HydreigonLevel: 22.5,

	DamagePower:   3,
	DamageAttack:  130,
	DamageDefense: 97,
	DamageBonus:   1.3,
	Damage:        3,
}

// Species возвращает вид из каталога или валит тест.
func Species(tb testing.TB, name string) *data.Species {
	tb.Helper()
	sp, ok := data.SpeciesByName(name)
	if !ok {
		tb.Fatalf("unknown species %q", name)
	}
	return sp
}

// Pokemon собирает покемона из каталога: вид, уровень, IV и ходы по имени.
// Без ходов берутся первые из списков вида.
func Pokemon(tb testing.TB, species string, level float64, ivs model.IVs, moves ...string) *model.Pokemon {
	tb.Helper()
	sp := Species(tb, species)

	fast := sp.DefaultFastMove()
	charge := []*data.ChargeMove{sp.DefaultChargeMove()}
	if len(moves) > 0 {
		mv, ok := data.FastMoveByName(moves[0])
		if !ok {
			tb.Fatalf("unknown fast move %q", moves[0])
		}
		fast = mv
	}
	if len(moves) > 1 {
		charge = charge[:0]
		for _, name := range moves[1:] {
			mv, ok := data.ChargeMoveByName(name)
			if !ok {
				tb.Fatalf("unknown charge move %q", name)
			}
			charge = append(charge, mv)
		}
	}

	p, err := model.NewPokemon(sp, level, ivs, fast, charge...)
	if err != nil {
		tb.Fatalf("building %s: %v", species, err)
	}
	return p
}

// Team -- хелпер: команда из покемонов с IV 15/15/15 на одном уровне и ходами по умолчанию.
func Team(tb testing.TB, level float64, species ...string) []*model.Pokemon {
	tb.Helper()
	team := make([]*model.Pokemon, 0, len(species))
	for _, name := range species {
		team = append(team, Pokemon(tb, name, level, model.IVs{Attack: 15, Defense: 15, Stamina: 15}))
	}
	return team
}
