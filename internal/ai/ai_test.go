package ai

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/pvpsim/internal/battle"
	"github.com/udisondev/pvpsim/internal/model"
	"github.com/udisondev/pvpsim/internal/testutil"
)

var fullIVs = model.IVs{Attack: 15, Defense: 15, Stamina: 15}

// newPlayer -- хелпер: игрок с готовыми BattlePokemon.
func newPlayer(team ...*model.Pokemon) *battle.Player {
	p := &battle.Player{Name: "test", Shields: 2}
	for _, pk := range team {
		p.Team = append(p.Team, battle.NewBattlePokemon(pk))
	}
	return p
}

func swoobat(t *testing.T) *model.Pokemon {
	t.Helper()
	return testutil.Pokemon(t, "Swoobat", 20, fullIVs, "Air Slash", "Psychic Fangs", "Future Sight")
}

func TestBasicStrategy(t *testing.T) {
	tests := []struct {
		name    string
		energy  int
		lockout int
		want    battle.Action
	}{
		{"no energy uses fast move", 0, 0, battle.FastMove()},
		{"cheap charge move affordable", 40, 0, battle.ChargeMove(0)},
		{"strongest affordable charge move", 70, 0, battle.ChargeMove(1)},
		{"idle while locked out", 70, 2, battle.None()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPlayer(swoobat(t))
			p.Team[0].Energy = tt.energy
			if tt.lockout > 0 {
				p.InFastMove, p.Lockout = true, tt.lockout
			}
			assert.Equal(t, tt.want, BasicStrategy{}.NextAction(p))
		})
	}
}

func TestRandomStrategy_Legal(t *testing.T) {
	p := newPlayer(swoobat(t), swoobat(t))
	p.Team[0].Energy = 50
	legal := p.LegalActions()

	s := NewRandomStrategy(5)
	for range 200 {
		assert.Contains(t, legal, s.NextAction(p))
	}
}

func TestRandomStrategy_Reproducible(t *testing.T) {
	p := newPlayer(swoobat(t), swoobat(t))
	p.Team[0].Energy = 100

	a, b := NewRandomStrategy(9), NewRandomStrategy(9)
	for range 50 {
		assert.Equal(t, a.NextAction(p), b.NextAction(p))
		assert.Equal(t, a.ShouldShield(p), b.ShouldShield(p))
	}
}

func TestPassiveStrategy(t *testing.T) {
	p := newPlayer(swoobat(t))
	p.Team[0].Energy = 100
	assert.Equal(t, battle.None(), PassiveStrategy{}.NextAction(p))
}

func TestShieldDeciders(t *testing.T) {
	p := newPlayer(swoobat(t))
	maxHP := p.Team[0].MaxHP()

	assert.True(t, ShieldAlways{}.ShouldShield(p))
	assert.False(t, ShieldNever{}.ShouldShield(p))

	half := ShieldWhileAbove{Ratio: 0.5}
	assert.True(t, half.ShouldShield(p))

	p.Team[0].HP = maxHP / 4
	assert.False(t, half.ShouldShield(p))
}

func TestSwitchDeciders(t *testing.T) {
	tests := []struct {
		name      string
		active    int
		hp        []int
		firstWant int
		hpWant    int
	}{
		{"lowest living slot", 1, []int{0, 0, 30, 50}, 2, 3},
		{"skips active", 0, []int{0, 40, 40}, 1, 1},
		{"nobody left", 0, []int{0, 0}, -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &battle.Player{Active: tt.active}
			for _, hp := range tt.hp {
				p.Team = append(p.Team, battle.BattlePokemon{HP: hp})
			}
			assert.Equal(t, tt.firstWant, SwitchFirstAlive{}.ChooseSwitch(p))
			assert.Equal(t, tt.hpWant, SwitchHighestHP{}.ChooseSwitch(p))
		})
	}
}

func TestPreset(t *testing.T) {
	for _, name := range Presets() {
		t.Run(name, func(t *testing.T) {
			a, err := Preset(name, 1)
			require.NoError(t, err)
			assert.NotNil(t, a.Strategy)
			assert.NotNil(t, a.Shield)
			assert.NotNil(t, a.Switch)
		})
	}

	a, err := Preset("", 1)
	require.NoError(t, err)
	assert.IsType(t, BasicStrategy{}, a.Strategy)

	_, err = Preset("telepathic", 1)
	assert.ErrorIs(t, err, ErrUnknownPreset)

	assert.Equal(t, []string{PresetBasic, PresetPassive, PresetRandom}, Presets())
}

func TestPreset_PlaysFullBattle(t *testing.T) {
	team0 := testutil.Team(t, 20, "Cresselia", "Umbreon", "Machamp")
	team1 := testutil.Team(t, 20, "Swoobat", "Lapras", "Gengar")

	for _, name := range Presets() {
		t.Run(name, func(t *testing.T) {
			a0, err := Preset(PresetBasic, 1)
			require.NoError(t, err)
			a1, err := Preset(name, 2)
			require.NoError(t, err)

			b, err := battle.New("basic", team0, name, team1,
				battle.WithSeed(4),
				battle.WithLogger(slog.New(slog.DiscardHandler)),
				battle.WithAgents(a0, a1))
			require.NoError(t, err)

			ph := b.Start()
			assert.True(t, ph.IsTerminal())
		})
	}
}
