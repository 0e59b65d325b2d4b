package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelMultiplier(t *testing.T) {
	tests := []struct {
		level float64
		want  float64
	}{
		{1.0, 0.0939999967},
		{11.5, 0.4530599481},
		{20.0, 0.5974000096},
		{34.5, 0.7586303702},
		{50.0, 0.84029999},
		{51.0, 0.84529999},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelMultiplier(tt.level), "level %.1f", tt.level)
	}
}

func TestLevelMultiplier_PanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { LevelMultiplier(0.5) })
	assert.Panics(t, func() { LevelMultiplier(51.5) })
}

func TestLevelMultiplierMonotonic(t *testing.T) {
	for i := 1; i < len(levelMultipliers); i++ {
		if levelMultipliers[i] <= levelMultipliers[i-1] {
			t.Errorf("levelMultipliers[%d] = %v <= levelMultipliers[%d] = %v",
				i, levelMultipliers[i], i-1, levelMultipliers[i-1])
		}
	}
}

func TestLevels(t *testing.T) {
	levels := Levels(MaxLevel)
	require.Len(t, levels, 99)
	assert.Equal(t, 1.0, levels[0])
	assert.Equal(t, 1.5, levels[1])
	assert.Equal(t, 50.0, levels[len(levels)-1])

	assert.Len(t, Levels(40), 79)
	assert.Len(t, Levels(99), 101)
}

func TestIsValidLevel(t *testing.T) {
	assert.True(t, IsValidLevel(1.0))
	assert.True(t, IsValidLevel(22.5))
	assert.True(t, IsValidLevel(50.0))
	assert.False(t, IsValidLevel(0.5))
	assert.False(t, IsValidLevel(50.5))
	assert.False(t, IsValidLevel(10.25))
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in      string
		want    Type
		wantErr bool
	}{
		{"Fire", Fire, false},
		{"fire", Fire, false},
		{"FAIRY", Fairy, false},
		{"Normal", Normal, false},
		{"Sound", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseType(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, typeNames[got], got.String())
		})
	}
}

func TestTypeEffectBonus(t *testing.T) {
	const eps = 1e-12
	tests := []struct {
		name      string
		attacking Type
		defenders []Type
		want      float64
	}{
		{"neutral", Normal, []Type{Normal}, 1},
		{"super effective", Water, []Type{Fire}, 1.6},
		{"double super effective", Ice, []Type{Dragon, Flying}, 1.6 * 1.6},
		{"resisted", Fire, []Type{Water}, 1 / 1.6},
		{"immune", Normal, []Type{Ghost}, 1 / (1.6 * 1.6)},
		{"immune and resisted", Ground, []Type{Flying, Grass}, 1 / (1.6 * 1.6 * 1.6)},
		{"cancel out", Fire, []Type{Grass, Water}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, TypeEffectBonus(tt.attacking, tt.defenders), eps)
		})
	}
}

func TestTypeEffectBonus_AllDualTypesInTable(t *testing.T) {
	for a := range Type(NumTypes) {
		for d1 := range Type(NumTypes) {
			for d2 := range Type(NumTypes) {
				if d1 == d2 {
					continue
				}
				got := TypeEffectBonus(a, []Type{d1, d2})
				assert.Contains(t, typeEffectMultipliers[:], got)
			}
		}
	}
}

func TestMoveLookups(t *testing.T) {
	fm, ok := FastMoveByID(216)
	require.True(t, ok)
	assert.Equal(t, "Mud Shot", fm.Name)
	assert.Equal(t, Ground, fm.Type)
	assert.Equal(t, 9, fm.Energy)
	assert.Equal(t, 2, fm.Turns)

	byName, ok := FastMoveByName("mud shot")
	require.True(t, ok)
	assert.Same(t, fm, byName)

	cm, ok := ChargeMoveByID(90)
	require.True(t, ok)
	assert.Equal(t, "Sludge Bomb", cm.Name)

	cm, ok = ChargeMoveByName("Psychic Fangs")
	require.True(t, ok)
	require.NotNil(t, cm.Buff)
	assert.Equal(t, -1, cm.Buff.OpponentDefense)
	assert.InDelta(t, 100.0, cm.BuffChance, 1e-9)

	_, ok = FastMoveByName("Splashier")
	assert.False(t, ok)
	_, ok = ChargeMoveByID(9999)
	assert.False(t, ok)
}

func TestMoveLookups_ClonesExcludedFromNames(t *testing.T) {
	clone, ok := FastMoveByID(232)
	require.True(t, ok)
	assert.True(t, clone.Clone)

	_, ok = FastMoveByName(clone.Name)
	assert.False(t, ok, "clone must not be resolvable by name")

	for _, id := range []int{134, 135, 136, 137, 360, 361, 362, 363} {
		mv, ok := ChargeMoveByID(id)
		require.True(t, ok, "id %d", id)
		assert.True(t, mv.Clone)
		_, ok = ChargeMoveByName(mv.Name)
		assert.False(t, ok, "clone %q resolvable by name", mv.Name)
	}

	for _, mv := range FastMoves() {
		assert.False(t, mv.Clone)
	}
	for _, mv := range ChargeMoves() {
		assert.False(t, mv.Clone)
	}
}

func TestMoveListsSorted(t *testing.T) {
	fast := FastMoves()
	require.NotEmpty(t, fast)
	for i := 1; i < len(fast); i++ {
		assert.Less(t, fast[i-1].ID, fast[i].ID)
	}
	charge := ChargeMoves()
	require.NotEmpty(t, charge)
	for i := 1; i < len(charge); i++ {
		assert.Less(t, charge[i-1].ID, charge[i].ID)
	}
}

func TestRealPower(t *testing.T) {
	fm, _ := FastMoveByName("Water Gun")
	assert.InDelta(t, 3*1.2, fm.RealPower([]Type{Water, Ground}), 1e-12)
	assert.InDelta(t, 3.0, fm.RealPower([]Type{Fire}), 1e-12)

	cm, _ := ChargeMoveByName("Mud Bomb")
	assert.InDelta(t, 60*1.2, cm.RealPower([]Type{Water, Ground}), 1e-12)
}

func TestSpeciesLookups(t *testing.T) {
	tests := []struct {
		name                     string
		attack, defense, stamina int
		types                    []Type
	}{
		{"Cresselia", 152, 258, 260, []Type{Psychic}},
		{"Hydreigon", 256, 188, 211, []Type{Dark, Dragon}},
		{"Swoobat", 161, 119, 167, []Type{Psychic, Flying}},
		{"Blissey", 129, 169, 496, []Type{Normal}},
		{"Whiscash", 151, 141, 242, []Type{Water, Ground}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp, ok := SpeciesByName(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.attack, sp.Attack)
			assert.Equal(t, tt.defense, sp.Defense)
			assert.Equal(t, tt.stamina, sp.Stamina)
			assert.Equal(t, tt.types, sp.Types)

			byID, ok := SpeciesByID(sp.ID)
			require.True(t, ok)
			assert.Same(t, sp, byID)
		})
	}

	_, ok := SpeciesByName("missingno")
	assert.False(t, ok)
}

func TestSpeciesByName_CaseInsensitive(t *testing.T) {
	sp, ok := SpeciesByName("ho-oh")
	require.True(t, ok)
	assert.Equal(t, 250, sp.ID)

	sp, ok = SpeciesByName("SWOOBAT")
	require.True(t, ok)
	assert.Equal(t, "Swoobat", sp.DisplayName())
}

func TestSpeciesDefaults(t *testing.T) {
	sp, ok := SpeciesByName("Swoobat")
	require.True(t, ok)
	assert.Equal(t, "Air Slash", sp.DefaultFastMove().Name)
	assert.Equal(t, "Psychic Fangs", sp.DefaultChargeMove().Name)
	assert.True(t, sp.LearnsFastMove(235))
	assert.False(t, sp.LearnsChargeMove(90))
}

func TestAllSpeciesSorted(t *testing.T) {
	all := AllSpecies()
	require.NotEmpty(t, all)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ID, all[i].ID)
	}
}

func TestLoad_AllSpeciesMovesResolve(t *testing.T) {
	require.NoError(t, Load())

	for _, sp := range AllSpecies() {
		assert.NotNil(t, sp.DefaultFastMove(), sp.Name)
		assert.NotNil(t, sp.DefaultChargeMove(), sp.Name)
	}
}
