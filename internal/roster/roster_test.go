package roster

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/pvpsim/internal/data"
	"github.com/udisondev/pvpsim/internal/model"
)

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"team.yaml", FormatYAML, false},
		{"team.YML", FormatYAML, false},
		{"dir/team.toml", FormatTOML, false},
		{"team.json", FormatJSON, false},
		{"team.csv", "", true},
		{"team", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatOf(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		path   string
		name   string
		levels []float64
	}{
		{"testdata/great.yaml", "great", []float64{20.0, 28.0, 26.0}},
		{"testdata/ultra.toml", "ultra", []float64{34.5, 25.0}},
		{"testdata/master.json", "master", []float64{22.5}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			team, err := Load(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.name, team.Name)

			members, err := team.Build()
			require.NoError(t, err)
			require.Len(t, members, len(tt.levels))
			for i, p := range members {
				assert.Equal(t, tt.levels[i], p.Level, "member %d", i)
			}
		})
	}
}

func TestLoad_Great(t *testing.T) {
	team, err := Load("testdata/great.yaml")
	require.NoError(t, err)
	members, err := team.Build()
	require.NoError(t, err)

	cresselia := members[0]
	assert.Equal(t, "Cresselia", cresselia.Name())
	assert.Equal(t, 1500, cresselia.CP())
	assert.Equal(t, "Psycho Cut", cresselia.FastMove.Name)
	require.Len(t, cresselia.ChargeMoves, 2)
	assert.Equal(t, "Future Sight", cresselia.ChargeMoves[1].Name)

	umbreon := members[1]
	assert.Equal(t, "Umbreon", umbreon.Name(), "species names are case-insensitive")
	assert.Equal(t, "Foul Play", umbreon.ChargeMoves[0].Name)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("testdata/missing.yaml")
	assert.Error(t, err)

	_, err = Load("testdata/unknown_field.yaml")
	assert.Error(t, err, "unknown fields are rejected")

	_, err = Load("testdata/great.csv")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestTeamBuild_ReportsEveryMember(t *testing.T) {
	team, err := Load("testdata/broken.yaml")
	require.NoError(t, err)

	_, err = team.Build()
	require.Error(t, err)

	assert.ErrorIs(t, err, data.ErrUnknownSpecies)
	assert.ErrorIs(t, err, model.ErrIVOutOfRange)
	assert.ErrorIs(t, err, model.ErrLevelNotFound)
	assert.ErrorIs(t, err, ErrNotLearnable)

	var lnf *model.LevelNotFoundError
	require.True(t, errors.As(err, &lnf))
	assert.Equal(t, 2277, lnf.CP)
	assert.Contains(t, err.Error(), "did you mean")

	msg := err.Error()
	for _, want := range []string{"member 1 (Missingno)", "member 2 (Cresselia)", "member 3 (Hydreigon)", "member 4 (Swoobat)"} {
		assert.Contains(t, msg, want)
	}
}

func TestEntryBuild(t *testing.T) {
	tests := []struct {
		name    string
		entry   Entry
		wantErr error
	}{
		{"defaults moves", Entry{Species: "Swoobat", Level: 20}, nil},
		{"no cp nor level", Entry{Species: "Swoobat"}, ErrNoLevel},
		{"unknown fast move", Entry{Species: "Swoobat", Level: 20, FastMove: "Teleport Punch"}, data.ErrUnknownMove},
		{"unknown charge move", Entry{Species: "Swoobat", Level: 20, ChargeMove2: "Hyper Nap"}, data.ErrUnknownMove},
		{"charge move not learnable", Entry{Species: "Swoobat", Level: 20, ChargeMove1: "Mud Bomb"}, ErrNotLearnable},
		{"invalid level", Entry{Species: "Swoobat", Level: 20.3}, model.ErrInvalidLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.entry.Build()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, p.Species.DefaultFastMove(), p.FastMove)
			assert.Equal(t, []*data.ChargeMove{p.Species.DefaultChargeMove()}, p.ChargeMoves)
		})
	}
}

func TestTeamBuild_Empty(t *testing.T) {
	_, err := (&Team{Name: "nobody"}).Build()
	assert.ErrorIs(t, err, ErrEmptyTeam)
}

func TestEncodeDecode(t *testing.T) {
	src, err := Load("testdata/great.yaml")
	require.NoError(t, err)

	for _, f := range []Format{FormatYAML, FormatTOML, FormatJSON} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, src, f))

			got, err := Decode(&buf, f)
			require.NoError(t, err)
			assert.Equal(t, src, got)
		})
	}

	_, err = Decode(strings.NewReader("{}"), Format("xml"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.ErrorIs(t, Encode(&bytes.Buffer{}, src, Format("xml")), ErrUnknownFormat)
}

func TestEntryOf(t *testing.T) {
	team, err := Load("testdata/great.yaml")
	require.NoError(t, err)
	members, err := team.Build()
	require.NoError(t, err)

	e := EntryOf(members[0])
	assert.Equal(t, Entry{
		Species:     "Cresselia",
		Level:       20,
		AttackIV:    2,
		DefenseIV:   15,
		StaminaIV:   13,
		FastMove:    "Psycho Cut",
		ChargeMove1: "Moonblast",
		ChargeMove2: "Future Sight",
	}, e)

	p, err := e.Build()
	require.NoError(t, err)
	assert.Equal(t, members[0].CP(), p.CP())
}
