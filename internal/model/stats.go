package model

import (
	"fmt"
	"math"

	"github.com/udisondev/pvpsim/internal/data"
)

// MaxIV is the highest individual value on each axis.
const MaxIV = 15

// minIndex is the floor of every power index (CP/SCP/DCP).
const minIndex = 10

// IVs holds individual values (0..15) for attack, defense and stamina.
type IVs struct {
	Attack  int `json:"attack" yaml:"attack" toml:"attack"`
	Defense int `json:"defense" yaml:"defense" toml:"defense"`
	Stamina int `json:"stamina" yaml:"stamina" toml:"stamina"`
}

// NewIVs validates and returns an IV triple.
func NewIVs(attack, defense, stamina int) (IVs, error) {
	ivs := IVs{Attack: attack, Defense: defense, Stamina: stamina}
	if err := ivs.Validate(); err != nil {
		return IVs{}, err
	}
	return ivs, nil
}

// Validate returns ErrIVOutOfRange if any axis is outside [0,15].
func (iv IVs) Validate() error {
	for _, v := range [3]int{iv.Attack, iv.Defense, iv.Stamina} {
		if v < 0 || v > MaxIV {
			return fmt.Errorf("%w: %d/%d/%d", ErrIVOutOfRange, iv.Attack, iv.Defense, iv.Stamina)
		}
	}
	return nil
}

func (iv IVs) String() string {
	return fmt.Sprintf("%d/%d/%d", iv.Attack, iv.Defense, iv.Stamina)
}

// BaseStats are species base values.
type BaseStats struct {
	Attack  int
	Defense int
	Stamina int
}

// BaseStatsOf extracts base stats of a species.
func BaseStatsOf(sp *data.Species) BaseStats {
	return BaseStats{Attack: sp.Attack, Defense: sp.Defense, Stamina: sp.Stamina}
}

// Stats are effective attack/defense/stamina at some level.
type Stats struct {
	Attack  float64
	Defense float64
	Stamina float64
}

// ComputeStats returns (base+iv) * levelMultiplier per axis.
func ComputeStats(base BaseStats, level float64, ivs IVs) Stats {
	m := data.LevelMultiplier(level)
	return Stats{
		Attack:  float64(base.Attack+ivs.Attack) * m,
		Defense: float64(base.Defense+ivs.Defense) * m,
		Stamina: float64(base.Stamina+ivs.Stamina) * m,
	}
}

// CP returns combat power: floor(atk*sqrt(def*sta)/10), min 10.
func (s Stats) CP() int {
	return floorIndex(s.Attack * math.Sqrt(s.Defense) * math.Sqrt(s.Stamina) / 10)
}

// SCP returns the stat product index with the stamina term floored to HP:
// floor((atk*def*floor(sta))^(2/3)/10), min 10.
func (s Stats) SCP() int {
	return floorIndex(math.Pow(s.Attack*s.Defense*math.Floor(s.Stamina), 2.0/3.0) / 10)
}

// SCPUnfloored is the SCP variant that keeps the raw stamina value.
// It ranks a few borderline IV spreads differently from SCP.
func (s Stats) SCPUnfloored() int {
	return floorIndex(math.Pow(s.Attack*s.Defense*s.Stamina, 2.0/3.0) / 10)
}

// DCP returns the defense-weighted index: floor((atk*def²*sta²)^(2/5)/10), min 10.
func (s Stats) DCP() int {
	return floorIndex(math.Pow(s.Attack*s.Defense*s.Defense*s.Stamina*s.Stamina, 2.0/5.0) / 10)
}

// HP returns floor(stamina).
func (s Stats) HP() int {
	return int(s.Stamina)
}

func floorIndex(v float64) int {
	return max(int(v), minIndex)
}

// LevelFromCP finds the first half level in [1.0, 50.0] at which the species with
// the given IVs has exactly cp. Returns false when no level matches.
func LevelFromCP(base BaseStats, cp int, ivs IVs) (float64, bool) {
	for _, lv := range data.Levels(data.MaxLevel) {
		if ComputeStats(base, lv, ivs).CP() == cp {
			return lv, true
		}
	}
	return 0, false
}

// NearIVs probes ±1 on each IV axis and returns combinations that reach cp at some level.
// Used to suggest likely typos when LevelFromCP fails.
func NearIVs(base BaseStats, cp int, ivs IVs) []IVs {
	var out []IVs
	for _, a := range nearAxis(ivs.Attack) {
		for _, d := range nearAxis(ivs.Defense) {
			for _, s := range nearAxis(ivs.Stamina) {
				cand := IVs{Attack: a, Defense: d, Stamina: s}
				if _, ok := LevelFromCP(base, cp, cand); ok {
					out = append(out, cand)
				}
			}
		}
	}
	return out
}

func nearAxis(v int) []int {
	out := make([]int, 0, 3)
	for _, n := range [3]int{v - 1, v, v + 1} {
		if n >= 0 && n <= MaxIV {
			out = append(out, n)
		}
	}
	return out
}
