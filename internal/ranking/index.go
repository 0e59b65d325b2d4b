package ranking

import (
	"slices"

	"github.com/udisondev/pvpsim/internal/data"
	"github.com/udisondev/pvpsim/internal/model"
)

// Result is the best stat product found for one IV spread under a CP cap.
type Result struct {
	SCP   int       `json:"scp"`
	Level float64   `json:"level"`
	IVs   model.IVs `json:"ivs"`
}

// numIVs is the number of IV combinations, 16^3.
const numIVs = (model.MaxIV + 1) * (model.MaxIV + 1) * (model.MaxIV + 1)

// LevelLimitedByCP returns the highest half level up to limitLevel at which
// the species with ivs stays at or below limitCP. limitLevel is clamped to the
// multiplier table and rounded down to the half-level grid.
// Returns false when even level 1.0 exceeds the cap or limitLevel is below 1.0.
func LevelLimitedByCP(limitCP int, limitLevel float64, sp *data.Species, ivs model.IVs) (float64, bool) {
	if limitLevel < data.MinLevel {
		return 0, false
	}
	base := model.BaseStatsOf(sp)
	levels := data.Levels(limitLevel)
	for _, lv := range levels {
		if model.ComputeStats(base, lv, ivs).CP() > limitCP {
			if lv == data.MinLevel {
				return 0, false
			}
			return lv - 0.5, true
		}
	}
	return levels[len(levels)-1], true
}

// ivsAt decodes index i in [0, 4096) as attack<<8 | defense<<4 | stamina.
func ivsAt(i int) model.IVs {
	return model.IVs{
		Attack:  (i >> 8) & 0xF,
		Defense: (i >> 4) & 0xF,
		Stamina: i & 0xF,
	}
}

// AllIVs returns every IV combination, attack-major.
func AllIVs() []model.IVs {
	all := make([]model.IVs, numIVs)
	for i := range all {
		all[i] = ivsAt(i)
	}
	return all
}

// MaxSCPIVs searches all IV spreads for the highest SCP reachable under the cap.
// The first spread in AllIVs order wins ties.
func MaxSCPIVs(limitCP int, limitLevel float64, sp *data.Species) (Result, bool) {
	var best Result
	found := false
	base := model.BaseStatsOf(sp)

	for i := range numIVs {
		ivs := ivsAt(i)
		lv, ok := LevelLimitedByCP(limitCP, limitLevel, sp, ivs)
		if !ok {
			continue
		}
		scp := model.ComputeStats(base, lv, ivs).SCP()
		if scp > best.SCP {
			best = Result{SCP: scp, Level: lv, IVs: ivs}
			found = true
		}
	}
	return best, found
}

// TopSCPIVs returns the n best IV spreads under the cap, SCP descending.
func TopSCPIVs(limitCP int, limitLevel float64, sp *data.Species, n int) []Result {
	base := model.BaseStatsOf(sp)
	results := make([]Result, 0, numIVs)

	for i := range numIVs {
		ivs := ivsAt(i)
		lv, ok := LevelLimitedByCP(limitCP, limitLevel, sp, ivs)
		if !ok {
			continue
		}
		results = append(results, Result{SCP: model.ComputeStats(base, lv, ivs).SCP(), Level: lv, IVs: ivs})
	}

	slices.SortStableFunc(results, func(a, b Result) int { return b.SCP - a.SCP })
	if n >= 0 && n < len(results) {
		results = results[:n]
	}
	return results
}
