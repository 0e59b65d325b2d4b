package data

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Species is an immutable dex entry with base stats and learnable moves.
type Species struct {
	ID      int
	Name    string
	Types   []Type
	Attack  int
	Defense int
	Stamina int

	FastMoves   []int // fast move IDs, first is the default
	ChargeMoves []int // charge move IDs, first is the default
}

// DisplayName returns the species name in title case.
func (s *Species) DisplayName() string {
	return cases.Title(language.English).String(s.Name)
}

// DefaultFastMove returns the first listed fast move.
func (s *Species) DefaultFastMove() *FastMove {
	if len(s.FastMoves) == 0 {
		return nil
	}
	mv, _ := FastMoveByID(s.FastMoves[0])
	return mv
}

// DefaultChargeMove returns the first listed charge move.
func (s *Species) DefaultChargeMove() *ChargeMove {
	if len(s.ChargeMoves) == 0 {
		return nil
	}
	mv, _ := ChargeMoveByID(s.ChargeMoves[0])
	return mv
}

// LearnsFastMove reports whether the species lists the fast move.
func (s *Species) LearnsFastMove(id int) bool {
	for _, m := range s.FastMoves {
		if m == id {
			return true
		}
	}
	return false
}

// LearnsChargeMove reports whether the species lists the charge move.
func (s *Species) LearnsChargeMove(id int) bool {
	for _, m := range s.ChargeMoves {
		if m == id {
			return true
		}
	}
	return false
}

var (
	speciesOnce sync.Once

	speciesByID   map[int]*Species
	speciesByName map[string]*Species
	speciesSorted []*Species
)

func loadSpecies() {
	speciesByID = make(map[int]*Species, len(speciesDefs))
	speciesByName = make(map[string]*Species, len(speciesDefs))
	speciesSorted = make([]*Species, 0, len(speciesDefs))

	for i := range speciesDefs {
		sp := &speciesDefs[i]
		speciesByID[sp.ID] = sp
		speciesByName[foldName(sp.Name)] = sp
		speciesSorted = append(speciesSorted, sp)
	}
	sort.Slice(speciesSorted, func(i, j int) bool { return speciesSorted[i].ID < speciesSorted[j].ID })

	slog.Debug("loaded species catalog", "count", len(speciesByID))
}

// SpeciesByID returns the species with the given dex number.
func SpeciesByID(id int) (*Species, bool) {
	speciesOnce.Do(loadSpecies)
	sp, ok := speciesByID[id]
	return sp, ok
}

// SpeciesByName returns the species with the given name (case-insensitive).
func SpeciesByName(name string) (*Species, bool) {
	speciesOnce.Do(loadSpecies)
	sp, ok := speciesByName[foldName(name)]
	return sp, ok
}

// AllSpecies returns the whole catalog ordered by dex number.
// The returned slice must not be modified.
func AllSpecies() []*Species {
	speciesOnce.Do(loadSpecies)
	return speciesSorted
}

// Load eagerly builds every catalog and logs a summary.
// Lookups initialize lazily, so calling Load is optional.
func Load() error {
	moveOnce.Do(loadMoves)
	speciesOnce.Do(loadSpecies)

	for _, sp := range speciesSorted {
		for _, id := range sp.FastMoves {
			if _, ok := fastByID[id]; !ok {
				return fmt.Errorf("species %s: fast move %d: %w", sp.Name, id, ErrUnknownMove)
			}
		}
		for _, id := range sp.ChargeMoves {
			if _, ok := chargeByID[id]; !ok {
				return fmt.Errorf("species %s: charge move %d: %w", sp.Name, id, ErrUnknownMove)
			}
		}
	}

	slog.Info("loaded game data",
		"species", len(speciesByID),
		"fast_moves", len(fastByID),
		"charge_moves", len(chargeByID))
	return nil
}
