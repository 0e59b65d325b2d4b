package data

import (
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/text/cases"
)

// FastMove — ноу-кост атака, копит энергию.
// Energy is the total energy gained per use; Turns is the duration in ticks.
type FastMove struct {
	ID     int
	Name   string
	Type   Type
	Power  int
	Energy int
	Turns  int

	// Clone marks a dummy placeholder with no public dex slot.
	// Reachable by ID only.
	Clone bool
}

// StatBuff is a stat stage change applied by a charge move.
type StatBuff struct {
	SelfAttack      int
	SelfDefense     int
	OpponentAttack  int
	OpponentDefense int
}

// ChargeMove — атака, расходующая энергию; может менять стадии статов.
type ChargeMove struct {
	ID     int
	Name   string
	Type   Type
	Power  int
	Energy int // cost

	Buff       *StatBuff // nil when the move has no side effect
	BuffChance float64   // trigger probability, percent [0,100]

	Clone bool
}

// RealPower returns the move power including the same-type bonus.
func (m *FastMove) RealPower(selfTypes []Type) float64 {
	return realPower(m.Power, m.Type, selfTypes)
}

// RealPower returns the move power including the same-type bonus.
func (m *ChargeMove) RealPower(selfTypes []Type) float64 {
	return realPower(m.Power, m.Type, selfTypes)
}

// IsSTAB reports whether moveType matches one of the attacker types.
func IsSTAB(moveType Type, selfTypes []Type) bool {
	for _, t := range selfTypes {
		if t == moveType {
			return true
		}
	}
	return false
}

func realPower(power int, moveType Type, selfTypes []Type) float64 {
	p := float64(power)
	if IsSTAB(moveType, selfTypes) {
		p *= STABMultiplier
	}
	return p
}

var (
	moveOnce sync.Once

	fastByID     map[int]*FastMove
	fastByName   map[string]*FastMove
	chargeByID   map[int]*ChargeMove
	chargeByName map[string]*ChargeMove
)

// loadMoves строит индексы из Go-литералов. Вызывается один раз.
func loadMoves() {
	fastByID = make(map[int]*FastMove, len(fastMoveDefs))
	fastByName = make(map[string]*FastMove, len(fastMoveDefs))
	for i := range fastMoveDefs {
		mv := &fastMoveDefs[i]
		fastByID[mv.ID] = mv
		if !mv.Clone {
			fastByName[foldName(mv.Name)] = mv
		}
	}

	chargeByID = make(map[int]*ChargeMove, len(chargeMoveDefs))
	chargeByName = make(map[string]*ChargeMove, len(chargeMoveDefs))
	for i := range chargeMoveDefs {
		mv := &chargeMoveDefs[i]
		chargeByID[mv.ID] = mv
		if !mv.Clone {
			chargeByName[foldName(mv.Name)] = mv
		}
	}

	slog.Debug("loaded move catalog", "fast", len(fastByID), "charge", len(chargeByID))
}

// FastMoveByID returns the fast move with the given ID, clones included.
func FastMoveByID(id int) (*FastMove, bool) {
	moveOnce.Do(loadMoves)
	mv, ok := fastByID[id]
	return mv, ok
}

// FastMoveByName returns the public fast move with the given name (case-insensitive).
func FastMoveByName(name string) (*FastMove, bool) {
	moveOnce.Do(loadMoves)
	mv, ok := fastByName[foldName(name)]
	return mv, ok
}

// ChargeMoveByID returns the charge move with the given ID, clones included.
func ChargeMoveByID(id int) (*ChargeMove, bool) {
	moveOnce.Do(loadMoves)
	mv, ok := chargeByID[id]
	return mv, ok
}

// ChargeMoveByName returns the public charge move with the given name (case-insensitive).
func ChargeMoveByName(name string) (*ChargeMove, bool) {
	moveOnce.Do(loadMoves)
	mv, ok := chargeByName[foldName(name)]
	return mv, ok
}

// FastMoves returns all public fast moves ordered by ID.
func FastMoves() []*FastMove {
	moveOnce.Do(loadMoves)
	out := make([]*FastMove, 0, len(fastByName))
	for _, mv := range fastByName {
		out = append(out, mv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ChargeMoves returns all public charge moves ordered by ID.
func ChargeMoves() []*ChargeMove {
	moveOnce.Do(loadMoves)
	out := make([]*ChargeMove, 0, len(chargeByName))
	for _, mv := range chargeByName {
		out = append(out, mv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func foldName(name string) string {
	return cases.Fold().String(name)
}
