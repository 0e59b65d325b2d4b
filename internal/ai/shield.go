package ai

import "github.com/udisondev/pvpsim/internal/battle"

// ShieldAlways spends a shield on every charge move.
type ShieldAlways struct{}

func (ShieldAlways) ShouldShield(*battle.Player) bool { return true }

// ShieldNever keeps its shields.
type ShieldNever struct{}

func (ShieldNever) ShouldShield(*battle.Player) bool { return false }

// ShieldWhileAbove shields while the active creature has at least Ratio of its max HP.
type ShieldWhileAbove struct {
	Ratio float64
}

func (s ShieldWhileAbove) ShouldShield(self *battle.Player) bool {
	active := self.ActivePokemon()
	if active.MaxHP() == 0 {
		return false
	}
	return float64(active.HP)/float64(active.MaxHP()) >= s.Ratio
}
