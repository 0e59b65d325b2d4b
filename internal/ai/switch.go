package ai

import "github.com/udisondev/pvpsim/internal/battle"

// SwitchFirstAlive sends out the living roster member with the lowest slot.
type SwitchFirstAlive struct{}

func (SwitchFirstAlive) ChooseSwitch(self *battle.Player) int {
	for i := range self.Team {
		if i != self.Active && !self.Team[i].IsFainted() {
			return i
		}
	}
	return -1
}

// SwitchHighestHP sends out the living roster member with the most HP left.
// Ties go to the lower slot.
type SwitchHighestHP struct{}

func (SwitchHighestHP) ChooseSwitch(self *battle.Player) int {
	best := -1
	for i := range self.Team {
		if i == self.Active || self.Team[i].IsFainted() {
			continue
		}
		if best < 0 || self.Team[i].HP > self.Team[best].HP {
			best = i
		}
	}
	return best
}
