package battle

import "github.com/udisondev/pvpsim/internal/model"

// Player is one side of a battle.
// Team order is the switch target order; Active may point at a fainted slot only
// between faint detection and the forced switch.
type Player struct {
	Name           string          `json:"name"`
	Team           []BattlePokemon `json:"team"`
	Active         int             `json:"active"`
	Shields        int             `json:"shields"`
	SwitchCooldown int             `json:"switch_cooldown"` // ticks until a voluntary switch is allowed
	InFastMove     bool            `json:"in_fast_move"`
	Lockout        int             `json:"lockout"` // ticks until the fast move completes
	Pending        Action          `json:"pending"` // buffered while locked out
}

func newPlayer(name string, team []*model.Pokemon, shields int) Player {
	p := Player{
		Name:    name,
		Team:    make([]BattlePokemon, len(team)),
		Shields: shields,
	}
	for i, pk := range team {
		p.Team[i] = NewBattlePokemon(pk)
	}
	return p
}

// ActivePokemon returns the creature currently on the field.
func (p *Player) ActivePokemon() *BattlePokemon {
	return &p.Team[p.Active]
}

// Remaining counts creatures with HP left.
func (p *Player) Remaining() int {
	n := 0
	for i := range p.Team {
		if !p.Team[i].IsFainted() {
			n++
		}
	}
	return n
}

// HasEnded reports whether every creature has fainted.
func (p *Player) HasEnded() bool {
	return p.Remaining() == 0
}

// TotalHP sums the remaining HP of the roster.
func (p *Player) TotalHP() int {
	sum := 0
	for i := range p.Team {
		sum += p.Team[i].HP
	}
	return sum
}

// IsLockedOut reports whether a fast move is still in progress.
func (p *Player) IsLockedOut() bool {
	return p.InFastMove && p.Lockout > 0
}

// CanSwitchTo reports whether a voluntary switch to slot i is allowed now.
func (p *Player) CanSwitchTo(i int) bool {
	return p.validSwitchTarget(i) && p.SwitchCooldown == 0
}

func (p *Player) validSwitchTarget(i int) bool {
	return i >= 0 && i < len(p.Team) && i != p.Active && !p.Team[i].IsFainted()
}

// LegalActions lists actions that would not be rejected on the next tick.
func (p *Player) LegalActions() []Action {
	if p.HasEnded() {
		return []Action{None()}
	}
	actions := []Action{None()}
	active := p.ActivePokemon()
	if !active.IsFainted() {
		if !p.IsLockedOut() {
			actions = append(actions, FastMove())
		}
		for slot := range active.Pokemon.ChargeMoves {
			if active.CanChargeMove(slot) {
				actions = append(actions, ChargeMove(slot))
			}
		}
	}
	for i := range p.Team {
		if p.CanSwitchTo(i) {
			actions = append(actions, Switch(i))
		}
	}
	return actions
}

// switchTo puts slot i on the field. The outgoing creature loses its stat stages
// and any fast move in progress is abandoned.
func (p *Player) switchTo(i int) {
	p.Team[p.Active].Buff = Buff{}
	p.Active = i
	p.InFastMove = false
	p.Lockout = 0
	p.Pending = None()
}

// fallbackSwitchTarget scans 1, 2, ..., n-1, 0 for the first living non-active slot.
func (p *Player) fallbackSwitchTarget() (int, bool) {
	for k := 1; k <= len(p.Team); k++ {
		i := k % len(p.Team)
		if p.validSwitchTarget(i) {
			return i, true
		}
	}
	return 0, false
}

func (p *Player) clone() Player {
	c := *p
	c.Team = append([]BattlePokemon(nil), p.Team...)
	return c
}
