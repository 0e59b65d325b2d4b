package battle

// Strategy chooses a player's next action from its own visible state.
// Implementations receive a copy and must not retain it.
type Strategy interface {
	NextAction(self *Player) Action
}

// ShieldDecider decides whether to spend a shield on an incoming charge move.
// Consulted only while the player has shields left.
type ShieldDecider interface {
	ShouldShield(self *Player) bool
}

// SwitchDecider picks a roster slot when the active creature faints.
// Invalid picks fall back to the first living slot in 1, 2, ..., 0 order.
type SwitchDecider interface {
	ChooseSwitch(self *Player) int
}

// StrategyFunc adapts a function to Strategy.
type StrategyFunc func(self *Player) Action

func (f StrategyFunc) NextAction(self *Player) Action { return f(self) }

// ShieldFunc adapts a function to ShieldDecider.
type ShieldFunc func(self *Player) bool

func (f ShieldFunc) ShouldShield(self *Player) bool { return f(self) }

// SwitchFunc adapts a function to SwitchDecider.
type SwitchFunc func(self *Player) int

func (f SwitchFunc) ChooseSwitch(self *Player) int { return f(self) }

// Agent bundles the three decision functions of one side.
// A nil Strategy idles, a nil Shield never shields, a nil Switch uses the fallback order.
type Agent struct {
	Strategy Strategy
	Shield   ShieldDecider
	Switch   SwitchDecider
}

func (a Agent) nextAction(p *Player) Action {
	if a.Strategy == nil {
		return None()
	}
	view := p.clone()
	return a.Strategy.NextAction(&view)
}

func (a Agent) shouldShield(p *Player) bool {
	if a.Shield == nil {
		return false
	}
	view := p.clone()
	return a.Shield.ShouldShield(&view)
}

func (a Agent) chooseSwitch(p *Player) int {
	if a.Switch == nil {
		return -1
	}
	view := p.clone()
	return a.Switch.ChooseSwitch(&view)
}
