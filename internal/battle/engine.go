package battle

import "fmt"

// DoAction resolves one tick with one action per player and appends the new state.
// Returns false when the battle is over. Calling it on a finished battle is a no-op.
func (b *Battle) DoAction(actions [2]Action) bool {
	prev := b.State()
	if prev.Phase.IsTerminal() {
		b.logger.Debug("action on finished battle ignored", "phase", prev.Phase.String())
		return false
	}

	t := &tick{b: b, s: prev.next(), charge: [2]int{-1, -1}}
	t.resolve(actions)

	b.States = append(b.States, t.s)
	b.Actions = append(b.Actions, actions)
	return !t.s.Phase.IsTerminal()
}

// tick is the working set of a single DoAction call.
type tick struct {
	b      *Battle
	s      *State
	extra  int    // ticks spent on top of the base tick
	charge [2]int // charge move slot per player, -1 if none
	// team slot that asked for the charge move; a creature sent out
	// in its place must not fire it
	chargeBy [2]int
}

func (t *tick) resolve(actions [2]Action) {
	// Fast moves whose lockout ran out on earlier ticks land first,
	// so a buffered request can be applied right after.
	t.resolveFastMoves()
	t.forceSwitches()

	for i := range 2 {
		t.intake(i, actions[i])
	}

	// one-tick moves issued this tick
	t.resolveFastMoves()
	t.forceSwitches()

	t.resolveChargeMoves()

	// a charge move cuts in on the victim's lockout
	t.resolveFastMoves()
	t.forceSwitches()

	t.checkGameOver()
	t.advance()
}

func (t *tick) logf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	t.s.Messages = append(t.s.Messages, msg)
	t.b.logger.Debug(msg, "turn", t.s.Turn)
}

func (t *tick) coinFlip() bool {
	return t.b.rng.IntN(2) == 0
}

// intake applies or buffers a player's request.
func (t *tick) intake(i int, req Action) {
	p := &t.s.Players[i]
	if p.HasEnded() {
		return
	}

	if p.IsLockedOut() {
		t.buffer(p, req)
		return
	}

	act := req
	if p.Pending.Kind != ActionNone {
		// a fresh switch beats whatever was buffered
		if req.Kind != ActionSwitch {
			act = p.Pending
		}
		p.Pending = None()
	}
	t.apply(i, act)
}

// buffer stores a request made during a fast move lockout.
// Switch always wins; a buffered charge move is only replaced by a switch.
func (t *tick) buffer(p *Player, req Action) {
	switch req.Kind {
	case ActionNone:
	case ActionFastMove:
		t.logf("%s: %s is busy, fast move dropped", p.Name, p.ActivePokemon().Name())
	case ActionSwitch:
		p.Pending = req
	case ActionChargeMove:
		if p.Pending.Kind == ActionNone {
			p.Pending = req
		} else {
			t.logf("%s: %s ignored, %s already pending", p.Name, req, p.Pending)
		}
	}
}

func (t *tick) apply(i int, act Action) {
	p := &t.s.Players[i]
	active := p.ActivePokemon()

	switch act.Kind {
	case ActionNone:

	case ActionSwitch:
		if !p.CanSwitchTo(act.Index) {
			t.logf("%s: switch to slot %d rejected", p.Name, act.Index)
			return
		}
		out := active.Name()
		p.switchTo(act.Index)
		p.SwitchCooldown = t.b.rules.SwitchCooldownTicks
		t.extra += t.b.rules.SwitchTicks
		t.logf("%s: %s switched out for %s", p.Name, out, p.ActivePokemon().Name())

	case ActionFastMove:
		mv := active.Pokemon.FastMove
		p.InFastMove = true
		p.Lockout = max(mv.Turns-1, 0)

	case ActionChargeMove:
		mv := active.ChargeMove(act.Index)
		if mv == nil {
			t.logf("%s: %s has no charge move in slot %d", p.Name, active.Name(), act.Index)
			return
		}
		if active.Energy < mv.Energy {
			t.logf("%s: not enough energy for %s (%d/%d)", p.Name, mv.Name, active.Energy, mv.Energy)
			return
		}
		t.charge[i] = act.Index
		t.chargeBy[i] = p.Active

	default:
		t.logf("%s: unknown action %s", p.Name, act)
	}
}

// resolveFastMoves lands every fast move whose lockout reached zero.
// Simultaneous completions are ordered by a coin flip.
func (t *tick) resolveFastMoves() {
	var ready [2]bool
	for i := range 2 {
		p := &t.s.Players[i]
		ready[i] = p.InFastMove && p.Lockout == 0
	}

	switch {
	case ready[0] && ready[1]:
		first := 0
		if !t.coinFlip() {
			first = 1
		}
		t.fastMove(first)
		t.fastMove(1 - first)
	case ready[0]:
		t.fastMove(0)
	case ready[1]:
		t.fastMove(1)
	}
}

func (t *tick) fastMove(i int) {
	att := &t.s.Players[i]
	def := &t.s.Players[1-i]
	a := att.ActivePokemon()
	d := def.ActivePokemon()
	mv := a.Pokemon.FastMove

	att.InFastMove = false

	if a.IsFainted() {
		// knocked out earlier in the same pass: no damage, energy still banked
		a.gainEnergy(mv.Energy)
		t.logf("%s: %s fainted before %s landed", att.Name, a.Name(), mv.Name)
		return
	}

	dmg := fastMoveDamage(a, d, t.b.rules)
	d.takeDamage(dmg)
	a.gainEnergy(mv.Energy)
	t.logf("%s: %s used %s, %d damage to %s (HP %d)", att.Name, a.Name(), mv.Name, dmg, d.Name(), d.HP)
}

// resolveChargeMoves fires accepted charge moves, higher effective attack first.
func (t *tick) resolveChargeMoves() {
	for i := range 2 {
		if t.charge[i] >= 0 && !t.chargeStillValid(i) {
			t.charge[i] = -1
		}
	}

	var order []int
	switch {
	case t.charge[0] >= 0 && t.charge[1] >= 0:
		atk0 := t.s.Players[0].ActivePokemon().EffectiveAttack()
		atk1 := t.s.Players[1].ActivePokemon().EffectiveAttack()
		switch {
		case atk0 > atk1:
			order = []int{0, 1}
		case atk1 > atk0:
			order = []int{1, 0}
		case t.coinFlip():
			order = []int{0, 1}
		default:
			order = []int{1, 0}
		}
	case t.charge[0] >= 0:
		order = []int{0}
	case t.charge[1] >= 0:
		order = []int{1}
	}

	for _, i := range order {
		if !t.chargeStillValid(i) {
			continue
		}
		if t.chargeMove(i, t.charge[i]) && t.forceSwitches() {
			break
		}
	}
}

// chargeStillValid reports whether the creature that asked for player i's
// charge move is still out and standing.
func (t *tick) chargeStillValid(i int) bool {
	p := &t.s.Players[i]
	return p.Active == t.chargeBy[i] && !p.ActivePokemon().IsFainted()
}

// chargeMove fires slot of player i. Returns true if the defender fainted.
func (t *tick) chargeMove(i, slot int) bool {
	att := &t.s.Players[i]
	def := &t.s.Players[1-i]
	a := att.ActivePokemon()
	d := def.ActivePokemon()
	mv := a.ChargeMove(slot)
	if mv == nil || a.Energy < mv.Energy {
		return false
	}

	a.Energy -= mv.Energy

	shielded := def.Shields > 0 && t.b.agents[1-i].shouldShield(def)
	var dmg int
	if shielded {
		def.Shields--
		dmg = 1
	} else {
		dmg = chargeMoveDamage(a, d, mv, t.b.rules)
	}
	d.takeDamage(dmg)

	if shielded {
		t.logf("%s: %s used %s, shielded by %s (%d left)", att.Name, a.Name(), mv.Name, def.Name, def.Shields)
	} else {
		t.logf("%s: %s used %s, %d damage to %s (HP %d)", att.Name, a.Name(), mv.Name, dmg, d.Name(), d.HP)
	}

	if mv.Buff != nil && t.b.rng.Float64()*100 < mv.BuffChance {
		sa, sd := a.AddBuff(mv.Buff.SelfAttack, mv.Buff.SelfDefense)
		oa, od := d.AddBuff(mv.Buff.OpponentAttack, mv.Buff.OpponentDefense)
		t.logf("%s: stat change self %+d/%+d opponent %+d/%+d", att.Name, sa, sd, oa, od)
	}

	def.Lockout = 0
	t.extra += t.b.rules.ChargeMoveTicks

	return d.IsFainted()
}

// forceSwitches replaces fainted active creatures of players that still have
// survivors. Forced switches cost no time and start no cooldown; an agent
// choice blocked by the cooldown falls back to the next living slot.
// Returns true if any switch happened.
func (t *tick) forceSwitches() bool {
	switched := false
	for i := range 2 {
		p := &t.s.Players[i]
		if !p.ActivePokemon().IsFainted() || p.HasEnded() {
			continue
		}

		out := p.ActivePokemon().Name()
		target := t.b.agents[i].chooseSwitch(p)
		if !p.CanSwitchTo(target) {
			fb, ok := p.fallbackSwitchTarget()
			if !ok {
				panic(fmt.Errorf("%w: player %s, active %d", ErrNoSwitchTarget, p.Name, p.Active))
			}
			target = fb
		}

		p.switchTo(target)
		t.logf("%s: %s fainted, %s sent out", p.Name, out, p.ActivePokemon().Name())
		switched = true
	}
	return switched
}

func (t *tick) checkGameOver() {
	ended0 := t.s.Players[0].HasEnded()
	ended1 := t.s.Players[1].HasEnded()

	switch {
	case ended0 && ended1:
		t.s.Phase = gameOver(Draw)
	case ended1:
		t.s.Phase = gameOver(Player0Wins)
	case ended0:
		t.s.Phase = gameOver(Player1Wins)
	default:
		return
	}
	t.logf("game over: %s", t.s.Phase.Outcome)
}

// advance moves the clock by one tick plus time spent on switches and charge moves.
func (t *tick) advance() {
	ticks := 1 + t.extra
	for i := range 2 {
		p := &t.s.Players[i]
		p.Lockout = max(p.Lockout-ticks, 0)
		p.SwitchCooldown = max(p.SwitchCooldown-ticks, 0)
	}

	t.s.Turn += ticks
	t.s.ElapsedMillis = t.s.Turn * TickMillis

	if t.s.Phase.Kind == PhaseNeutral && t.s.Turn > t.b.rules.TurnLimit {
		hp0 := t.s.Players[0].TotalHP()
		hp1 := t.s.Players[1].TotalHP()
		switch {
		case hp0 > hp1:
			t.s.Phase = timeOver(Player0Wins)
		case hp1 > hp0:
			t.s.Phase = timeOver(Player1Wins)
		default:
			t.s.Phase = timeOver(Draw)
		}
		t.logf("time over: %s (HP %d vs %d)", t.s.Phase.Outcome, hp0, hp1)
	}
}
