package battle

import (
	"github.com/udisondev/pvpsim/internal/data"
	"github.com/udisondev/pvpsim/internal/model"
)

// Buff holds attack and defense stat stages, each within [-4,4].
type Buff struct {
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
}

// BattlePokemon is a roster slot's battle-scoped state.
// Pokemon is shared and never mutated.
type BattlePokemon struct {
	Pokemon            *model.Pokemon `json:"-"`
	HP                 int            `json:"hp"`
	Energy             int            `json:"energy"`
	Buff               Buff           `json:"buff"`
	TypeEffectDisabled bool           `json:"-"`

	maxHP   int
	attack  float64
	defense float64
}

// NewBattlePokemon wraps p with full HP and no energy.
func NewBattlePokemon(p *model.Pokemon) BattlePokemon {
	st := p.Stats()
	return BattlePokemon{
		Pokemon: p,
		HP:      st.HP(),
		maxHP:   st.HP(),
		attack:  st.Attack,
		defense: st.Defense,
	}
}

// Name returns the species name.
func (bp *BattlePokemon) Name() string {
	return bp.Pokemon.Name()
}

// MaxHP returns HP at battle start.
func (bp *BattlePokemon) MaxHP() int {
	return bp.maxHP
}

// IsFainted reports HP == 0.
func (bp *BattlePokemon) IsFainted() bool {
	return bp.HP <= 0
}

// AddBuff adds stages, clamping each to [-4,4]. Returns the applied delta.
func (bp *BattlePokemon) AddBuff(attack, defense int) (int, int) {
	prev := bp.Buff
	bp.Buff.Attack = clampStage(bp.Buff.Attack + attack)
	bp.Buff.Defense = clampStage(bp.Buff.Defense + defense)
	return bp.Buff.Attack - prev.Attack, bp.Buff.Defense - prev.Defense
}

// EffectiveAttack is the attack stat with the current stage applied.
func (bp *BattlePokemon) EffectiveAttack() float64 {
	return bp.attack * StageMultiplier(bp.Buff.Attack)
}

// EffectiveDefense is the defense stat with the current stage applied.
func (bp *BattlePokemon) EffectiveDefense() float64 {
	return bp.defense * StageMultiplier(bp.Buff.Defense)
}

// ChargeMove returns the move in slot or nil.
func (bp *BattlePokemon) ChargeMove(slot int) *data.ChargeMove {
	return bp.Pokemon.ChargeMove(slot)
}

// CanChargeMove reports whether slot exists and energy suffices.
func (bp *BattlePokemon) CanChargeMove(slot int) bool {
	mv := bp.ChargeMove(slot)
	return mv != nil && bp.Energy >= mv.Energy
}

// BestChargeMove returns the affordable charge move slot with the highest
// real power, first slot on ties. False if none is affordable.
func (bp *BattlePokemon) BestChargeMove() (int, bool) {
	best, bestPower := -1, 0.0
	for slot, mv := range bp.Pokemon.ChargeMoves {
		if !bp.CanChargeMove(slot) {
			continue
		}
		if p := mv.RealPower(bp.Pokemon.Types()); best < 0 || p > bestPower {
			best, bestPower = slot, p
		}
	}
	return best, best >= 0
}

func (bp *BattlePokemon) takeDamage(dmg int) {
	bp.HP = max(bp.HP-dmg, 0)
}

func (bp *BattlePokemon) gainEnergy(e int) {
	bp.Energy = max(0, min(bp.Energy+e, MaxEnergy))
}

func clampStage(s int) int {
	return max(MinStage, min(s, MaxStage))
}
