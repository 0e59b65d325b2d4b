package battle

import (
	"fmt"
	"math"

	"github.com/udisondev/pvpsim/internal/data"
)

// Stat stage bounds.
const (
	MinStage = -4
	MaxStage = 4
)

// stageMultipliers maps a stat stage at index stage+4.
var stageMultipliers = [9]float64{0.5, 4.0 / 7.0, 2.0 / 3.0, 4.0 / 5.0, 1, 5.0 / 4.0, 3.0 / 2.0, 7.0 / 4.0, 2}

// StageMultiplier returns the stat multiplier of a stage in [-4,4].
func StageMultiplier(stage int) float64 {
	if stage < MinStage || stage > MaxStage {
		panic(fmt.Sprintf("battle: stat stage %d out of range", stage))
	}
	return stageMultipliers[stage-MinStage]
}

// Damage returns floor(0.5 * power * attack/defense * multiplier) + 1.
// multiplier combines type effectiveness, battle bonus and charge bonus.
func Damage(power, attack, defense, multiplier float64) int {
	return int(math.Floor(0.5*power*(attack/defense)*multiplier)) + 1
}

func typeEffect(moveType data.Type, attacker, defender *BattlePokemon) float64 {
	if attacker.TypeEffectDisabled {
		return 1
	}
	return data.TypeEffectBonus(moveType, defender.Pokemon.Types())
}

// fastMoveDamage computes the damage attacker's fast move deals to defender.
func fastMoveDamage(attacker, defender *BattlePokemon, rules Rules) int {
	mv := attacker.Pokemon.FastMove
	power := mv.RealPower(attacker.Pokemon.Types())
	mult := typeEffect(mv.Type, attacker, defender) * rules.BattleBonus
	return Damage(power, attacker.EffectiveAttack(), defender.EffectiveDefense(), mult)
}

// chargeMoveDamage computes unshielded damage of the charge move in slot.
func chargeMoveDamage(attacker, defender *BattlePokemon, mv *data.ChargeMove, rules Rules) int {
	power := mv.RealPower(attacker.Pokemon.Types())
	mult := typeEffect(mv.Type, attacker, defender) * rules.BattleBonus * rules.ChargeBonus
	return Damage(power, attacker.EffectiveAttack(), defender.EffectiveDefense(), mult)
}
