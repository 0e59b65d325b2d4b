package battle

import "github.com/udisondev/pvpsim/internal/config"

// TickMillis is the in-game duration of one tick.
const TickMillis = 500

// MaxEnergy caps a creature's stored energy.
const MaxEnergy = 100

// Rules are the tunable trainer battle parameters. Durations are in ticks.
type Rules struct {
	Shields             int
	SwitchCooldownTicks int
	SwitchTicks         int
	ChargeMoveTicks     int
	TurnLimit           int
	MaxIterations       int
	BattleBonus         float64
	ChargeBonus         float64
}

// NewRules converts battle config into engine rules.
func NewRules(cfg config.BattleConfig) Rules {
	return Rules{
		Shields:             cfg.Shields,
		SwitchCooldownTicks: cfg.SwitchCooldownTicks,
		SwitchTicks:         cfg.SwitchTicks,
		ChargeMoveTicks:     cfg.ChargeMoveTicks,
		TurnLimit:           cfg.TurnLimit,
		MaxIterations:       cfg.MaxIterations,
		BattleBonus:         cfg.BattleBonus,
		ChargeBonus:         cfg.ChargeBonus,
	}
}

// DefaultRules returns the standard trainer battle rules.
func DefaultRules() Rules {
	return NewRules(config.DefaultBattle())
}
