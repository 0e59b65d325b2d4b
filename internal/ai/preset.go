package ai

import (
	"errors"
	"fmt"
	"slices"

	"github.com/udisondev/pvpsim/internal/battle"
)

// ErrUnknownPreset is returned for an agent name Preset does not know.
var ErrUnknownPreset = errors.New("unknown agent preset")

// Preset names.
const (
	PresetBasic   = "basic"
	PresetRandom  = "random"
	PresetPassive = "passive"
)

var presets = map[string]func(seed uint64) battle.Agent{
	PresetBasic: func(uint64) battle.Agent {
		return battle.Agent{Strategy: BasicStrategy{}, Shield: ShieldWhileAbove{Ratio: 0.5}, Switch: SwitchHighestHP{}}
	},
	PresetRandom: func(seed uint64) battle.Agent {
		rs := NewRandomStrategy(seed)
		return battle.Agent{Strategy: rs, Shield: rs, Switch: SwitchFirstAlive{}}
	},
	PresetPassive: func(uint64) battle.Agent {
		return battle.Agent{Strategy: PassiveStrategy{}, Shield: ShieldNever{}, Switch: SwitchFirstAlive{}}
	},
}

// Preset builds a named agent. seed is used by randomized presets only.
// An empty name selects the basic agent.
func Preset(name string, seed uint64) (battle.Agent, error) {
	if name == "" {
		name = PresetBasic
	}
	build, ok := presets[name]
	if !ok {
		return battle.Agent{}, fmt.Errorf("%w: %q (known: %v)", ErrUnknownPreset, name, Presets())
	}
	return build(seed), nil
}

// Presets lists the known preset names in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
