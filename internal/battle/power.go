package battle

import (
	"log/slog"

	"github.com/udisondev/pvpsim/internal/model"
)

// PowerPerTurn estimates raw offensive output: attacker fights an idle, unshielded
// defender with type effects disabled for the attacker, until the defender faints
// or the turn limit passes. Returns damage dealt per elapsed tick.
func PowerPerTurn(attacker, defender *model.Pokemon, seed uint64) (float64, error) {
	rules := DefaultRules()
	rules.Shields = 0

	b, err := New("attacker", []*model.Pokemon{attacker}, "defender", []*model.Pokemon{defender},
		WithSeed(seed),
		WithRules(rules),
		WithLogger(slog.New(slog.DiscardHandler)),
		WithAgents(Agent{Strategy: StrategyFunc(greedy)}, Agent{}),
		WithTypeEffectDisabled(0),
	)
	if err != nil {
		return 0, err
	}
	b.Start()

	s := b.State()
	if s.Turn == 0 {
		return 0, nil
	}
	d := &s.Players[1].Team[0]
	return float64(d.MaxHP()-d.HP) / float64(s.Turn), nil
}

// greedy fires the strongest affordable charge move, otherwise the fast move.
func greedy(self *Player) Action {
	if slot, ok := self.ActivePokemon().BestChargeMove(); ok {
		return ChargeMove(slot)
	}
	return FastMove()
}
