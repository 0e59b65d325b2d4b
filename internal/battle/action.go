package battle

import "fmt"

// ActionKind identifies what a player asks to do on a tick.
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionFastMove
	ActionChargeMove
	ActionSwitch
)

// Action is one player's request for a tick.
// Index is the charge move slot (0/1) or the roster slot to switch to.
type Action struct {
	Kind  ActionKind `json:"kind"`
	Index int        `json:"index,omitempty"`
}

// None requests nothing.
func None() Action { return Action{Kind: ActionNone} }

// FastMove requests the active creature's fast move.
func FastMove() Action { return Action{Kind: ActionFastMove} }

// ChargeMove requests the charge move in slot (0 or 1).
func ChargeMove(slot int) Action { return Action{Kind: ActionChargeMove, Index: slot} }

// Switch requests a switch to roster slot i.
func Switch(i int) Action { return Action{Kind: ActionSwitch, Index: i} }

func (a Action) String() string {
	switch a.Kind {
	case ActionNone:
		return "None"
	case ActionFastMove:
		return "FastMove"
	case ActionChargeMove:
		return fmt.Sprintf("ChargeMove(%d)", a.Index)
	case ActionSwitch:
		return fmt.Sprintf("Switch(%d)", a.Index)
	default:
		return fmt.Sprintf("Action(%d,%d)", a.Kind, a.Index)
	}
}
