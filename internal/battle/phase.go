package battle

import "fmt"

// PhaseKind is the battle phase. TimeOver and GameOver are terminal.
type PhaseKind uint8

const (
	PhaseNeutral PhaseKind = iota
	PhaseTimeOver
	PhaseGameOver
)

func (k PhaseKind) String() string {
	switch k {
	case PhaseNeutral:
		return "neutral"
	case PhaseTimeOver:
		return "time_over"
	case PhaseGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("PhaseKind(%d)", uint8(k))
	}
}

// Outcome of a finished battle.
type Outcome uint8

const (
	Player0Wins Outcome = 0
	Player1Wins Outcome = 1
	Draw        Outcome = 2
)

func (o Outcome) String() string {
	switch o {
	case Player0Wins:
		return "player0"
	case Player1Wins:
		return "player1"
	case Draw:
		return "draw"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

// Phase is the current phase plus the outcome for terminal phases.
type Phase struct {
	Kind    PhaseKind `json:"kind"`
	Outcome Outcome   `json:"outcome"`
}

// IsTerminal reports whether the battle is over.
func (p Phase) IsTerminal() bool {
	return p.Kind == PhaseTimeOver || p.Kind == PhaseGameOver
}

func (p Phase) String() string {
	if !p.IsTerminal() {
		return p.Kind.String()
	}
	return fmt.Sprintf("%s(%s)", p.Kind, p.Outcome)
}

func gameOver(o Outcome) Phase { return Phase{Kind: PhaseGameOver, Outcome: o} }
func timeOver(o Outcome) Phase { return Phase{Kind: PhaseTimeOver, Outcome: o} }
