package battle

// State is a fully resolved snapshot after one tick. Snapshots in history are never mutated.
type State struct {
	Players       [2]Player `json:"players"`
	Phase         Phase     `json:"phase"`
	Turn          int       `json:"turn"` // elapsed ticks
	ElapsedMillis int       `json:"elapsed_ms"`
	Messages      []string  `json:"messages,omitempty"`
}

// Player returns player i (0 or 1).
func (s *State) Player(i int) *Player {
	return &s.Players[i]
}

// next copies the state for a new tick. Messages start empty.
func (s *State) next() *State {
	c := &State{
		Phase:         s.Phase,
		Turn:          s.Turn,
		ElapsedMillis: s.ElapsedMillis,
	}
	c.Players[0] = s.Players[0].clone()
	c.Players[1] = s.Players[1].clone()
	return c
}
