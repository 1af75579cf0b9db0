package component

// Player marks the player-controlled entity and holds its tunables.
type Player struct {
	MoveSpeed float32
	TurnSpeed float32
	Enabled   bool
}

func NewPlayer() Player {
	return Player{
		MoveSpeed: 3.0,
		TurnSpeed: 2.0,
		Enabled:   true,
	}
}
