package ecs

// Tick carries per-frame state into systems: the elapsed time, the world,
// and the command buffer for deferred mutations.
type Tick struct {
	DeltaTime float64
	Commands  *Commands
	World     *World
}

func newTick(dt float64, w *World) *Tick {
	return &Tick{
		DeltaTime: dt,
		Commands:  newCommands(),
		World:     w,
	}
}
