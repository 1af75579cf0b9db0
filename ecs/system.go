package ecs

// System represents a behavior that runs once per tick over the world.
// Systems may keep state fields that persist between ticks; structural
// world changes go through tick.Commands.
type System interface {
	Execute(tick *Tick)
}
