package component

import (
	"github.com/arcwelt/derelict/geom"
	"github.com/arcwelt/derelict/worldmap"
)

// Wall tags a static wall entity with the tile kind it was built from.
type Wall struct {
	Kind    worldmap.Kind
	Enabled bool
}

// Waypoint is a named point of interest, mostly for visualization.
type Waypoint struct {
	Position geom.Vec2
	Radius   float32
	Enabled  bool
}

func NewWaypoint(position geom.Vec2, radius float32) Waypoint {
	return Waypoint{
		Position: position,
		Radius:   radius,
		Enabled:  true,
	}
}
