package component

import "github.com/arcwelt/derelict/geom"

// Patrol cycles an entity through a fixed waypoint loop. The patrol
// system feeds the current waypoint into the entity's Pathfinder.
type Patrol struct {
	Waypoints []geom.Vec2
	Current   int
	Enabled   bool
}

// NewPatrol creates a patrol over the given loop.
func NewPatrol(waypoints []geom.Vec2) Patrol {
	return Patrol{
		Waypoints: waypoints,
		Enabled:   true,
	}
}

// CurrentTarget returns the active waypoint, or nil when the loop is
// empty.
func (p *Patrol) CurrentTarget() *geom.Vec2 {
	if len(p.Waypoints) == 0 {
		return nil
	}
	return &p.Waypoints[p.Current]
}

// Advance moves to the next waypoint, wrapping at the end of the loop.
func (p *Patrol) Advance() {
	if len(p.Waypoints) == 0 {
		return
	}
	p.Current = (p.Current + 1) % len(p.Waypoints)
}
