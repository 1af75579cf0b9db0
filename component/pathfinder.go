package component

import (
	"github.com/arcwelt/derelict/geom"
	"github.com/arcwelt/derelict/worldmap"
)

// Pathfinder gives an entity the ability to navigate toward targets.
// The plan system fills Path and Explored; the steer system walks them.
type Pathfinder struct {
	Target        *geom.Vec2
	Path          []geom.Vec2
	PathIndex     int
	MoveSpeed     float32
	TurnSpeed     float32
	StuckTime     float32
	LastPosition  geom.Vec2
	NeedsReplan   bool
	Explored      []worldmap.Cell
	ArrivalRadius float32
	Enabled       bool
}

// NewPathfinder creates an idle pathfinder with the given speeds.
func NewPathfinder(moveSpeed, turnSpeed float32) Pathfinder {
	return Pathfinder{
		MoveSpeed:     moveSpeed,
		TurnSpeed:     turnSpeed,
		ArrivalRadius: 0.4,
		Enabled:       true,
	}
}

// SetTarget points the pathfinder at a new goal and marks it for a
// replan. Ignored while disabled.
func (p *Pathfinder) SetTarget(target geom.Vec2) {
	if !p.Enabled {
		return
	}
	t := target
	p.Target = &t
	p.NeedsReplan = true
	p.PathIndex = 0
	p.StuckTime = 0
}

// ReachedTarget reports whether the current position is within the
// arrival radius of the target.
func (p *Pathfinder) ReachedTarget(current geom.Vec2) bool {
	if !p.Enabled || p.Target == nil {
		return false
	}
	return current.Distance(*p.Target) < p.ArrivalRadius
}

// NextPosition returns the next point to steer toward: the current path
// step, or the raw target once the path is exhausted.
func (p *Pathfinder) NextPosition() *geom.Vec2 {
	if !p.Enabled {
		return nil
	}
	if p.PathIndex < len(p.Path) {
		return &p.Path[p.PathIndex]
	}
	return p.Target
}

// AdvanceStep moves to the next point in the path.
func (p *Pathfinder) AdvanceStep() {
	if !p.Enabled {
		return
	}
	if p.PathIndex < len(p.Path) {
		p.PathIndex++
	}
}

// ClearPath drops the path, target and explored set.
func (p *Pathfinder) ClearPath() {
	p.Path = nil
	p.PathIndex = 0
	p.Target = nil
	p.NeedsReplan = false
	p.Explored = nil
}
