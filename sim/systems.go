package sim

import (
	"math"

	"go.uber.org/zap"

	"github.com/arcwelt/derelict/collision"
	"github.com/arcwelt/derelict/component"
	"github.com/arcwelt/derelict/ecs"
	"github.com/arcwelt/derelict/geom"
)

// PatrolSystem feeds patrol waypoints into pathfinder targets and
// advances the loop on arrival.
type PatrolSystem struct{}

func (s *PatrolSystem) Execute(tick *ecs.Tick) {
	for _, v := range ecs.Query3[component.Patrol, component.Pathfinder, component.Transform](tick.World) {
		patrol, pf, tr := v.A, v.B, v.C
		if !patrol.Enabled || !pf.Enabled || !tr.Enabled {
			continue
		}

		target := patrol.CurrentTarget()
		if target == nil {
			continue
		}

		pos := tr.Position.XZ()
		if pf.Target == nil {
			pf.SetTarget(*target)
			continue
		}
		if pf.ReachedTarget(pos) {
			patrol.Advance()
			if next := patrol.CurrentTarget(); next != nil {
				pf.SetTarget(*next)
			}
		}
	}
}

// PlanSystem runs the A* planner for every pathfinder that asked for a
// replan, storing the path and the explored set.
type PlanSystem struct {
	state *State
}

func NewPlanSystem(state *State) *PlanSystem {
	return &PlanSystem{state: state}
}

func (s *PlanSystem) Execute(tick *ecs.Tick) {
	for e, v := range ecs.Query2[component.Pathfinder, component.Transform](tick.World) {
		pf, tr := v.A, v.B
		if !pf.Enabled || !tr.Enabled || !pf.NeedsReplan || pf.Target == nil {
			continue
		}

		pos := tr.Position.XZ()
		res := s.state.planner.FindPathInWorld(pos, *pf.Target, tick.World)
		s.state.nodesExplored += int64(len(res.Explored))

		if !res.Found {
			s.state.log.Warn("no path found",
				zap.Uint32("entity", e.ID),
				zap.Float32("from_x", pos.X), zap.Float32("from_z", pos.Y),
				zap.Float32("to_x", pf.Target.X), zap.Float32("to_z", pf.Target.Y))
			pf.ClearPath()
			continue
		}

		pf.Path = res.Path
		pf.Explored = res.Explored
		pf.PathIndex = 0
		pf.NeedsReplan = false
		s.state.pathsPlanned++
		s.state.log.Debug("path planned",
			zap.Uint32("entity", e.ID),
			zap.Int("steps", len(res.Path)),
			zap.Int("explored", len(res.Explored)))
	}
}

// facingThreshold gates forward movement: the entity turns in place
// until it faces within 30 degrees of the next point.
const facingThreshold = 30 * math.Pi / 180

// SteerSystem walks entities along their planned paths: rotate toward
// the next point, move when facing it, and nudge sideways when stuck.
// It runs in two passes, first reading positions and probing collisions,
// then applying the movement, so probes never see half-updated state.
type SteerSystem struct {
	state *State
	frame int64
}

func NewSteerSystem(state *State) *SteerSystem {
	return &SteerSystem{state: state}
}

type steerPlan struct {
	entity   ecs.Entity
	advance  bool
	rotate   bool
	newRot   float32
	move     bool
	newX     float32
	newZ     float32
	unstick  bool
	replan   bool
	newStuck float32
	lastPos  geom.Vec2
}

func (s *SteerSystem) Execute(tick *ecs.Tick) {
	s.frame++
	dt := float32(tick.DeltaTime)

	var plans []steerPlan
	for e, v := range ecs.Query2[component.Pathfinder, component.Transform](tick.World) {
		pf, tr := v.A, v.B
		if !pf.Enabled || !tr.Enabled {
			continue
		}
		next := pf.NextPosition()
		if next == nil {
			continue
		}

		pos := tr.Position.XZ()
		plan := steerPlan{entity: e, lastPos: pos}

		dir := next.Sub(pos)
		if dir.Length() < pf.ArrivalRadius {
			plan.advance = true
			plans = append(plans, plan)
			continue
		}

		targetAngle := float32(math.Atan2(float64(dir.Y), float64(dir.X)))
		angleDiff := normalizeAngle(targetAngle - tr.Rotation.Y)

		maxTurn := pf.TurnSpeed * dt
		plan.rotate = true
		switch {
		case abs(angleDiff) < maxTurn:
			plan.newRot = targetAngle
		case angleDiff > 0:
			plan.newRot = tr.Rotation.Y + maxTurn
		default:
			plan.newRot = tr.Rotation.Y - maxTurn
		}

		if abs(angleDiff) < facingThreshold {
			step := pf.MoveSpeed * dt
			newX := pos.X + float32(math.Cos(float64(plan.newRot)))*step
			newZ := pos.Y + float32(math.Sin(float64(plan.newRot)))*step
			if !collision.CheckGridCollision(tick.World, newX, newZ) {
				plan.move = true
				plan.newX = newX
				plan.newZ = newZ
			}
		}

		posDiff := pos.Sub(pf.LastPosition).Length()
		stuckTime := pf.StuckTime + dt
		if posDiff < 0.01 && stuckTime > 0.5 {
			// Probe a small sidestep 45 degrees off the facing.
			unstickAngle := plan.newRot + math.Pi/4
			ux := pos.X + float32(math.Cos(float64(unstickAngle)))*0.1
			uz := pos.Y + float32(math.Sin(float64(unstickAngle)))*0.1
			if !collision.CheckGridCollision(tick.World, ux, uz) {
				plan.unstick = true
				plan.move = true
				plan.newX = ux
				plan.newZ = uz
			}
			plan.replan = true
			plan.newStuck = 0
		} else if posDiff < 0.01 {
			plan.newStuck = stuckTime
		} else {
			plan.newStuck = 0
		}

		plans = append(plans, plan)
	}

	for _, plan := range plans {
		pf := ecs.Get[component.Pathfinder](tick.World, plan.entity)
		tr := ecs.Get[component.Transform](tick.World, plan.entity)
		if pf == nil || tr == nil {
			continue
		}

		if plan.advance {
			pf.AdvanceStep()
			continue
		}

		if plan.rotate {
			tr.Rotation.Y = plan.newRot
		}
		if plan.move {
			tr.Position.X = plan.newX
			tr.Position.Z = plan.newZ
		}
		if plan.replan {
			pf.NeedsReplan = true
			if plan.unstick && s.frame%60 == 0 {
				s.state.log.Debug("unstick nudge",
					zap.Uint32("entity", plan.entity.ID),
					zap.Float32("x", plan.newX), zap.Float32("z", plan.newZ))
			}
		}
		pf.StuckTime = plan.newStuck
		pf.LastPosition = plan.lastPos
	}
}

// normalizeAngle wraps an angle into [-pi, pi].
func normalizeAngle(a float32) float32 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
