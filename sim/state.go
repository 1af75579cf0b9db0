package sim

import (
	"go.uber.org/zap"

	"github.com/arcwelt/derelict/collision"
	"github.com/arcwelt/derelict/component"
	"github.com/arcwelt/derelict/ecs"
	"github.com/arcwelt/derelict/geom"
	"github.com/arcwelt/derelict/pathfind"
	"github.com/arcwelt/derelict/worldmap"
)

// State composes the world, the map, the planner and the scheduler into
// one steppable simulation. The caller owns the loop and drives Update.
type State struct {
	world     *ecs.World
	gameMap   *worldmap.Map
	planner   *pathfind.Planner
	scheduler *ecs.Scheduler
	log       *zap.Logger

	pathsPlanned  int64
	nodesExplored int64
}

// NewState builds a simulation over the given map. A nil logger disables
// diagnostics.
func NewState(m *worldmap.Map, log *zap.Logger) *State {
	if log == nil {
		log = zap.NewNop()
	}

	w := ecs.NewWorld()
	registerComponents(w)

	s := &State{
		world:   w,
		gameMap: m,
		planner: pathfind.NewPlanner(m),
		log:     log,
	}

	s.scheduler = ecs.NewScheduler(w)
	s.scheduler.Register(&PatrolSystem{})
	s.scheduler.Register(NewPlanSystem(s))
	s.scheduler.Register(NewSteerSystem(s))

	return s
}

func registerComponents(w *ecs.World) {
	ecs.RegisterComponent[component.Transform](w)
	ecs.RegisterComponent[component.Velocity](w)
	ecs.RegisterComponent[component.Player](w)
	ecs.RegisterComponent[component.Pathfinder](w)
	ecs.RegisterComponent[component.Patrol](w)
	ecs.RegisterComponent[component.Waypoint](w)
	ecs.RegisterComponent[component.Wall](w)
	ecs.RegisterComponent[collision.Collider](w)
}

// World returns the simulation's ECS world.
func (s *State) World() *ecs.World {
	return s.world
}

// Map returns the static map.
func (s *State) Map() *worldmap.Map {
	return s.gameMap
}

// Planner returns the path planner.
func (s *State) Planner() *pathfind.Planner {
	return s.planner
}

// Scheduler returns the system scheduler, for stats.
func (s *State) Scheduler() *ecs.Scheduler {
	return s.scheduler
}

// PathsPlanned returns the number of successful plans so far.
func (s *State) PathsPlanned() int64 {
	return s.pathsPlanned
}

// NodesExplored returns the total A* expansions so far.
func (s *State) NodesExplored() int64 {
	return s.nodesExplored
}

// BuildWalls spawns a static collider entity for every wall tile. Wall
// boxes fill their cell and stand 2.5 units tall, centered so the
// movement probe capsule overlaps only its own cell.
func (s *State) BuildWalls() int {
	count := 0
	for y := 0; y < s.gameMap.Height; y++ {
		for x := 0; x < s.gameMap.Width; x++ {
			cell := worldmap.Cell{X: x, Y: y}
			if !s.gameMap.IsWall(cell) {
				continue
			}
			wx, wz := s.gameMap.GridToWorld(cell)
			s.world.Spawn().
				With(component.NewTransform(geom.V3(wx, 1.25, wz))).
				With(collision.StaticSolid(collision.Box{Size: geom.V3(1, 2.5, 1)})).
				With(component.Wall{Kind: s.gameMap.KindAt(cell), Enabled: true}).
				Build()
			count++
		}
	}
	s.log.Info("built walls", zap.Int("count", count))
	return count
}

// SpawnBot creates a patrol bot at the given position.
func (s *State) SpawnBot(position geom.Vec2, waypoints []geom.Vec2, moveSpeed, turnSpeed float32) ecs.Entity {
	e := s.world.Spawn().
		With(component.NewTransform(geom.V3(position.X, 0.6, position.Y))).
		With(component.NewPathfinder(moveSpeed, turnSpeed)).
		With(component.NewPatrol(waypoints)).
		Build()
	s.log.Info("spawned bot",
		zap.Uint32("entity", e.ID),
		zap.Int("waypoints", len(waypoints)))
	return e
}

// Update steps the simulation by dt seconds.
func (s *State) Update(dt float64) {
	s.scheduler.Once(dt)
}
