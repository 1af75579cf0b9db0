package ecs_test

import (
	"reflect"
	"testing"

	"github.com/arcwelt/derelict/ecs"
	"github.com/stretchr/testify/assert"
)

func countQuery1[T any](w *ecs.World) int {
	n := 0
	for range ecs.Query1[T](w) {
		n++
	}
	return n
}

type commandSystem struct {
	run func(tick *ecs.Tick)
}

func (s *commandSystem) Execute(tick *ecs.Tick) {
	s.run(tick)
}

func TestCommandsSpawnDeferredUntilFlush(t *testing.T) {
	w := newTestWorld()
	sched := ecs.NewScheduler(w)

	sched.Register(&commandSystem{run: func(tick *ecs.Tick) {
		tick.Commands.Spawn(Position{X: 1}, Velocity{DX: 2})
		// Nothing visible mid-tick.
		assert.Equal(t, 0, countQuery1[Position](tick.World))
	}})

	sched.Once(0.016)
	assert.Equal(t, 1, countQuery1[Position](w))
}

func TestCommandsDespawnWinsOverLaterOps(t *testing.T) {
	w := newTestWorld()
	e := w.Spawn().With(Position{X: 1}).Build()

	sched := ecs.NewScheduler(w)
	sched.Register(&commandSystem{run: func(tick *ecs.Tick) {
		tick.Commands.Despawn(e)
		tick.Commands.AddComponent(e, Velocity{DX: 5})
	}})
	sched.Once(0.016)

	assert.False(t, w.IsValid(e))
	assert.Equal(t, 0, countQuery1[Velocity](w))
}

func TestCommandsAddRemove(t *testing.T) {
	w := newTestWorld()
	e := w.Spawn().With(Position{X: 1}).With(Velocity{DX: 1}).Build()

	sched := ecs.NewScheduler(w)
	sched.Register(&commandSystem{run: func(tick *ecs.Tick) {
		tick.Commands.AddComponent(e, Health{Current: 5, Max: 5})
		tick.Commands.RemoveComponent(e, reflect.TypeOf(Velocity{}))
	}})
	sched.Once(0.016)

	assert.True(t, ecs.Has[Health](w, e))
	assert.False(t, ecs.Has[Velocity](w, e))
}

func TestCommandsDeferRunsLast(t *testing.T) {
	w := newTestWorld()

	var order []string
	sched := ecs.NewScheduler(w)
	sched.Register(&commandSystem{run: func(tick *ecs.Tick) {
		tick.Commands.Defer(func() {
			order = append(order, "defer")
			// Spawns from this tick are already applied.
			assert.Equal(t, 1, countQuery1[Position](w))
		})
		tick.Commands.Spawn(Position{X: 1})
		order = append(order, "system")
	}})
	sched.Once(0.016)

	assert.Equal(t, []string{"system", "defer"}, order)
}

func TestCommandsBufferResetsBetweenTicks(t *testing.T) {
	w := newTestWorld()

	spawned := false
	sched := ecs.NewScheduler(w)
	sched.Register(&commandSystem{run: func(tick *ecs.Tick) {
		if !spawned {
			tick.Commands.Spawn(Position{X: 1})
			spawned = true
		}
	}})

	sched.Once(0.016)
	sched.Once(0.016)

	assert.Equal(t, 1, countQuery1[Position](w))
}
