package component_test

import (
	"math"
	"testing"

	"github.com/arcwelt/derelict/component"
	"github.com/arcwelt/derelict/geom"
	"github.com/stretchr/testify/assert"
)

func TestPathfinderSetTarget(t *testing.T) {
	p := component.NewPathfinder(2.0, 3.0)
	p.Path = []geom.Vec2{geom.V2(1, 1)}
	p.PathIndex = 1
	p.StuckTime = 2.5

	p.SetTarget(geom.V2(5, 5))

	assert.NotNil(t, p.Target)
	assert.Equal(t, geom.V2(5, 5), *p.Target)
	assert.True(t, p.NeedsReplan)
	assert.Equal(t, 0, p.PathIndex)
	assert.Equal(t, float32(0), p.StuckTime)
}

func TestPathfinderDisabledIgnoresTarget(t *testing.T) {
	p := component.NewPathfinder(2.0, 3.0)
	p.Enabled = false

	p.SetTarget(geom.V2(5, 5))
	assert.Nil(t, p.Target)
	assert.Nil(t, p.NextPosition())
	assert.False(t, p.ReachedTarget(geom.V2(5, 5)))
}

func TestPathfinderNextPosition(t *testing.T) {
	p := component.NewPathfinder(2.0, 3.0)
	p.SetTarget(geom.V2(9, 9))
	p.Path = []geom.Vec2{geom.V2(1, 0), geom.V2(2, 0)}

	assert.Equal(t, geom.V2(1, 0), *p.NextPosition())
	p.AdvanceStep()
	assert.Equal(t, geom.V2(2, 0), *p.NextPosition())
	p.AdvanceStep()

	// Past the path end, steer at the raw target.
	assert.Equal(t, geom.V2(9, 9), *p.NextPosition())
}

func TestPathfinderArrival(t *testing.T) {
	p := component.NewPathfinder(2.0, 3.0)
	p.SetTarget(geom.V2(5, 5))

	assert.False(t, p.ReachedTarget(geom.V2(0, 0)))
	assert.True(t, p.ReachedTarget(geom.V2(5.2, 5.2)))
}

func TestPathfinderClearPath(t *testing.T) {
	p := component.NewPathfinder(2.0, 3.0)
	p.SetTarget(geom.V2(5, 5))
	p.Path = []geom.Vec2{geom.V2(1, 1)}

	p.ClearPath()
	assert.Nil(t, p.Target)
	assert.Empty(t, p.Path)
	assert.False(t, p.NeedsReplan)
}

func TestPatrolLoop(t *testing.T) {
	p := component.NewPatrol([]geom.Vec2{geom.V2(1, 1), geom.V2(2, 2)})

	assert.Equal(t, geom.V2(1, 1), *p.CurrentTarget())
	p.Advance()
	assert.Equal(t, geom.V2(2, 2), *p.CurrentTarget())
	p.Advance()
	assert.Equal(t, geom.V2(1, 1), *p.CurrentTarget())
}

func TestTransformForward(t *testing.T) {
	tr := component.NewTransform(geom.V3(0, 0, 0))

	f := tr.Forward()
	assert.InDelta(t, 1.0, f.X, 1e-6)
	assert.InDelta(t, 0.0, f.Z, 1e-6)

	tr.Rotation.Y = math.Pi / 2
	f = tr.Forward()
	assert.InDelta(t, 0.0, f.X, 1e-6)
	assert.InDelta(t, 1.0, f.Z, 1e-6)

	r := tr.Right()
	assert.InDelta(t, -1.0, r.X, 1e-6)
	assert.InDelta(t, 0.0, r.Z, 1e-6)
}
