package collision_test

import (
	"testing"

	"github.com/arcwelt/derelict/collision"
	"github.com/arcwelt/derelict/component"
	"github.com/arcwelt/derelict/ecs"
	"github.com/arcwelt/derelict/geom"
	"github.com/stretchr/testify/assert"
)

func newCollisionWorld() *ecs.World {
	w := ecs.NewWorld()
	ecs.RegisterComponent[component.Transform](w)
	ecs.RegisterComponent[collision.Collider](w)
	return w
}

func spawnWall(w *ecs.World, x, z float32) ecs.Entity {
	return w.Spawn().
		With(component.NewTransform(geom.V3(x, 1.25, z))).
		With(collision.StaticSolid(collision.Box{Size: geom.V3(1, 2.5, 1)})).
		Build()
}

func TestBlocksMovement(t *testing.T) {
	solid := collision.StaticSolid(collision.Box{Size: geom.V3(1, 1, 1)})
	assert.True(t, solid.BlocksMovement())

	trigger := collision.StaticTrigger(collision.Box{Size: geom.V3(1, 1, 1)})
	assert.False(t, trigger.BlocksMovement())

	disabled := collision.DynamicSolid(collision.Sphere{Radius: 1})
	disabled.Enabled = false
	assert.False(t, disabled.BlocksMovement())
}

func TestGridCollisionAgainstWall(t *testing.T) {
	w := newCollisionWorld()
	spawnWall(w, 5.5, 5.5)

	// Probing the wall's own cell collides, a far cell does not.
	assert.True(t, collision.CheckGridCollision(w, 5.5, 5.5))
	assert.False(t, collision.CheckGridCollision(w, 2.5, 2.5))

	// Neighboring cell centers stay clear of the wall box.
	assert.False(t, collision.CheckGridCollision(w, 4.5, 5.5))
	assert.False(t, collision.CheckGridCollision(w, 5.5, 4.5))
}

func TestTriggerDoesNotBlock(t *testing.T) {
	w := newCollisionWorld()
	w.Spawn().
		With(component.NewTransform(geom.V3(5.5, 1.25, 5.5))).
		With(collision.StaticTrigger(collision.Box{Size: geom.V3(1, 2.5, 1)})).
		Build()

	assert.False(t, collision.CheckGridCollision(w, 5.5, 5.5))
}

func TestDisabledColliderSkipped(t *testing.T) {
	w := newCollisionWorld()
	e := spawnWall(w, 5.5, 5.5)

	ecs.Get[collision.Collider](w, e).Enabled = false
	assert.False(t, collision.CheckGridCollision(w, 5.5, 5.5))
}

func TestDisabledTransformSkipped(t *testing.T) {
	w := newCollisionWorld()
	e := spawnWall(w, 5.5, 5.5)

	ecs.Get[component.Transform](w, e).Enabled = false
	assert.False(t, collision.CheckGridCollision(w, 5.5, 5.5))
}

func TestPositionCollisionRadius(t *testing.T) {
	w := newCollisionWorld()
	spawnWall(w, 5.5, 5.5)

	pos := geom.V3(6.2, 0.6, 5.5)
	assert.False(t, collision.CheckPositionCollision(w, pos, 0.1))
	assert.True(t, collision.CheckPositionCollision(w, pos, 0.3))
}

func TestMaterialPresets(t *testing.T) {
	assert.Equal(t, float32(0.5), collision.StandardMaterial().Friction)
	assert.Equal(t, float32(0.1), collision.SlipperyMaterial().Friction)
	assert.Equal(t, float32(0.8), collision.BouncyMaterial().Restitution)

	c := collision.StaticSolid(collision.Sphere{Radius: 1}).
		WithMaterial(collision.SlipperyMaterial())
	assert.Equal(t, float32(0.1), c.Material.Friction)
}
