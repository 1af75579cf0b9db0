// Package component holds the game's plain-data component types. Each
// carries an Enabled flag so systems can suspend an entity's behavior
// without detaching state.
package component

import (
	"math"

	"github.com/arcwelt/derelict/geom"
)

// Transform is position, rotation and scale in 3D space. Rotation is
// Euler angles in radians; yaw is Rotation.Y.
type Transform struct {
	Position geom.Vec3
	Rotation geom.Vec3
	Scale    geom.Vec3
	Enabled  bool
}

// NewTransform creates a transform at the given position with unit scale.
func NewTransform(position geom.Vec3) Transform {
	return Transform{
		Position: position,
		Scale:    geom.V3(1, 1, 1),
		Enabled:  true,
	}
}

// WithRotation sets the rotation and returns the transform.
func (t Transform) WithRotation(rotation geom.Vec3) Transform {
	t.Rotation = rotation
	return t
}

// WithScale sets the scale and returns the transform.
func (t Transform) WithScale(scale geom.Vec3) Transform {
	t.Scale = scale
	return t
}

// Forward returns the horizontal facing direction from the yaw angle.
func (t *Transform) Forward() geom.Vec3 {
	return geom.V3(
		float32(math.Cos(float64(t.Rotation.Y))),
		0,
		float32(math.Sin(float64(t.Rotation.Y))),
	)
}

// Right returns the horizontal direction 90 degrees clockwise of Forward.
func (t *Transform) Right() geom.Vec3 {
	return geom.V3(
		float32(math.Cos(float64(t.Rotation.Y)+math.Pi/2)),
		0,
		float32(math.Sin(float64(t.Rotation.Y)+math.Pi/2)),
	)
}

// Translate moves the transform by delta.
func (t *Transform) Translate(delta geom.Vec3) {
	t.Position = t.Position.Add(delta)
}
