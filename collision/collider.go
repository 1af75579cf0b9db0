package collision

import (
	"github.com/arcwelt/derelict/component"
	"github.com/arcwelt/derelict/ecs"
	"github.com/arcwelt/derelict/geom"
)

// Material holds the surface properties a physics response would use.
type Material struct {
	Friction    float32
	Restitution float32
	Density     float32
}

// StandardMaterial suits walls and floors.
func StandardMaterial() Material {
	return Material{Friction: 0.5, Restitution: 0.0, Density: 1.0}
}

// SlipperyMaterial suits ice and polished metal.
func SlipperyMaterial() Material {
	return Material{Friction: 0.1, Restitution: 0.0, Density: 1.0}
}

// BouncyMaterial suits rubber and springs.
func BouncyMaterial() Material {
	return Material{Friction: 0.7, Restitution: 0.8, Density: 1.0}
}

// Collider makes an entity occupy space. Triggers report contact but
// never block movement.
type Collider struct {
	Shape     Shape
	IsStatic  bool
	IsTrigger bool
	Material  Material
	Enabled   bool
}

// New creates a collider with the standard material.
func New(shape Shape, isStatic, isTrigger bool) Collider {
	return Collider{
		Shape:     shape,
		IsStatic:  isStatic,
		IsTrigger: isTrigger,
		Material:  StandardMaterial(),
		Enabled:   true,
	}
}

// StaticSolid creates a collider for walls and fixed obstacles.
func StaticSolid(shape Shape) Collider {
	return New(shape, true, false)
}

// StaticTrigger creates a fixed sensor volume.
func StaticTrigger(shape Shape) Collider {
	return New(shape, true, true)
}

// DynamicSolid creates a collider for moving solid objects.
func DynamicSolid(shape Shape) Collider {
	return New(shape, false, false)
}

// DynamicTrigger creates a moving sensor volume.
func DynamicTrigger(shape Shape) Collider {
	return New(shape, false, true)
}

// WithMaterial sets the material and returns the collider.
func (c Collider) WithMaterial(m Material) Collider {
	c.Material = m
	return c
}

// BlocksMovement reports whether the collider stops movement probes.
func (c *Collider) BlocksMovement() bool {
	return c.Enabled && !c.IsTrigger
}

// Movement probes approximate the player body as a capsule standing on
// the floor plane.
const (
	probeHeight = 1.8
	probeRadius = 0.25
	probeY      = 0.6
)

// CheckPositionCollision reports whether a capsule of the given radius at
// the position overlaps any blocking collider. Disabled transforms and
// colliders are skipped; the scan stops at the first blocker.
func CheckPositionCollision(w *ecs.World, position geom.Vec3, radius float32) bool {
	probe := Capsule{Height: probeHeight, Radius: radius}
	probeAt := component.NewTransform(position)

	for _, v := range ecs.Query2[component.Transform, Collider](w) {
		if !v.A.Enabled || !v.B.Enabled {
			continue
		}
		if !v.B.BlocksMovement() {
			continue
		}
		if Overlaps(probe, &probeAt, v.B.Shape, v.A) {
			return true
		}
	}
	return false
}

// CheckGridCollision probes the standard player capsule at a grid-plane
// position.
func CheckGridCollision(w *ecs.World, x, z float32) bool {
	return CheckPositionCollision(w, geom.V3(x, probeY, z), probeRadius)
}
