// Package collision implements shape-based collision for the game:
// collider components, overlap tests between the supported shapes, and
// the world-level occupancy queries movement and pathfinding use.
package collision

import (
	"math"

	"github.com/arcwelt/derelict/component"
	"github.com/arcwelt/derelict/geom"
)

// Shape is the closed set of collider volumes. Shapes are positioned by
// the owning entity's Transform; rotation and scale are ignored.
type Shape interface {
	// ContainsPoint reports whether a world-space point lies inside the
	// shape placed at the transform.
	ContainsPoint(point geom.Vec3, at *component.Transform) bool
	// Bounds returns the world-space axis-aligned bounding box.
	Bounds(at *component.Transform) (min, max geom.Vec3)

	isShape()
}

// Box is an axis-aligned box centered on the transform position.
type Box struct {
	Size geom.Vec3
}

// Sphere is centered on the transform position.
type Sphere struct {
	Radius float32
}

// Capsule is a vertical capsule centered on the transform position:
// a cylinder of the given height with hemispherical caps.
type Capsule struct {
	Height float32
	Radius float32
}

func (Box) isShape()     {}
func (Sphere) isShape()  {}
func (Capsule) isShape() {}

func (b Box) ContainsPoint(point geom.Vec3, at *component.Transform) bool {
	half := b.Size.Scale(0.5)
	local := point.Sub(at.Position)
	return abs(local.X) <= half.X && abs(local.Y) <= half.Y && abs(local.Z) <= half.Z
}

func (b Box) Bounds(at *component.Transform) (geom.Vec3, geom.Vec3) {
	half := b.Size.Scale(0.5)
	return at.Position.Sub(half), at.Position.Add(half)
}

func (s Sphere) ContainsPoint(point geom.Vec3, at *component.Transform) bool {
	return point.Sub(at.Position).Length() <= s.Radius
}

func (s Sphere) Bounds(at *component.Transform) (geom.Vec3, geom.Vec3) {
	r := geom.V3(s.Radius, s.Radius, s.Radius)
	return at.Position.Sub(r), at.Position.Add(r)
}

func (c Capsule) ContainsPoint(point geom.Vec3, at *component.Transform) bool {
	local := point.Sub(at.Position)
	return capsuleContains(local, c.Height, c.Radius)
}

func (c Capsule) Bounds(at *component.Transform) (geom.Vec3, geom.Vec3) {
	r := geom.V3(c.Radius, c.Height*0.5+c.Radius, c.Radius)
	return at.Position.Sub(r), at.Position.Add(r)
}

// capsuleContains tests a point in capsule-local space: inside the
// cylinder when within half height, otherwise against the nearer cap.
func capsuleContains(local geom.Vec3, height, radius float32) bool {
	halfHeight := height * 0.5
	if abs(local.Y) <= halfHeight {
		horizontal := float32(math.Sqrt(float64(local.X*local.X + local.Z*local.Z)))
		return horizontal <= radius
	}
	capY := halfHeight
	if local.Y < 0 {
		capY = -halfHeight
	}
	return local.Sub(geom.V3(0, capY, 0)).Length() <= radius
}

// Overlaps tests two placed shapes. Box-box is an exact AABB test and
// capsule-box clamps to the closest box point; every other pairing uses
// the mutual center-containment approximation.
func Overlaps(a Shape, at *component.Transform, b Shape, bt *component.Transform) bool {
	switch sa := a.(type) {
	case Box:
		switch sb := b.(type) {
		case Box:
			return boxBoxOverlap(sa, at.Position, sb, bt.Position)
		case Capsule:
			return capsuleBoxOverlap(sb, bt.Position, sa, at.Position)
		}
	case Capsule:
		if sb, ok := b.(Box); ok {
			return capsuleBoxOverlap(sa, at.Position, sb, bt.Position)
		}
	}
	return a.ContainsPoint(bt.Position, at) || b.ContainsPoint(at.Position, bt)
}

func boxBoxOverlap(a Box, apos geom.Vec3, b Box, bpos geom.Vec3) bool {
	ha := a.Size.Scale(0.5)
	hb := b.Size.Scale(0.5)
	return apos.X-ha.X <= bpos.X+hb.X && apos.X+ha.X >= bpos.X-hb.X &&
		apos.Y-ha.Y <= bpos.Y+hb.Y && apos.Y+ha.Y >= bpos.Y-hb.Y &&
		apos.Z-ha.Z <= bpos.Z+hb.Z && apos.Z+ha.Z >= bpos.Z-hb.Z
}

// capsuleBoxOverlap clamps the capsule center onto the box and tests the
// resulting closest point against the capsule volume.
func capsuleBoxOverlap(c Capsule, cpos geom.Vec3, b Box, bpos geom.Vec3) bool {
	half := b.Size.Scale(0.5)
	closest := geom.V3(
		geom.Clamp(cpos.X, bpos.X-half.X, bpos.X+half.X),
		geom.Clamp(cpos.Y, bpos.Y-half.Y, bpos.Y+half.Y),
		geom.Clamp(cpos.Z, bpos.Z-half.Z, bpos.Z+half.Z),
	)
	return capsuleContains(closest.Sub(cpos), c.Height, c.Radius)
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
