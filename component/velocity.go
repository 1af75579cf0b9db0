package component

import "github.com/arcwelt/derelict/geom"

// Velocity is linear and angular speed, applied by movement systems.
type Velocity struct {
	Linear  geom.Vec3
	Angular geom.Vec3
	Enabled bool
}

func NewVelocity() Velocity {
	return Velocity{Enabled: true}
}
