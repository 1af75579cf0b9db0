package ecs_test

import "github.com/arcwelt/derelict/ecs"

// Common test component types
type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Name struct {
	Value string
}

type Health struct {
	Current int
	Max     int
}

type AI struct {
	State int
}

type Score int32
type Tag string

func newTestWorld() *ecs.World {
	w := ecs.NewWorld()
	ecs.RegisterComponent[Position](w)
	ecs.RegisterComponent[Velocity](w)
	ecs.RegisterComponent[Name](w)
	ecs.RegisterComponent[Health](w)
	ecs.RegisterComponent[AI](w)
	ecs.RegisterComponent[Score](w)
	ecs.RegisterComponent[Tag](w)
	return w
}
