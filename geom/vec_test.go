package geom_test

import (
	"testing"

	"github.com/arcwelt/derelict/geom"
	"github.com/stretchr/testify/assert"
)

func TestVec2Math(t *testing.T) {
	a := geom.V2(1, 2)
	b := geom.V2(4, 6)

	assert.Equal(t, geom.V2(5, 8), a.Add(b))
	assert.Equal(t, geom.V2(3, 4), b.Sub(a))
	assert.Equal(t, geom.V2(2, 4), a.Scale(2))
	assert.InDelta(t, 5.0, b.Sub(a).Length(), 1e-6)
	assert.InDelta(t, 5.0, a.Distance(b), 1e-6)
}

func TestVec3Math(t *testing.T) {
	a := geom.V3(1, 2, 3)
	b := geom.V3(4, 5, 6)

	assert.Equal(t, geom.V3(5, 7, 9), a.Add(b))
	assert.Equal(t, geom.V3(3, 3, 3), b.Sub(a))
	assert.InDelta(t, 32.0, a.Dot(b), 1e-6)
	assert.Equal(t, geom.V2(1, 3), a.XZ())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(0), geom.Clamp(-1, 0, 1))
	assert.Equal(t, float32(1), geom.Clamp(2, 0, 1))
	assert.Equal(t, float32(0.5), geom.Clamp(0.5, 0, 1))
}
