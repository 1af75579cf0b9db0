package worldmap_test

import (
	"testing"

	"github.com/arcwelt/derelict/worldmap"
	"github.com/stretchr/testify/assert"
)

func TestWorldToGridFloors(t *testing.T) {
	m := worldmap.New(10, 10)

	assert.Equal(t, worldmap.Cell{X: 0, Y: 0}, m.WorldToGrid(0.0, 0.0))
	assert.Equal(t, worldmap.Cell{X: 0, Y: 0}, m.WorldToGrid(0.99, 0.99))
	assert.Equal(t, worldmap.Cell{X: 1, Y: 2}, m.WorldToGrid(1.0, 2.5))
	assert.Equal(t, worldmap.Cell{X: -1, Y: -1}, m.WorldToGrid(-0.5, -0.5))
}

func TestGridToWorldCellCenters(t *testing.T) {
	m := worldmap.New(10, 10)

	x, z := m.GridToWorld(worldmap.Cell{X: 0, Y: 0})
	assert.Equal(t, float32(0.5), x)
	assert.Equal(t, float32(0.5), z)

	x, z = m.GridToWorld(worldmap.Cell{X: 3, Y: 7})
	assert.Equal(t, float32(3.5), x)
	assert.Equal(t, float32(7.5), z)
}

func TestRoundTripThroughCenter(t *testing.T) {
	m := worldmap.New(10, 10)

	c := worldmap.Cell{X: 4, Y: 6}
	x, z := m.GridToWorld(c)
	assert.Equal(t, c, m.WorldToGrid(x, z))
}

func TestIsWallOutOfBounds(t *testing.T) {
	m := worldmap.New(3, 3)

	assert.True(t, m.IsWall(worldmap.Cell{X: -1, Y: 0}))
	assert.True(t, m.IsWall(worldmap.Cell{X: 0, Y: -1}))
	assert.True(t, m.IsWall(worldmap.Cell{X: 3, Y: 0}))
	assert.True(t, m.IsWall(worldmap.Cell{X: 0, Y: 3}))
	assert.False(t, m.IsWall(worldmap.Cell{X: 1, Y: 1}))
}

func TestStationLayout(t *testing.T) {
	m := worldmap.NewStation()

	assert.Equal(t, 10, m.Width)
	assert.Equal(t, 10, m.Height)

	// Outer ring is wall, interior ring behind it is open.
	for x := 0; x < 10; x++ {
		assert.True(t, m.IsWall(worldmap.Cell{X: x, Y: 0}))
		assert.True(t, m.IsWall(worldmap.Cell{X: x, Y: 9}))
	}
	assert.False(t, m.IsWall(worldmap.Cell{X: 1, Y: 1}))
	assert.False(t, m.IsWall(worldmap.Cell{X: 8, Y: 8}))

	// Interior clusters carry their kinds.
	assert.Equal(t, worldmap.KindControl, m.KindAt(worldmap.Cell{X: 2, Y: 2}))
	assert.Equal(t, worldmap.KindConduit, m.KindAt(worldmap.Cell{X: 6, Y: 2}))
	assert.Equal(t, worldmap.KindHull, m.KindAt(worldmap.Cell{X: 4, Y: 0}))
}

func TestBorderedRoom(t *testing.T) {
	m := worldmap.NewBorderedRoom(5, 4)

	assert.True(t, m.IsWall(worldmap.Cell{X: 0, Y: 0}))
	assert.True(t, m.IsWall(worldmap.Cell{X: 4, Y: 3}))
	assert.False(t, m.IsWall(worldmap.Cell{X: 2, Y: 1}))
	assert.Equal(t, worldmap.KindHull, m.KindAt(worldmap.Cell{X: 0, Y: 0}))
}

func TestParse(t *testing.T) {
	m, err := worldmap.Parse([]string{
		"###",
		"#.#",
		"#4#",
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, m.Width)
	assert.Equal(t, 3, m.Height)
	assert.False(t, m.IsWall(worldmap.Cell{X: 1, Y: 1}))
	assert.Equal(t, worldmap.KindConduit, m.KindAt(worldmap.Cell{X: 1, Y: 2}))
}

func TestParseErrors(t *testing.T) {
	_, err := worldmap.Parse(nil)
	assert.Error(t, err)

	_, err = worldmap.Parse([]string{"##", "#"})
	assert.Error(t, err)

	_, err = worldmap.Parse([]string{"#x"})
	assert.Error(t, err)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "hull", worldmap.KindHull.String())
	assert.Equal(t, "empty", worldmap.KindEmpty.String())
}
