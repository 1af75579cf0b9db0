package ecs_test

import (
	"testing"

	"github.com/arcwelt/derelict/ecs"
	"github.com/stretchr/testify/assert"
)

func TestEntityKeyPacking(t *testing.T) {
	e := ecs.Entity{ID: 0x12345678, Generation: 0x9ABCDEF0}
	assert.Equal(t, uint64(0x123456789ABCDEF0), e.Key())
}

func TestCreateStartsAtGenerationOne(t *testing.T) {
	m := ecs.NewEntityManager()

	a := m.Create()
	b := m.Create()

	assert.Equal(t, uint32(0), a.ID)
	assert.Equal(t, uint32(1), a.Generation)
	assert.Equal(t, uint32(1), b.ID)
	assert.Equal(t, uint32(1), b.Generation)
	assert.True(t, m.IsValid(a))
	assert.True(t, m.IsValid(b))
}

func TestDestroyInvalidatesHandle(t *testing.T) {
	m := ecs.NewEntityManager()

	e := m.Create()
	assert.True(t, m.Destroy(e))
	assert.False(t, m.IsValid(e))

	// Double destroy is a no-op.
	assert.False(t, m.Destroy(e))

	gen, ok := m.Generation(e.ID)
	assert.True(t, ok)
	assert.Equal(t, e.Generation+1, gen)
}

func TestStaleHandleAfterReuse(t *testing.T) {
	m := ecs.NewEntityManager()

	old := m.Create()
	m.Destroy(old)

	// The id comes back with a bumped generation.
	reused := m.Create()
	assert.Equal(t, old.ID, reused.ID)
	assert.Equal(t, old.Generation+1, reused.Generation)

	assert.False(t, m.IsValid(old))
	assert.True(t, m.IsValid(reused))
}

func TestFreeListIsFIFO(t *testing.T) {
	m := ecs.NewEntityManager()

	a := m.Create()
	b := m.Create()
	c := m.Create()

	m.Destroy(b)
	m.Destroy(a)
	m.Destroy(c)

	// Ids are reissued in destruction order.
	assert.Equal(t, b.ID, m.Create().ID)
	assert.Equal(t, a.ID, m.Create().ID)
	assert.Equal(t, c.ID, m.Create().ID)
}

func TestCounts(t *testing.T) {
	m := ecs.NewEntityManager()

	a := m.Create()
	m.Create()
	m.Create()
	m.Destroy(a)

	assert.Equal(t, uint32(3), m.TotalCreated())
	assert.Equal(t, 2, m.ActiveCount())
}

func TestAllSkipsDead(t *testing.T) {
	m := ecs.NewEntityManager()

	a := m.Create()
	b := m.Create()
	c := m.Create()
	m.Destroy(b)

	var seen []ecs.Entity
	for e := range m.All() {
		seen = append(seen, e)
	}
	assert.Equal(t, []ecs.Entity{a, c}, seen)
}
