package ecs

import "iter"

// Entity is a lightweight generational handle to a game object. It carries
// no data itself; all state lives in a World and is reached through it.
// A handle is valid only while the manager's generation for its id still
// matches its Generation field.
type Entity struct {
	ID         uint32
	Generation uint32
}

// Key packs the handle into a single uint64 (id in the upper 32 bits,
// generation in the lower 32) for use as an int-map key.
func (e Entity) Key() uint64 {
	return uint64(e.ID)<<32 | uint64(e.Generation)
}

// EntityManager allocates and recycles generational entity handles.
// Destroying an entity bumps its slot's generation before the id re-enters
// the free queue, so every previously issued handle for that id stays
// invalid forever, even after the id is reused.
type EntityManager struct {
	generations []uint32
	alive       []bool
	free        []uint32 // FIFO: the oldest freed id is reissued first
	nextID      uint32
}

// NewEntityManager creates an empty entity manager.
func NewEntityManager() *EntityManager {
	return &EntityManager{}
}

// Create returns a fresh handle, reusing the oldest freed id if one is
// queued, otherwise allocating a new id at generation 1.
func (m *EntityManager) Create() Entity {
	if len(m.free) > 0 {
		id := m.free[0]
		m.free = m.free[1:]
		m.alive[id] = true
		return Entity{ID: id, Generation: m.generations[id]}
	}

	id := m.nextID
	m.nextID++
	m.generations = append(m.generations, 1)
	m.alive = append(m.alive, true)
	return Entity{ID: id, Generation: 1}
}

// Destroy invalidates the handle and queues its id for reuse. It returns
// false when the handle is already stale, so double-destroy is a no-op.
func (m *EntityManager) Destroy(e Entity) bool {
	if !m.IsValid(e) {
		return false
	}

	m.generations[e.ID]++
	m.alive[e.ID] = false
	m.free = append(m.free, e.ID)
	return true
}

// IsValid reports whether the handle still refers to a live entity.
func (m *EntityManager) IsValid(e Entity) bool {
	if int(e.ID) >= len(m.generations) {
		return false
	}
	return m.alive[e.ID] && m.generations[e.ID] == e.Generation
}

// Generation returns the current generation for an id slot.
func (m *EntityManager) Generation(id uint32) (uint32, bool) {
	if int(id) >= len(m.generations) {
		return 0, false
	}
	return m.generations[id], true
}

// TotalCreated returns the number of ids ever allocated.
func (m *EntityManager) TotalCreated() uint32 {
	return m.nextID
}

// ActiveCount returns the number of currently live entities.
func (m *EntityManager) ActiveCount() int {
	return int(m.nextID) - len(m.free)
}

// All iterates every live entity in id order.
func (m *EntityManager) All() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for id := uint32(0); id < m.nextID; id++ {
			if !m.alive[id] {
				continue
			}
			if !yield(Entity{ID: id, Generation: m.generations[id]}) {
				return
			}
		}
	}
}
