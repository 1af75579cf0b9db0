package ecs

import "iter"

// absent marks an empty sparse slot.
const absent = -1

// componentStorage is a sparse-set store for a single component type.
// sparse maps an entity id to an index into the parallel dense arrays;
// the dense arrays stay contiguous because removal swap-removes, which
// also means dense order is not stable across removals.
//
// Invariant: len(dense) == len(denseEntities), and for every occupied
// sparse slot sparse[id] == i, denseEntities[i].ID == id.
type componentStorage[T any] struct {
	sparse        []int
	dense         []T
	denseEntities []Entity
}

func newComponentStorage[T any]() *componentStorage[T] {
	return &componentStorage[T]{}
}

// indexOf resolves a handle to its dense index. The stored handle must
// match exactly: a stale generation fails here even when the id slot has
// been reused by a different live entity carrying the same component type.
func (s *componentStorage[T]) indexOf(e Entity) int {
	if int(e.ID) >= len(s.sparse) {
		return absent
	}
	i := s.sparse[e.ID]
	if i == absent || s.denseEntities[i] != e {
		return absent
	}
	return i
}

// Insert adds or overwrites the component for e. It returns true when a
// new component was added and false when an existing one was replaced.
func (s *componentStorage[T]) Insert(e Entity, component T) bool {
	if int(e.ID) >= len(s.sparse) {
		grown := make([]int, int(e.ID)+1)
		for i := range grown {
			grown[i] = absent
		}
		copy(grown, s.sparse)
		s.sparse = grown
	}

	if i := s.sparse[e.ID]; i != absent {
		s.dense[i] = component
		s.denseEntities[i] = e // refresh the stored generation
		return false
	}

	s.sparse[e.ID] = len(s.dense)
	s.dense = append(s.dense, component)
	s.denseEntities = append(s.denseEntities, e)
	return true
}

// Remove swap-removes the component for e: the last dense element moves
// into the vacated slot and its sparse pointer is updated.
func (s *componentStorage[T]) Remove(e Entity) bool {
	i := s.indexOf(e)
	if i == absent {
		return false
	}

	last := len(s.dense) - 1
	if i != last {
		s.dense[i] = s.dense[last]
		s.denseEntities[i] = s.denseEntities[last]
		s.sparse[s.denseEntities[i].ID] = i
	}

	var zero T
	s.dense[last] = zero
	s.dense = s.dense[:last]
	s.denseEntities = s.denseEntities[:last]
	s.sparse[e.ID] = absent
	return true
}

// Get returns a pointer to the component for e, or nil. The pointer is
// only good until the next structural change to this storage.
func (s *componentStorage[T]) Get(e Entity) *T {
	i := s.indexOf(e)
	if i == absent {
		return nil
	}
	return &s.dense[i]
}

func (s *componentStorage[T]) Has(e Entity) bool {
	return s.indexOf(e) != absent
}

func (s *componentStorage[T]) Len() int {
	return len(s.dense)
}

func (s *componentStorage[T]) Clear() {
	s.sparse = nil
	s.dense = nil
	s.denseEntities = nil
}

// All iterates (entity, component) pairs in dense order. Callers must not
// make structural changes to the storage while iterating; use Commands to
// defer them.
func (s *componentStorage[T]) All() iter.Seq2[Entity, *T] {
	return func(yield func(Entity, *T) bool) {
		for i := 0; i < len(s.dense); i++ {
			if !yield(s.denseEntities[i], &s.dense[i]) {
				return
			}
		}
	}
}

// InsertAny accepts the component as T or *T, matching the builder path.
func (s *componentStorage[T]) InsertAny(e Entity, component any) bool {
	if v, ok := component.(T); ok {
		return s.Insert(e, v)
	}
	if p, ok := component.(*T); ok {
		return s.Insert(e, *p)
	}
	return false
}

func (s *componentStorage[T]) GetAny(e Entity) any {
	if p := s.Get(e); p != nil {
		return p
	}
	return nil
}
