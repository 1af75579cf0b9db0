package ecs

import (
	"reflect"
	"sort"
)

// ComponentManager owns one storage per registered component type, keyed by
// the component's runtime type. Callers never see the storages directly;
// typed access goes through the generic free functions on World.
type ComponentManager struct {
	storages map[reflect.Type]iComponentStorage
}

func NewComponentManager() *ComponentManager {
	return &ComponentManager{
		storages: make(map[reflect.Type]iComponentStorage),
	}
}

// storageFor returns the typed storage for T, creating it on first use.
func storageFor[T any](m *ComponentManager) *componentStorage[T] {
	t := reflect.TypeFor[T]()
	if s, ok := m.storages[t]; ok {
		return s.(*componentStorage[T])
	}
	s := newComponentStorage[T]()
	m.storages[t] = s
	return s
}

// lookup returns the typed storage for T only if it is already registered.
func lookup[T any](m *ComponentManager) (*componentStorage[T], bool) {
	s, ok := m.storages[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return s.(*componentStorage[T]), true
}

// insertAny routes a type-erased component to its storage. Pointer values
// are inserted under their element type. Returns false when no storage is
// registered for the component's type.
func (m *ComponentManager) insertAny(e Entity, component any) bool {
	t := reflect.TypeOf(component)
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	s, ok := m.storages[t]
	if !ok {
		return false
	}
	return s.InsertAny(e, component)
}

// removeType removes the component of the given type from e, if registered.
func (m *ComponentManager) removeType(e Entity, t reflect.Type) bool {
	s, ok := m.storages[t]
	if !ok {
		return false
	}
	return s.Remove(e)
}

// GetByType returns the component of the given type as a typed pointer,
// or nil. Used by reflection-driven tooling; typed code uses Get.
func (m *ComponentManager) GetByType(e Entity, t reflect.Type) any {
	s, ok := m.storages[t]
	if !ok {
		return nil
	}
	return s.GetAny(e)
}

// RemoveAll strips every component from e across all storages.
func (m *ComponentManager) RemoveAll(e Entity) {
	for _, s := range m.storages {
		s.Remove(e)
	}
}

// ComponentTypes returns the types of all components attached to e,
// sorted by name for stable display.
func (m *ComponentManager) ComponentTypes(e Entity) []reflect.Type {
	var types []reflect.Type
	for t, s := range m.storages {
		if s.Has(e) {
			types = append(types, t)
		}
	}
	sort.Slice(types, func(i, j int) bool {
		return types[i].Name() < types[j].Name()
	})
	return types
}

// TypeCount returns the number of registered component types.
func (m *ComponentManager) TypeCount() int {
	return len(m.storages)
}

// Clear empties every storage but keeps the registrations.
func (m *ComponentManager) Clear() {
	for _, s := range m.storages {
		s.Clear()
	}
}
