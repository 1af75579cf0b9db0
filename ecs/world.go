package ecs

import "reflect"

// World ties entity allocation, component storage and resources together
// behind a single façade. It is not safe for concurrent use; the caller
// owns the update loop.
type World struct {
	entities   *EntityManager
	components *ComponentManager
	resources  map[reflect.Type]any
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		entities:   NewEntityManager(),
		components: NewComponentManager(),
		resources:  make(map[reflect.Type]any),
	}
}

// Spawn starts building a new entity. The entity exists as soon as Spawn
// returns; With attaches components and Build returns the handle.
func (w *World) Spawn() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.entities.Create(),
	}
}

// Despawn destroys the entity and then purges its components, so any
// component lookup racing a stale handle already sees it as dead.
// Returns false when the handle is already stale.
func (w *World) Despawn(e Entity) bool {
	if !w.entities.Destroy(e) {
		return false
	}
	w.components.RemoveAll(e)
	return true
}

// IsValid reports whether the handle refers to a live entity.
func (w *World) IsValid(e Entity) bool {
	return w.entities.IsValid(e)
}

// Entities exposes the entity manager for iteration and stats.
func (w *World) Entities() *EntityManager {
	return w.entities
}

// Components exposes the component manager for type-erased access.
func (w *World) Components() *ComponentManager {
	return w.components
}

// Clear removes all entities, components and resources. Component type
// registrations survive.
func (w *World) Clear() {
	w.entities = NewEntityManager()
	w.components.Clear()
	clear(w.resources)
}

// RegisterComponent pre-registers a storage for T so the type-erased
// builder and command paths can route values of that type.
func RegisterComponent[T any](w *World) {
	storageFor[T](w.components)
}

// Add attaches a component to a live entity, registering the storage on
// first use. Returns true when the component was newly added, false when
// it replaced an existing one or the handle is stale.
func Add[T any](w *World, e Entity, component T) bool {
	if !w.entities.IsValid(e) {
		return false
	}
	return storageFor[T](w.components).Insert(e, component)
}

// Remove detaches the T component from a live entity.
func Remove[T any](w *World, e Entity) bool {
	if !w.entities.IsValid(e) {
		return false
	}
	s, ok := lookup[T](w.components)
	if !ok {
		return false
	}
	return s.Remove(e)
}

// Get returns a pointer to the entity's T component, or nil.
func Get[T any](w *World, e Entity) *T {
	if !w.entities.IsValid(e) {
		return nil
	}
	s, ok := lookup[T](w.components)
	if !ok {
		return nil
	}
	return s.Get(e)
}

// Has reports whether a live entity carries a T component.
func Has[T any](w *World, e Entity) bool {
	if !w.entities.IsValid(e) {
		return false
	}
	s, ok := lookup[T](w.components)
	if !ok {
		return false
	}
	return s.Has(e)
}

// EntityBuilder attaches components to a freshly spawned entity.
type EntityBuilder struct {
	world  *World
	entity Entity
}

// With attaches a component by value or pointer. Unregistered component
// types are ignored; use RegisterComponent or the typed Add path first.
func (b *EntityBuilder) With(component any) *EntityBuilder {
	b.world.components.insertAny(b.entity, component)
	return b
}

// Build finishes the builder and returns the entity handle.
func (b *EntityBuilder) Build() Entity {
	return b.entity
}

// Entity returns the handle without finishing the builder.
func (b *EntityBuilder) Entity() Entity {
	return b.entity
}
