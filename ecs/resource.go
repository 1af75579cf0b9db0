package ecs

import "reflect"

// Resources are world-owned singletons keyed by type, for state that has
// no owning entity (the map, a planner, input). Stored as *T so callers
// mutate the shared value in place.

// SetResource stores or replaces the resource of type T.
func SetResource[T any](w *World, value T) {
	w.resources[reflect.TypeFor[T]()] = &value
}

// Resource returns the resource of type T, or nil if unset.
func Resource[T any](w *World) *T {
	v, ok := w.resources[reflect.TypeFor[T]()]
	if !ok {
		return nil
	}
	return v.(*T)
}

// RemoveResource deletes the resource of type T, reporting whether it
// was present.
func RemoveResource[T any](w *World) bool {
	t := reflect.TypeFor[T]()
	if _, ok := w.resources[t]; !ok {
		return false
	}
	delete(w.resources, t)
	return true
}

// HasResource reports whether a resource of type T is set.
func HasResource[T any](w *World) bool {
	_, ok := w.resources[reflect.TypeFor[T]()]
	return ok
}
