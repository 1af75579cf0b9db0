package ecs

// iComponentStorage is the type-erased view of a per-type component store.
type iComponentStorage interface {
	InsertAny(e Entity, component any) bool
	GetAny(e Entity) any
	Remove(e Entity) bool
	Has(e Entity) bool
	Len() int
	Clear()
}
