package ecs

import "iter"

// View2 holds pointers into two component storages for one entity.
// The pointers are only good until the next structural change.
type View2[A, B any] struct {
	A *A
	B *B
}

// View3 holds pointers into three component storages for one entity.
type View3[A, B, C any] struct {
	A *A
	B *B
	C *C
}

// Query1 iterates every live entity carrying an A component, in the
// storage's dense order. Dense order is not stable across removals;
// structural changes during iteration go through Commands.
func Query1[A any](w *World) iter.Seq2[Entity, *A] {
	return func(yield func(Entity, *A) bool) {
		sa, ok := lookup[A](w.components)
		if !ok {
			return
		}
		for e, a := range sa.All() {
			if !w.entities.IsValid(e) {
				continue
			}
			if !yield(e, a) {
				return
			}
		}
	}
}

// Query2 iterates every live entity carrying both A and B, driving over
// the smaller of the two storages.
func Query2[A, B any](w *World) iter.Seq2[Entity, View2[A, B]] {
	return func(yield func(Entity, View2[A, B]) bool) {
		sa, okA := lookup[A](w.components)
		sb, okB := lookup[B](w.components)
		if !okA || !okB {
			return
		}

		if sa.Len() <= sb.Len() {
			for e, a := range sa.All() {
				if !w.entities.IsValid(e) {
					continue
				}
				b := sb.Get(e)
				if b == nil {
					continue
				}
				if !yield(e, View2[A, B]{A: a, B: b}) {
					return
				}
			}
			return
		}

		for e, b := range sb.All() {
			if !w.entities.IsValid(e) {
				continue
			}
			a := sa.Get(e)
			if a == nil {
				continue
			}
			if !yield(e, View2[A, B]{A: a, B: b}) {
				return
			}
		}
	}
}

// Query3 iterates every live entity carrying A, B and C, driving over
// the smallest of the three storages.
func Query3[A, B, C any](w *World) iter.Seq2[Entity, View3[A, B, C]] {
	return func(yield func(Entity, View3[A, B, C]) bool) {
		sa, okA := lookup[A](w.components)
		sb, okB := lookup[B](w.components)
		sc, okC := lookup[C](w.components)
		if !okA || !okB || !okC {
			return
		}

		// emit reports whether iteration should continue.
		emit := func(e Entity) bool {
			if !w.entities.IsValid(e) {
				return true
			}
			a := sa.Get(e)
			b := sb.Get(e)
			c := sc.Get(e)
			if a == nil || b == nil || c == nil {
				return true
			}
			return yield(e, View3[A, B, C]{A: a, B: b, C: c})
		}

		switch {
		case sa.Len() <= sb.Len() && sa.Len() <= sc.Len():
			for e := range sa.All() {
				if !emit(e) {
					return
				}
			}
		case sb.Len() <= sc.Len():
			for e := range sb.All() {
				if !emit(e) {
					return
				}
			}
		default:
			for e := range sc.All() {
				if !emit(e) {
					return
				}
			}
		}
	}
}
