package autoseq

import (
	"fmt"
	"iter"
)

// View is a read-only, zero-copy window into a sequence's backing store,
// stamped with the store generation it was taken at. The owning sequence
// bumps its generation whenever the store is reallocated or drained, at
// which point the view is detached: its data stays readable, but it no
// longer aliases the sequence's live storage.
type View[T any] struct {
	data []T
	gen  uint64
	// owner points at the owning sequence's generation counter.
	// nil for the zero View, which is always empty and never stale.
	owner *uint64
}

// Len returns the number of terms in the window.
func (v View[T]) Len() int { return len(v.data) }

// At returns the i-th term of the window.
func (v View[T]) At(i int) T {
	if i < 0 || i >= len(v.data) {
		panic(fmt.Sprintf("autoseq: view index %d out of range [0,%d)", i, len(v.data)))
	}
	return v.data[i]
}

// Front returns the first term of the window. Panics on an empty view.
func (v View[T]) Front() T {
	if len(v.data) == 0 {
		panic("autoseq: Front on empty view")
	}
	return v.data[0]
}

// Back returns the last term of the window. Panics on an empty view.
func (v View[T]) Back() T {
	if len(v.data) == 0 {
		panic("autoseq: Back on empty view")
	}
	return v.data[len(v.data)-1]
}

// All returns an iterator over (index, term) pairs of the window.
// Indices are window-relative, starting at 0.
func (v View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, t := range v.data {
			if !yield(i, t) {
				return
			}
		}
	}
}

// Snapshot returns an owned copy of the window's contents.
func (v View[T]) Snapshot() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)
	return out
}

// Stale reports whether the owning sequence has reallocated or drained its
// backing store since this view was taken. A stale view is still readable,
// it just no longer reflects the sequence's live storage.
func (v View[T]) Stale() bool {
	return v.owner != nil && *v.owner != v.gen
}
