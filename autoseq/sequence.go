package autoseq

import (
	"fmt"
	"iter"

	"github.com/on-the-ground/autoseq_go/autoseq/internal/growth"
)

// Sequence is a lazily-evaluated, self-memoizing mathematical sequence.
// It owns a dense, append-only cache of computed terms and the normalized
// recurrence formula that produces them. Terms are computed exactly once,
// in index order, on first demand.
//
// IMPORTANT:
// A Sequence is **intentionally NOT thread-safe**.
//
// It is designed with the assumption that each instance will be used only
// within a **single goroutine** and **single execution scope**.
//
// ➤ We deliberately avoided synchronization (mutexes, atomic ops, etc.)
//
//	to keep term access lightweight and avoid accidental cross-goroutine sharing.
//
// ➤ Sharing a Sequence across multiple goroutines without external
//
//	confinement will lead to **undefined behavior**, including data races.
//
// If you require shared access, confine the sequence behind explicit
// synchronization (see the seqstore package).
type Sequence[T any] struct {
	cache   []T
	formula Formula[T]

	// gen counts backing-store reallocations and drains; views carry the
	// stamp they were taken at so Stale can detect detachment.
	gen      uint64
	calls    int
	reallocs int
}

// New constructs a sequence from a formula of either accepted shape plus
// zero or more seed values. Seeds become terms a[0]..a[len(seeds)-1]
// directly, bypassing the formula. New panics on a nil formula; every other
// shape violation is a compile error (FormulaFunc is sealed).
//
// The returned sequence is move-only in spirit: all state is unexported and
// reachable only through the returned pointer, so handing the pointer off
// transfers the sequence, and no copy path exists.
func New[T any](formula FormulaFunc[T], seeds ...T) *Sequence[T] {
	if formula == nil {
		panic("autoseq: nil formula")
	}
	normalized := formula.normalize()
	if normalized == nil {
		panic("autoseq: nil formula")
	}
	s := &Sequence[T]{formula: normalized}
	if len(seeds) > 0 {
		s.cache = make([]T, len(seeds))
		copy(s.cache, seeds)
	}
	return s
}

// Get ensures terms 0..n are cached and returns term n.
// An already-cached term is never recomputed.
func (s *Sequence[T]) Get(n int) T {
	if n < 0 {
		panic(fmt.Sprintf("autoseq: negative index %d", n))
	}
	s.extendTo(n)
	return s.cache[n]
}

// At is Get with an explicit bounds re-check against the raw store after
// extension. Extension guarantees the index is present, so the re-check is
// purely defensive access into the backing slice.
func (s *Sequence[T]) At(n int) T {
	if n < 0 {
		panic(fmt.Sprintf("autoseq: negative index %d", n))
	}
	s.extendTo(n)
	if n >= len(s.cache) {
		panic(fmt.Sprintf("autoseq: index %d out of range [0,%d)", n, len(s.cache)))
	}
	return s.cache[n]
}

// PrefetchUpTo extends the cache through index n without returning a value.
// A pure warm-up call; already-covered indices are a no-op.
func (s *Sequence[T]) PrefetchUpTo(n int) {
	if n < 0 {
		panic(fmt.Sprintf("autoseq: negative index %d", n))
	}
	s.extendTo(n)
}

// Reserve raises the backing store capacity to exactly capacity, in one
// reallocation. It is advisory: logical size and term values are unaffected,
// only the amortized cost of subsequent growth. It never shrinks.
func (s *Sequence[T]) Reserve(capacity int) {
	if capacity <= cap(s.cache) {
		return
	}
	s.regrow(capacity)
}

// Slice extends the cache through end-1 and returns a zero-copy window over
// terms [start, end). start == end returns an empty view without triggering
// any computation. An inverted or negative range is a precondition violation
// and panics.
func (s *Sequence[T]) Slice(start, end int) View[T] {
	if start < 0 || start > end {
		panic(fmt.Sprintf("autoseq: invalid range [%d,%d)", start, end))
	}
	if start == end {
		return View[T]{gen: s.gen, owner: &s.gen}
	}
	s.extendTo(end - 1)
	return View[T]{data: s.cache[start:end], gen: s.gen, owner: &s.gen}
}

// View returns a zero-copy window over everything currently cached.
// Never triggers extension.
func (s *Sequence[T]) View() View[T] {
	return View[T]{data: s.cache, gen: s.gen, owner: &s.gen}
}

// Snapshot returns an owned copy of all cached terms.
// The sequence is unchanged.
func (s *Sequence[T]) Snapshot() []T {
	out := make([]T, len(s.cache))
	copy(out, s.cache)
	return out
}

// Drain is the move variant of Snapshot: it transfers the backing store out
// and leaves the sequence logically empty with its formula intact.
//
// WARNING: seeds are not replayed. Subsequent reads re-extend from index 0
// using the bare formula, so a drained sequence is not equivalent to a fresh
// one constructed with the same formula and seeds — a formula that reads
// history at index 0 will panic on the first post-drain access.
func (s *Sequence[T]) Drain() []T {
	out := s.cache
	s.cache = nil
	s.gen++
	return out
}

// Len returns the number of currently cached terms — how much work has been
// done so far, not the highest reachable index.
func (s *Sequence[T]) Len() int { return len(s.cache) }

// Cap returns the current backing store capacity.
func (s *Sequence[T]) Cap() int { return cap(s.cache) }

// All returns an iterator over the (index, term) pairs cached at the moment
// All is called. Iterating never triggers computation, and growth during
// iteration is not observed.
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	cached := s.cache[:len(s.cache):len(s.cache)]
	return func(yield func(int, T) bool) {
		for i, t := range cached {
			if !yield(i, t) {
				return
			}
		}
	}
}

// Stats describes the work a sequence has performed so far.
type Stats struct {
	// Terms is the number of currently cached terms.
	Terms int
	// Capacity is the current backing store capacity.
	Capacity int
	// FormulaCalls counts formula invocations over the sequence's lifetime:
	// one per non-seed term ever computed, including terms recomputed after
	// a Drain. Equality with non-seed Terms is the memoization witness.
	FormulaCalls int
	// Reallocs counts backing store reallocations (growth and Reserve).
	Reallocs int
}

// Stats returns the sequence's current work counters.
func (s *Sequence[T]) Stats() Stats {
	return Stats{
		Terms:        len(s.cache),
		Capacity:     cap(s.cache),
		FormulaCalls: s.calls,
		Reallocs:     s.reallocs,
	}
}

// extendTo is the single extension routine behind every read operation:
// no-op when the target is cached; otherwise grow the backing store in one
// reallocation if capacity is short, then evaluate the formula once per
// missing index, in order, appending each result.
func (s *Sequence[T]) extendTo(target int) {
	if target < len(s.cache) {
		return
	}
	needed := target + 1
	if needed > cap(s.cache) {
		s.regrow(growth.NextCap(cap(s.cache), needed))
	}
	// Capacity now covers needed, so the appends below never reallocate and
	// the history views handed to the formula stay live for the whole loop.
	for len(s.cache) < needed {
		prefix := View[T]{data: s.cache[:len(s.cache)], gen: s.gen, owner: &s.gen}
		s.cache = append(s.cache, s.formula(len(s.cache), prefix))
		s.calls++
	}
}

func (s *Sequence[T]) regrow(newCap int) {
	next := make([]T, len(s.cache), newCap)
	copy(next, s.cache)
	s.cache = next
	s.gen++
	s.reallocs++
}
