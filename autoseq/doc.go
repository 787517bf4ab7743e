// Package autoseq provides lazily-evaluated, self-memoizing mathematical
// sequences: given a recurrence formula and optional seed values, a Sequence
// produces term a[n] on demand, computing and caching every term from the
// last cached index up to n exactly once.
//
// A sequence is not just a cache in front of a function.
// It is a statement about the function itself:
//
//	→ "Term n depends only on n and the terms before it."
//	→ "Once computed, a term never changes."
//
// Formulas come in two shapes, both normalized to one internal form:
//
//   - Formula: the raw two-argument form, func(n int, history View[T]) T.
//   - ContextFormula: the single-argument form, func(ctx MathContext[T]) T,
//     where ctx bundles the index and the history view.
//
// Any other shape is rejected by the compiler: FormulaFunc is sealed, so a
// value that is neither Formula nor ContextFormula cannot construct a
// Sequence at all.
//
// Formulas must be referentially transparent with respect to prior terms:
// given the same index and the same history, the same value. This is assumed,
// not verified. Formulas storing pointer element types must never mutate
// terms reachable through the history view.
//
// Sequences are single-threaded by contract. No method is safe for concurrent
// use; callers that need to share a sequence across goroutines must confine
// it (see the seqstore package).
//
// Views returned by View and Slice are zero-copy windows into the live
// backing store. Any extension that reallocates the store detaches them: the
// data they saw remains readable (the garbage collector keeps it alive), but
// it is no longer the sequence's storage. Do not hold a view across a call
// that may grow the cache; Stale reports whether a view has been detached.
//
// WARNING: Drain transfers the backing store out and leaves the sequence
// empty with its formula intact. Seeds are not replayed: a drained sequence
// recomputes from index zero using the bare formula, which for seed-dependent
// formulas is not equivalent to the original sequence.
package autoseq
