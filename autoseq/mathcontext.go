package autoseq

import "fmt"

// MathContext is the execution context handed to a ContextFormula: the index
// of the term about to be computed paired with a read-only view of every term
// computed so far. The history always holds exactly N() terms.
type MathContext[T any] struct {
	n       int
	history View[T]
}

// N returns the index of the term being computed.
func (c MathContext[T]) N() int { return c.n }

// Last returns the most recent term, a[N()-1].
// Computing index 0 with no seeds leaves no history; calling Last then is a
// precondition violation and panics.
func (c MathContext[T]) Last() T {
	if c.history.Len() == 0 {
		panic("autoseq: cannot access Last on empty history")
	}
	return c.history.Back()
}

// At returns term a[i] for i in [0, N()).
func (c MathContext[T]) At(i int) T {
	if i < 0 || i >= c.history.Len() {
		panic(fmt.Sprintf("autoseq: history index %d out of range [0,%d)", i, c.history.Len()))
	}
	return c.history.At(i)
}

// History returns the full read-only prefix view, for formulas that need
// more than point access.
func (c MathContext[T]) History() View[T] { return c.history }
