package autoseq

var (
	_ FormulaFunc[int] = Formula[int](nil)
	_ FormulaFunc[int] = ContextFormula[int](nil)
)

// FormulaFunc is a sealed interface over the two accepted formula shapes.
// Only Formula and ContextFormula can implement this interface; passing any
// other type to New is a compile error, not a runtime one.
type FormulaFunc[T any] interface {
	// normalize prevents external packages from implementing FormulaFunc
	// and converts the shape to the canonical two-argument form.
	normalize() Formula[T]
}

// Formula is the primary formula shape: it receives the index n about to be
// computed and a read-only view of terms a[0]..a[n-1], and returns a[n].
// The view contains exactly n terms; reading past it is a precondition
// violation and panics.
type Formula[T any] func(n int, history View[T]) T

func (f Formula[T]) normalize() Formula[T] { return f }

// ContextFormula is the alternative formula shape: it receives a MathContext
// bundling the index and the history view. A fresh context is built per
// invocation and discarded after; it holds no ownership, only a borrowed view
// of the cached prefix.
type ContextFormula[T any] func(ctx MathContext[T]) T

func (f ContextFormula[T]) normalize() Formula[T] {
	if f == nil {
		return nil
	}
	return func(n int, history View[T]) T {
		return f(MathContext[T]{n: n, history: history})
	}
}
