// Package seqs is a catalog of ready-made sequences built on autoseq,
// covering both formula shapes and the common seeding patterns.
package seqs

import (
	"fmt"
	"slices"

	"github.com/on-the-ground/autoseq_go/autoseq"
)

// Number covers the element types the generic constructors accept.
type Number interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64 | ~float32 | ~float64
}

// Fibonacci returns the Fibonacci sequence: a[0]=0, a[1]=1,
// a[n]=a[n-1]+a[n-2]. Terms overflow uint64 past index 93; overflow is the
// caller's concern.
func Fibonacci() *autoseq.Sequence[uint64] {
	return autoseq.New(autoseq.Formula[uint64](func(n int, h autoseq.View[uint64]) uint64 {
		return h.At(n-1) + h.At(n-2)
	}), 0, 1)
}

// Lucas returns the Lucas sequence: a[0]=2, a[1]=1, a[n]=a[n-1]+a[n-2].
func Lucas() *autoseq.Sequence[uint64] {
	return autoseq.New(autoseq.Formula[uint64](func(n int, h autoseq.View[uint64]) uint64 {
		return h.At(n-1) + h.At(n-2)
	}), 2, 1)
}

// Triangular returns the triangular numbers: a[0]=0, a[n]=a[n-1]+n.
func Triangular() *autoseq.Sequence[uint64] {
	return autoseq.New(autoseq.ContextFormula[uint64](func(ctx autoseq.MathContext[uint64]) uint64 {
		return ctx.Last() + uint64(ctx.N())
	}), 0)
}

// Arithmetic returns a[n] = first + n*step. The formula is history-free, so
// the sequence survives a Drain unchanged in meaning.
func Arithmetic[T Number](first, step T) *autoseq.Sequence[T] {
	return autoseq.New(autoseq.Formula[T](func(n int, _ autoseq.View[T]) T {
		return first + T(n)*step
	}))
}

// Geometric returns a[0] = first, a[n] = a[n-1]*ratio.
func Geometric[T Number](first, ratio T) *autoseq.Sequence[T] {
	return autoseq.New(autoseq.ContextFormula[T](func(ctx autoseq.MathContext[T]) T {
		return ctx.Last() * ratio
	}), first)
}

// LinRecFormula returns the formula of the homogeneous linear recurrence
//
//	a[n] = coeffs[0]*a[n-1] + coeffs[1]*a[n-2] + ... + coeffs[k-1]*a[n-k]
//
// It requires at least one coefficient. The formula reads k terms of
// history, so the sequence it drives needs at least k seeds.
func LinRecFormula(coeffs []int64) (autoseq.Formula[int64], error) {
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("seqs: linear recurrence needs at least one coefficient")
	}
	cs := slices.Clone(coeffs)
	return func(n int, h autoseq.View[int64]) int64 {
		var acc int64
		for i, c := range cs {
			acc += c * h.At(n-1-i)
		}
		return acc
	}, nil
}

// LinRec returns the homogeneous linear recurrence of LinRecFormula seeded
// with seeds. It requires at least as many seeds as coefficients, so the
// formula never reads missing history.
func LinRec(coeffs, seeds []int64) (*autoseq.Sequence[int64], error) {
	formula, err := LinRecFormula(coeffs)
	if err != nil {
		return nil, err
	}
	if len(seeds) < len(coeffs) {
		return nil, fmt.Errorf("seqs: %d coefficients need at least %d seeds, got %d",
			len(coeffs), len(coeffs), len(seeds))
	}
	return autoseq.New(formula, slices.Clone(seeds)...), nil
}
