package seqs

import (
	"math/big"

	"github.com/on-the-ground/autoseq_go/autoseq"
)

// The *big.Int constructors allocate a fresh result per term and never
// mutate terms reachable through history, which is what autoseq requires of
// pointer element types.

// FibonacciBig is Fibonacci over *big.Int, exact at any index.
func FibonacciBig() *autoseq.Sequence[*big.Int] {
	return autoseq.New(autoseq.Formula[*big.Int](func(n int, h autoseq.View[*big.Int]) *big.Int {
		return new(big.Int).Add(h.At(n-1), h.At(n-2))
	}), big.NewInt(0), big.NewInt(1))
}

// Factorials returns a[0]=1, a[n] = n * a[n-1].
func Factorials() *autoseq.Sequence[*big.Int] {
	return autoseq.New(autoseq.ContextFormula[*big.Int](func(ctx autoseq.MathContext[*big.Int]) *big.Int {
		return new(big.Int).Mul(ctx.Last(), big.NewInt(int64(ctx.N())))
	}), big.NewInt(1))
}

// Catalan returns the Catalan numbers: a[0]=1, a[n] = a[n-1]*(4n-2)/(n+1).
// The division is exact, performed after the multiplication.
func Catalan() *autoseq.Sequence[*big.Int] {
	return autoseq.New(autoseq.ContextFormula[*big.Int](func(ctx autoseq.MathContext[*big.Int]) *big.Int {
		n := int64(ctx.N())
		acc := new(big.Int).Mul(ctx.Last(), big.NewInt(4*n-2))
		return acc.Quo(acc, big.NewInt(n+1))
	}), big.NewInt(1))
}
