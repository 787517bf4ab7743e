package autoseq_test

import (
	"testing"

	"github.com/on-the-ground/autoseq_go/autoseq"

	"github.com/stretchr/testify/assert"
)

func TestBothShapesNormalizeIdentically(t *testing.T) {
	raw := autoseq.New(autoseq.Formula[uint64](func(n int, h autoseq.View[uint64]) uint64 {
		return h.At(n-1) + h.At(n-2)
	}), 0, 1)
	ctx := autoseq.New(autoseq.ContextFormula[uint64](func(c autoseq.MathContext[uint64]) uint64 {
		return c.At(c.N()-1) + c.At(c.N()-2)
	}), 0, 1)

	for n := 0; n <= 15; n++ {
		assert.Equal(t, raw.Get(n), ctx.Get(n), "term %d", n)
	}
}

func TestMathContextIsFreshPerInvocation(t *testing.T) {
	var ns []int
	var lens []int
	seq := autoseq.New(autoseq.ContextFormula[int](func(ctx autoseq.MathContext[int]) int {
		ns = append(ns, ctx.N())
		lens = append(lens, ctx.History().Len())
		return ctx.N()
	}), 0)

	seq.Get(4)
	assert.Equal(t, []int{1, 2, 3, 4}, ns)
	// The history handed to each invocation is exactly the prefix.
	assert.Equal(t, []int{1, 2, 3, 4}, lens)
}

func TestMathContextLastAndHistory(t *testing.T) {
	seq := autoseq.New(autoseq.ContextFormula[int](func(ctx autoseq.MathContext[int]) int {
		sum := ctx.Last()
		for _, v := range ctx.History().All() {
			sum += v
		}
		return sum
	}), 1)

	// a[n] = a[n-1] + sum(a[0..n))
	assert.Equal(t, 1, seq.Get(0))
	assert.Equal(t, 2, seq.Get(1))  // 1 + 1
	assert.Equal(t, 5, seq.Get(2))  // 2 + (1+2)
	assert.Equal(t, 13, seq.Get(3)) // 5 + (1+2+5)
}
