package seqs

import (
	"fmt"

	"github.com/govalues/decimal"

	"github.com/on-the-ground/autoseq_go/autoseq"
)

// CompoundBalance returns the balance of principal compounded by rate once
// per period: a[0] = principal, a[n] = a[n-1] * (1 + rate).
//
// An invalid growth factor (for example a rate that overflows 1+rate) is a
// definition-time error. Decimal overflow during extension is reported with
// a panic carrying the term index, consistent with autoseq's error model for
// mis-specified formulas.
func CompoundBalance(principal, rate decimal.Decimal) (*autoseq.Sequence[decimal.Decimal], error) {
	factor, err := decimal.One.Add(rate)
	if err != nil {
		return nil, fmt.Errorf("seqs: invalid compound rate %v: %w", rate, err)
	}
	formula := autoseq.ContextFormula[decimal.Decimal](func(ctx autoseq.MathContext[decimal.Decimal]) decimal.Decimal {
		next, err := ctx.Last().Mul(factor)
		if err != nil {
			panic(fmt.Sprintf("seqs: compound balance overflow at term %d: %v", ctx.N(), err))
		}
		return next
	})
	return autoseq.New(formula, principal), nil
}
