package democli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/on-the-ground/autoseq_go/autoseq"
	"github.com/on-the-ground/autoseq_go/seqs"
)

// NewWalkthroughCommand creates the walkthrough command: a tour of the
// sequence API using Fibonacci and a second sequence composed on top of it.
func NewWalkthroughCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "walkthrough",
		Short: "Tour the sequence API with a composed Fibonacci sum",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			walkthrough(cmd.OutOrStdout())
			return nil
		},
	}
}

func walkthrough(out io.Writer) {
	fib := seqs.Fibonacci()
	// s[0] = 0, s[n] = s[n-1] + fib[n]: a partial-sum sequence whose formula
	// reads another sequence's cache.
	sum := autoseq.New(autoseq.ContextFormula[uint64](func(ctx autoseq.MathContext[uint64]) uint64 {
		return ctx.At(ctx.N()-1) + fib.Get(ctx.N())
	}), 0)

	fmt.Fprintln(out, "--- Basic Access ---")
	fmt.Fprintf(out, "s[5]  = %d\n", sum.Get(5))
	fmt.Fprintf(out, "s[10] = %d\n", sum.At(10))
	fmt.Fprintf(out, "cache size: %d\n", sum.Len())

	fmt.Fprintln(out, "\n--- Range Access ---")
	fmt.Fprint(out, "s[3,8):")
	for _, term := range sum.Slice(3, 8).All() {
		fmt.Fprintf(out, " %d", term)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "\n--- Prefetch and Capacity ---")
	sum.Reserve(100)
	sum.PrefetchUpTo(20)
	fmt.Fprintf(out, "size after prefetch up to 20: %d\n", sum.Len())
	fmt.Fprintf(out, "s[20] = %d\n", sum.Get(20))
	fmt.Fprintf(out, "formula calls so far: %d\n", sum.Stats().FormulaCalls)

	fmt.Fprintln(out, "\n--- Views and Iteration ---")
	v := sum.View()
	fmt.Fprintf(out, "view front: %d, back: %d\n", v.Front(), v.Back())
	fmt.Fprint(out, "terms below 100:")
	for _, term := range sum.All() {
		if term >= 100 {
			break
		}
		fmt.Fprintf(out, " %d", term)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "\n--- Snapshot and Drain ---")
	copied := sum.Snapshot()
	fmt.Fprintf(out, "snapshot: %d terms, size unchanged: %d\n", len(copied), sum.Len())

	moved := sum.Drain()
	fmt.Fprintf(out, "drained: %d terms, size now: %d\n", len(moved), sum.Len())

	// The drained sequence is still alive but its seed is gone: the first
	// access recomputes index 0 with empty history and the formula panics.
	func() {
		defer func() {
			if r := recover(); r != nil {
				fmt.Fprintln(out, "post-drain s[0] panicked: seed gone, history empty")
			}
		}()
		sum.Get(0)
	}()
}
