package democli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/on-the-ground/autoseq_go/seqs"
)

// Past index 93 Fibonacci overflows uint64.
const maxFibUint64 = 93

// FibOptions holds flags for the fib command.
type FibOptions struct {
	N   int
	Big bool
}

// NewFibCommand creates the fib command: single-term Fibonacci lookup.
func NewFibCommand() *cobra.Command {
	opts := &FibOptions{}

	cmd := &cobra.Command{
		Use:           "fib",
		Short:         "Print a single Fibonacci term",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFib(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.N, "n", 10, "term index to compute")
	cmd.Flags().BoolVar(&opts.Big, "big", false, "compute over math/big for arbitrary indices")

	return cmd
}

func runFib(opts *FibOptions, cmd *cobra.Command) error {
	if opts.N < 0 {
		return fmt.Errorf("--n must be non-negative, got %d", opts.N)
	}
	if opts.Big {
		fmt.Fprintf(cmd.OutOrStdout(), "fib(%d) = %s\n", opts.N, seqs.FibonacciBig().Get(opts.N))
		return nil
	}
	if opts.N > maxFibUint64 {
		return fmt.Errorf("fib(%d) overflows uint64; pass --big", opts.N)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "fib(%d) = %d\n", opts.N, seqs.Fibonacci().Get(opts.N))
	return nil
}
