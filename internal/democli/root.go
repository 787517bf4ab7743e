// Package democli implements the seqdemo command tree.
package democli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCommand creates the root command for the seqdemo CLI.
func NewRootCommand(logger *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "seqdemo",
		Short:         "Demonstrations of lazily-evaluated, self-memoizing sequences",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewWalkthroughCommand())
	cmd.AddCommand(NewFibCommand())
	cmd.AddCommand(NewTableCommand(logger))

	return cmd
}
