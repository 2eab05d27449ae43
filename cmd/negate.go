/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/vipcxj/intervalset/internal/interval"

	"github.com/spf13/cobra"
)

// newNegateCmd represents the negate command
func newNegateCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "negate <set>",
		Short: "Complement an interval set over (-infty, infty)",
		Long: `Negate prints the complement of the set over the whole real line. The
complement of the empty set is the single interval [-infty, infty]. The
set's finite endpoints reappear as singletons in the result; pipe through
diff's cleanup flags or subtract them if that is unwanted.`,
		Args: cobra.ExactArgs(1),
		RunE: interval.RunNegate,
	}
	return c
}
