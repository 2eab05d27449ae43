/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/vipcxj/intervalset/internal/interval"

	"github.com/spf13/cobra"
)

// newDiffCmd represents the diff command
func newDiffCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "diff <set> <set>",
		Short: "Subtract one interval set from another",
		Long: `Diff removes the second set from the first. The removed intervals are
treated as open, so subtracting [1,2] from itself leaves the boundary
singletons [1,1] and [2,2]. The cleanup flags post-process such artifacts:
--drop-singles removes zero-width intervals, --min-width removes intervals
narrower than a threshold, and --merge-gaps fuses intervals separated by a
gap smaller than a threshold.`,
		Args: cobra.ExactArgs(2),
		RunE: interval.RunDiff,
	}
	c.Flags().Bool("drop-singles", false, "Remove zero-width intervals from the result")
	c.Flags().Float64("min-width", 0, "Remove result intervals narrower than this width")
	c.Flags().Float64("merge-gaps", 0, "Fuse result intervals separated by a gap smaller than this width")
	return c
}
