/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/vipcxj/intervalset/internal/interval"

	"github.com/spf13/cobra"
)

// newIntersectCmd represents the intersect command
func newIntersectCmd() *cobra.Command {
	var ulps interval.UlpsValue
	c := &cobra.Command{
		Use:   "intersect <set> <set>",
		Short: "Intersect two interval sets",
		Long: `Intersect prints the intersection of two interval sets. Intervals that
share only an endpoint do not count as overlapping, so touching sets
intersect to the empty set. With --ulps, bounds within the tolerance of
crossing count as crossing.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return interval.RunIntersect(cmd, args, &ulps)
		},
	}
	c.Flags().Var(&ulps, "ulps", "Tolerance for bound comparisons: p13, p9, p7, p5 or a ULP count")
	return c
}
