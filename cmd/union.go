/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/vipcxj/intervalset/internal/interval"

	"github.com/spf13/cobra"
)

// newUnionCmd represents the union command
func newUnionCmd() *cobra.Command {
	var ulps interval.UlpsValue
	c := &cobra.Command{
		Use:   "union <set>...",
		Short: "Union one or more interval sets",
		Long: `Union parses each argument as a ";"-separated list of interval literals
and prints the union of all of them. Intervals that overlap or share an
endpoint fuse into one. With --ulps, intervals within the tolerance of
touching fuse as well.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return interval.RunUnion(cmd, args, &ulps)
		},
	}
	c.Flags().Var(&ulps, "ulps", "Tolerance for merging: p13, p9, p7, p5 or a ULP count")
	return c
}
