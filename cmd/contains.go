/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/vipcxj/intervalset/internal/interval"

	"github.com/spf13/cobra"
)

// newContainsCmd represents the contains command
func newContainsCmd() *cobra.Command {
	var ulps interval.UlpsValue
	c := &cobra.Command{
		Use:   "contains <set> <value>",
		Short: "Find the interval of a set containing a value",
		Long: `Contains prints the interval of the set that contains the value, or "[]"
when no interval does. With --ulps, a value within the tolerance of an
interval's bounds counts as contained.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return interval.RunContains(cmd, args, &ulps)
		},
	}
	c.Flags().Var(&ulps, "ulps", "Tolerance for membership: p13, p9, p7, p5 or a ULP count")
	return c
}
