/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/vipcxj/intervalset/internal/interval"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the full command tree. A fresh tree is built per call
// so flag state never leaks between in-process runs.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "intervalset",
		Short:        interval.ShortDesc,
		Long:         interval.LongDesc,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().IntP("precision", "p", interval.DefaultPrecision, "Number of fractional digits in printed bounds (0..16)")
	rootCmd.PersistentFlags().Bool("pvs", false, "Print intervals as PVS records, one per line")

	rootCmd.AddCommand(newUnionCmd())
	rootCmd.AddCommand(newIntersectCmd())
	rootCmd.AddCommand(newDiffCmd())
	rootCmd.AddCommand(newNegateCmd())
	rootCmd.AddCommand(newContainsCmd())
	return rootCmd
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		return 1
	}
	return 0
}
