package main

import (
	"github.com/spf13/cobra"

	"trialbench/internal/benchmark"
	"trialbench/internal/config"
)

var recursionOpts suiteOptions

var recursionCmd = &cobra.Command{
	Use:   "recursion",
	Short: "Time recursive against iterative string reversal and list summation",
	Long: `Reverses generated strings and sums generated integer lists with a
recursive and an iterative implementation of each, timing every call once.

Input sizes come from recursion.text_sizes and recursion.list_sizes and may not
exceed recursion.max_size.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRecursionSuite(cmd, recursionOpts)
	},
}

func init() {
	rootCmd.AddCommand(recursionCmd)
	addSuiteFlags(recursionCmd, &recursionOpts)
}

func runRecursionSuite(cmd *cobra.Command, opts suiteOptions) error {
	s := config.Current()
	return runSuite(cmd, "Recursion vs Iteration", opts, func(r *benchmark.Runner) benchmark.Run {
		return benchmark.RunRecursion(r, s.TextSizes, s.ListSizes)
	})
}
