package main

import (
	"github.com/spf13/cobra"

	"trialbench/internal/benchmark"
	"trialbench/internal/config"
)

var searchOpts suiteOptions

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Time linear search against iterative and recursive binary search",
	Long: `Searches a sorted range 0..search.size-1 for each of search.targets with
a linear scan and both binary search variants. Every target is checked against
the standard library's binary search.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearchSuite(cmd, searchOpts)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	addSuiteFlags(searchCmd, &searchOpts)
}

func runSearchSuite(cmd *cobra.Command, opts suiteOptions) error {
	s := config.Current()
	return runSuite(cmd, "Linear vs Binary Search", opts, func(r *benchmark.Runner) benchmark.Run {
		return benchmark.RunSearch(r, s.SearchSize, s.SearchTargets)
	})
}
