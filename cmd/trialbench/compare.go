package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"trialbench/internal/benchmark"
	"trialbench/internal/config"
	"trialbench/internal/report"
)

var compareSuite string

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the two latest saved runs of a suite",
	Long: `Loads the two most recent saved runs of a suite and shows how the average
time of every variant changed. Changes beyond the threshold percentage are
marked SLOWER or FASTER.`,
	Args: cobra.NoArgs,
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringVar(&compareSuite, "suite", benchmark.SuiteRecursion, "Suite to compare (recursion or search)")
	compareCmd.Flags().Float64("threshold", config.DefaultThreshold, "Percentage change reported as SLOWER or FASTER")
	viper.BindPFlag(config.KeyCompareThreshold, compareCmd.Flags().Lookup("threshold"))
}

func runCompare(cmd *cobra.Command, args []string) error {
	if err := checkSuite(compareSuite, false); err != nil {
		return err
	}
	threshold := config.Current().CompareThreshold

	store, err := newStoreFunc()
	if err != nil {
		return fmt.Errorf("failed to open history store: %w", err)
	}
	defer store.Close()

	runs, err := store.LoadAll(compareSuite)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	if len(runs) < 2 {
		fmt.Fprintf(cmd.OutOrStdout(), "Need at least two saved %s runs to compare (found %d).\n", compareSuite, len(runs))
		return nil
	}

	prev, curr := runs[len(runs)-2], runs[len(runs)-1]
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Comparing %s (%s) -> %s (%s)\n\n",
		prev.ID, humanize.Time(prev.Timestamp), curr.ID, humanize.Time(curr.Timestamp))

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tVARIANT\tPREVIOUS (ns)\tCURRENT (ns)\tDIFF %\tSTATUS")
	for _, c := range benchmark.Compare(prev, curr) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%+.2f%%\t%s\n",
			c.Category, c.Variant, report.Nanos(c.PrevNs), report.Nanos(c.CurrNs), c.DiffPct, c.Status(threshold))
	}
	return w.Flush()
}
