package main

import (
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"trialbench/internal/benchmark"
	"trialbench/internal/report"
)

var (
	historySuite string
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved benchmark runs",
	Long: `Lists the runs saved with --save, newest first, with the fastest variant
of every category on average.

The backend is selected by history.type (json, sqlite or postgres) and
history.path.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVar(&historySuite, "suite", "", "Only show runs of this suite (recursion or search)")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Maximum number of runs to show (0 for all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if err := checkSuite(historySuite, true); err != nil {
		return err
	}

	store, err := newStoreFunc()
	if err != nil {
		return fmt.Errorf("failed to open history store: %w", err)
	}
	defer store.Close()

	runs, err := store.LoadAll(historySuite)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No saved runs found.")
		return nil
	}

	slices.Reverse(runs)
	if historyLimit > 0 && len(runs) > historyLimit {
		runs = runs[:historyLimit]
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tSUITE\tWHEN\tCORRECT\tFASTEST ON AVERAGE")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			run.ID, run.Suite, humanize.Time(run.Timestamp), report.Check(run.Correct()), averageWinners(run))
	}
	return w.Flush()
}

func averageWinners(run benchmark.Run) string {
	parts := make([]string, 0, len(run.Sections))
	for _, s := range run.Sections {
		parts = append(parts, fmt.Sprintf("%s: %s", s.Category, s.Average.Fastest))
	}
	return strings.Join(parts, ", ")
}

// checkSuite rejects unknown suite names. An empty name is accepted when
// allowAll is set.
func checkSuite(suite string, allowAll bool) error {
	if suite == "" && allowAll {
		return nil
	}
	if !slices.Contains(benchmark.Suites, suite) {
		return fmt.Errorf("unknown suite %q (want one of %s)", suite, strings.Join(benchmark.Suites, ", "))
	}
	return nil
}
