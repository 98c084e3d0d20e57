package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"trialbench/internal/benchmark"
	"trialbench/internal/config"
	"trialbench/internal/db"
	"trialbench/internal/report"
	"trialbench/internal/telemetry"
	"trialbench/internal/ui"
)

var (
	// newTimerFunc allows tests to inject a deterministic clock.
	newTimerFunc = func() benchmark.Timer {
		return benchmark.NewWallTimer()
	}

	// newStoreFunc opens the configured history backend.
	newStoreFunc = func() (benchmark.Store, error) {
		s := config.Current()
		return db.NewStore(db.StoreConfig{Type: s.HistoryType, ConnectionString: s.HistoryPath})
	}

	startResultsViewer = ui.StartResultsViewer
)

// suiteOptions are the output switches shared by the benchmark commands.
type suiteOptions struct {
	save        bool
	metricsFile string
	tui         bool
}

func addSuiteFlags(cmd *cobra.Command, opts *suiteOptions) {
	cmd.Flags().BoolVar(&opts.save, "save", false, "Save the run to the history store")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "Write trial metrics in Prometheus text format to this file")
	cmd.Flags().BoolVar(&opts.tui, "tui", false, "Browse the results in an interactive table")
}

// runSuite measures a suite, prints its table and handles the optional outputs.
func runSuite(cmd *cobra.Command, title string, opts suiteOptions, measure func(*benchmark.Runner) benchmark.Run) error {
	metrics := telemetry.NewTrialMetrics()
	runner := benchmark.NewRunner(newTimerFunc(), metrics, telemetry.TrialLogger{})

	run := measure(runner)
	telemetry.LogDebug("suite finished", "suite", run.Suite, "id", run.ID, "correct", run.Correct())

	out := cmd.OutOrStdout()
	report.Title(out, title)
	if err := report.Table(out, run); err != nil {
		return fmt.Errorf("failed to render results: %w", err)
	}

	if opts.save {
		if err := saveRun(run); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nSaved run %s\n", run.ID)
	}

	if opts.metricsFile != "" {
		if err := metrics.WriteFile(opts.metricsFile); err != nil {
			return err
		}
		telemetry.LogInfof("metrics written to %s", opts.metricsFile)
	}

	if opts.tui {
		if err := startResultsViewer(run); err != nil {
			return err
		}
	}
	return nil
}

func saveRun(run benchmark.Run) error {
	store, err := newStoreFunc()
	if err != nil {
		return fmt.Errorf("failed to open history store: %w", err)
	}
	defer store.Close()

	if err := store.Save(run); err != nil {
		telemetry.LogError("failed to save run", err, "id", run.ID, "suite", run.Suite)
		return fmt.Errorf("failed to save run: %w", err)
	}
	telemetry.LogInfo("run saved", "id", run.ID, "suite", run.Suite)
	return nil
}
