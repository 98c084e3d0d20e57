package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"trialbench/internal/benchmark"
)

// executeCommand executes a cobra command and returns its output.
// A call to exit is reported as an error.
func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	resetFlags(root)
	oldExit := exit
	exit = func(code int) {
		if code != 0 {
			panic(fmt.Sprintf("exit-%d", code))
		}
	}
	defer func() { exit = oldExit }()

	b := new(bytes.Buffer)
	defer func() {
		if r := recover(); r != nil {
			if s, ok := r.(string); ok && strings.HasPrefix(s, "exit-") {
				output, err = b.String(), fmt.Errorf("%s", s)
				return
			}
			panic(r) // Re-panic actual panics
		}
	}()

	root.SetArgs(args)
	root.SetOut(b)
	root.SetErr(b)
	root.SetIn(bytes.NewBufferString(""))
	err = root.Execute()
	return b.String(), err
}

// resetFlags resets all flags to their default values.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})
	cmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// constantTimer reports every invocation as taking d.
func constantTimer(d time.Duration) benchmark.Timer {
	return benchmark.TimerFunc(func(fn func()) time.Duration {
		fn()
		return d
	})
}

// setupTest isolates a command test: an empty working directory, small
// suites, a fixed clock and a history file under the temp dir.
func setupTest(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)

	t.Setenv("TRIALBENCH_RECURSION_TEXT_SIZES", "3 7")
	t.Setenv("TRIALBENCH_RECURSION_LIST_SIZES", "4,9")
	t.Setenv("TRIALBENCH_SEARCH_SIZE", "100")
	t.Setenv("TRIALBENCH_SEARCH_TARGETS", "3 50 99 1000")
	t.Setenv("TRIALBENCH_HISTORY_PATH", filepath.Join(dir, "history.json"))

	originalTimer := newTimerFunc
	originalViewer := startResultsViewer
	t.Cleanup(func() {
		newTimerFunc = originalTimer
		startResultsViewer = originalViewer
	})
	newTimerFunc = func() benchmark.Timer { return constantTimer(100) }

	return dir
}
