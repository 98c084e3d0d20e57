package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trialbench/internal/benchmark"
)

func TestCompareCmd_NotEnoughRuns(t *testing.T) {
	setupTest(t)

	_, err := executeCommand(rootCmd, "recursion", "--save")
	require.NoError(t, err)

	output, err := executeCommand(rootCmd, "compare")
	require.NoError(t, err)
	assert.Contains(t, output, "Need at least two saved recursion runs to compare (found 1).")
}

func TestCompareCmd(t *testing.T) {
	setupTest(t)

	_, err := executeCommand(rootCmd, "search", "--save")
	require.NoError(t, err)

	newTimerFunc = func() benchmark.Timer { return constantTimer(200) }
	_, err = executeCommand(rootCmd, "search", "--save")
	require.NoError(t, err)

	output, err := executeCommand(rootCmd, "compare", "--suite", benchmark.SuiteSearch)
	require.NoError(t, err)

	assert.Contains(t, output, "Comparing ")
	rows := 0
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, "Search ") {
			rows++
			assert.Contains(t, line, "+100.00%")
			assert.Contains(t, line, "SLOWER")
		}
	}
	assert.Equal(t, 3, rows)

	output, err = executeCommand(rootCmd, "compare", "--suite", benchmark.SuiteSearch, "--threshold", "150")
	require.NoError(t, err)
	assert.NotContains(t, output, "SLOWER")
	assert.Contains(t, output, "OK")
}

func TestCompareCmd_UnknownSuite(t *testing.T) {
	setupTest(t)

	_, err := executeCommand(rootCmd, "compare", "--suite", "")
	assert.Error(t, err)
}
