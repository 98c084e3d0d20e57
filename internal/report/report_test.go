package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trialbench/internal/benchmark"
)

func init() {
	DisableColor()
}

func recursionRun() benchmark.Run {
	variants := []string{benchmark.VariantRecursive, benchmark.VariantIterative}
	section := func(cat, prefix string) benchmark.Section {
		return benchmark.Section{
			Category:   cat,
			InputLabel: "Input Size",
			Variants:   variants,
			Results: []benchmark.Result{{
				Case:     prefix + " #1",
				Category: cat,
				Input:    "800",
				Timings:  []benchmark.Timing{{Variant: "Recursive", Nanos: 1234567}, {Variant: "Iterative", Nanos: 890}},
				Correct:  true,
				Fastest:  "Iterative",
			}},
			Average: benchmark.Aggregate{
				Category: cat,
				Trials:   1,
				Means:    []benchmark.Timing{{Variant: "Recursive", Nanos: 1234567}, {Variant: "Iterative", Nanos: 890}},
				Fastest:  "Iterative",
			},
		}
	}
	return benchmark.Run{
		Suite: benchmark.SuiteRecursion,
		Sections: []benchmark.Section{
			section(benchmark.CategoryReverse, "Reverse"),
			section(benchmark.CategorySum, "Sum"),
		},
	}
}

func TestTable_Recursion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Table(&buf, recursionRun()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5) // header + 2 x (row + average)

	assert.Equal(t,
		[]string{"CASE", "TYPE", "INPUT", "SIZE", "RECURSIVE", "(ns)", "ITERATIVE", "(ns)", "FASTEST", "CORRECT"},
		strings.Fields(lines[0]))
	assert.Equal(t,
		[]string{"Reverse", "#1", "Reverse", "String", "800", "1,234,567", "890", "Iterative", "✔"},
		strings.Fields(lines[1]))
	assert.Equal(t,
		[]string{"Average", "Reverse", "String", "-", "1,234,567", "890", "Iterative", "-"},
		strings.Fields(lines[2]))
	assert.True(t, strings.HasPrefix(lines[3], "Sum #1"))
	assert.True(t, strings.HasPrefix(lines[4], "Average"))

	// Columns are aligned: FASTEST starts at the same offset on every line.
	col := strings.Index(lines[0], "FASTEST")
	for _, l := range lines[1:] {
		assert.Equal(t, "Iterative", strings.Fields(string([]rune(l)[col:]))[0])
	}
}

func TestTable_SingleSectionOmitsType(t *testing.T) {
	run := benchmark.Run{Sections: []benchmark.Section{{
		Category:   benchmark.CategorySearch,
		InputLabel: "Target",
		Variants:   []string{"Linear", "Binary Iterative", "Binary Recursive"},
		Results: []benchmark.Result{{
			Case:    "Search #1",
			Input:   "19999",
			Timings: []benchmark.Timing{{Variant: "Linear", Nanos: 400000}, {Variant: "Binary Iterative", Nanos: 900}, {Variant: "Binary Recursive", Nanos: 1500}},
			Correct: false,
			Fastest: "Binary Iterative",
		}},
		Average: benchmark.Aggregate{Means: []benchmark.Timing{{Variant: "Linear", Nanos: 400000}}, Fastest: "Binary Iterative"},
	}}}

	grids := Grids(run)
	require.Len(t, grids, 1)
	header, rows := grids[0].Header, grids[0].Rows
	assert.Equal(t, []string{"SEARCH #", "TARGET", "LINEAR (ns)", "BINARY ITERATIVE (ns)", "BINARY RECURSIVE (ns)", "FASTEST", "CORRECT"}, header)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Search #1", "19999", "400,000", "900", "1,500", "Binary Iterative", "✘"}, rows[0])
	assert.Equal(t, []string{"Average", "-", "400,000", "-", "-", "Binary Iterative", "-"}, rows[1])
}

func TestTable_SplitsDifferentVariants(t *testing.T) {
	run := benchmark.Run{Sections: []benchmark.Section{
		{Category: "a", InputLabel: "N", Variants: []string{"x"}},
		{Category: "b", InputLabel: "N", Variants: []string{"y"}},
	}}

	var buf bytes.Buffer
	require.NoError(t, Table(&buf, run))
	assert.Equal(t, 2, strings.Count(buf.String(), "CASE"))

	// Each block keeps its own header next to its own rows
	grids := Grids(run)
	require.Len(t, grids, 2)
	assert.Equal(t, []string{"CASE", "TYPE", "N", "X (ns)", "FASTEST", "CORRECT"}, grids[0].Header)
	assert.Equal(t, []string{"CASE", "TYPE", "N", "Y (ns)", "FASTEST", "CORRECT"}, grids[1].Header)
	for _, g := range grids {
		for _, row := range g.Rows {
			assert.Len(t, row, len(g.Header))
		}
	}
	assert.Equal(t, "a", grids[0].Rows[0][1])
	assert.Equal(t, "b", grids[1].Rows[0][1])
}

func TestNanosAndCheck(t *testing.T) {
	assert.Equal(t, "0", Nanos(0))
	assert.Equal(t, "12,345,678,901", Nanos(12345678901))
	assert.Equal(t, "✔", Check(true))
	assert.Equal(t, "✘", Check(false))
}

func TestBanner(t *testing.T) {
	var buf bytes.Buffer
	Banner(&buf, "1) Registration")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Repeat("-", ruleWidth), lines[0])
	assert.Contains(t, lines[1], "1) Registration")
	assert.Equal(t, lines[0], lines[2])
}

func TestColumns(t *testing.T) {
	var buf bytes.Buffer
	Columns(&buf, []int{6, 4}, "ab", "cd", "ef")
	Columns(&buf, []int{2, 4}, "toolong", "x", "")
	assert.Equal(t, "ab    cd  ef\ntoolong x\n", buf.String())
}

func TestTitle(t *testing.T) {
	var buf bytes.Buffer
	Title(&buf, "Search")
	assert.Equal(t, "Search", strings.TrimSpace(buf.String()))
}
