package benchmark

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"

	"trialbench/internal/algorithms"
)

// Suite names, as stored in run history.
const (
	SuiteRecursion = "recursion"
	SuiteSearch    = "search"
)

// Category and variant labels shown in the report.
const (
	CategoryReverse = "Reverse String"
	CategorySum     = "Sum List"
	CategorySearch  = "Search"

	VariantRecursive       = "Recursive"
	VariantIterative       = "Iterative"
	VariantLinear          = "Linear"
	VariantBinaryIterative = "Binary Iterative"
	VariantBinaryRecursive = "Binary Recursive"
)

// Suites lists every suite name known to the history commands.
var Suites = []string{SuiteRecursion, SuiteSearch}

// ReverseFamily compares recursive and iterative string reversal. The
// recursive variant only wins when strictly faster.
func ReverseFamily() Family[string, string] {
	return Family[string, string]{
		Category:   CategoryReverse,
		InputLabel: "Input Size",
		Variants: []Variant[string, string]{
			{Name: VariantRecursive, Fn: algorithms.ReverseRecursive},
			{Name: VariantIterative, Fn: algorithms.ReverseIterative},
		},
		Preference: []string{VariantIterative, VariantRecursive},
	}
}

// ReverseTrials builds one trial per size over Letters(n), with the reference
// answer produced by slices.Reverse.
func ReverseTrials(sizes []int) []Trial[string, string] {
	trials := make([]Trial[string, string], 0, len(sizes))
	for i, n := range sizes {
		text := algorithms.Letters(n)
		runes := []rune(text)
		slices.Reverse(runes)
		trials = append(trials, Trial[string, string]{
			Case:  fmt.Sprintf("Reverse #%d", i+1),
			Input: strconv.Itoa(n),
			Value: text,
			Want:  string(runes),
		})
	}
	return trials
}

// SumFamily compares recursive and iterative list summation.
func SumFamily() Family[[]int, int] {
	return Family[[]int, int]{
		Category:   CategorySum,
		InputLabel: "Input Size",
		Variants: []Variant[[]int, int]{
			{Name: VariantRecursive, Fn: algorithms.SumRecursive},
			{Name: VariantIterative, Fn: algorithms.SumIterative},
		},
		Preference: []string{VariantIterative, VariantRecursive},
	}
}

// SumTrials builds one trial per size over Range(n). The reference is the
// arithmetic series n(n-1)/2.
func SumTrials(sizes []int) []Trial[[]int, int] {
	trials := make([]Trial[[]int, int], 0, len(sizes))
	for i, n := range sizes {
		want := 0
		if n > 0 {
			want = n * (n - 1) / 2
		}
		trials = append(trials, Trial[[]int, int]{
			Case:  fmt.Sprintf("Sum #%d", i+1),
			Input: strconv.Itoa(n),
			Value: algorithms.Range(n),
			Want:  want,
		})
	}
	return trials
}

// SearchFamily compares the three search variants over the fixed sorted
// slice data; trials supply only the target. Ties go to the first declared
// variant.
func SearchFamily(data []int) Family[int, int] {
	return Family[int, int]{
		Category:   CategorySearch,
		InputLabel: "Target",
		Variants: []Variant[int, int]{
			{Name: VariantLinear, Fn: func(target int) int { return algorithms.LinearSearch(data, target) }},
			{Name: VariantBinaryIterative, Fn: func(target int) int { return algorithms.BinarySearchIterative(data, target) }},
			{Name: VariantBinaryRecursive, Fn: func(target int) int { return algorithms.BinarySearchRecursive(data, target) }},
		},
		Preference: []string{VariantLinear, VariantBinaryIterative, VariantBinaryRecursive},
	}
}

// SearchTrials builds one trial per target, with the reference index taken
// from slices.BinarySearch.
func SearchTrials(data []int, targets []int) []Trial[int, int] {
	trials := make([]Trial[int, int], 0, len(targets))
	for i, target := range targets {
		want := algorithms.NotFound
		if idx, found := slices.BinarySearch(data, target); found {
			want = idx
		}
		trials = append(trials, Trial[int, int]{
			Case:  fmt.Sprintf("Search #%d", i+1),
			Input: strconv.Itoa(target),
			Value: target,
			Want:  want,
		})
	}
	return trials
}

// RunRecursion times reversal over textSizes and summation over listSizes.
// Rows come out grouped by type, each group in ascending size.
func RunRecursion(r *Runner, textSizes, listSizes []int) Run {
	run := newRun(SuiteRecursion)
	run.Sections = []Section{
		RunFamily(r, ReverseFamily(), ReverseTrials(slices.Sorted(slices.Values(textSizes)))),
		RunFamily(r, SumFamily(), SumTrials(slices.Sorted(slices.Values(listSizes)))),
	}
	return run
}

// RunSearch times every search variant for each target over 0..size-1.
func RunSearch(r *Runner, size int, targets []int) Run {
	data := algorithms.Range(size)
	run := newRun(SuiteSearch)
	run.Sections = []Section{
		RunFamily(r, SearchFamily(data), SearchTrials(data, targets)),
	}
	return run
}

func newRun(suite string) Run {
	return Run{
		ID:        uuid.NewString(),
		Suite:     suite,
		Timestamp: time.Now().UTC(),
	}
}
