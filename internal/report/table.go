package report

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"trialbench/internal/benchmark"
)

const (
	mark     = "✔"
	cross    = "✘"
	noValue  = "-"
	avgLabel = "Average"
)

// Table writes run as one aligned table per group of sections sharing the
// same variants. Each category's rows are followed by its average row.
func Table(w io.Writer, run benchmark.Run) error {
	for i, group := range groupSections(run.Sections) {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := writeGroup(w, group, len(run.Sections) > 1); err != nil {
			return err
		}
	}
	return nil
}

// Grid is one aligned block of a rendered run: the sections sharing a
// variant set and input label, under a single header.
type Grid struct {
	Header []string
	Rows   [][]string
}

// Grids returns the cell values exactly as Table prints them, one Grid per
// block separated by a blank line.
func Grids(run benchmark.Run) []Grid {
	var grids []Grid
	for _, group := range groupSections(run.Sections) {
		header, rows := cells(group, len(run.Sections) > 1)
		grids = append(grids, Grid{Header: header, Rows: rows})
	}
	return grids
}

// Nanos formats a duration in nanoseconds with thousands separators.
func Nanos(ns int64) string {
	return humanize.Comma(ns)
}

// Check renders a correctness flag.
func Check(ok bool) string {
	if ok {
		return mark
	}
	return cross
}

func writeGroup(w io.Writer, sections []benchmark.Section, withType bool) error {
	header, rows := cells(sections, withType)

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func cells(sections []benchmark.Section, withType bool) ([]string, [][]string) {
	first := sections[0]

	header := []string{strings.ToUpper(first.Category) + " #"}
	if withType {
		header = []string{"CASE", "TYPE"}
	}
	header = append(header, strings.ToUpper(first.InputLabel))
	for _, v := range first.Variants {
		header = append(header, strings.ToUpper(v)+" (ns)")
	}
	header = append(header, "FASTEST", "CORRECT")

	var rows [][]string
	for _, s := range sections {
		for _, res := range s.Results {
			row := []string{res.Case}
			if withType {
				row = append(row, s.Category)
			}
			row = append(row, res.Input)
			row = append(row, timingCells(s.Variants, res.Timings)...)
			row = append(row, res.Fastest, Check(res.Correct))
			rows = append(rows, row)
		}

		avg := []string{avgLabel}
		if withType {
			avg = append(avg, s.Category)
		}
		avg = append(avg, noValue)
		avg = append(avg, timingCells(s.Variants, s.Average.Means)...)
		avg = append(avg, s.Average.Fastest, noValue)
		rows = append(rows, avg)
	}
	return header, rows
}

func timingCells(variants []string, timings []benchmark.Timing) []string {
	out := make([]string, len(variants))
	for i, v := range variants {
		out[i] = noValue
		for _, t := range timings {
			if t.Variant == v {
				out[i] = Nanos(t.Nanos)
				break
			}
		}
	}
	return out
}

func groupSections(sections []benchmark.Section) [][]benchmark.Section {
	var groups [][]benchmark.Section
	for _, s := range sections {
		n := len(groups)
		if n > 0 && slices.Equal(groups[n-1][0].Variants, s.Variants) && groups[n-1][0].InputLabel == s.InputLabel {
			groups[n-1] = append(groups[n-1], s)
			continue
		}
		groups = append(groups, []benchmark.Section{s})
	}
	return groups
}
