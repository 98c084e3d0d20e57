package report

import (
	"fmt"
	"io"
	"strings"
)

const ruleWidth = 70

// Rule writes a horizontal separator line.
func Rule(w io.Writer) {
	fmt.Fprintln(w, ruleStyle.Render(strings.Repeat("-", ruleWidth)))
}

// Banner writes title framed by separator lines.
func Banner(w io.Writer, title string) {
	Rule(w)
	fmt.Fprintln(w, titleStyle.Render(title))
	Rule(w)
}

// Columns writes cells left-aligned in fixed-width columns. A cell wider than
// its column is kept whole and followed by a single space.
func Columns(w io.Writer, widths []int, cells ...string) {
	var b strings.Builder
	for i, c := range cells {
		b.WriteString(c)
		if i >= len(widths) || i == len(cells)-1 {
			continue
		}
		pad := widths[i] - len([]rune(c))
		if pad < 1 {
			pad = 1
		}
		b.WriteString(strings.Repeat(" ", pad))
	}
	fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
}

// Title writes a single styled heading line.
func Title(w io.Writer, title string) {
	fmt.Fprintln(w, titleStyle.Render(title))
}
