package benchmark

import "fmt"

// Comparison is the change in one variant's mean between two runs.
type Comparison struct {
	Category string
	Variant  string
	PrevNs   int64
	CurrNs   int64
	DiffPct  float64 // Percentage change, negative is faster
}

// Compare runs comparison between two runs of the same suite.
// It returns one entry per category/variant present in both runs, in the
// order they appear in curr.
func Compare(prev, curr Run) []Comparison {
	var comparisons []Comparison
	for _, section := range curr.Sections {
		for _, m := range section.Average.Means {
			p, ok := prev.Mean(section.Category, m.Variant)
			if !ok {
				continue
			}
			comp := Comparison{
				Category: section.Category,
				Variant:  m.Variant,
				PrevNs:   p,
				CurrNs:   m.Nanos,
			}
			if p > 0 {
				comp.DiffPct = float64(m.Nanos-p) / float64(p) * 100
			}
			comparisons = append(comparisons, comp)
		}
	}
	return comparisons
}

// Status classifies the change against a percentage threshold.
func (c Comparison) Status(threshold float64) string {
	switch {
	case c.DiffPct > threshold:
		return "SLOWER"
	case c.DiffPct < -threshold:
		return "FASTER"
	default:
		return "OK"
	}
}

func (c Comparison) String() string {
	return fmt.Sprintf("%s/%s: %+.2f%% ns", c.Category, c.Variant, c.DiffPct)
}
