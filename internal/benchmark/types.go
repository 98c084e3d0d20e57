package benchmark

import "time"

// Timing is the elapsed wall-clock time of one variant.
type Timing struct {
	Variant string `json:"variant"`
	Nanos   int64  `json:"ns"`
}

// Result represents one trial: every variant of a family timed once
// against the same input.
type Result struct {
	Case     string   `json:"case"`
	Category string   `json:"category"`
	Input    string   `json:"input"`
	Timings  []Timing `json:"timings"`
	Correct  bool     `json:"correct"`
	Fastest  string   `json:"fastest"`
}

// Aggregate is the per-category average row: the truncated mean time of each
// variant and the variant with the lowest exact mean.
type Aggregate struct {
	Category string   `json:"category"`
	Trials   int      `json:"trials"`
	Means    []Timing `json:"means"`
	Fastest  string   `json:"fastest"`
}

// Section groups the results of one category with their aggregate.
type Section struct {
	Category   string    `json:"category"`
	InputLabel string    `json:"input_label"`
	Variants   []string  `json:"variants"`
	Results    []Result  `json:"results"`
	Average    Aggregate `json:"average"`
}

// Run represents a collection of sections from a single suite execution.
type Run struct {
	ID        string    `json:"id"`
	Suite     string    `json:"suite"`
	Timestamp time.Time `json:"timestamp"`
	Sections  []Section `json:"sections"`
}

// Correct reports whether every trial in the run produced the reference answer.
func (r Run) Correct() bool {
	for _, s := range r.Sections {
		for _, res := range s.Results {
			if !res.Correct {
				return false
			}
		}
	}
	return true
}

// Mean returns the average time recorded for variant in the given category.
func (r Run) Mean(category, variant string) (int64, bool) {
	for _, s := range r.Sections {
		if s.Category != category {
			continue
		}
		for _, m := range s.Average.Means {
			if m.Variant == variant {
				return m.Nanos, true
			}
		}
	}
	return 0, false
}
