package benchmark

// Variant is one strategy for solving a family's problem.
type Variant[In, Out any] struct {
	Name string
	Fn   func(In) Out
}

// Trial is one input fed to every variant of a family, paired with the
// reference answer computed independently of the variants.
type Trial[In, Out any] struct {
	Case  string
	Input string // display form of the input (size, target, ...)
	Value In
	Want  Out
}

// Family groups the variants that solve the same problem.
// Preference orders the variants for breaking exact ties; variants missing
// from it rank after the listed ones in declaration order.
type Family[In any, Out comparable] struct {
	Category   string
	InputLabel string
	Variants   []Variant[In, Out]
	Preference []string
}

// Names returns the variant names in declaration order.
func (f Family[In, Out]) Names() []string {
	names := make([]string, len(f.Variants))
	for i, v := range f.Variants {
		names[i] = v.Name
	}
	return names
}

// Observer receives every result as soon as it is produced.
type Observer interface {
	Observe(res Result)
}

// Runner drives the timer over every variant of a family for each trial.
// Note: Runner is not thread-safe and should not be used concurrently
// from multiple goroutines.
type Runner struct {
	timer     Timer
	observers []Observer
}

// NewRunner creates a runner timing calls with timer. A nil timer falls back
// to the wall clock.
func NewRunner(timer Timer, observers ...Observer) *Runner {
	if timer == nil {
		timer = NewWallTimer()
	}
	return &Runner{timer: timer, observers: observers}
}

// RunFamily runs every trial against every variant of f, in order, and
// returns the category's results followed by its average row.
func RunFamily[In any, Out comparable](r *Runner, f Family[In, Out], trials []Trial[In, Out]) Section {
	section := Section{
		Category:   f.Category,
		InputLabel: f.InputLabel,
		Variants:   f.Names(),
		Results:    make([]Result, 0, len(trials)),
	}

	for _, trial := range trials {
		res := runTrial(r, f, trial)
		for _, o := range r.observers {
			o.Observe(res)
		}
		section.Results = append(section.Results, res)
	}

	section.Average = Average(f.Category, section.Variants, section.Results, f.Preference)
	return section
}

func runTrial[In any, Out comparable](r *Runner, f Family[In, Out], trial Trial[In, Out]) Result {
	res := Result{
		Case:     trial.Case,
		Category: f.Category,
		Input:    trial.Input,
		Timings:  make([]Timing, 0, len(f.Variants)),
		Correct:  true,
	}

	for _, v := range f.Variants {
		input := trial.Value
		fn := v.Fn
		got, ns := Measure(r.timer, func() Out { return fn(input) })
		if got != trial.Want {
			res.Correct = false
		}
		res.Timings = append(res.Timings, Timing{Variant: v.Name, Nanos: ns})
	}

	values := make([]int64, len(res.Timings))
	for i, t := range res.Timings {
		values[i] = t.Nanos
	}
	res.Fastest = fastest(f.Names(), values, f.Preference)
	return res
}

// fastest returns the name with the strictly smallest value. Equal minima go
// to the name listed first in preference.
func fastest(names []string, values []int64, preference []string) string {
	if len(names) == 0 {
		return ""
	}

	rank := func(i int) int {
		for p, name := range preference {
			if name == names[i] {
				return p
			}
		}
		return len(preference) + i
	}

	best := 0
	for i := 1; i < len(names); i++ {
		switch {
		case values[i] < values[best]:
			best = i
		case values[i] == values[best] && rank(i) < rank(best):
			best = i
		}
	}
	return names[best]
}
