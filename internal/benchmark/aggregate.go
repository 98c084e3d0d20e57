package benchmark

// Average folds the results of one category into its average row. Means are
// truncated to whole nanoseconds for display; the fastest variant is chosen on
// the exact means, which with equal trial counts is the same as on the sums.
func Average(category string, variants []string, results []Result, preference []string) Aggregate {
	sums := make([]int64, len(variants))
	for _, res := range results {
		for _, t := range res.Timings {
			for i, name := range variants {
				if name == t.Variant {
					sums[i] += t.Nanos
					break
				}
			}
		}
	}

	agg := Aggregate{
		Category: category,
		Trials:   len(results),
		Means:    make([]Timing, len(variants)),
	}
	for i, name := range variants {
		var mean int64
		if len(results) > 0 {
			mean = sums[i] / int64(len(results))
		}
		agg.Means[i] = Timing{Variant: name, Nanos: mean}
	}
	agg.Fastest = fastest(variants, sums, preference)
	return agg
}
