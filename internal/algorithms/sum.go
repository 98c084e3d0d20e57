package algorithms

// SumRecursive returns xs[0] + SumRecursive(xs[1:]); the empty list sums to 0.
func SumRecursive(xs []int) int {
	if len(xs) == 0 {
		return 0
	}
	return xs[0] + SumRecursive(xs[1:])
}

// SumIterative adds xs with a running accumulator.
func SumIterative(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}

// Range returns the integers 0..n-1 in ascending order.
func Range(n int) []int {
	if n <= 0 {
		return []int{}
	}
	xs := make([]int, n)
	for i := range xs {
		xs[i] = i
	}
	return xs
}
