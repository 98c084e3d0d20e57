// Package algorithms holds the textbook algorithm variants timed by the
// benchmark suites: string reversal and list summation in recursive and
// iterative form, and linear versus binary search.
//
// Recursive variants recurse once per element, so callers bound input sizes
// up front. Nothing here guards against deep recursion.
package algorithms
