package algorithms

import "cmp"

// NotFound is returned by every search variant when the target is absent.
const NotFound = -1

// LinearSearch scans xs from the front and returns the first index holding target.
func LinearSearch[T comparable](xs []T, target T) int {
	for i, v := range xs {
		if v == target {
			return i
		}
	}
	return NotFound
}

// BinarySearchIterative searches the ascending slice xs over the closed
// interval [lo, hi], shrinking it around mid = (lo+hi)/2.
func BinarySearchIterative[T cmp.Ordered](xs []T, target T) int {
	lo, hi := 0, len(xs)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		switch {
		case xs[mid] == target:
			return mid
		case xs[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return NotFound
}

// BinarySearchRecursive is BinarySearchIterative restated as tail recursion.
func BinarySearchRecursive[T cmp.Ordered](xs []T, target T) int {
	return binarySearch(xs, target, 0, len(xs)-1)
}

func binarySearch[T cmp.Ordered](xs []T, target T, lo, hi int) int {
	if lo > hi {
		return NotFound
	}
	mid := (lo + hi) / 2
	if xs[mid] == target {
		return mid
	}
	if xs[mid] < target {
		return binarySearch(xs, target, mid+1, hi)
	}
	return binarySearch(xs, target, lo, mid-1)
}
