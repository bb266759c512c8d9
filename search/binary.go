package search

import "golang.org/x/exp/constraints"

// IndexOf returns an index i with sorted[i] == target, or (-1, false) if
// target is absent.
func IndexOf[T constraints.Ordered](target T, sorted []T) (int, bool) {
	lo, hi := 0, len(sorted)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1) // no overflow
		switch {
		case sorted[mid] == target:
			return mid, true
		case sorted[mid] < target:
			lo = mid + 1
		default:
			hi = mid
		}
	}

	return -1, false
}

// Search returns the matching element, or the zero value and false if
// target is absent.
func Search[T constraints.Ordered](target T, sorted []T) (T, bool) {
	i, ok := IndexOf(target, sorted)
	if !ok {
		var zero T
		return zero, false
	}

	return sorted[i], true
}
