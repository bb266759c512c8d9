package sorting

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Merge returns a sorted copy of s using top-down merge sort.
func Merge[T constraints.Ordered](s []T) []T {
	out := slices.Clone(s)
	MergeInPlace(out)

	return out
}

// MergeInPlace sorts s with merge sort. A single scratch buffer of len(s)
// is allocated and shared by every level of recursion.
func MergeInPlace[T constraints.Ordered](s []T) {
	if len(s) < 2 {
		return
	}
	scratch := make([]T, len(s))
	mergeSort(s, scratch)
}

// mergeSort sorts s using scratch (same length) as merge space.
func mergeSort[T constraints.Ordered](s, scratch []T) {
	if len(s) < 2 {
		return
	}
	mid := len(s) / 2
	mergeSort(s[:mid], scratch[:mid])
	mergeSort(s[mid:], scratch[mid:])

	// Halves already in order: nothing to merge.
	if s[mid-1] <= s[mid] {
		return
	}
	copy(scratch, s)
	left, right := scratch[:mid], scratch[mid:]
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			s[k] = left[i]
			i++
		} else {
			s[k] = right[j]
			j++
		}
		k++
	}
	k += copy(s[k:], left[i:])
	copy(s[k:], right[j:])
}
