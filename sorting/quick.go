package sorting

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Quick returns a sorted copy of s using quicksort.
func Quick[T constraints.Ordered](s []T) []T {
	out := slices.Clone(s)
	QuickInPlace(out)

	return out
}

// QuickInPlace sorts s with quicksort (Lomuto partition, last element as
// pivot). It recurses into the smaller side and loops on the larger, so the
// stack stays O(log n) even when the input is already sorted.
func QuickInPlace[T constraints.Ordered](s []T) {
	lo, hi := 0, len(s)-1
	for lo < hi {
		p := partition(s, lo, hi)
		if p-lo < hi-p {
			QuickInPlace(s[lo:p])
			lo = p + 1
		} else {
			QuickInPlace(s[p+1 : hi+1])
			hi = p - 1
		}
	}
}

// partition places s[hi] at its final index within s[lo:hi+1] and returns it.
func partition[T constraints.Ordered](s []T, lo, hi int) int {
	pivot := s[hi]
	j := lo
	for i := lo; i < hi; i++ {
		if s[i] <= pivot {
			s[i], s[j] = s[j], s[i]
			j++
		}
	}
	s[j], s[hi] = s[hi], s[j]

	return j
}
