package sorting

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Insertion returns a sorted copy of s using insertion sort.
func Insertion[T constraints.Ordered](s []T) []T {
	out := slices.Clone(s)
	InsertionInPlace(out)

	return out
}

// InsertionInPlace sorts s with insertion sort: s[:i] is kept sorted and
// s[i] is shifted left into place.
func InsertionInPlace[T constraints.Ordered](s []T) {
	for i := 1; i < len(s); i++ {
		key := s[i]
		j := i
		for j > 0 && s[j-1] > key {
			s[j] = s[j-1]
			j--
		}
		s[j] = key
	}
}
