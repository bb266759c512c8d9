package sorting

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Bubble returns a sorted copy of s using bubble sort.
func Bubble[T constraints.Ordered](s []T) []T {
	out := slices.Clone(s)
	BubbleInPlace(out)

	return out
}

// BubbleInPlace sorts s with bubble sort. Each pass carries the largest
// remaining element to the end; it stops after a pass with no exchange.
func BubbleInPlace[T constraints.Ordered](s []T) {
	for end := len(s) - 1; end > 0; end-- {
		exchanged := false
		for i := 0; i < end; i++ {
			if s[i] > s[i+1] {
				s[i], s[i+1] = s[i+1], s[i]
				exchanged = true
			}
		}
		if !exchanged {
			return
		}
	}
}
