package compare

import "fmt"

// MeasureSubsequence returns the LCS length of left and right using mode.
// FullMatrix builds a Subsequence; TwoRows calls SubsequenceLength.
// Both modes give the same answer. An unknown mode yields ErrOptionViolation.
func MeasureSubsequence[T comparable](left, right []T, mode MemoryMode) (int, error) {
	switch mode {
	case FullMatrix:
		return NewSubsequence(left, right).Length(), nil
	case TwoRows:
		return SubsequenceLength(left, right), nil
	default:
		return 0, fmt.Errorf("%w: memory mode %d", ErrOptionViolation, int(mode))
	}
}

// MeasureSubstring is MeasureSubsequence for the longest common substring.
func MeasureSubstring[T comparable](left, right []T, mode MemoryMode) (int, error) {
	switch mode {
	case FullMatrix:
		return NewSubstring(left, right).Length(), nil
	case TwoRows:
		return SubstringLength(left, right), nil
	default:
		return 0, fmt.Errorf("%w: memory mode %d", ErrOptionViolation, int(mode))
	}
}

// SubsequenceLength returns the LCS length of left and right in TwoRows mode:
// two rows of min(len(left), len(right))+1 cells, no reconstruction.
// The result always equals NewSubsequence(left, right).Length().
//
// Complexity: O(n·m) time, O(min(n,m)) memory.
func SubsequenceLength[T comparable](left, right []T) int {
	a, b := shorterLast(left, right)
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = max(curr[j-1], prev[j])
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// SubstringLength returns the longest common substring length of left and
// right in TwoRows mode. The result always equals
// NewSubstring(left, right).Length().
//
// Complexity: O(n·m) time, O(min(n,m)) memory.
func SubstringLength[T comparable](left, right []T) int {
	a, b := shorterLast(left, right)
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	best := 0
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] != b[j-1] {
				curr[j] = 0 // reused row: clear stale value
				continue
			}
			curr[j] = prev[j-1] + 1
			best = max(best, curr[j])
		}
		prev, curr = curr, prev
	}

	return best
}

// shorterLast orders the inputs so the second is the shorter one; both
// lengths are symmetric in their arguments.
func shorterLast[T comparable](left, right []T) (long, short []T) {
	if len(left) < len(right) {
		return right, left
	}

	return left, right
}
