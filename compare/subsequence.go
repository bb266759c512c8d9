package compare

import (
	"slices"
	"strconv"

	"github.com/katalvlaran/lvlalgo/matrix"
)

// Subsequence — Longest Common Subsequence
//
// Description:
//
//	Holds two sequences and their LCS table so the length and one longest
//	common subsequence can be asked for repeatedly without rebuilding it.
//
// Algorithm Outline:
//  1. Let n = len(left), m = len(right). Allocate (n+1)x(m+1) table T of zeros.
//  2. For i = 1..n, j = 1..m:
//     left[i-1] == right[j-1] → T[i][j] = T[i-1][j-1] + 1
//     otherwise               → T[i][j] = max(T[i][j-1], T[i-1][j])
//  3. length = T[n][m].
//  4. Reconstruct backtracks from (n,m): equal elements are emitted and both
//     indices step back; otherwise step toward the larger of T[i-1][j] and
//     T[i][j-1], preferring i-1 on a tie.
//
// Complexity:
//
//	Time   = O(n·m) to build, O(n+m) per Reconstruct
//	Memory = O(n·m)
type Subsequence[T comparable] struct {
	left, right []T
	table       *matrix.Table
	length      int
}

// NewSubsequence builds the LCS table for left and right.
// Both slices are copied; later changes by the caller have no effect.
// Either input may be empty.
func NewSubsequence[T comparable](left, right []T) *Subsequence[T] {
	s := &Subsequence[T]{
		left:  slices.Clone(left),
		right: slices.Clone(right),
	}
	n, m := len(s.left), len(s.right)
	s.table = newGrid(n, m)

	prev := row(s.table, 0)
	for i := 1; i <= n; i++ {
		curr := row(s.table, i)
		for j := 1; j <= m; j++ {
			if s.left[i-1] == s.right[j-1] {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = max(curr[j-1], prev[j])
			}
		}
		prev = curr
	}
	s.length = cell(s.table, n, m)

	return s
}

// Length returns the length of the longest common subsequence.
func (s *Subsequence[T]) Length() int {
	return s.length
}

// Matches returns the aligned index pairs of the subsequence produced by
// Reconstruct, in ascending order. It returns nil when Length is 0.
func (s *Subsequence[T]) Matches() []Match {
	if s.length == 0 {
		return nil
	}

	out := make([]Match, 0, s.length)
	i, j := len(s.left), len(s.right)
	for i > 0 && j > 0 {
		if s.left[i-1] == s.right[j-1] {
			out = append(out, Match{I: i - 1, J: j - 1})
			i--
			j--
			continue
		}
		// tie goes up
		if cell(s.table, i-1, j) >= cell(s.table, i, j-1) {
			i--
		} else {
			j--
		}
	}
	slices.Reverse(out)

	return out
}

// Reconstruct returns one longest common subsequence, or (nil, false) when
// the inputs share no element. Every call returns a fresh slice with the
// same contents.
func (s *Subsequence[T]) Reconstruct() ([]T, bool) {
	matches := s.Matches()
	if len(matches) == 0 {
		return nil, false
	}

	out := make([]T, len(matches))
	for k, mt := range matches {
		out[k] = s.left[mt.I]
	}

	return out, true
}

// String prints the subsequence length.
func (s *Subsequence[T]) String() string {
	return strconv.Itoa(s.length)
}
