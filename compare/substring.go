package compare

import (
	"slices"
	"strconv"

	"github.com/katalvlaran/lvlalgo/matrix"
)

// Substring — Longest Common Substring
//
// Description:
//
//	Holds two sequences and their run-length table so the length and the
//	longest common contiguous run can be asked for repeatedly.
//
// Algorithm Outline:
//  1. Let n = len(left), m = len(right). Allocate (n+1)x(m+1) table T of zeros.
//  2. For i = 1..n, j = 1..m:
//     left[i-1] == right[j-1] → T[i][j] = T[i-1][j-1] + 1
//     otherwise               → T[i][j] = 0
//  3. Track the largest T[i][j] and where it occurs. Only a strictly larger
//     value moves the end, so the first maximum in row-major order wins.
//  4. Reconstruct slices left[end-length : end]; no backtracking is needed.
//
// Complexity:
//
//	Time   = O(n·m) to build, O(length) per Reconstruct
//	Memory = O(n·m)
type Substring[T comparable] struct {
	left, right []T
	table       *matrix.Table
	length      int
	end         Match // (i, j) table coordinate where the best run ends
}

// NewSubstring builds the run-length table for left and right.
// Both slices are copied; either may be empty.
func NewSubstring[T comparable](left, right []T) *Substring[T] {
	s := &Substring[T]{
		left:  slices.Clone(left),
		right: slices.Clone(right),
	}
	n, m := len(s.left), len(s.right)
	s.table = newGrid(n, m)

	prev := row(s.table, 0)
	for i := 1; i <= n; i++ {
		curr := row(s.table, i)
		for j := 1; j <= m; j++ {
			if s.left[i-1] != s.right[j-1] {
				continue // cell stays 0
			}
			curr[j] = prev[j-1] + 1
			if curr[j] > s.length {
				s.length = curr[j]
				s.end = Match{I: i, J: j}
			}
		}
		prev = curr
	}

	return s
}

// Length returns the length of the longest common substring.
func (s *Substring[T]) Length() int {
	return s.length
}

// Span returns where the substring sits in both inputs, or false when
// Length is 0.
func (s *Substring[T]) Span() (Span, bool) {
	if s.length == 0 {
		return Span{}, false
	}

	return Span{
		Left:  s.end.I - s.length,
		Right: s.end.J - s.length,
		Len:   s.length,
	}, true
}

// Reconstruct returns the longest common substring, or (nil, false) when
// the inputs share no element.
func (s *Substring[T]) Reconstruct() ([]T, bool) {
	if s.length == 0 {
		return nil, false
	}

	return slices.Clone(s.left[s.end.I-s.length : s.end.I]), true
}

// String prints the substring length.
func (s *Substring[T]) String() string {
	return strconv.Itoa(s.length)
}
