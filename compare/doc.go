// Package compare finds the Longest Common Subsequence (LCS) and the Longest
// Common Substring of two sequences, keeping the dynamic-programming table so
// the matching elements can be reconstructed after the fact.
//
// 🚀 What is here?
//
//	Subsequence[T] — LCS: longest run of elements present in both inputs in the
//	                 same relative order, not necessarily contiguous.
//	Substring[T]   — longest contiguous run present identically in both inputs.
//
//	Both are generic over any comparable element type and are built once:
//	the constructor fills the (n+1)×(m+1) table, records the best length and
//	returns a read-only value answering Length() in O(1) and Reconstruct()
//	in O(n+m) without recomputation.
//
// ✨ Key features:
//   - full-matrix mode for comparators: O(N·M) memory, supports reconstruction
//   - rolling mode (SubsequenceLength / SubstringLength): O(min(N,M)) memory, length only
//   - deterministic tie-breaks (see below) so output is reproducible
//   - text helpers that compare by code point or by grapheme cluster, never by byte,
//     with optional Unicode normalization
//
// Tie-breaks:
//
//	Subsequence.Reconstruct walks back from (n, m). When the two elements
//	differ it moves toward the larger neighbour; on a tie it moves UP
//	(drops an element of left) rather than LEFT.
//	Substring keeps the FIRST maximum met in row-major order; later runs of
//	equal length do not replace it.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlalgo/compare"
//
//	lcs := compare.NewSubsequence([]rune("leighxxxft"), []rune("right"))
//	lcs.Length()               // 4
//	got, ok := lcs.Reconstruct() // []rune("ight"), true
//
//	sub, err := compare.NewTextSubstring("sunny today", "today is cold",
//	    compare.WithUnit(compare.Graphemes))
//	text, ok := sub.Text()      // "today", true
//
// Memory modes:
//
//	Storing the whole table is what makes reconstruction possible. Callers
//	that only need the length should use the rolling functions, which keep
//	two rows and cannot backtrack, or pass TwoRows to MeasureSubsequence and
//	MeasureSubstring.
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(min(N,M)) (TwoRows)
//
// Concurrency:
//
//	Construction is synchronous. A built comparator owns copies of its inputs
//	and its table and is never mutated, so one instance may be read from many
//	goroutines and independent instances need no coordination.
package compare
