// Package sorting provides the four classic comparison sorts: bubble,
// insertion, merge and quick, over any ordered element type.
//
// What
//
//   - Every algorithm comes in two forms:
//   - Bubble(s), Insertion(s), Merge(s), Quick(s) return a new sorted slice
//     and leave s untouched.
//   - BubbleInPlace(s), ... sort s itself.
//   - Sort / SortInPlace dispatch on an Algorithm value; ParseAlgorithm maps
//     a name to one.
//   - Timed sorts in place and reports the elapsed wall-clock time.
//
// Ordering
//
//	All four produce the same ascending order for the same input. None of
//	them promises stability; for the ordered types accepted here equal
//	elements are indistinguishable anyway. Slices holding NaN have no total
//	order and their result is unspecified.
//
// Complexity (n = len(s))
//
//   - Bubble:    O(n²) time, O(1) extra; O(n) on already sorted input.
//   - Insertion: O(n²) time, O(1) extra; O(n) on already sorted input.
//   - Merge:     O(n log n) time, O(n) extra.
//   - Quick:     O(n log n) expected, O(n²) worst; O(log n) stack.
package sorting
