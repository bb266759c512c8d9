// Package search provides binary search over sorted slices.
//
// The input must be sorted in ascending order (see package sorting).
// Both functions run in O(log n) time and O(1) memory. When the target
// occurs more than once, some matching position is reported, not
// necessarily the first; use a linear scan when the first occurrence
// matters.
package search
