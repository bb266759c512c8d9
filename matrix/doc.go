// SPDX-License-Identifier: MIT

// Package matrix provides the dense integer tables that back the
// dynamic-programming algorithms in lvlalgo.
//
// 🚀 What is here?
//
//	Table is a row-major grid of non-negative counters stored in one flat
//	slice. The comparators in package compare allocate one Table of shape
//	(len(left)+1) × (len(right)+1) per comparison and keep it for later
//	reconstruction queries.
//
// ✨ Key properties:
//   - cache-friendly layout: offset = i*cols + j
//   - safe public surface: At and Row return ErrOutOfRange instead of panicking
//   - zero-copy row views (Row) for hot DP loops
//   - deterministic String() dump for debugging and tests
//
// Complexity:
//
//   - NewTable: O(r·c) time and memory (zero-filled)
//   - At/Row: O(1)
//   - String: O(r·c)
package matrix
