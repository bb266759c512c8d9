// SPDX-License-Identifier: MIT

// Package matrix - Table storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At and Row return errors instead of panicking.
//   - Expose no-copy row views so DP fills can run without per-cell bounds wrapping.
//
// Complexity quicksheet:
//   - NewTable: O(r*c) zero-init; At/Row: O(1); String: O(r*c).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// tableErrorf wraps a sentinel with the Table method name and coordinates.
func tableErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Table.%s(%d,%d): %w", method, row, col, err)
}

// Table is a row-major grid of ints.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c (offset = i*c + j).
type Table struct {
	r, c int   // row and column counts
	data []int // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Table)(nil)

// NewTable creates an r×c zero table.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat zero-filled backing slice.
// Returns ErrInvalidDimensions on a bad shape.
// Complexity: O(r*c) time and memory.
func NewTable(rows, cols int) (*Table, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrInvalidDimensions, rows, cols)
	}

	return &Table{r: rows, c: cols, data: make([]int, rows*cols)}, nil
}

// Rows returns the row count.
func (t *Table) Rows() int { return t.r }

// Cols returns the column count.
func (t *Table) Cols() int { return t.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (t *Table) indexOf(row, col int) (int, error) {
	if row < 0 || row >= t.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= t.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*t.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (t *Table) At(row, col int) (int, error) {
	off, err := t.indexOf(row, col)
	if err != nil {
		return 0, tableErrorf(ctxAt, row, col, err)
	}

	return t.data[off], nil
}

// Row returns row i as a slice aliasing the table storage.
// Writes through the slice mutate the table; the slice length is Cols().
// Complexity: O(1), no allocation.
func (t *Table) Row(i int) ([]int, error) {
	if i < 0 || i >= t.r {
		return nil, tableErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	start := i * t.c

	return t.data[start : start+t.c : start+t.c], nil
}

// String renders the table one row per line, e.g. "[0, 1, 1]\n".
// Intended for debugging and test diagnostics, not for hot paths.
func (t *Table) String() string {
	var sb strings.Builder
	for i := 0; i < t.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < t.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.Itoa(t.data[i*t.c+j]))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
