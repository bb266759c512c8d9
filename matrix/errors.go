// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Public indexers return these sentinels wrapped with call-site context;
// callers match them with errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested table dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
