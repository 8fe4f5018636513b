// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All public methods return these sentinels (possibly wrapped with %w context);
// tests MUST check them via errors.Is. Unchecked accessors (Load/Store/Claim)
// document their preconditions instead of returning errors.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a negative dimension is requested.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside [0,n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDiagonal indicates an attempt to write a non-zero diagonal cell.
	ErrDiagonal = errors.New("matrix: diagonal cell must stay zero")

	// ErrInvalidWeight indicates a negative, NaN or ±Inf edge weight.
	ErrInvalidWeight = errors.New("matrix: invalid edge weight")
)
