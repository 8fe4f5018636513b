// SPDX-License-Identifier: MIT
// Package: geograph/geom
//
// errors.go - sentinel errors for point generation and lookups.
// Callers MUST branch with errors.Is; context is attached with %w.

package geom

import "errors"

var (
	// ErrNegativeSize indicates a negative point count was requested.
	ErrNegativeSize = errors.New("geom: point count is negative")

	// ErrBadParallelism indicates a worker count below 1.
	ErrBadParallelism = errors.New("geom: parallelism must be >= 1")

	// ErrOutOfRange indicates an index outside [0, Len()).
	ErrOutOfRange = errors.New("geom: index out of range")
)
