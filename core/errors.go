// SPDX-License-Identifier: MIT
// Package: geograph/core
//
// errors.go - sentinel errors for graph construction and queries.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Context is attached at the call site with "Method: ...: %w".
//   • Construction errors are returned synchronously and leave no graph behind.
//   • Insertion never returns an error; degenerate requests are clamped.

package core

import "errors"

var (
	// ErrNegativeNodeCount indicates NewGraph was asked for fewer than zero nodes.
	ErrNegativeNodeCount = errors.New("core: node count is negative")

	// ErrBadParallelism indicates an init or edge parallelism below 1.
	ErrBadParallelism = errors.New("core: parallelism must be >= 1")

	// ErrBadPolicy indicates an unknown LockPolicy or RandPolicy value.
	ErrBadPolicy = errors.New("core: unknown policy")

	// ErrNilObserver indicates WithObserver(nil).
	ErrNilObserver = errors.New("core: observer is nil")

	// ErrVertexNotFound indicates a vertex index outside [0, NodeCount()).
	ErrVertexNotFound = errors.New("core: vertex not found")
)
