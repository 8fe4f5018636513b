// SPDX-License-Identifier: MIT

// Package matrix provides the adjacency store of a random geometric graph: a
// square, row-major matrix of non-negative float64 edge weights whose cells are
// read and written atomically.
//
// Cell semantics:
//
//   - 0.0 means "no edge".
//   - A positive value is the Euclidean distance between the two endpoints.
//   - The diagonal is always 0.0; self-loops are rejected.
//   - At rest the matrix is symmetric: At(i,j) == At(j,i).
//
// Every cell is stored as the IEEE-754 bit pattern of its value in a uint64 and
// accessed through sync/atomic, so a reader racing with a writer observes either
// the old or the new value of a cell, never a torn one. Multi-cell sequences
// (check-then-write, mirror writes) are NOT atomic; callers that need them
// linearizable serialize them externally (see core.Locked).
//
// Memory: O(n²) cells of 8 bytes. Beyond a few thousand nodes the matrix and
// the O(n²) scans dominate.
package matrix
