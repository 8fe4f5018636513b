// SPDX-License-Identifier: MIT

// Package geom holds the geometric side of a random geometric graph: points in
// the unit square, the squared-distance metric between them, and a write-once
// PointSet generated by a bounded pool of workers.
//
// A PointSet is built exactly once by Generate and is immutable afterwards, so
// it can be read from any number of goroutines without synchronization.
//
// Randomness:
//
//   - Indices are split into fixed chunks of ChunkSize points.
//   - Every chunk draws from its own *rand.Rand seeded with DeriveSeed(seed, chunk).
//   - Each index is written by exactly one worker; slots never alias.
//
// Because the chunking is independent of the worker count, the same seed yields
// the same PointSet for every parallelism degree.
package geom
