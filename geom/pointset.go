// SPDX-License-Identifier: MIT
// Package: geograph/geom
//
// pointset.go - write-once PointSet and its parallel generator.
//
// Contract:
//   - Generate(n, seed, p) returns exactly n points; n == 0 is a valid empty set.
//   - Each slot is written once, by one worker, before Generate returns.
//   - After Generate returns the set is never mutated.
//
// Complexity:
//   - Time: O(n) draws spread over at most p workers.
//   - Space: O(n) points.

package geom

import (
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"
)

// ChunkSize is the number of consecutive indices served by one random stream.
const ChunkSize = 256

// PointSet is a fixed-size, ordered, read-only sequence of points.
type PointSet struct {
	pts []Point
}

// Generate scatters n points uniformly over [0,1)² using up to parallelism
// concurrent workers.
//
// Steps:
//  1. Validate n ≥ 0 and parallelism ≥ 1.
//  2. Allocate all n slots up front.
//  3. Dispatch one task per chunk of ChunkSize indices on a bounded errgroup.
//  4. Each task seeds its own *rand.Rand and fills its slots, X then Y.
func Generate(n int, seed int64, parallelism int) (*PointSet, error) {
	if n < 0 {
		return nil, fmt.Errorf("Generate: n=%d: %w", n, ErrNegativeSize)
	}
	if parallelism < 1 {
		return nil, fmt.Errorf("Generate: parallelism=%d: %w", parallelism, ErrBadParallelism)
	}

	pts := make([]Point, n)
	chunks := (n + ChunkSize - 1) / ChunkSize

	var eg errgroup.Group
	eg.SetLimit(parallelism)
	for c := 0; c < chunks; c++ {
		lo := c * ChunkSize
		hi := lo + ChunkSize
		if hi > n {
			hi = n
		}
		stream := uint64(c)
		eg.Go(func() error {
			rng := rand.New(rand.NewSource(DeriveSeed(seed, stream)))
			for i := lo; i < hi; i++ {
				pts[i] = Point{X: rng.Float64(), Y: rng.Float64()}
			}
			return nil
		})
	}
	// Workers never fail; Wait only joins them.
	_ = eg.Wait()

	return &PointSet{pts: pts}, nil
}

// FromPoints builds a PointSet from an explicit slice. The slice is copied.
// Useful for fixtures where exact coordinates matter.
func FromPoints(pts []Point) *PointSet {
	cp := make([]Point, len(pts))
	copy(cp, pts)

	return &PointSet{pts: cp}
}

// Len returns the number of points.
func (s *PointSet) Len() int {
	return len(s.pts)
}

// At returns the point at index i or ErrOutOfRange.
// Complexity: O(1).
func (s *PointSet) At(i int) (Point, error) {
	if i < 0 || i >= len(s.pts) {
		return Point{}, fmt.Errorf("PointSet.At(%d): %w", i, ErrOutOfRange)
	}

	return s.pts[i], nil
}

// Get returns the point at index i without bounds reporting.
// Callers own the 0 ≤ i < Len() precondition; hot loops use this.
func (s *PointSet) Get(i int) Point {
	return s.pts[i]
}

// QDistance returns the squared distance between points i and j.
// Same precondition as Get.
func (s *PointSet) QDistance(i, j int) float64 {
	return s.pts[i].QDistance(s.pts[j])
}

// Points returns a copy of all points in index order.
// Complexity: O(n).
func (s *PointSet) Points() []Point {
	out := make([]Point, len(s.pts))
	copy(out, s.pts)

	return out
}
