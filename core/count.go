// SPDX-License-Identifier: MIT
// Package: geograph/core
//
// count.go - parallel edge counter.
//
// Contract:
//   • Returns the number of cells > 0.0 in the strict lower triangle, i.e.
//     every unordered edge once.
//   • Rows are scanned read-only by at most EdgeParallelism workers; each
//     worker adds its rows' counts to one shared atomic accumulator.
//   • Safe to call while InsertRandomEdges runs; the result is then advisory.
//
// Complexity: O(n²/2) cell reads.

package core

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// countRowsPerTask is how many consecutive rows one counting task scans.
const countRowsPerTask = 64

// EdgeCount returns the number of edges currently present.
func (g *Graph) EdgeCount() int {
	var (
		acc atomic.Int64
		eg  errgroup.Group
	)
	eg.SetLimit(g.cfg.edgeParallelism)
	for lo := 0; lo < g.n; lo += countRowsPerTask {
		hi := lo + countRowsPerTask
		if hi > g.n {
			hi = g.n
		}
		eg.Go(func() error {
			for i := lo; i < hi; i++ {
				if c := g.adj.CountLower(i); c > 0 {
					acc.Add(int64(c))
				}
			}
			return nil
		})
	}
	_ = eg.Wait() // tasks never fail

	return int(acc.Load())
}
