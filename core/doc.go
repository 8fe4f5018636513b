// SPDX-License-Identifier: MIT

// Package core implements a concurrent random geometric graph.
//
// A Graph scatters N points uniformly in the unit square (package geom) and
// keeps an N×N adjacency matrix of edge weights (package matrix). Its single
// mutator, InsertRandomEdges, fans a requested number of insertion attempts out
// over a bounded worker pool; every attempt samples vertex pairs until one is
// accepted with probability (2 − d)²/4, where d is the SQUARED distance of the
// pair, and commits the edge with weight √d.
//
// Configuration Options (GraphOption):
//
//	– WithSeed(seed)              master seed, default DefaultSeed (42)
//	– WithInitParallelism(p1)     workers generating points, default 4
//	– WithEdgeParallelism(p2)     workers inserting and counting, default 2·p1
//	– WithLockPolicy(Locked|Unlocked)
//	– WithRandPolicy(PerWorker|Shared)
//	– WithObserver(o), WithHooks(h)
//
// Thread-safety policies:
//
//	Locked   - check-and-commit runs under one graph-wide mutex. Inserts are
//	           linearizable; no distance is computed on a stale read.
//	Unlocked - no mutex. Two workers may evaluate the same pair at the same
//	           time; the commit claims the cell by compare-and-swap, so the
//	           loser's work is wasted but nothing is written twice or lost.
//
// Random-source policies:
//
//	PerWorker - every batch of attempts owns a *rand.Rand seeded from the
//	            master seed, the call epoch and the batch index. Reproducible
//	            with one worker; interleaving varies with more.
//	Shared    - one *rand.Rand for the whole graph, serialized by a mutex.
//
// Counting:
//
//	EdgeCount scans the strict lower triangle in parallel and sums into an
//	atomic accumulator. While insertion is running it is an advisory snapshot.
//
// Degenerate inputs are not errors: N < 2 has zero possible edges and any
// request returns 0 immediately; requests above N·(N−1)/2 are clamped.
//
// Limitations: insertion cannot be cancelled; a call runs until its attempts
// are exhausted or the graph is complete.
package core
