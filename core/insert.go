// SPDX-License-Identifier: MIT
// Package: geograph/core
//
// insert.go - edge inserter and insertion orchestrator.
//
// Single attempt (insertOne), repeated until one edge is committed:
//  1. If the graph already holds MaxEdges edges, stop with 0.
//  2. Draw i, j uniformly in [0,N); i == j is discarded without counting.
//  3. If {i,j} is already present, discard.
//  4. d = squared distance; prob = (2 − d)² / 4.
//  5. Draw u in [0,1); u ≥ prob is discarded.
//  6. Commit √d into both cells and report 1.
// Under Locked, steps 3–6 run under commitMu. Under Unlocked they run
// lock-free and step 6 claims the lower-triangle cell by CAS; a lost CAS is
// handled as step 3.
//
// The probability deliberately uses the squared distance in a formula whose
// natural argument is the plain distance in [0,2]; the resulting distribution
// is part of the observable output and must not change.

package core

import (
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// batchesPerWorker controls progress granularity: a call is cut into about
// this many batches per edge worker.
const batchesPerWorker = 4

// acceptance returns the probability of accepting a pair at squared distance d.
func acceptance(d float64) float64 {
	return (2.0 - d) * (2.0 - d) / 4.0
}

// insertOne retries random pairs until it commits one edge or the graph is full.
// It returns the number of edges committed (0 or 1).
func (g *Graph) insertOne(rng source, policy LockPolicy) int {
	limit := int64(g.maxEdges)
	for {
		if g.committed.Load() >= limit {
			return 0
		}
		i, j := rng.Intn(g.n), rng.Intn(g.n)
		if i == j {
			continue
		}

		var ok bool
		if policy == Locked {
			g.commitMu.Lock()
			ok = g.tryCommit(rng, i, j)
			g.commitMu.Unlock()
		} else {
			ok = g.tryCommit(rng, i, j)
		}
		if ok {
			g.committed.Add(1)
			return 1
		}
	}
}

// tryCommit runs steps 3–6 for the pair {i,j}, i != j.
// The lower-triangle cell (hi,lo) is the one that decides ownership.
func (g *Graph) tryCommit(rng source, i, j int) bool {
	hi, lo := i, j
	if hi < lo {
		hi, lo = lo, hi
	}
	if g.adj.Load(hi, lo) > 0.0 {
		return false
	}
	d := g.points.QDistance(i, j)
	if !(rng.Float64() < acceptance(d)) {
		return false
	}
	w := math.Sqrt(d)
	if !g.adj.Claim(hi, lo, w) {
		return false // another worker committed {i,j} first
	}
	g.adj.Store(lo, hi, w)

	return true
}

// InsertRandomEdges attempts to add count random edges and returns how many
// were actually added.
//
// Steps:
//  1. Clamp count into [0, MaxEdges]; resolve the lock policy.
//  2. Count present edges (EdgeCount) and fire InsertBegin.
//  3. Cut the attempts into batches and run them on at most EdgeParallelism
//     workers. Each batch owns its random source (see RandPolicy), sums its
//     commits, adds them to the running total and fires InsertProgress.
//  4. Fire InsertEnd with the elapsed time and totals.
//
// Guarantees:
//   • The result never exceeds MaxEdges − (edges present before the call).
//   • Under Locked, InsertEnd.Total equals EdgeCount() once the call returns
//     (assuming no concurrent caller).
//   • N < 2 returns 0 immediately after the begin/end notifications.
//
// The call cannot be cancelled.
func (g *Graph) InsertRandomEdges(count int, opts ...InsertOption) int {
	ic := insertConfig{policy: g.cfg.lockPolicy}
	for _, opt := range opts {
		opt(&ic)
	}
	if count < 0 {
		count = 0
	}
	if count > g.maxEdges {
		count = g.maxEdges
	}

	begin := time.Now()
	base := g.EdgeCount()
	runID := uuid.New()
	epoch := g.epoch.Add(1)
	g.notify.emit(func(o Observer) {
		o.InsertBegin(InsertEvent{
			RunID: runID, Requested: count, Policy: ic.policy,
			Rand: g.cfg.randPolicy, Begin: begin, Total: base,
		})
	})

	var (
		progressMu sync.Mutex
		total      = int64(base)
		inserted   int64
	)
	batches := planBatches(count, g.cfg.edgeParallelism)
	var eg errgroup.Group
	eg.SetLimit(g.cfg.edgeParallelism)
	for b, size := range batches {
		eg.Go(func() error {
			rng := g.batchSource(epoch, b)
			delta := 0
			for k := 0; k < size; k++ {
				if g.committed.Load() >= int64(g.maxEdges) {
					break
				}
				delta += g.insertOne(rng, ic.policy)
			}
			// Advance and publish under one lock so Total is seen in order.
			progressMu.Lock()
			defer progressMu.Unlock()
			inserted += int64(delta)
			total += int64(delta)
			ev := ProgressEvent{RunID: runID, Batch: b, Delta: delta, Total: int(total)}
			g.notify.emit(func(o Observer) { o.InsertProgress(ev) })
			return nil
		})
	}
	_ = eg.Wait() // batches never fail

	elapsed := time.Since(begin)
	g.notify.emit(func(o Observer) {
		o.InsertEnd(InsertEvent{
			RunID: runID, Requested: count, Policy: ic.policy, Rand: g.cfg.randPolicy,
			Begin: begin, Elapsed: elapsed, Inserted: int(inserted), Total: int(total),
		})
	})

	return int(inserted)
}

// planBatches splits count attempts into at most workers·batchesPerWorker
// batches whose sizes differ by at most one.
func planBatches(count, workers int) []int {
	if count <= 0 {
		return nil
	}
	nb := workers * batchesPerWorker
	if nb > count {
		nb = count
	}
	sizes := make([]int, nb)
	for b := range sizes {
		sizes[b] = count / nb
		if b < count%nb {
			sizes[b]++
		}
	}

	return sizes
}
