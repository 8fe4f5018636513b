// SPDX-License-Identifier: MIT
// Package: geograph/core
//
// graph.go - Graph type, constructor and read-only queries.
//
// Concurrency:
//   • Points are immutable after NewGraph; reads need no locks.
//   • Matrix cells are atomic (package matrix); queries may run while
//     InsertRandomEdges is mutating and then return advisory values.

package core

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/geograph/geom"
	"github.com/katalvlaran/geograph/matrix"
)

// Graph is a random geometric graph over a fixed set of points.
// It is not resizable; construct a new Graph for a different N.
type Graph struct {
	n        int
	maxEdges int
	cfg      graphConfig

	points *geom.PointSet
	adj    *matrix.Adjacency

	commitMu  sync.Mutex   // guards check-and-commit under the Locked policy
	committed atomic.Int64 // edges committed so far, across all calls
	epoch     atomic.Uint64
	shared    *lockedSource // used only by the Shared rand policy

	notify *notifier
}

// NewGraph generates n points and an empty adjacency matrix.
//
// Steps:
//  1. Resolve options; return the first recorded violation.
//  2. Validate n ≥ 0 (n == 0 and n == 1 are valid, edge-free graphs).
//  3. Allocate the matrix, then fire InitBegin.
//  4. Generate points with InitParallelism workers, then fire InitEnd.
//
// Complexity: O(n²) memory for the matrix, O(n) time for points.
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	cfg := newGraphConfig(opts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("NewGraph: %w", cfg.err)
	}
	if n < 0 {
		return nil, fmt.Errorf("NewGraph: n=%d: %w", n, ErrNegativeNodeCount)
	}

	adj, err := matrix.NewAdjacency(n)
	if err != nil {
		return nil, fmt.Errorf("NewGraph: %w", err)
	}

	g := &Graph{
		n:        n,
		maxEdges: maxEdges(n),
		cfg:      cfg,
		adj:      adj,
		shared:   &lockedSource{r: rand.New(rand.NewSource(cfg.seed))},
		notify:   &notifier{observers: cfg.observers},
	}

	begin := time.Now()
	g.notify.emit(func(o Observer) {
		o.InitBegin(InitEvent{Nodes: n, Parallelism: cfg.initParallelism, Seed: cfg.seed, At: begin})
	})

	points, err := geom.Generate(n, cfg.seed, cfg.initParallelism)
	if err != nil {
		return nil, fmt.Errorf("NewGraph: %w", err)
	}
	g.points = points

	end := time.Now()
	g.notify.emit(func(o Observer) {
		o.InitEnd(InitEvent{
			Nodes: n, Parallelism: cfg.initParallelism, Seed: cfg.seed,
			At: end, Elapsed: end.Sub(begin),
		})
	})

	return g, nil
}

// maxEdges returns n·(n−1)/2, the number of unordered pairs.
func maxEdges(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}

// NodeCount returns N.
func (g *Graph) NodeCount() int { return g.n }

// MaxEdges returns N·(N−1)/2.
func (g *Graph) MaxEdges() int { return g.maxEdges }

// Seed returns the master seed.
func (g *Graph) Seed() int64 { return g.cfg.seed }

// Parallelism returns the init (P1) and edge (P2) worker counts.
func (g *Graph) Parallelism() (initP, edgeP int) {
	return g.cfg.initParallelism, g.cfg.edgeParallelism
}

// LockPolicy returns the default commit policy.
func (g *Graph) LockPolicy() LockPolicy { return g.cfg.lockPolicy }

// RandPolicy returns the random-source policy.
func (g *Graph) RandPolicy() RandPolicy { return g.cfg.randPolicy }

// ObserverFaults returns how many observer callbacks panicked and were skipped.
func (g *Graph) ObserverFaults() uint64 { return g.notify.faults.Load() }

// Point returns the coordinates of vertex i.
func (g *Graph) Point(i int) (geom.Point, error) {
	p, err := g.points.At(i)
	if err != nil {
		return geom.Point{}, fmt.Errorf("Point(%d): %w", i, ErrVertexNotFound)
	}

	return p, nil
}

// Points returns a copy of all vertex coordinates in index order.
func (g *Graph) Points() []geom.Point { return g.points.Points() }

// Weight returns the weight of edge {i,j}, or 0.0 if there is no edge.
func (g *Graph) Weight(i, j int) (float64, error) {
	w, err := g.adj.At(i, j)
	if err != nil {
		return 0, fmt.Errorf("Weight(%d,%d): %w", i, j, ErrVertexNotFound)
	}

	return w, nil
}

// HasEdge reports whether {i,j} is present. Out-of-range indices report false.
func (g *Graph) HasEdge(i, j int) bool {
	w, err := g.Weight(i, j)

	return err == nil && w > 0
}

// Matrix returns a copy of the adjacency matrix, one slice per row.
// Complexity: O(n²).
func (g *Graph) Matrix() [][]float64 { return g.adj.Snapshot() }

// String dumps the whole matrix row-major with one decimal per cell,
// preceded by a header line. Diagnostic only; not a stable format.
func (g *Graph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Nodes: [%d], Edges: [%d]\n", g.n, g.EdgeCount())
	sb.WriteString(g.adj.String())

	return sb.String()
}

// Summary returns one line describing configuration and size.
func (g *Graph) Summary() string {
	return fmt.Sprintf("Graph => Parallelism: (Init[%d], Edges[%d]), Policy: (%s, %s), Nodes: [%d], Edges: [%d]",
		g.cfg.initParallelism, g.cfg.edgeParallelism,
		g.cfg.lockPolicy, g.cfg.randPolicy, g.n, g.EdgeCount())
}
