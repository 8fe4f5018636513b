// Package geograph generates random geometric graphs concurrently.
//
// N points are scattered uniformly in the unit square; random pairs are then
// connected with a probability that decays with their distance until a target
// edge count, or the complete graph, is reached.
//
// Under the hood, everything is organized under a few subpackages:
//
//	core/     - Graph: construction, parallel edge insertion, edge counting, observers
//	geom/     - Point, squared-distance metric, write-once PointSet
//	matrix/   - atomic, symmetric adjacency store
//	metrics/  - Prometheus observer
//	eventlog/ - log/slog observer
//	cmd/geograph - command-line driver
//
// Quick start:
//
//	g, err := core.NewGraph(1000, core.WithSeed(42), core.WithInitParallelism(4))
//	if err != nil { ... }
//	inserted := g.InsertRandomEdges(10000)
//
//	go get github.com/katalvlaran/geograph
package geograph
