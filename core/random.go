// SPDX-License-Identifier: MIT

package core

import (
	"math/rand"
	"sync"

	"github.com/katalvlaran/geograph/geom"
)

// source is the slice of *rand.Rand the inserter consumes.
type source interface {
	Intn(n int) int
	Float64() float64
}

// lockedSource serializes a single *rand.Rand for the Shared policy.
type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	v := s.r.Intn(n)
	s.mu.Unlock()

	return v
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	v := s.r.Float64()
	s.mu.Unlock()

	return v
}

// insertStream tags insertion streams so they never collide with the
// point-generation streams, which count up from 0.
const insertStream = uint64(1) << 63

// batchSource returns the random source for one batch of one call.
func (g *Graph) batchSource(epoch uint64, batch int) source {
	if g.cfg.randPolicy == Shared {
		return g.shared
	}
	stream := insertStream | epoch<<32 | uint64(batch)

	return rand.New(rand.NewSource(geom.DeriveSeed(g.cfg.seed, stream)))
}
