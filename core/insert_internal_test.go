package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixedSource always returns the same draws.
type fixedSource struct {
	ints []int
	k    int
	f    float64
}

func (s *fixedSource) Intn(n int) int {
	v := s.ints[s.k%len(s.ints)] % n
	s.k++
	return v
}

func (s *fixedSource) Float64() float64 { return s.f }

// TestAcceptance pins the probability formula on squared distances.
func TestAcceptance(t *testing.T) {
	require.Equal(t, 1.0, acceptance(0))
	require.Equal(t, 0.5625, acceptance(0.5)) // (1.5)²/4
	require.Equal(t, 0.25, acceptance(1))
	require.Equal(t, 0.0, acceptance(2))
}

// TestTryCommitIdempotent commits a pair, then retries it: the second attempt
// is a no-op and the weight does not change.
func TestTryCommitIdempotent(t *testing.T) {
	g, err := NewGraph(4)
	require.NoError(t, err)
	rng := &fixedSource{f: 0} // always accept

	require.True(t, g.tryCommit(rng, 1, 3))
	w, _ := g.Weight(3, 1)
	require.InDelta(t, math.Sqrt(g.points.QDistance(1, 3)), w, 1e-12)

	require.False(t, g.tryCommit(rng, 3, 1))
	require.False(t, g.tryCommit(rng, 1, 3))
	w2, _ := g.Weight(1, 3)
	require.Equal(t, w, w2)
	require.Equal(t, 1, g.EdgeCount())
}

// TestTryCommitRejects checks that a draw at or above the probability is discarded.
func TestTryCommitRejects(t *testing.T) {
	g, err := NewGraph(4)
	require.NoError(t, err)
	rng := &fixedSource{f: 1} // u = 1 is never < prob

	require.False(t, g.tryCommit(rng, 0, 2))
	require.False(t, g.HasEdge(0, 2))
}

// TestInsertOneSkipsSelfLoops feeds a self-loop draw before a valid pair.
func TestInsertOneSkipsSelfLoops(t *testing.T) {
	g, err := NewGraph(3)
	require.NoError(t, err)
	rng := &fixedSource{ints: []int{2, 2, 0, 1}, f: 0}

	require.Equal(t, 1, g.insertOne(rng, Locked))
	require.True(t, g.HasEdge(0, 1))
	require.Equal(t, 4, rng.k) // the (2,2) draw was discarded, not committed
	require.Equal(t, int64(1), g.committed.Load())
}

// TestInsertOneFullGraph returns immediately once every pair is present.
func TestInsertOneFullGraph(t *testing.T) {
	g, err := NewGraph(2)
	require.NoError(t, err)
	rng := &fixedSource{ints: []int{0, 1}, f: 0}

	require.Equal(t, 1, g.insertOne(rng, Unlocked))
	require.Equal(t, 0, g.insertOne(rng, Unlocked))
	require.Equal(t, 2, rng.k) // no draws after saturation
}

// TestPlanBatches checks the split is complete and balanced.
func TestPlanBatches(t *testing.T) {
	require.Nil(t, planBatches(0, 4))
	require.Equal(t, []int{1, 1, 1}, planBatches(3, 8))

	sizes := planBatches(101, 5)
	require.Len(t, sizes, 5*batchesPerWorker)
	sum := 0
	for _, s := range sizes {
		require.InDelta(t, 101/len(sizes), s, 1)
		sum += s
	}
	require.Equal(t, 101, sum)
}
