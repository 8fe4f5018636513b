// Package core_test exercises core.Graph under concurrent callers.
package core_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/geograph/core"
	"github.com/stretchr/testify/require"
)

// TestEdgeCountDuringInsert reads the advisory count while writers run.
// Counts must stay within bounds and the final count must be exact.
func TestEdgeCountDuringInsert(t *testing.T) {
	g, err := core.NewGraph(60, core.WithEdgeParallelism(8), core.WithLockPolicy(core.Unlocked))
	require.NoError(t, err)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
				c := g.EdgeCount()
				require.GreaterOrEqual(t, c, 0)
				require.LessOrEqual(t, c, g.MaxEdges())
				_ = g.Summary()
			}
		}
	}()

	inserted := g.InsertRandomEdges(1000)
	close(done)
	wg.Wait()

	require.Equal(t, 1000, inserted)
	require.Equal(t, 1000, g.EdgeCount())
	requireInvariants(t, g)
}

// TestConcurrentInsertCalls runs several InsertRandomEdges calls at once, with
// mixed policies, and checks the graph converges to exactly full.
func TestConcurrentInsertCalls(t *testing.T) {
	g, err := core.NewGraph(15, core.WithEdgeParallelism(4), core.WithRandPolicy(core.Shared))
	require.NoError(t, err)

	const callers = 6
	results := make([]int, callers)
	var wg sync.WaitGroup
	wg.Add(callers)
	for c := 0; c < callers; c++ {
		go func(c int) {
			defer wg.Done()
			policy := core.Locked
			if c%2 == 1 {
				policy = core.Unlocked
			}
			results[c] = g.InsertRandomEdges(g.MaxEdges(), core.WithInsertPolicy(policy))
		}(c)
	}
	wg.Wait()

	sum := 0
	for _, r := range results {
		sum += r
	}
	require.Equal(t, g.MaxEdges(), sum)
	require.Equal(t, g.MaxEdges(), g.EdgeCount())
	requireInvariants(t, g)
}

// TestUnlockedManyWorkers stresses the lock-free commit path.
func TestUnlockedManyWorkers(t *testing.T) {
	g, err := core.NewGraph(25, core.WithEdgeParallelism(64), core.WithLockPolicy(core.Unlocked))
	require.NoError(t, err)

	inserted := g.InsertRandomEdges(100000)
	require.Equal(t, g.MaxEdges(), inserted)
	require.Equal(t, inserted, g.EdgeCount())
	requireInvariants(t, g)
}
