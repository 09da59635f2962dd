// Package graph_test verifies thread-safety of the store under concurrent
// mutation and snapshot reads.
package graph_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arachne-viz/arachne/graph"
)

// TestConcurrentAddNode ensures parallel AddNode calls allocate unique,
// never-reused ids.
func TestConcurrentAddNode(t *testing.T) {
	g := graph.New()
	const num = 200
	ids := make(chan int64, num)
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func() {
			defer wg.Done()
			ids <- g.AddNode()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, num)
	for id := range ids {
		require.False(t, seen[id], "id %d allocated twice", id)
		seen[id] = true
	}
	require.Equal(t, num, g.NodeCount())
}

// TestConcurrentMutateAndSnapshot mixes structural mutation with snapshot
// reads; every snapshot must be internally consistent (all edge endpoints
// resolvable to dense indices).
func TestConcurrentMutateAndSnapshot(t *testing.T) {
	g := graph.New()
	base := g.AddNode()
	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(3 * rounds)

	for i := 0; i < rounds; i++ {
		go func() {
			defer wg.Done()
			id := g.AddNode()
			g.AddEdge(base, id)
		}()

		go func() {
			defer wg.Done()
			for _, e := range g.Edges() {
				_ = g.DeleteEdge(e)
			}
		}()

		go func() {
			defer wg.Done()
			s := g.Snapshot()
			for _, e := range s.Edges {
				require.Less(t, e.Source, s.Order())
				require.Less(t, e.Target, s.Order())
			}
		}()
	}
	wg.Wait()
}

// TestConcurrentVersionMonotonic watches the version counter while writers
// run; it must never decrease.
func TestConcurrentVersionMonotonic(t *testing.T) {
	g := graph.New()
	const writers = 50

	done := make(chan struct{})
	watcher := make(chan struct{})
	go func() {
		defer close(watcher)
		last := g.Version()
		for {
			select {
			case <-done:
				return
			default:
				v := g.Version()
				require.GreaterOrEqual(t, v, last)
				last = v
			}
		}
	}()

	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			id := g.AddNode()
			g.SetPosition(id, graph.Vec3{X: float64(id)})
		}()
	}
	wg.Wait()
	close(done)
	<-watcher

	require.Equal(t, int64(2*writers-1), g.Version())
}
