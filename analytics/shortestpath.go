package analytics

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/arachne-viz/arachne/graph"
)

// ShortestPath computes the single-source shortest-path tree from the node
// with id source using Dijkstra's algorithm over directed, weighted edges.
//
// Returns, aligned to the snapshot's dense indices:
//
//   - parent: the predecessor index on the shortest path from the source;
//     parent[i] == i for the source itself and for unreachable nodes.
//   - dist: the path distance, +Inf for unreachable nodes.
//
// Preconditions and validation (in order):
//
//  1. g must be non-nil (ErrNilGraph).
//  2. Empty graphs short-circuit to empty results, nil error.
//  3. source must be present in the snapshot (ErrSourceNotFound).
//  4. No edge may carry a negative weight (ErrNegativeWeight, detected by
//     an upfront scan before any relaxation).
//
// A lazy decrease-key min-heap drives the relaxation: improved distances
// push duplicate entries, and stale entries are skipped when popped.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func ShortestPath(g *graph.Graph, source int64) (*graph.Snapshot, []int, []float64, error) {
	if g == nil {
		return nil, nil, nil, ErrNilGraph
	}
	s := g.Snapshot()
	n := s.Order()
	if n == 0 {
		return s, []int{}, []float64{}, nil
	}
	src, ok := s.Index[source]
	if !ok {
		return nil, nil, nil, fmt.Errorf("%w: node %d", ErrSourceNotFound, source)
	}

	// Fail fast on negative weights; behavior would be undefined otherwise.
	for _, e := range s.Edges {
		if e.Weight < 0 {
			return nil, nil, nil, fmt.Errorf("%w: edge %d weight=%g", ErrNegativeWeight, e.ID, e.Weight)
		}
	}

	// Directed weighted out-adjacency over dense indices.
	type arc struct {
		to int
		w  float64
	}
	adj := make([][]arc, n)
	for _, e := range s.Edges {
		adj[e.Source] = append(adj[e.Source], arc{to: e.Target, w: e.Weight})
	}

	parent := make([]int, n)
	dist := make([]float64, n)
	visited := make([]bool, n)
	for i := 0; i < n; i++ {
		parent[i] = i // self until a path is found
		dist[i] = math.Inf(1)
	}
	dist[src] = 0

	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{index: src, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.index
		if visited[u] {
			continue // stale lazy-decrease-key entry
		}
		visited[u] = true

		for _, a := range adj[u] {
			next := dist[u] + a.w
			if next >= dist[a.to] {
				continue
			}
			dist[a.to] = next
			parent[a.to] = u
			heap.Push(&pq, &nodeItem{index: a.to, dist: next})
		}
	}

	return s, parent, dist, nil
}

// ShortestPathFromPrevious runs ShortestPath with the source supplied by the
// application's "active node" capability.
func ShortestPathFromPrevious(g *graph.Graph, p PreviousNodeProvider) (*graph.Snapshot, []int, []float64, error) {
	return ShortestPath(g, p.PreviousNode())
}

// nodeItem is one (dense index, distance) entry in the priority queue.
type nodeItem struct {
	index int
	dist  float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, used with
// the lazy decrease-key pattern: duplicates are pushed and stale entries
// skipped on pop.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
