// Package graph: the dense-index snapshot adapter.
//
// The store keys everything by stable, sparse int64 ids; graph algorithms
// want vertices 0..N-1 and a static edge list. Snapshot bridges the two: a
// total ordering of the current node set into dense indices plus translated
// edge triples, fully copied out under the lock. The mapping is rebuilt on
// every call — any structural mutation invalidates it, so it is never cached.
package graph

import (
	"sort"
	"sync/atomic"
)

// SnapshotEdge is one edge translated into dense index space.
type SnapshotEdge struct {
	// ID is the stable edge id in the store.
	ID int64

	// Source and Target are dense node indices in [0, len(Snapshot.IDs)).
	Source int
	Target int

	// Weight is the edge weight at acquisition time.
	Weight float64
}

// Snapshot is an immutable dense-index view of the graph topology at a
// single point in time. Results of analytics queries are aligned to IDs:
// result[i] describes the node IDs[i].
type Snapshot struct {
	// IDs maps dense index to node id, in ascending id order.
	IDs []int64

	// Index is the inverse mapping, node id to dense index.
	Index map[int64]int

	// Edges holds every edge in ascending edge-id order. Parallel edges
	// each appear once.
	Edges []SnapshotEdge

	// Version is the store version at acquisition, for staleness checks.
	Version int64
}

// Snapshot builds a fresh dense-index view under the store lock.
// Deterministic: ascending node-id order defines the dense ordering, and
// edges follow ascending edge-id order. Complexity: O(V log V + E log E).
func (g *Graph) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := &Snapshot{
		IDs:     g.sortedNodeIDs(),
		Index:   make(map[int64]int, len(g.nodes)),
		Edges:   make([]SnapshotEdge, 0, len(g.edges)),
		Version: atomic.LoadInt64(&g.version),
	}
	for i, id := range s.IDs {
		s.Index[id] = i
	}
	for _, eid := range g.sortedEdgeIDs() {
		e := g.edges[eid]
		s.Edges = append(s.Edges, SnapshotEdge{
			ID:     eid,
			Source: s.Index[e.source],
			Target: s.Index[e.target],
			Weight: e.weight,
		})
	}

	return s
}

// Order returns the number of nodes in the snapshot.
func (s *Snapshot) Order() int { return len(s.IDs) }

// sortedNodeIDs returns all node ids ascending. Caller must hold mu.
func (g *Graph) sortedNodeIDs() []int64 {
	ids := make([]int64, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// sortedEdgeIDs returns all edge ids ascending. Caller must hold mu.
func (g *Graph) sortedEdgeIDs() []int64 {
	ids := make([]int64, 0, len(g.edges))
	for id := range g.edges {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
