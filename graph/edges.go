// Package graph: edge lifecycle and per-edge state.
//
// Adjacency is indexed on the source node: adjacent[target] holds the
// ordered list of edge ids from source to target, so parallel edges between
// the same pair coexist. Degree counters on both endpoints are maintained on
// every insert and delete.
package graph

import "go.uber.org/zap"

// defaultEdgeWeight is the weight assigned to new edges; shortest-path
// queries read it unless SetEdgeWeight overrides it.
const defaultEdgeWeight = 1.0

// AddEdge validates both endpoints, allocates the next edge id, appends it
// to the source node's adjacency bucket for the target, updates both degree
// counters, bumps the version, and returns the id. When either endpoint is
// missing it returns None and leaves the store — including the id counter —
// untouched, so the next successful AddEdge still gets the id this call
// would have taken. Complexity: O(1).
func (g *Graph) AddEdge(source, target int64) int64 {
	g.mu.Lock()
	src, okSrc := g.nodes[source]
	dst, okDst := g.nodes[target]
	if !okSrc || !okDst {
		g.mu.Unlock()
		g.log.Warn("invalid edge endpoints",
			zap.Int64("source", source),
			zap.Int64("target", target))
		return None
	}

	g.edgeID++
	id := g.edgeID
	g.edges[id] = &edge{source: source, target: target, weight: defaultEdgeWeight}

	src.outDegree++
	dst.inDegree++
	src.adjacent[target] = append(src.adjacent[target], id)
	g.syncGauges()
	g.mu.Unlock()

	g.update(opAddEdge)

	return id
}

// DeleteEdge removes the edge from the global set and from its source node's
// adjacency bucket, decrements both degree counters, and bumps the version.
// Returns the id on success or None if the edge does not exist.
// Complexity: O(parallel edges between the pair).
func (g *Graph) DeleteEdge(id int64) int64 {
	g.mu.Lock()
	if _, ok := g.edges[id]; !ok {
		g.mu.Unlock()
		return None
	}
	g.removeEdgeLocked(id)
	g.syncGauges()
	g.mu.Unlock()

	g.update(opDeleteEdge)

	return id
}

// removeEdgeLocked detaches the edge from adjacency and degree state and
// deletes it from the global set. The edge must exist; the invariants
// guarantee its id is present in the source node's bucket. Caller must hold
// the write lock.
func (g *Graph) removeEdgeLocked(id int64) {
	e := g.edges[id]

	if src, ok := g.nodes[e.source]; ok {
		bucket := src.adjacent[e.target]
		for i, eid := range bucket {
			if eid == id {
				bucket = append(bucket[:i], bucket[i+1:]...)
				break
			}
		}
		if len(bucket) == 0 {
			delete(src.adjacent, e.target)
		} else {
			src.adjacent[e.target] = bucket
		}
		src.outDegree--
	}
	if dst, ok := g.nodes[e.target]; ok {
		dst.inDegree--
	}

	delete(g.edges, id)
}

// IsValidEdge reports whether id names a current edge. Complexity: O(1).
func (g *Graph) IsValidEdge(id int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[id]

	return ok
}

// Edges returns all edge ids in ascending order. The slice is a copy.
// Complexity: O(E log E).
func (g *Graph) Edges() []int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sortedEdgeIDs()
}

// EdgesBetween returns a copy of the ordered edge-id bucket from source to
// target; parallel edges appear in insertion order. Nil when none exist.
func (g *Graph) EdgesBetween(source, target int64) []int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	src, ok := g.nodes[source]
	if !ok {
		return nil
	}
	bucket, ok := src.adjacent[target]
	if !ok || len(bucket) == 0 {
		return nil
	}
	out := make([]int64, len(bucket))
	copy(out, bucket)

	return out
}

// EdgeEndpoints returns the edge's (source, target) node ids, or
// (None, None) for an unknown edge.
func (g *Graph) EdgeEndpoints(id int64) (int64, int64) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if e, ok := g.edges[id]; ok {
		return e.source, e.target
	}

	return None, None
}

// EdgeLabel returns the edge's label, or "" for an unknown id.
func (g *Graph) EdgeLabel(id int64) string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if e, ok := g.edges[id]; ok {
		return e.label
	}

	return ""
}

// EdgeWeight returns the edge's weight, or 0 for an unknown id.
func (g *Graph) EdgeWeight(id int64) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if e, ok := g.edges[id]; ok {
		return e.weight
	}

	return 0
}

// SourcePosition returns the position of the edge's source node.
func (g *Graph) SourcePosition(id int64) Vec3 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if e, ok := g.edges[id]; ok {
		if n, ok := g.nodes[e.source]; ok {
			return n.position
		}
	}

	return Vec3{}
}

// TargetPosition returns the position of the edge's target node.
func (g *Graph) TargetPosition(id int64) Vec3 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if e, ok := g.edges[id]; ok {
		if n, ok := g.nodes[e.target]; ok {
			return n.position
		}
	}

	return Vec3{}
}

// HasEdge reports whether at least one edge runs from source to target.
// Complexity: O(1).
func (g *Graph) HasEdge(source, target int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(source, target)
}

// hasEdgeLocked is HasEdge with the lock already held.
func (g *Graph) hasEdgeLocked(source, target int64) bool {
	src, ok := g.nodes[source]
	if !ok {
		return false
	}

	return len(src.adjacent[target]) > 0
}

// IsBidirectional reports whether the edge's endpoint pair is connected in
// both directions. Parallel edges in one direction still count as a single
// direction. Returns false for an unknown edge.
func (g *Graph) IsBidirectional(id int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[id]
	if !ok {
		return false
	}

	return g.hasEdgeLocked(e.source, e.target) && g.hasEdgeLocked(e.target, e.source)
}

// IsBidirectionalPair reports whether an edge exists from source to target
// and another from target to source.
func (g *Graph) IsBidirectionalPair(source, target int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(source, target) && g.hasEdgeLocked(target, source)
}

// SetEdgeLabel sets the edge's label and bumps the version.
func (g *Graph) SetEdgeLabel(id int64, label string) {
	g.mu.Lock()
	e, ok := g.edges[id]
	if !ok {
		g.mu.Unlock()
		return
	}
	e.label = label
	g.mu.Unlock()

	g.update(opSetEdge)
}

// SetEdgeWeight sets the edge's weight. No version bump: weights are not
// render-visible and are read by shortest-path queries at snapshot time.
func (g *Graph) SetEdgeWeight(id int64, weight float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if e, ok := g.edges[id]; ok {
		e.weight = weight
	}
}
