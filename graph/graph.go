// Package graph: store-wide operations.
//
// This file implements the change notifier (version bump + redraw request),
// the bulk reset operations, the selection-aware Locate query, and the DOT
// export. Node and edge CRUD live in nodes.go and edges.go.
package graph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
)

// Mutation labels used by the change notifier and metrics.
const (
	opAddNode    = "add_node"
	opDeleteNode = "delete_node"
	opAddEdge    = "add_edge"
	opDeleteEdge = "delete_edge"
	opClearEdges = "clear_edges"
	opSetNode    = "set_node"
	opSetEdge    = "set_edge"
)

// update commits a render-visible mutation: it bumps the version counter and
// fires the redraw request. Callers must have released the store lock first,
// so that a consumer woken by the new version always reads committed state.
func (g *Graph) update(op string) {
	v := atomic.AddInt64(&g.version, 1)
	if g.metrics != nil {
		g.metrics.mutations.WithLabelValues(op).Inc()
		g.metrics.version.Set(float64(v))
	}
	if g.redraw != nil {
		g.redraw()
	}
}

// Version returns the current change counter. -1 means the graph was never
// mutated (or was fully cleared). The counter is monotonically non-decreasing
// for the lifetime of the store except across Clear, which starts a new
// session. Complexity: O(1).
func (g *Graph) Version() int64 {
	return atomic.LoadInt64(&g.version)
}

// ComponentsVersion returns the store version at the time of the last
// SetComponents call, or -1 if components were never assigned. Comparing it
// against Version detects stale component labels. Complexity: O(1).
func (g *Graph) ComponentsVersion() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.componentsVersion
}

// NodeCount returns the number of valid nodes. Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of valid edges. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Clear resets the store to its initial state: no nodes, no edges, id
// counters back at -1, version back at -1. The id space starts over, so ids
// allocated before Clear may be seen again afterward. As a documented
// cross-component side effect, the selection collaborator (if any) is told
// to drop all selections. No redraw is requested. Complexity: O(1).
func (g *Graph) Clear() {
	g.mu.Lock()
	g.nodes = make(map[int64]*node)
	g.edges = make(map[int64]*edge)
	g.nodeID = None
	g.edgeID = None
	g.componentsVersion = -1
	atomic.StoreInt64(&g.version, -1)
	g.syncGauges()
	if g.metrics != nil {
		g.metrics.version.Set(-1)
	}
	g.mu.Unlock()

	if g.sel != nil {
		g.sel.ClearSelections()
	}
}

// ClearEdges removes every edge, empties all adjacency buckets, and zeroes
// every node's degree counters. Nodes are untouched otherwise.
// Complexity: O(V).
func (g *Graph) ClearEdges() {
	g.mu.Lock()
	for _, n := range g.nodes {
		n.adjacent = make(map[int64][]int64)
		n.inDegree = 0
		n.outDegree = 0
	}
	g.edges = make(map[int64]*edge)
	g.syncGauges()
	g.mu.Unlock()

	g.update(opClearEdges)
}

// RandomizePositions moves every node to a uniformly random position with
// each axis in [-radius, radius]. Velocities are untouched. The version is
// intentionally not bumped: the caller owns the follow-up notification.
// Complexity: O(V).
func (g *Graph) RandomizePositions(radius float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, n := range g.nodes {
		n.position = Vec3{
			X: radius * (2*g.rng.Float64() - 1),
			Y: radius * (2*g.rng.Float64() - 1),
			Z: radius * (2*g.rng.Float64() - 1),
		}
	}
}

// ResetVelocities zeroes every node's velocity. Like RandomizePositions this
// does not bump the version; the force-layout step polls velocities directly.
// Complexity: O(V).
func (g *Graph) ResetVelocities() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, n := range g.nodes {
		n.velocity = Vec3{}
	}
}

// Locate computes a bounding center and radius over the currently selected
// nodes: the center is the running mean of their positions, the radius the
// maximum pairwise distance among them. Without a selection collaborator
// every node counts as selected. A degenerate result (no selected nodes, or
// a single point) falls back to a radius of 30.
// Complexity: O(V^2) over the selected subset.
func (g *Graph) Locate() (Vec3, float64) {
	var center Vec3
	var maxDistance float64
	counted := 1

	g.mu.RLock()
	ids := g.sortedNodeIDs()
	for _, source := range ids {
		if !g.selectedLocked(source) {
			continue
		}
		for _, target := range ids {
			if !g.selectedLocked(target) {
				continue
			}
			if d := g.nodes[source].position.Sub(g.nodes[target].position).Length(); d > maxDistance {
				maxDistance = d
			}
		}
		center = center.Add(g.nodes[source].position.Sub(center).Scale(1 / float64(counted)))
		counted++
	}
	g.mu.RUnlock()

	if maxDistance == 0 {
		maxDistance = defaultLocateRadius
	}

	return center, maxDistance
}

// selectedLocked reports whether the node participates in Locate.
// Caller must hold mu.
func (g *Graph) selectedLocked(id int64) bool {
	if g.sel == nil {
		return true
	}

	return g.sel.IsSelectedComponent(id)
}

// Write serializes the graph to path in the DOT export format (see WriteTo).
func (g *Graph) Write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graph: create %s: %w", path, err)
	}
	if err = g.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("graph: close %s: %w", path, err)
	}
	g.log.Info("wrote graph export", zap.String("path", path))

	return nil
}

// WriteTo serializes the current node positions and directed edges as a
// digraph description:
//
//	digraph G {
//	  n<id>[ pos="<x>,<y>,<z>" ];
//	  n<source> -> n<target>;
//	}
//
// One position line per node and one line per edge (parallel edges repeat),
// in ascending id order. The store lock is held for the whole write, so the
// output is a self-consistent snapshot. Complexity: O(V log V + E log E).
func (g *Graph) WriteTo(w io.Writer) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := bufio.NewWriter(w)
	fmt.Fprintln(out, "digraph G {")
	for _, id := range g.sortedNodeIDs() {
		p := g.nodes[id].position
		fmt.Fprintf(out, "  n%d[ pos=\"%g,%g,%g\" ];\n", id, p.X, p.Y, p.Z)
	}
	for _, id := range g.sortedEdgeIDs() {
		e := g.edges[id]
		fmt.Fprintf(out, "  n%d -> n%d;\n", e.source, e.target)
	}
	fmt.Fprintln(out, "}")
	if err := out.Flush(); err != nil {
		return fmt.Errorf("graph: export: %w", err)
	}

	return nil
}
