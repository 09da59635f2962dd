// Package graph: node lifecycle and per-node state.
//
// Mutators documented as version-bumping call update() after releasing the
// lock; the remaining setters (velocity, attributes, components) are consumed
// by pollers and intentionally leave the version untouched.
package graph

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// AddNode allocates the next node id, inserts a node at a randomized default
// position (each axis in [0,1)), bumps the version, and returns the id.
// Complexity: O(1).
func (g *Graph) AddNode() int64 {
	g.mu.Lock()
	g.nodeID++
	id := g.nodeID
	g.nodes[id] = &node{
		position:  Vec3{X: g.rng.Float64(), Y: g.rng.Float64(), Z: g.rng.Float64()},
		size:      1,
		adjacent:  make(map[int64][]int64),
		component: -1,
	}
	g.syncGauges()
	g.mu.Unlock()

	g.update(opAddNode)

	return id
}

// AddNodeAt is AddNode followed by SetPosition. Both steps bump the version;
// the redundancy is accepted, matching the composition contract.
func (g *Graph) AddNodeAt(position Vec3) int64 {
	id := g.AddNode()
	g.SetPosition(id, position)

	return id
}

// AddNodeLabeled is AddNode followed by SetNodeLabel.
func (g *Graph) AddNodeLabeled(label string) int64 {
	id := g.AddNode()
	g.SetNodeLabel(id, label)

	return id
}

// DeleteNode removes the node and, first, every edge incident to it in
// either direction, keeping degree counters and adjacency buckets of the
// surviving nodes consistent. Returns the id on success or None if the node
// does not exist (in which case nothing changes).
// Complexity: O(E) for the incident-edge sweep.
func (g *Graph) DeleteNode(id int64) int64 {
	g.mu.Lock()
	if _, ok := g.nodes[id]; !ok {
		g.mu.Unlock()
		return None
	}
	g.deleteNodeLocked(id)
	g.syncGauges()
	g.mu.Unlock()

	g.update(opDeleteNode)

	return id
}

// DeleteAnyNode removes the member of the node set with the smallest id
// (the "first" node in iteration order) and returns its id, or None when the
// graph has no nodes.
func (g *Graph) DeleteAnyNode() int64 {
	g.mu.Lock()
	if len(g.nodes) == 0 {
		g.mu.Unlock()
		return None
	}
	id := g.sortedNodeIDs()[0]
	g.deleteNodeLocked(id)
	g.syncGauges()
	g.mu.Unlock()

	g.update(opDeleteNode)

	return id
}

// deleteNodeLocked cascades the removal of id. Caller must hold the write
// lock and have validated the node.
func (g *Graph) deleteNodeLocked(id int64) {
	var incident []int64
	for eid, e := range g.edges {
		if e.source == id || e.target == id {
			incident = append(incident, eid)
		}
	}
	for _, eid := range incident {
		g.removeEdgeLocked(eid)
	}
	delete(g.nodes, id)
}

// IsValidNode reports whether id names a current node. Complexity: O(1).
func (g *Graph) IsValidNode(id int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Nodes returns all node ids in ascending order. The slice is a copy.
// Complexity: O(V log V).
func (g *Graph) Nodes() []int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sortedNodeIDs()
}

// Position returns the node's position, or the zero Vec3 for an unknown id.
func (g *Graph) Position(id int64) Vec3 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if n, ok := g.nodes[id]; ok {
		return n.position
	}

	return Vec3{}
}

// Velocity returns the node's velocity, or the zero Vec3 for an unknown id.
func (g *Graph) Velocity(id int64) Vec3 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if n, ok := g.nodes[id]; ok {
		return n.velocity
	}

	return Vec3{}
}

// NodeLabel returns the node's label, or "" for an unknown id.
func (g *Graph) NodeLabel(id int64) string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if n, ok := g.nodes[id]; ok {
		return n.label
	}

	return ""
}

// Size returns the node's render radius, or 0 for an unknown id.
func (g *Graph) Size(id int64) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if n, ok := g.nodes[id]; ok {
		return n.size
	}

	return 0
}

// ColorOf returns the node's appearance color, or the zero Color for an
// unknown id.
func (g *Graph) ColorOf(id int64) Color {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if n, ok := g.nodes[id]; ok {
		return n.color
	}

	return Color{}
}

// Attributes returns a copy of the node's (key, value) pairs in insertion
// order; duplicates are preserved. Complexity: O(len(attributes)).
func (g *Graph) Attributes(id int64) []Attribute {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	if !ok || len(n.attributes) == 0 {
		return nil
	}
	out := make([]Attribute, len(n.attributes))
	copy(out, n.attributes)

	return out
}

// InDegree returns the number of edges targeting the node, 0 for unknown ids.
func (g *Graph) InDegree(id int64) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if n, ok := g.nodes[id]; ok {
		return n.inDegree
	}

	return 0
}

// OutDegree returns the number of edges leaving the node, 0 for unknown ids.
func (g *Graph) OutDegree(id int64) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if n, ok := g.nodes[id]; ok {
		return n.outDegree
	}

	return 0
}

// Degree returns the total degree (in + out) of the node.
func (g *Graph) Degree(id int64) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if n, ok := g.nodes[id]; ok {
		return n.inDegree + n.outDegree
	}

	return 0
}

// Component returns the component label assigned by the last SetComponents
// call, or -1 if the node is unknown or components were never assigned.
// The label is stale until components are assigned again; compare
// ComponentsVersion against Version to detect this.
func (g *Graph) Component(id int64) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if n, ok := g.nodes[id]; ok {
		return n.component
	}

	return -1
}

// SetPosition places the node and bumps the version. Unknown ids are
// ignored.
func (g *Graph) SetPosition(id int64, position Vec3) {
	g.mu.Lock()
	n, ok := g.nodes[id]
	if !ok {
		g.mu.Unlock()
		return
	}
	n.position = position
	g.mu.Unlock()

	g.update(opSetNode)
}

// UpdatePosition displaces the node by delta and bumps the version.
func (g *Graph) UpdatePosition(id int64, delta Vec3) {
	g.mu.Lock()
	n, ok := g.nodes[id]
	if !ok {
		g.mu.Unlock()
		return
	}
	n.position = n.position.Add(delta)
	g.mu.Unlock()

	g.update(opSetNode)
}

// UpdateVelocity adds delta to the node's velocity. The version is not
// bumped: velocities are consumed only by the force-layout step, which polls
// the store directly.
func (g *Graph) UpdateVelocity(id int64, delta Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if n, ok := g.nodes[id]; ok {
		n.velocity = n.velocity.Add(delta)
	}
}

// SetSize sets the node's render radius and bumps the version.
func (g *Graph) SetSize(id int64, size float64) {
	g.mu.Lock()
	n, ok := g.nodes[id]
	if !ok {
		g.mu.Unlock()
		return
	}
	n.size = size
	g.mu.Unlock()

	g.update(opSetNode)
}

// SetNodeLabel sets the node's label and bumps the version.
func (g *Graph) SetNodeLabel(id int64, label string) {
	g.mu.Lock()
	n, ok := g.nodes[id]
	if !ok {
		g.mu.Unlock()
		return
	}
	n.label = label
	g.mu.Unlock()

	g.update(opSetNode)
}

// SetColor replaces the node's appearance color wholesale and bumps the
// version.
func (g *Graph) SetColor(id int64, c Color) {
	g.mu.Lock()
	n, ok := g.nodes[id]
	if !ok {
		g.mu.Unlock()
		g.log.Debug("set color on unknown node", zap.Int64("node", id))
		return
	}
	n.color = c
	g.mu.Unlock()

	g.update(opSetNode)
}

// SetColorBytes is SetColor with 8-bit components in [0,255].
func (g *Graph) SetColorBytes(id int64, r, gr, b, a uint8) {
	g.SetColor(id, Color{
		R: float64(r) / 255,
		G: float64(gr) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	})
}

// SetAttribute appends one (key, value) pair to the node's attribute list.
// Insertion order is kept and duplicate keys are allowed. No version bump:
// attributes are not render-visible.
func (g *Graph) SetAttribute(id int64, key, value string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if n, ok := g.nodes[id]; ok {
		n.attributes = append(n.attributes, Attribute{Key: key, Value: value})
	}
}

// SetComponents stores component labels computed by an analytics pass:
// labels[i] is assigned to ids[i]. Unknown ids are skipped. The call records
// the current version for staleness detection and does not itself bump the
// version (labels are derived, not structural, state).
// Complexity: O(len(ids)).
func (g *Graph) SetComponents(ids []int64, labels []int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i, id := range ids {
		if i >= len(labels) {
			break
		}
		if n, ok := g.nodes[id]; ok {
			n.component = labels[i]
		}
	}
	g.componentsVersion = atomic.LoadInt64(&g.version)
}
