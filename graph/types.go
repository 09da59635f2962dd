// Package graph declares the Graph store, its node/edge records, the small
// geometry value types, and the functional options used to wire the store to
// its collaborators (selection state, redraw requests, logging, metrics).
//
// This file declares types only; behavior lives in graph.go, nodes.go,
// edges.go and snapshot.go.
package graph

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// None is the sentinel id returned by mutators when the referenced node or
// edge does not exist. Valid ids are always >= 0.
const None int64 = -1

// defaultLocateRadius is the fallback bounding radius reported by Locate
// when the selected subset is empty or degenerate (a single point).
const defaultLocateRadius = 30.0

// Vec3 is a 3D point or vector. Positions and velocities are Vec3 values;
// the zero value is the origin.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Length returns the Euclidean norm of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Color is an RGBA appearance descriptor with components in [0,1].
// A node's color is replaced wholesale on update, never mutated in place.
type Color struct {
	R, G, B, A float64
}

// Attribute is one (key, value) pair attached to a node. Attributes keep
// insertion order and duplicates are allowed.
type Attribute struct {
	Key   string
	Value string
}

// node is the internal per-node record. All fields are guarded by Graph.mu;
// accessors copy values out rather than exposing the record.
type node struct {
	position Vec3
	velocity Vec3
	label    string
	size     float64
	color    Color

	attributes []Attribute

	// inDegree/outDegree are maintained incrementally on edge insert/delete
	// and always equal the number of edges targeting/leaving this node.
	inDegree  int
	outDegree int

	// adjacent maps target node id to the ordered list of edge ids leading
	// there; parallel edges between the same pair each get an entry.
	adjacent map[int64][]int64

	// component holds the label assigned by the last SetComponents call.
	// It is stale until components are assigned again.
	component int
}

// edge is the internal per-edge record. Endpoints are validated at creation
// time and never re-checked afterward.
type edge struct {
	source int64
	target int64
	label  string
	weight float64
}

// Selection is the application-level selection capability consumed by the
// store: Locate restricts its bounding computation to selected nodes, and
// Clear drops all selections as part of its full reset.
type Selection interface {
	// IsSelectedComponent reports whether the node belongs to the currently
	// selected component set.
	IsSelectedComponent(node int64) bool

	// ClearSelections drops every selection the application holds.
	ClearSelections()
}

// RedrawFunc is invoked once per version bump to request a re-render.
// It carries no payload, is fire-and-forget, and may be called from a
// non-rendering thread; implementations must be safe to invoke cross-thread.
type RedrawFunc func()

// Graph is the mutable, thread-safe graph store.
//
// A single RWMutex guards the whole structure: every mutator takes the write
// lock for the full operation, every accessor takes the read lock and copies
// values out. The version counter is atomic and is bumped only after the
// mutation has committed and the lock has been released, so a consumer that
// observes a new version is guaranteed to read the corresponding state.
type Graph struct {
	mu sync.RWMutex // guards nodes, edges, id counters, rng

	nodes map[int64]*node
	edges map[int64]*edge

	// nodeID/edgeID hold the last allocated id; they start at -1 and are
	// incremented before use, so ids are never reused within a session.
	nodeID int64
	edgeID int64

	// version starts at -1 ("never built") and increases monotonically on
	// every render-visible mutation. Accessed atomically, outside mu.
	version int64

	// componentsVersion records the store version at the time of the last
	// SetComponents call, -1 if components were never assigned.
	componentsVersion int64

	rng *rand.Rand // randomized default positions; guarded by mu

	sel     Selection
	redraw  RedrawFunc
	log     *zap.Logger
	metrics *storeMetrics
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithSelection wires the application's selection capability into the store.
// Without it, Locate treats every node as selected and Clear has no
// selection state to drop.
func WithSelection(sel Selection) Option {
	return func(g *Graph) { g.sel = sel }
}

// WithRedraw registers the redraw-request callback fired after every
// version bump.
func WithRedraw(fn RedrawFunc) Option {
	return func(g *Graph) { g.redraw = fn }
}

// WithLogger sets the structured logger used for diagnostics (rejected
// operations, completed exports). Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(g *Graph) {
		if l != nil {
			g.log = l
		}
	}
}

// WithMetrics registers mutation/version/cardinality metrics with reg.
// Without this option no metrics are collected.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(g *Graph) {
		if reg != nil {
			g.metrics = newStoreMetrics(reg)
		}
	}
}

// WithRand seeds the random source used for default node positions and
// RandomizePositions. Use it in tests for reproducible layouts.
func WithRand(seed int64) Option {
	return func(g *Graph) { g.rng = rand.New(rand.NewSource(seed)) }
}

// New creates an empty Graph with version -1 and fresh id counters.
// Complexity: O(1).
func New(opts ...Option) *Graph {
	g := &Graph{
		nodes:             make(map[int64]*node),
		edges:             make(map[int64]*edge),
		nodeID:            None,
		edgeID:            None,
		version:           -1,
		componentsVersion: -1,
		rng:               rand.New(rand.NewSource(time.Now().UnixNano())),
		log:               zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
