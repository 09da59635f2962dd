// Package arachne is the in-memory graph store and analytics engine behind
// an interactive 3D network-visualization session.
//
// 🕸️ What is arachne?
//
//	A thread-safe, incrementally-versioned graph model built for a workload
//	where one thread mutates the graph interactively while another renders
//	it and a third integrates a force layout:
//		• graph/     — the mutable store: id-allocating node/edge CRUD,
//		  per-node adjacency indexing, a monotonic version counter, redraw
//		  notification, DOT export, and the dense-index Snapshot adapter
//		• analytics/ — read-only algorithms over snapshots: connected
//		  components, betweenness centrality, single-source shortest paths
//		  (Dijkstra), and minimum spanning forests (Prim)
//
// ✨ Design in one breath
//
//   - Ids are opaque, monotonic int64 values; they are never reused within a
//     session and -1 always means "no such thing"
//   - One coarse RWMutex guards the whole store; every accessor copies out
//   - The version counter is the only change signal consumers poll — it is
//     bumped after the mutation commits and the lock is released
//   - Algorithms never touch the store directly: they consume a Snapshot,
//     a dense 0..N-1 translation rebuilt fresh on every query
//
// Start with graph.New, wire your collaborators via options
// (WithSelection, WithRedraw, WithLogger, WithMetrics), and hand the store
// to analytics when you need structure, not pixels.
package arachne
