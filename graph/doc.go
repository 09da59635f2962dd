// Package graph provides the thread-safe, incrementally-versioned graph
// store at the heart of an interactive 3D network-visualization session.
//
// The store G = (V,E) is built for three concurrent actors:
//
//   - an interactive thread mutating structure (nodes, edges, labels, colors)
//   - a render thread polling Version() to decide when to re-read state
//   - a force-layout thread reading and writing positions and velocities
//
// Behavior highlights:
//
//   - Monotonic int64 ids for nodes and edges, allocated by the store,
//     never reused within a session; None (-1) signals "not found"
//   - Per-node adjacency buckets keyed by target id, each holding the
//     ordered edge-id list, so parallel edges between one pair coexist
//   - inDegree/outDegree maintained incrementally on every edge mutation
//   - Cascading node deletion: incident edges go first, atomically
//   - A single coarse sync.RWMutex over the whole structure; accessors copy
//     values out and no method returns references into internal storage
//   - Version() is the sole change signal: bumped atomically after the
//     mutation commits and the lock is released, so observing a new version
//     guarantees the corresponding state is readable
//   - Snapshot() translates the sparse id-keyed model into the dense
//     0..N-1 form the analytics package consumes
//   - DOT export (Write/WriteTo) under the lock for a consistent dump
//
// Mutators documented as version-bumping fire the redraw callback once per
// bump. SetEdgeWeight, UpdateVelocity, SetAttribute, SetComponents,
// RandomizePositions and ResetVelocities intentionally do not bump: their
// consumers poll the store directly.
//
// Collaborators are wired with options: WithSelection (Locate scope +
// Clear side effect), WithRedraw, WithLogger (zap), WithMetrics
// (prometheus), WithRand (deterministic layouts in tests).
package graph
