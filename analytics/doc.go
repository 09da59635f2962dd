// Package analytics implements the read-only algorithms computed over
// snapshots of a graph.Graph: connected components, betweenness centrality,
// single-source shortest paths (Dijkstra), and minimum spanning forests
// (Prim).
//
// Every query takes a fresh dense-index Snapshot from the store (see
// graph.Snapshot) and returns result slices aligned to it: result[i]
// describes the node snapshot.IDs[i]. Callers translate dense indices back
// to ids through the returned snapshot. Nothing here mutates the store,
// with one documented exception: AssignComponents writes the computed
// component labels back into each node.
//
// Conventions (fixed, see each function):
//
//   - Components: undirected closure of the edge set — an edge connects its
//     endpoints regardless of direction
//   - Betweenness: directed, unweighted, Brandes, unnormalized
//   - ShortestPath: directed, weighted, non-negative weights only
//   - SpanningTree: undirected closure, weighted, one tree per component
//
// All four return an empty snapshot and empty results (no error) when the
// graph has no nodes.
package analytics
