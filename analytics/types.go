// Package analytics: sentinel errors and collaborator interfaces.
package analytics

import "errors"

// Sentinel errors returned by analytics queries.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed to a query.
	ErrNilGraph = errors.New("analytics: graph is nil")

	// ErrSourceNotFound indicates that the shortest-path source id does not
	// name a node in the snapshot.
	ErrSourceNotFound = errors.New("analytics: source node not found")

	// ErrNegativeWeight indicates that a negative edge weight was detected;
	// Dijkstra requires non-negative weights and rejects the query up front.
	ErrNegativeWeight = errors.New("analytics: negative edge weight encountered")
)

// PreviousNodeProvider is the application-level "active node" capability:
// it supplies the source for shortest-path queries. PreviousNode returns
// graph.None when no node is active.
type PreviousNodeProvider interface {
	PreviousNode() int64
}
