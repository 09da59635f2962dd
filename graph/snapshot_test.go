// Package graph_test: dense-index snapshot adapter contracts.
package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arachne-viz/arachne/graph"
)

func TestSnapshotDenseMappingAfterDeletes(t *testing.T) {
	g := graph.New()
	for i := 0; i < 5; i++ {
		g.AddNode() // ids 0..4
	}
	g.DeleteNode(2) // sparse id space: 0,1,3,4

	e0 := g.AddEdge(0, 1)
	e1 := g.AddEdge(3, 4)
	e2 := g.AddEdge(1, 3)
	g.SetEdgeWeight(e2, 2.5)

	s := g.Snapshot()

	// Total ordering of the current node set into [0, N).
	require.Equal(t, []int64{0, 1, 3, 4}, s.IDs)
	require.Equal(t, 4, s.Order())
	for i, id := range s.IDs {
		require.Equal(t, i, s.Index[id])
	}

	// Edges translated into dense index space, ascending edge-id order.
	require.Equal(t, []graph.SnapshotEdge{
		{ID: e0, Source: 0, Target: 1, Weight: 1},
		{ID: e1, Source: 2, Target: 3, Weight: 1},
		{ID: e2, Source: 1, Target: 2, Weight: 2.5},
	}, s.Edges)

	require.Equal(t, g.Version(), s.Version)
}

func TestSnapshotIsRebuiltPerCall(t *testing.T) {
	g := graph.New()
	g.AddNode()

	before := g.Snapshot()
	g.AddNode()
	after := g.Snapshot()

	// The first snapshot is a frozen copy; only the second sees the change.
	require.Equal(t, 1, before.Order())
	require.Equal(t, 2, after.Order())
	require.Greater(t, after.Version, before.Version)
}

func TestSnapshotEmptyGraph(t *testing.T) {
	g := graph.New()
	s := g.Snapshot()

	require.Empty(t, s.IDs)
	require.Empty(t, s.Edges)
	require.Equal(t, int64(-1), s.Version)
}
