// Package analytics_test: connected components over the undirected closure.
package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arachne-viz/arachne/analytics"
	"github.com/arachne-viz/arachne/graph"
)

// triangle adds three mutually connected nodes and returns their ids.
func triangle(g *graph.Graph) [3]int64 {
	a, b, c := g.AddNode(), g.AddNode(), g.AddNode()
	g.AddEdge(a, b)
	g.AddEdge(b, c)
	g.AddEdge(c, a)

	return [3]int64{a, b, c}
}

func TestComponentsSingleChain(t *testing.T) {
	g := graph.New()
	a, b, c := g.AddNode(), g.AddNode(), g.AddNode()
	g.AddEdge(a, b)
	g.AddEdge(b, c)

	s, labels, err := analytics.Components(g)
	require.NoError(t, err)
	require.Len(t, labels, 3)
	require.Equal(t, labels[s.Index[a]], labels[s.Index[b]])
	require.Equal(t, labels[s.Index[b]], labels[s.Index[c]])
	require.Equal(t, 0, labels[s.Index[a]])
}

func TestComponentsIgnoreDirection(t *testing.T) {
	g := graph.New()
	a, b := g.AddNode(), g.AddNode()
	g.AddEdge(b, a) // only the "wrong" direction exists

	_, labels, err := analytics.Components(g)
	require.NoError(t, err)
	require.Equal(t, labels[0], labels[1])
}

func TestComponentsTwoTriangles(t *testing.T) {
	g := graph.New()
	first := triangle(g)
	second := triangle(g)

	s, labels, err := analytics.Components(g)
	require.NoError(t, err)

	for _, id := range first {
		require.Equal(t, 0, labels[s.Index[id]])
	}
	for _, id := range second {
		require.Equal(t, 1, labels[s.Index[id]])
	}
}

func TestAssignComponentsWritesBack(t *testing.T) {
	g := graph.New()
	first := triangle(g)
	second := triangle(g)

	require.NoError(t, analytics.AssignComponents(g))

	for _, id := range first {
		require.Equal(t, 0, g.Component(id))
	}
	for _, id := range second {
		require.Equal(t, 1, g.Component(id))
	}
	require.Equal(t, g.Version(), g.ComponentsVersion())

	// Labels go stale silently on further mutation; only the version
	// comparison reveals it.
	g.AddEdge(first[0], second[0])
	require.Equal(t, 1, g.Component(second[0]))
	require.Less(t, g.ComponentsVersion(), g.Version())
}

func TestComponentsEmptyGraph(t *testing.T) {
	g := graph.New()

	s, labels, err := analytics.Components(g)
	require.NoError(t, err)
	require.Zero(t, s.Order())
	require.Empty(t, labels)

	require.NoError(t, analytics.AssignComponents(g))
}

func TestComponentsNilGraph(t *testing.T) {
	_, _, err := analytics.Components(nil)
	require.ErrorIs(t, err, analytics.ErrNilGraph)
}
