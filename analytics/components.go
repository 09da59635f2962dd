package analytics

import "github.com/arachne-viz/arachne/graph"

// Components labels every node with an integer component id, computed over
// the undirected closure of the edge set: two nodes share a component iff a
// path connects them ignoring edge direction. Labels are dense-index aligned
// and deterministic — component ids are assigned in ascending order of each
// component's smallest dense index, starting at 0.
//
// Complexity: O(V + E) time and memory.
func Components(g *graph.Graph) (*graph.Snapshot, []int, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	s := g.Snapshot()
	n := s.Order()
	labels := make([]int, n)
	if n == 0 {
		return s, labels, nil
	}

	// Undirected adjacency over dense indices; self-loops add nothing.
	adj := make([][]int, n)
	for _, e := range s.Edges {
		if e.Source == e.Target {
			continue
		}
		adj[e.Source] = append(adj[e.Source], e.Target)
		adj[e.Target] = append(adj[e.Target], e.Source)
	}

	for i := range labels {
		labels[i] = -1
	}
	next := 0
	for start := 0; start < n; start++ {
		if labels[start] >= 0 {
			continue
		}
		// BFS to label the component of start.
		queue := []int{start}
		labels[start] = next
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range adj[u] {
				if labels[v] < 0 {
					labels[v] = next
					queue = append(queue, v)
				}
			}
		}
		next++
	}

	return s, labels, nil
}

// AssignComponents computes Components and writes the labels back into the
// store — the only analytics operation with a persistent side effect. The
// store records its version at write-back time so staleness of the labels
// can be detected later (graph.ComponentsVersion vs graph.Version).
func AssignComponents(g *graph.Graph) error {
	s, labels, err := Components(g)
	if err != nil {
		return err
	}
	g.SetComponents(s.IDs, labels)

	return nil
}
