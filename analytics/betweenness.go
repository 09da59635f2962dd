package analytics

import "github.com/arachne-viz/arachne/graph"

// Betweenness computes betweenness centrality per node using Brandes'
// algorithm: the accumulated fraction of shortest paths passing through each
// node. The result is dense-index aligned.
//
// Convention (fixed): edges are treated as directed and unweighted for path
// counting, parallel edges multiply path counts, and scores are raw
// (unnormalized) dependency sums with each ordered source→sink pair counted
// once. Downstream consumers compare relative magnitudes only.
//
// Complexity: O(V·(V + E)) time, O(V + E) memory.
func Betweenness(g *graph.Graph) (*graph.Snapshot, []float64, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	s := g.Snapshot()
	n := s.Order()
	bc := make([]float64, n)
	if n == 0 {
		return s, bc, nil
	}

	// Directed out-adjacency; parallel edges kept, each counts as a path.
	adj := make([][]int, n)
	for _, e := range s.Edges {
		adj[e.Source] = append(adj[e.Source], e.Target)
	}

	// Reused per-source scratch state.
	sigma := make([]float64, n) // shortest-path counts
	dist := make([]int, n)      // BFS depth, -1 = unreached
	delta := make([]float64, n) // dependency accumulation
	preds := make([][]int, n)   // shortest-path predecessors

	for source := 0; source < n; source++ {
		for i := 0; i < n; i++ {
			sigma[i] = 0
			dist[i] = -1
			delta[i] = 0
			preds[i] = preds[i][:0]
		}
		sigma[source] = 1
		dist[source] = 0

		// Forward BFS phase: count shortest paths, record visit order.
		order := make([]int, 0, n)
		queue := []int{source}
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			order = append(order, u)
			for _, v := range adj[u] {
				if dist[v] < 0 {
					dist[v] = dist[u] + 1
					queue = append(queue, v)
				}
				if dist[v] == dist[u]+1 {
					sigma[v] += sigma[u]
					preds[v] = append(preds[v], u)
				}
			}
		}

		// Backward accumulation phase, reverse visit order.
		for i := len(order) - 1; i >= 0; i-- {
			v := order[i]
			for _, u := range preds[v] {
				delta[u] += sigma[u] / sigma[v] * (1 + delta[v])
			}
			if v != source {
				bc[v] += delta[v]
			}
		}
	}

	return s, bc, nil
}
