package analytics

import (
	"container/heap"

	"github.com/arachne-viz/arachne/graph"
)

// SpanningTree computes a minimum spanning forest over the undirected
// closure of the edge set using Prim's algorithm, grown per component from
// its smallest dense index. The result is dense-index aligned: parent[i] is
// the parent index in the forest, with parent[root] == root for each
// component's root (so an isolated node is its own root).
//
// Ties between equal-weight candidate edges are broken by snapshot edge
// order, which makes the forest deterministic for a fixed snapshot.
//
// Complexity: O(E log E) time, O(V + E) memory.
func SpanningTree(g *graph.Graph) (*graph.Snapshot, []int, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	s := g.Snapshot()
	n := s.Order()
	parent := make([]int, n)
	if n == 0 {
		return s, parent, nil
	}

	// Undirected weighted adjacency; seq preserves snapshot edge order for
	// the deterministic tie break. Self-loops never extend a tree.
	type arc struct {
		to  int
		w   float64
		seq int
	}
	adj := make([][]arc, n)
	for i, e := range s.Edges {
		if e.Source == e.Target {
			continue
		}
		adj[e.Source] = append(adj[e.Source], arc{to: e.Target, w: e.Weight, seq: i})
		adj[e.Target] = append(adj[e.Target], arc{to: e.Source, w: e.Weight, seq: i})
	}

	visited := make([]bool, n)
	for i := range parent {
		parent[i] = i
	}

	pq := &candidatePQ{}
	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		// Grow one tree of the forest from this root.
		visited[root] = true
		*pq = (*pq)[:0]
		heap.Init(pq)
		for _, a := range adj[root] {
			heap.Push(pq, candidate{from: root, to: a.to, w: a.w, seq: a.seq})
		}
		for pq.Len() > 0 {
			c := heap.Pop(pq).(candidate)
			if visited[c.to] {
				continue // would close a cycle
			}
			visited[c.to] = true
			parent[c.to] = c.from
			for _, a := range adj[c.to] {
				if !visited[a.to] {
					heap.Push(pq, candidate{from: c.to, to: a.to, w: a.w, seq: a.seq})
				}
			}
		}
	}

	return s, parent, nil
}

// candidate is one frontier edge considered by Prim.
type candidate struct {
	from int
	to   int
	w    float64
	seq  int
}

// candidatePQ is a min-heap of frontier edges ordered by (weight, snapshot
// edge order).
type candidatePQ []candidate

func (pq candidatePQ) Len() int { return len(pq) }

func (pq candidatePQ) Less(i, j int) bool {
	if pq[i].w != pq[j].w {
		return pq[i].w < pq[j].w
	}

	return pq[i].seq < pq[j].seq
}

func (pq candidatePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *candidatePQ) Push(x interface{}) { *pq = append(*pq, x.(candidate)) }

func (pq *candidatePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
