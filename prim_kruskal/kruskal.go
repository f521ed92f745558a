package prim_kruskal

import (
	"cmp"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/heapforest/binomial"
	"github.com/katalvlaran/heapforest/core"
)

func compareEdges(a, b core.Edge) int {
	if c := cmp.Compare(a.Weight, b.Weight); c != 0 {
		return c
	}
	if c := cmp.Compare(a.From, b.From); c != 0 {
		return c
	}
	return cmp.Compare(a.To, b.To)
}

func hashEdge(e core.Edge) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(e.From)
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(e.To)

	return d.Sum64()
}

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected graph.
// Edges are drained in (weight, from, to) order from a binomial heap, and a
// disjoint-set with path compression and union by rank rejects cycles.
//
// Each undirected edge is considered once, as the arc with From < To.
// Self-loops are skipped.
//
// Error Conditions:
//   - ErrInvalidGraph  : graph is nil or has an unmatched directed arc.
//   - ErrDisconnected  : |V| == 0 or the graph is not fully connected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph core.Graph) ([]core.Edge, int64, error) {
	if err := validate(graph); err != nil {
		return nil, 0, err
	}

	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	pq := binomial.NewFunc(compareEdges, hashEdge)
	for _, e := range core.Edges(graph) {
		if e.From >= e.To {
			continue // mirror arc or self-loop
		}
		if err := pq.Insert(e); err != nil {
			return nil, 0, err
		}
	}

	parent := make(map[string]string, len(vertices))
	rank := make(map[string]int, len(vertices))
	for _, vid := range vertices {
		parent[vid] = vid
	}

	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	var (
		mst         []core.Edge
		totalWeight int64
		numVerts    = len(vertices)
	)
	for len(mst) < numVerts-1 {
		e, ok := pq.PopMin()
		if !ok {
			return nil, 0, ErrDisconnected
		}
		ru, rv := find(e.From), find(e.To)
		if ru == rv {
			continue
		}
		if rank[ru] < rank[rv] {
			ru, rv = rv, ru
		}
		parent[rv] = ru
		if rank[ru] == rank[rv] {
			rank[ru]++
		}
		mst = append(mst, e)
		totalWeight += e.Weight
	}

	return mst, totalWeight, nil
}
