package prim_kruskal

import (
	"cmp"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/heapforest/binomial"
	"github.com/katalvlaran/heapforest/core"
)

// candidate is a vertex outside the tree with its cheapest known connecting weight.
type candidate struct {
	w  int64
	id string
}

func compareCandidates(a, b candidate) int {
	if c := cmp.Compare(a.w, b.w); c != 0 {
		return c
	}
	return cmp.Compare(a.id, b.id)
}

// Prim computes the Minimum Spanning Tree (MST) of an undirected graph
// by growing outwards from root.
//
// Every vertex outside the tree sits in a binomial heap at most once, keyed by
// the lightest edge connecting it to the tree. A lighter edge lowers the key in
// place with DecreaseKey.
//
// Error Conditions:
//   - ErrInvalidGraph        : graph is nil or has an unmatched directed arc.
//   - ErrEmptyRoot           : root is empty.
//   - core.ErrVertexNotFound : root does not exist in the graph.
//   - ErrDisconnected        : |V| == 0, or some vertex is unreachable from root.
//
// Complexity: O(E log V) time, O(V) memory.
func Prim(graph core.Graph, root string) ([]core.Edge, int64, error) {
	if err := validate(graph); err != nil {
		return nil, 0, err
	}

	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return nil, 0, core.ErrVertexNotFound
	}
	n := len(vertices)
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	var (
		inTree = make(map[string]bool, n)
		best   = make(map[string]int64, n)  // current heap key per queued vertex
		via    = make(map[string]string, n) // tree endpoint of that key's edge
		mst    = make([]core.Edge, 0, n-1)
		total  int64
		pq     = binomial.NewFunc(compareCandidates,
			func(c candidate) uint64 { return xxhash.Sum64String(c.id) },
			binomial.WithBuckets(n))
	)

	if err := pq.Insert(candidate{w: 0, id: root}); err != nil {
		return nil, 0, err
	}
	best[root] = 0
	for len(mst) < n-1 {
		c, ok := pq.PopMin()
		if !ok {
			return nil, 0, ErrDisconnected
		}
		inTree[c.id] = true
		if c.id != root {
			mst = append(mst, core.Edge{From: via[c.id], To: c.id, Weight: c.w})
			total += c.w
		}

		for _, a := range graph.Arcs(c.id) {
			if inTree[a.To] {
				continue
			}
			old, queued := best[a.To]
			switch {
			case !queued:
				if err := pq.Insert(candidate{w: a.Weight, id: a.To}); err != nil {
					return nil, 0, err
				}
			case a.Weight < old:
				if err := pq.DecreaseKey(candidate{w: old, id: a.To}, candidate{w: a.Weight, id: a.To}); err != nil {
					return nil, 0, fmt.Errorf("prim_kruskal: lower %s: %w", a.To, err)
				}
			default:
				continue
			}
			best[a.To] = a.Weight
			via[a.To] = c.id
		}
	}

	return mst, total, nil
}
