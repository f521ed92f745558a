package dijkstra

import (
	"cmp"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/heapforest/core"
	"github.com/katalvlaran/heapforest/fibonacci"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices of g.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (math.MaxInt64 if unreachable
//     or farther than MaxDistance).
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u; "" if none.
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. No arc in g can have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O(E + V log V) amortized
//   - Space: O(V)
func Dijkstra(g core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	vertices := g.Vertices()
	for _, u := range vertices {
		for _, a := range g.Arcs(u) {
			if a.Weight < 0 {
				return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, u, a.To, a.Weight)
			}
		}
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, len(vertices)),
		done:    make(map[string]bool, len(vertices)),
		pq: fibonacci.NewFunc(compareEntries, hashEntry,
			fibonacci.WithBuckets(max(1, len(vertices)))),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, len(vertices))
	}

	r.init(vertices)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// entry is a frontier item. Each vertex has at most one live entry,
// so (dist, id) pairs are unique within the heap.
type entry struct {
	dist int64
	id   string
}

func compareEntries(a, b entry) int {
	if c := cmp.Compare(a.dist, b.dist); c != 0 {
		return c
	}
	return cmp.Compare(a.id, b.id)
}

// hashEntry ignores dist so a vertex keeps its bucket across decrease-key.
func hashEntry(e entry) uint64 { return xxhash.Sum64String(e.id) }

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       core.Graph
	options Options
	dist    map[string]int64
	prev    map[string]string
	done    map[string]bool // distance finalized
	pq      *fibonacci.Heap[entry]
}

func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.dist[v] = math.MaxInt64
		if r.prev != nil {
			r.prev[v] = ""
		}
	}
	r.dist[r.options.Source] = 0
}

// process seeds the heap with the source and settles vertices in distance order.
func (r *runner) process() error {
	if err := r.pq.Insert(entry{dist: 0, id: r.options.Source}); err != nil {
		return err
	}
	for {
		e, ok := r.pq.PopMin()
		if !ok {
			return nil
		}
		r.done[e.id] = true
		if err := r.relax(e.id, e.dist); err != nil {
			return err
		}
	}
}

// relax tries to shorten the path to every neighbour of the settled vertex u.
// A neighbour already in the heap is updated in place with DecreaseKey.
func (r *runner) relax(u string, du int64) error {
	for _, a := range r.g.Arcs(u) {
		if a.Weight >= r.options.InfEdgeThreshold || r.done[a.To] {
			continue
		}
		nd := du + a.Weight
		if nd < du || nd > r.options.MaxDistance {
			continue // overflow or beyond cap
		}
		old := r.dist[a.To]
		if nd >= old {
			continue
		}

		var err error
		if old == math.MaxInt64 {
			err = r.pq.Insert(entry{dist: nd, id: a.To})
		} else {
			err = r.pq.DecreaseKey(entry{dist: old, id: a.To}, entry{dist: nd, id: a.To})
		}
		if err != nil {
			return fmt.Errorf("dijkstra: relax %s→%s: %w", u, a.To, err)
		}

		r.dist[a.To] = nd
		if r.prev != nil {
			r.prev[a.To] = u
		}
	}

	return nil
}
