// Package core defines the small weighted-graph model shared by the
// heap-driven graph algorithms (dijkstra, prim_kruskal).
//
// Algorithms accept the read-only Graph interface. AdjacencyList is the
// bundled implementation: a map of outgoing arcs guarded by a sync.RWMutex,
// so it may be read by concurrent algorithm runs while being built elsewhere.
//
// Undirected edges are stored as two opposite arcs (AddEdge); one-way arcs
// come from AddArc; mixing both yields a mixed graph.
package core

import (
	"errors"
	"slices"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Arc is a weighted one-way connection to vertex To.
type Arc struct {
	To     string
	Weight int64
}

// Edge is an arc together with its origin.
type Edge struct {
	From   string
	To     string
	Weight int64
}

// Graph is the read-only view graph algorithms need.
// Arcs must list every arc leaving id; undirected edges appear on both ends.
type Graph interface {
	HasVertex(id string) bool
	Vertices() []string
	Arcs(id string) []Arc
}

// AdjacencyList is a Graph backed by a map of outgoing arcs.
// The zero value is not usable; call NewAdjacencyList.
type AdjacencyList struct {
	mu  sync.RWMutex
	out map[string][]Arc
}

// NewAdjacencyList returns an empty graph.
func NewAdjacencyList() *AdjacencyList {
	return &AdjacencyList{out: make(map[string][]Arc)}
}

// AddVertex registers id. Adding an existing vertex is a no-op.
func (g *AdjacencyList) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensure(id)

	return nil
}

// AddArc adds a one-way arc from→to, creating both endpoints as needed.
func (g *AdjacencyList) AddArc(from, to string, w int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensure(to)
	g.out[from] = append(g.out[from], Arc{To: to, Weight: w})

	return nil
}

// AddEdge adds an undirected edge as two opposite arcs.
// A self-loop is stored once.
func (g *AdjacencyList) AddEdge(a, b string, w int64) error {
	if a == "" || b == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensure(a)
	g.ensure(b)
	g.out[a] = append(g.out[a], Arc{To: b, Weight: w})
	if a != b {
		g.out[b] = append(g.out[b], Arc{To: a, Weight: w})
	}

	return nil
}

func (g *AdjacencyList) ensure(id string) {
	if _, ok := g.out[id]; !ok {
		g.out[id] = nil
	}
}

// HasVertex reports whether id was added.
func (g *AdjacencyList) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.out[id]

	return ok
}

// Vertices returns all vertex IDs in ascending order.
func (g *AdjacencyList) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.out))
	for id := range g.out {
		ids = append(ids, id)
	}
	g.mu.RUnlock()
	slices.Sort(ids)

	return ids
}

// Arcs returns a copy of the arcs leaving id, in insertion order.
func (g *AdjacencyList) Arcs(id string) []Arc {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.out[id])
}

// Edges lists every arc of g as an Edge, ordered by origin then insertion.
func Edges(g Graph) []Edge {
	var es []Edge
	for _, u := range g.Vertices() {
		for _, a := range g.Arcs(u) {
			es = append(es, Edge{From: u, To: a.To, Weight: a.Weight})
		}
	}

	return es
}

// Symmetric reports whether every arc u→v of weight w is matched by an arc
// v→u of the same weight, with equal multiplicity. Self-loops match themselves.
func Symmetric(g Graph) bool {
	type key struct {
		a, b string
		w    int64
	}
	count := make(map[key]int)
	for _, e := range Edges(g) {
		if e.From == e.To {
			continue
		}
		count[key{e.From, e.To, e.Weight}]++
		count[key{e.To, e.From, e.Weight}]--
	}
	for _, c := range count {
		if c != 0 {
			return false
		}
	}

	return true
}
