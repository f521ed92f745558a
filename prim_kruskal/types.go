// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/heapforest/core"
)

// ErrInvalidGraph indicates that MST algorithms require an undirected graph.
// Returned when graph is nil or some arc has no matching reverse arc.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires an undirected graph")

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// MethodPrim selects Prim's algorithm (grow from a root using a binomial heap with decrease-key).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (drain edges from a binomial heap, union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
//
// Fields:
//
//	Method string: one of MethodPrim or MethodKruskal.
//	Root   string: start vertex ID for Prim; ignored when Method == MethodKruskal.
type MSTOptions struct {
	Method string
	Root   string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   "",
	}
}

// Compute applies opts over DefaultOptions and runs the selected algorithm.
// An unknown method yields ErrInvalidGraph.
func Compute(graph core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, cfg.Root)
	default:
		return nil, 0, ErrInvalidGraph
	}
}

// validate reports ErrInvalidGraph for nil or directed input.
func validate(graph core.Graph) error {
	if graph == nil || !core.Symmetric(graph) {
		return ErrInvalidGraph
	}

	return nil
}
