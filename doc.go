// Package heapforest collects two mergeable priority queues built on a shared
// forest of heap-ordered trees, plus the graph algorithms that lean on their
// decrease-key operation.
//
// What is inside?
//
//	A generic, dependency-light library that brings together:
//		• Binomial heap: eager consolidation, popcount(n) trees, O(log n) everything
//		• Fibonacci heap: lazy insert/merge, cascading cuts, O(1) amortized decrease-key
//		• Lookup by value: DecreaseKey(old, new) finds nodes through a hashed index
//		• Shortest paths: Dijkstra with a real decrease-key frontier
//		• Minimum spanning trees: Prim (decrease-key) and Kruskal (heap-drained edges)
//		• Replay: TOML operation scripts for both heaps (cmd/heapreplay)
//
// Layout:
//
//	binomial/       binomial heap facade
//	fibonacci/      Fibonacci heap facade
//	internal/forest node arena, sibling rings, consolidation, value index, dump & verify
//	core/           weighted Graph interface and AdjacencyList
//	dijkstra/       single-source shortest paths over a Fibonacci heap
//	prim_kruskal/   MST algorithms over a binomial heap
//	internal/replay script loader and runner
//	cmd/heapreplay  CLI front end for replay
//
// Quick ASCII example (Fibonacci heap after a few inserts and one DeleteMin):
//
//	min → [2] ─── [7] ─── [4]          root ring, degrees 2, 0, 1
//	       │  ╲           │
//	      [5] [6]        [9]
//	       │
//	      [8]
//
// Heaps are not safe for concurrent use; guard them externally.
//
//	go get github.com/katalvlaran/heapforest
package heapforest
