// Package dijkstra implements Dijkstra's single-source shortest-path algorithm
// on graphs with non-negative integer weights, driven by a Fibonacci heap.
//
// Overview:
//
//   - Vertices are settled in increasing distance order by repeatedly popping
//     the minimum of a fibonacci.Heap.
//   - Each vertex owns at most one heap entry. When a shorter path is found the
//     entry is lowered in place with DecreaseKey instead of pushing a duplicate,
//     so the heap never holds more than V entries.
//   - Supports optional path reconstruction, distance caps, and impassable arcs.
//
// Graph model:
//
// Dijkstra reads any core.Graph. core.AdjacencyList is the bundled
// implementation: AddArc adds a one-way arc and AddEdge adds both directions,
// which is how undirected and mixed graphs are built.
//
// Options:
//
//   - Source(string):               required, the starting vertex ID.
//   - WithReturnPath():             return a predecessor map; otherwise prev == nil.
//   - WithMaxDistance(int64):       vertices farther than the cap stay at math.MaxInt64.
//   - WithInfEdgeThreshold(int64):  arcs with weight ≥ threshold are skipped.
//
// Complexity:
//
//   - Time:  O(E + V log V) amortized (O(1) DecreaseKey, O(log V) PopMin).
//   - Space: O(V) for distances, predecessors and the heap.
//
// Errors (sentinel):
//
//   - ErrEmptySource     if the provided source ID is empty.
//   - ErrNilGraph        if the provided graph is nil.
//   - ErrVertexNotFound  if the source vertex does not exist in the graph.
//   - ErrNegativeWeight  if a negative arc weight is detected (O(E) pre-scan).
//   - ErrBadMaxDistance  (panic) if MaxDistance < 0.
//   - ErrBadInfThreshold (panic) if InfEdgeThreshold <= 0.
//
// Thread safety:
//
//   - Dijkstra is safe for concurrent calls as long as the Graph is not mutated.
package dijkstra
