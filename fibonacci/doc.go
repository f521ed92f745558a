// Package fibonacci implements a Fibonacci min-heap: a lazily consolidated
// forest of heap-ordered trees whose roots form a circular ring.
//
// Overview:
//
//   - Insert and Merge only splice rings; work is deferred.
//   - DeleteMin pays for the deferred work: the minimum's children join the
//     root ring, roots of equal degree are linked until each degree appears
//     at most once, and the new minimum is found by a full root-ring scan.
//   - DecreaseKey cuts a node whose new value drops below its parent's and
//     promotes it to a root. Each non-root may lose one child before it is
//     cut itself (cascading cut), which keeps tree degrees in O(log n).
//
// Complexity (amortized):
//
//	Insert      O(1)
//	PeekMin     O(1)
//	Merge       O(1) ring splice, plus O(m) to move the donor's m nodes
//	DeleteMin   O(log n)
//	DecreaseKey O(1) cuts and marks; each cut also adjusts the subtree
//	            sizes of the cut node's ancestors
//
// The amortization is charged against the potential
//
//	Φ = roots + 2·marked
//
// which Potential reports.
//
// Lookup by value:
//
// Callers never hold node handles. DecreaseKey locates the node through a
// bucketed value index (hash(value) mod Buckets → live nodes). When several
// live nodes share the old value, an arbitrary one of them is decreased.
//
// Errors (sentinel):
//
//   - ErrNotFound:       no element equals the old value.
//   - ErrNotDecreasing:  new value >= old value.
//   - ErrDegreeOverflow: Insert or Merge beyond Cap(); the heap is unchanged.
//   - ErrNilHeap, ErrSelfMerge: invalid Merge arguments.
//   - ErrBadMaxDegree, ErrBadBuckets: raised via panic by invalid options.
//
// Thread safety:
//
//   - A Heap is not safe for concurrent use. Consolidation and cascading cuts
//     can touch any part of the forest, so guard each call with one mutex if
//     the heap is shared.
package fibonacci
