// Package forest holds the machinery shared by the binomial and Fibonacci
// heaps: an arena of tree nodes addressed by int32 indices, the circular
// sibling ring primitives (Splice, Cut, Link, Unlink), degree-bucket
// consolidation, the value index used to find nodes by element, a
// diagnostic dump and an invariant verifier.
//
// Layout:
//
//	roots:   [2] <-> [5] <-> [3] <-> (back to [2])     Min = [2]
//	           |       |
//	children: [7]     [9] <-> [6]
//
// Every node sits in exactly one ring: the root ring, or the children ring of
// its parent. A solitary node is a ring of one (Left == Right == itself).
// Nil (-1) stands for "no node". The arena owns every node; freed slots are
// recycled through a free list, so nothing is ever deleted recursively.
//
// Nothing here is safe for concurrent use. Callers wrap a whole heap in a
// single mutex if they must share it.
package forest
