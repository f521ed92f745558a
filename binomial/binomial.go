// Package binomial implements a mergeable min-heap as a forest of binomial
// trees whose roots form a circular ring.
//
// The heap is kept fully consolidated: after every public call there is at
// most one tree of each degree, so n elements live in exactly popcount(n)
// trees whose degrees are the set bits of n.
//
// Complexity:
//
//   - Insert, DeleteMin, Merge: O(log n)
//   - PeekMin, Len:             O(1)
//   - DecreaseKey:              O(log n), by swapping elements toward the root
//
// DecreaseKey here is deliberately not the Fibonacci cascading cut: a binomial
// tree must keep its exact shape, so the decreased value bubbles up by
// repeated exchange with its parent instead.
package binomial

import (
	"fmt"
	"io"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/heapforest/internal/forest"
)

// Heap is a binomial min-heap of E. The zero value is not usable; build one
// with New or NewFunc. A Heap is not safe for concurrent use.
type Heap[E any] struct {
	f    *forest.Forest[E]
	opts Options
}

// New returns an empty heap ordered by the natural order of E.
func New[E constraints.Ordered](opts ...Option) *Heap[E] {
	return NewFunc(forest.Compare[E], forest.DefaultHasher[E](), opts...)
}

// NewFunc returns an empty heap ordered by cmp (negative when a < b) with
// values located through hash. Values that compare equal must hash equal.
func NewFunc[E any](cmp func(a, b E) int, hash func(E) uint64, opts ...Option) *Heap[E] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Heap[E]{
		f:    forest.New(cmp, hash, cfg.MaxDegree, cfg.Buckets),
		opts: cfg,
	}
}

// Len returns the number of elements.
func (h *Heap[E]) Len() int { return h.f.Len() }

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[E]) IsEmpty() bool { return h.f.Len() == 0 }

// Cap returns the largest number of elements the heap accepts.
func (h *Heap[E]) Cap() int { return capacity(h.opts.MaxDegree) }

// PeekMin returns the smallest element without removing it.
func (h *Heap[E]) PeekMin() (E, bool) {
	if h.f.Min == forest.Nil {
		var zero E
		return zero, false
	}

	return h.f.At(h.f.Min).Elem, true
}

// Insert adds v. It returns ErrDegreeOverflow, leaving the heap unchanged,
// when the heap is already at capacity.
func (h *Heap[E]) Insert(v E) error {
	if h.f.Len() >= h.Cap() {
		return fmt.Errorf("%w: heap holds %d elements", ErrDegreeOverflow, h.f.Len())
	}
	h.f.AddRoot(v)
	h.consolidate(h.f.Min)

	return nil
}

// DeleteMin removes the smallest element. It is a no-op on an empty heap.
func (h *Heap[E]) DeleteMin() {
	if h.f.Min == forest.Nil {
		return
	}
	h.consolidate(h.f.RemoveMin())
}

// PopMin removes and returns the smallest element.
func (h *Heap[E]) PopMin() (E, bool) {
	v, ok := h.PeekMin()
	if ok {
		h.DeleteMin()
	}

	return v, ok
}

// Contains reports whether some element equals v.
func (h *Heap[E]) Contains(v E) bool {
	_, ok := h.f.Lookup(v)
	return ok
}

// DecreaseKey replaces one element equal to old with cur, which must be
// strictly smaller. When several elements equal old, any one of them is
// chosen. The new value moves toward its root by swapping with every parent
// that is strictly larger.
//
// Errors: ErrNotDecreasing if cur >= old (checked first), ErrNotFound if no
// element equals old. On error the heap is unchanged.
func (h *Heap[E]) DecreaseKey(old, cur E) error {
	if h.f.Cmp(cur, old) >= 0 {
		return fmt.Errorf("%w: %v -> %v", ErrNotDecreasing, old, cur)
	}
	x, ok := h.f.Lookup(old)
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotFound, old)
	}

	h.f.SetElem(x, cur)
	for p := h.f.At(x).Parent; p != forest.Nil && h.f.Less(x, p); p = h.f.At(x).Parent {
		h.f.SwapElems(x, p)
		x = p
	}
	if h.f.At(x).Parent == forest.Nil && h.f.Less(x, h.f.Min) {
		h.f.Min = x
	}

	return nil
}

// Merge moves every element of other into h and consolidates. other is left
// empty. Returns ErrNilHeap, ErrSelfMerge, or ErrDegreeOverflow when the union
// would exceed h's capacity; on error neither heap changes.
//
// Both heaps must use the same ordering.
func (h *Heap[E]) Merge(other *Heap[E]) error {
	switch {
	case other == nil:
		return ErrNilHeap
	case other == h:
		return ErrSelfMerge
	case h.f.Len()+other.f.Len() > h.Cap():
		return fmt.Errorf("%w: merged size %d", ErrDegreeOverflow, h.f.Len()+other.f.Len())
	}
	h.f.Absorb(other.f)
	h.consolidate(h.f.Min)

	return nil
}

// RootDegrees returns the degrees of the trees in the root ring, ascending.
func (h *Heap[E]) RootDegrees() []int {
	roots := h.f.Roots()
	out := make([]int, len(roots))
	for k, r := range roots {
		out[k] = h.f.At(r).Degree
	}
	slices.Sort(out)

	return out
}

// DebugDump writes a diagnostic picture of the forest and its value index.
func (h *Heap[E]) DebugDump(w io.Writer) error { return h.f.Dump(w) }

// Validate checks every structural invariant, including the binomial shape
// of each tree and the uniqueness of root degrees.
func (h *Heap[E]) Validate() error {
	if err := h.f.Verify(); err != nil {
		return err
	}
	seen := make(map[int]bool)
	for _, r := range h.f.Roots() {
		d := h.f.At(r).Degree
		if seen[d] {
			return fmt.Errorf("%w: two roots of degree %d", forest.ErrInvariant, d)
		}
		seen[d] = true
	}

	stack := h.f.Roots()
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd := h.f.At(x)
		if nd.Marked {
			return fmt.Errorf("%w: marked node %v in binomial heap", forest.ErrInvariant, nd.Elem)
		}
		if nd.Size != 1<<nd.Degree {
			return fmt.Errorf("%w: degree-%d tree at %v has %d nodes", forest.ErrInvariant, nd.Degree, nd.Elem, nd.Size)
		}
		kids := h.f.Children(x)
		degs := make([]int, len(kids))
		for k, c := range kids {
			degs[k] = h.f.At(c).Degree
		}
		slices.Sort(degs)
		for k, d := range degs {
			if d != k {
				return fmt.Errorf("%w: node %v children degrees %v", forest.ErrInvariant, nd.Elem, degs)
			}
		}
		stack = append(stack, kids...)
	}

	return nil
}

// consolidate links equal-degree roots starting from head and rescans the
// minimum. Capacity is checked before every growth, so an overflow here means
// the forest itself is corrupt.
func (h *Heap[E]) consolidate(head int32) {
	head, err := h.f.Consolidate(head)
	h.f.Min = h.f.MinRoot(head)
	if err != nil {
		panic(fmt.Errorf("%w: %v", ErrDegreeOverflow, err))
	}
}
