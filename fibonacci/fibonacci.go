package fibonacci

import (
	"fmt"
	"io"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/heapforest/internal/forest"
)

// Heap is a Fibonacci min-heap of E. The zero value is not usable; build one
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

// PeekMin returns the smallest element without removing it. O(1).
func (h *Heap[E]) PeekMin() (E, bool) {
	if h.f.Min == forest.Nil {
		var zero E
		return zero, false
	}

	return h.f.At(h.f.Min).Elem, true
}

// Insert adds v as a new single-node tree in the root ring. O(1); nothing is
// consolidated until the next DeleteMin. Returns ErrDegreeOverflow, leaving
// the heap unchanged, when the heap is already at capacity.
func (h *Heap[E]) Insert(v E) error {
	if h.f.Len() >= h.Cap() {
		return fmt.Errorf("%w: heap holds %d elements", ErrDegreeOverflow, h.f.Len())
	}
	h.f.AddRoot(v)

	return nil
}

// DeleteMin removes the smallest element: its children join the root ring,
// equal-degree roots are linked, and the new minimum is found by scanning
// the whole root ring. Amortized O(log n). No-op on an empty heap.
func (h *Heap[E]) DeleteMin() {
	if h.f.Min == forest.Nil {
		return
	}
	rest := h.f.RemoveMin()
	head, err := h.f.Consolidate(rest)
	h.f.Min = h.f.MinRoot(head)
	if err != nil {
		// capacity is enforced on growth; reaching this means corruption
		panic(fmt.Errorf("%w: %v", ErrDegreeOverflow, err))
	}
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
// chosen.
//
// If the new value drops strictly below its parent's, the node is cut to the
// root ring and the cut cascades up through marked ancestors; the first
// unmarked non-root ancestor gets marked. Amortized O(1) in links and cuts;
// each cut also walks the node's ancestors to keep subtree sizes exact, so
// a single call costs O(depth) in the worst case.
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

	p := h.f.At(x).Parent
	if p == forest.Nil {
		if h.f.Less(x, h.f.Min) {
			h.f.Min = x
		}
		return nil
	}
	if !h.f.Less(x, p) {
		return nil
	}

	h.cut(x)
	for {
		gp := h.f.At(p).Parent
		if gp == forest.Nil {
			break // roots are never marked
		}
		if !h.f.At(p).Marked {
			h.f.At(p).Marked = true
			break
		}
		h.cut(p)
		p = gp
	}

	return nil
}

// cut moves non-root x to the root ring, unmarked, and refreshes Min.
func (h *Heap[E]) cut(x int32) {
	h.f.Unlink(x)
	h.f.PushRoot(x)
}

// Merge moves every element of other into h by splicing the root rings; no
// consolidation happens. other is left empty. Returns ErrNilHeap,
// ErrSelfMerge, or ErrDegreeOverflow when the union would exceed h's
// capacity; on error neither heap changes.
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

	return nil
}

// RootCount returns the number of trees in the root ring.
func (h *Heap[E]) RootCount() int { return h.f.RingLen(h.f.Min) }

// MarkedCount returns the number of marked nodes.
func (h *Heap[E]) MarkedCount() int { return h.f.MarkedCount() }

// Potential returns RootCount + 2·MarkedCount, the quantity the amortized
// bounds are charged against.
func (h *Heap[E]) Potential() int { return h.RootCount() + 2*h.MarkedCount() }

// DebugDump writes a diagnostic picture of the forest and its value index.
func (h *Heap[E]) DebugDump(w io.Writer) error { return h.f.Dump(w) }

// Validate checks every structural invariant. On top of the shared checks it
// verifies the Fibonacci degree bound: a node of degree k roots at least
// F(k+2) nodes.
func (h *Heap[E]) Validate() error {
	if err := h.f.Verify(); err != nil {
		return err
	}
	stack := h.f.Roots()
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd := h.f.At(x)
		if floor := capacity(nd.Degree) + 1; nd.Size < floor {
			return fmt.Errorf("%w: degree-%d node %v roots %d nodes, want >= %d",
				forest.ErrInvariant, nd.Degree, nd.Elem, nd.Size, floor)
		}
		stack = append(stack, h.f.Children(x)...)
	}

	return nil
}
