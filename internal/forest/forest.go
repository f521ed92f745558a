package forest

import (
	"cmp"
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	// ErrDegreeOverflow is returned when consolidation would need a degree
	// slot beyond the configured maximum.
	ErrDegreeOverflow = errors.New("forest: degree table overflow")

	// ErrInvariant is wrapped by every Verify failure.
	ErrInvariant = errors.New("forest: invariant violated")
)

// Compare orders two values of an ordered type: -1, 0 or +1. NaN sorts
// before every other float and equals itself.
func Compare[E constraints.Ordered](a, b E) int {
	return cmp.Compare(a, b)
}

// Forest is a heap-ordered forest whose roots form one ring. Min is the root
// holding the smallest element and doubles as the root ring head.
type Forest[E any] struct {
	Arena[E]
	Index *Index[E]
	Min   int32

	cmp   func(a, b E) int
	n     int
	table []int32
}

// New creates an empty forest. maxDegree sizes the consolidation table;
// buckets sizes the value index.
func New[E any](cmp func(a, b E) int, hash Hasher[E], maxDegree, buckets int) *Forest[E] {
	return &Forest[E]{
		Index: NewIndex(hash, buckets),
		Min:   Nil,
		cmp:   cmp,
		table: make([]int32, maxDegree),
	}
}

// Len returns the number of live elements.
func (f *Forest[E]) Len() int { return f.n }

// MaxDegree returns the size of the consolidation table.
func (f *Forest[E]) MaxDegree() int { return len(f.table) }

// Cmp compares two elements with the forest's ordering.
func (f *Forest[E]) Cmp(a, b E) int { return f.cmp(a, b) }

// Less reports whether node i holds a strictly smaller element than node j.
func (f *Forest[E]) Less(i, j int32) bool {
	return f.cmp(f.nodes[i].Elem, f.nodes[j].Elem) < 0
}

// AddRoot allocates a node for e, files it in the index, splices it into the
// root ring and updates Min. No consolidation happens here.
func (f *Forest[E]) AddRoot(e E) int32 {
	i := f.Alloc(e)
	f.Index.Add(i, e)
	f.n++
	f.PushRoot(i)

	return i
}

// PushRoot splices the self-looped root i into the root ring and updates Min.
func (f *Forest[E]) PushRoot(i int32) {
	if f.Min == Nil {
		f.Min = i
		return
	}
	f.Splice(f.Min, i)
	if f.Less(i, f.Min) {
		f.Min = i
	}
}

// RemoveMin detaches the minimum root, moves its children to the root ring
// (clearing their parent and mark), frees its slot and returns any remaining
// root, or Nil when the forest became empty. Min is left Nil; the caller
// consolidates and rescans.
func (f *Forest[E]) RemoveMin() int32 {
	m := f.Min
	if m == Nil {
		return Nil
	}
	kids := f.nodes[m].Child
	if kids != Nil {
		for c := kids; ; {
			f.nodes[c].Parent = Nil
			f.nodes[c].Marked = false
			c = f.nodes[c].Right
			if c == kids {
				break
			}
		}
	}

	rest := f.nodes[m].Right
	if rest == m {
		rest = Nil
	}
	f.Cut(m)
	switch {
	case kids == Nil:
	case rest == Nil:
		rest = kids
	default:
		f.Splice(rest, kids)
	}

	f.Index.Remove(m, f.nodes[m].Elem)
	f.Release(m)
	f.n--
	f.Min = Nil

	return rest
}

// Consolidate merges roots of equal degree until at most one root per degree
// remains, and returns one of the surviving roots (Nil for an empty ring).
//
// The ring is snapshotted and walked once. For each root the degree table is
// probed; a collision links the two roots and the survivor is probed again at
// its new degree. The larger element becomes the child. On equal elements the
// root met later in the walk becomes the child of the one already in the
// table.
//
// A degree that does not fit the table stops the walk with ErrDegreeOverflow.
// Every link done so far is complete, so the forest is still a valid heap.
func (f *Forest[E]) Consolidate(head int32) (int32, error) {
	if head == Nil {
		return Nil, nil
	}
	for d := range f.table {
		f.table[d] = Nil
	}
	roots := append([]int32(nil), f.Ring(head)...)

	var x int32
	for _, r := range roots {
		x = r
		d := f.nodes[x].Degree
		for {
			if d >= len(f.table) {
				return x, fmt.Errorf("%w: degree %d, table holds %d", ErrDegreeOverflow, d, len(f.table))
			}
			y := f.table[d]
			if y == Nil {
				break
			}
			f.table[d] = Nil
			if f.Less(x, y) {
				f.Link(x, y)
			} else {
				f.Link(y, x)
				x = y
			}
			d = f.nodes[x].Degree
		}
		f.table[d] = x
	}

	return x, nil
}

// MinRoot scans the ring containing head and returns its smallest member.
func (f *Forest[E]) MinRoot(head int32) int32 {
	if head == Nil {
		return Nil
	}
	best := head
	for x := f.nodes[head].Right; x != head; x = f.nodes[x].Right {
		if f.Less(x, best) {
			best = x
		}
	}

	return best
}

// Lookup finds a live node holding e. With duplicates, any one of them.
func (f *Forest[E]) Lookup(e E) (int32, bool) {
	for i := range f.Index.Candidates(e) {
		if f.cmp(f.nodes[i].Elem, e) == 0 {
			return i, true
		}
	}

	return Nil, false
}

// SetElem replaces node i's element and re-files it in the index.
func (f *Forest[E]) SetElem(i int32, e E) {
	old := f.nodes[i].Elem
	f.nodes[i].Elem = e
	f.Index.Move(i, old, e)
}

// SwapElems exchanges the elements of nodes i and j, keeping the index exact.
func (f *Forest[E]) SwapElems(i, j int32) {
	ei, ej := f.nodes[i].Elem, f.nodes[j].Elem
	f.Index.Remove(i, ei)
	f.Index.Remove(j, ej)
	f.nodes[i].Elem, f.nodes[j].Elem = ej, ei
	f.Index.Add(i, ej)
	f.Index.Add(j, ei)
}

// Absorb moves every node of o into f, splices o's root ring into f's and
// updates Min. o is left empty and reusable.
func (f *Forest[E]) Absorb(o *Forest[E]) {
	if o.n > 0 {
		off := f.absorb(&o.Arena)
		for i := int32(0); i < int32(len(o.nodes)); i++ {
			if o.nodes[i].live {
				f.Index.Add(i+off, o.nodes[i].Elem)
			}
		}
		f.n += o.n
		f.PushRoot(o.Min + off)
	}
	o.reset()
	o.Index.reset()
	o.Min = Nil
	o.n = 0
}

// Roots returns a copy of the root ring starting at Min.
func (f *Forest[E]) Roots() []int32 {
	return append([]int32(nil), f.Ring(f.Min)...)
}

// Children returns a copy of node i's children ring.
func (f *Forest[E]) Children(i int32) []int32 {
	return append([]int32(nil), f.Ring(f.nodes[i].Child)...)
}

// MarkedCount returns the number of marked live nodes.
func (f *Forest[E]) MarkedCount() int {
	c := 0
	for i := range f.nodes {
		if f.nodes[i].live && f.nodes[i].Marked {
			c++
		}
	}

	return c
}
