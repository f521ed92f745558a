package forest

// Nil marks an absent node reference (no parent, no children, empty heap).
const Nil int32 = -1

// Node is a single tree node stored in an Arena.
//
// Parent, Child, Left and Right are arena indices. Left and Right are never
// Nil for a live node: a solitary node points to itself on both sides.
// Child is any one member of the children ring (the "head"), or Nil.
type Node[E any] struct {
	Elem   E     // element held by the node
	Degree int   // number of direct children
	Size   int   // nodes in the subtree rooted here, this node included
	Parent int32 // Nil for roots
	Child  int32 // head of the children ring, Nil when Degree == 0
	Left   int32 // previous sibling in the ring
	Right  int32 // next sibling in the ring
	Marked bool  // lost a child since last becoming a child (Fibonacci only)

	live bool
}

// Arena owns every node of one heap. Indices stay stable for the lifetime of
// a node; released slots are reused by later allocations.
type Arena[E any] struct {
	nodes []Node[E]
	free  []int32
	buf   []int32 // scratch for ring snapshots
}

// At returns the node stored at index i. The pointer is invalidated by the
// next Alloc, so callers must not hold it across allocations.
func (a *Arena[E]) At(i int32) *Node[E] { return &a.nodes[i] }

// Alloc stores e in a fresh self-looped root node and returns its index.
func (a *Arena[E]) Alloc(e E) int32 {
	var i int32
	if n := len(a.free); n > 0 {
		i = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		i = int32(len(a.nodes))
		a.nodes = append(a.nodes, Node[E]{})
	}
	a.nodes[i] = Node[E]{
		Elem:   e,
		Size:   1,
		Parent: Nil,
		Child:  Nil,
		Left:   i,
		Right:  i,
		live:   true,
	}

	return i
}

// Release returns slot i to the free list. The node must already be detached
// from every ring.
func (a *Arena[E]) Release(i int32) {
	a.nodes[i] = Node[E]{Parent: Nil, Child: Nil, Left: Nil, Right: Nil}
	a.free = append(a.free, i)
}

// Live reports whether slot i currently holds a node.
func (a *Arena[E]) Live(i int32) bool {
	return i >= 0 && int(i) < len(a.nodes) && a.nodes[i].live
}

// Slots returns the number of slots ever allocated, live or free.
func (a *Arena[E]) Slots() int { return len(a.nodes) }

// absorb appends every slot of o to a, shifting o's internal references by
// the returned offset. o is left untouched; the caller resets it.
func (a *Arena[E]) absorb(o *Arena[E]) int32 {
	off := int32(len(a.nodes))
	shift := func(i int32) int32 {
		if i == Nil {
			return Nil
		}
		return i + off
	}
	for _, nd := range o.nodes {
		nd.Parent = shift(nd.Parent)
		nd.Child = shift(nd.Child)
		nd.Left = shift(nd.Left)
		nd.Right = shift(nd.Right)
		a.nodes = append(a.nodes, nd)
	}
	for _, i := range o.free {
		a.free = append(a.free, i+off)
	}

	return off
}

func (a *Arena[E]) reset() {
	a.nodes = nil
	a.free = nil
	a.buf = a.buf[:0]
}
