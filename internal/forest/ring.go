package forest

// Splice joins the ring containing x and the ring containing y into one ring
// by re-linking four pointers. x and y must belong to different rings.
//
//	before:  ... lx <-> x ...      ... ly <-> y ...
//	after:   ... lx <-> y ... ly <-> x ... (one ring)
func (a *Arena[E]) Splice(x, y int32) {
	lx := a.nodes[x].Left
	ly := a.nodes[y].Left

	a.nodes[x].Left = ly
	a.nodes[ly].Right = x
	a.nodes[y].Left = lx
	a.nodes[lx].Right = y
}

// Cut removes n from its ring and leaves it as a self-loop. If n was the
// children head of its parent, the head moves to a surviving sibling, or to
// Nil when n was the only child. Parent, Degree and Size are not touched.
func (a *Arena[E]) Cut(n int32) {
	nd := &a.nodes[n]
	l, r := nd.Left, nd.Right
	if p := nd.Parent; p != Nil && a.nodes[p].Child == n {
		if r == n {
			a.nodes[p].Child = Nil
		} else {
			a.nodes[p].Child = r
		}
	}
	a.nodes[l].Right = r
	a.nodes[r].Left = l
	nd.Left, nd.Right = n, n
}

// Link makes root c a child of root p: c leaves the root ring, joins p's
// children ring, loses its mark, and p grows by one degree and c.Size nodes.
func (a *Arena[E]) Link(p, c int32) {
	a.Cut(c)
	cn := &a.nodes[c]
	cn.Parent = p
	cn.Marked = false

	pn := &a.nodes[p]
	if pn.Child == Nil {
		pn.Child = c
	} else {
		a.Splice(pn.Child, c)
	}
	pn.Degree++
	pn.Size += cn.Size
}

// Unlink detaches non-root c from its parent and leaves it as an unmarked,
// self-looped root. Every ancestor's Size shrinks by c.Size.
func (a *Arena[E]) Unlink(c int32) {
	p := a.nodes[c].Parent
	a.Cut(c)
	a.nodes[p].Degree--
	sz := a.nodes[c].Size
	for anc := p; anc != Nil; anc = a.nodes[anc].Parent {
		a.nodes[anc].Size -= sz
	}
	a.nodes[c].Parent = Nil
	a.nodes[c].Marked = false
}

// Ring returns the members of the ring containing head, starting at head and
// walking Right. The slice is scratch space reused by the next call.
func (a *Arena[E]) Ring(head int32) []int32 {
	a.buf = a.buf[:0]
	if head == Nil {
		return a.buf
	}
	for x := head; ; {
		a.buf = append(a.buf, x)
		x = a.nodes[x].Right
		if x == head {
			break
		}
	}

	return a.buf
}

// RingLen counts the members of the ring containing head.
func (a *Arena[E]) RingLen(head int32) int {
	if head == Nil {
		return 0
	}
	n := 0
	for x := head; ; {
		n++
		x = a.nodes[x].Right
		if x == head {
			return n
		}
	}
}
