package fibonacci

import "github.com/katalvlaran/heapforest/internal/forest"

// Shape is a read-only view of one node, for white-box tests.
type Shape[E any] struct {
	Parent   E
	IsRoot   bool
	Marked   bool
	Degree   int
	Children []E
}

// ShapeOf describes the node currently holding v.
func (h *Heap[E]) ShapeOf(v E) (Shape[E], bool) {
	x, ok := h.f.Lookup(v)
	if !ok {
		return Shape[E]{}, false
	}
	nd := h.f.At(x)
	s := Shape[E]{
		IsRoot: nd.Parent == forest.Nil,
		Marked: nd.Marked,
		Degree: nd.Degree,
	}
	if !s.IsRoot {
		s.Parent = h.f.At(nd.Parent).Elem
	}
	for _, c := range h.f.Children(x) {
		s.Children = append(s.Children, h.f.At(c).Elem)
	}

	return s, true
}

// RootValues lists the elements of the root ring.
func (h *Heap[E]) RootValues() []E {
	var out []E
	for _, r := range h.f.Roots() {
		out = append(out, h.f.At(r).Elem)
	}
	return out
}
