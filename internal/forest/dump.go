package forest

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// Dump writes a human-readable picture of the forest: a header, one line per
// node in depth-first order (indented by depth), then the non-empty index
// buckets. The format is for debugging only and may change.
func (f *Forest[E]) Dump(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "size=%d roots=%d min=%s\n", f.n, f.RingLen(f.Min), f.label(f.Min)); err != nil {
		return err
	}

	type frame struct {
		i     int32
		depth int
	}
	var stack []frame
	roots := f.Roots()
	for k := len(roots) - 1; k >= 0; k-- {
		stack = append(stack, frame{roots[k], 0})
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd := &f.nodes[top.i]
		_, err := fmt.Fprintf(w, "%sParent: %s, Node(%d): %v, Size: %d, Children: %s, Left: %s, Right: %s, Marked: %t\n",
			strings.Repeat("  ", top.depth),
			f.label(nd.Parent), nd.Degree, nd.Elem, nd.Size,
			f.label(nd.Child), f.label(nd.Left), f.label(nd.Right), nd.Marked)
		if err != nil {
			return err
		}
		kids := f.Children(top.i)
		for k := len(kids) - 1; k >= 0; k-- {
			stack = append(stack, frame{kids[k], top.depth + 1})
		}
	}

	keys := make([]uint64, 0, len(f.Index.m))
	for b := range f.Index.m {
		keys = append(keys, b)
	}
	slices.Sort(keys)
	for _, b := range keys {
		members := make([]int32, 0, len(f.Index.m[b]))
		for i := range f.Index.m[b] {
			members = append(members, i)
		}
		slices.Sort(members)
		parts := make([]string, len(members))
		for k, i := range members {
			parts[k] = fmt.Sprint(f.nodes[i].Elem)
		}
		if _, err := fmt.Fprintf(w, "bucket[%d]: %s\n", b, strings.Join(parts, ", ")); err != nil {
			return err
		}
	}

	return nil
}

func (f *Forest[E]) label(i int32) string {
	if i == Nil {
		return "null"
	}
	return fmt.Sprint(f.nodes[i].Elem)
}
