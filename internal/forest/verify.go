package forest

import "fmt"

// Verify checks the structural invariants of the forest and returns an error
// wrapping ErrInvariant for the first violation found:
//
//   - every ring is a valid circular doubly linked list of live nodes;
//   - parent pointers agree with ring membership, degrees with ring lengths;
//   - Size = 1 + sum of children's sizes;
//   - heap order: no child holds a smaller element than its parent;
//   - Min is a root holding the smallest root element;
//   - roots are never marked;
//   - the live node count matches Len and every live node is filed under
//     its element's bucket, and nowhere else.
func (f *Forest[E]) Verify() error {
	if (f.n == 0) != (f.Min == Nil) {
		return fmt.Errorf("%w: len %d but min %d", ErrInvariant, f.n, f.Min)
	}
	if f.Min == Nil {
		return f.verifyIndex(0)
	}
	if !f.Live(f.Min) || f.nodes[f.Min].Parent != Nil {
		return fmt.Errorf("%w: min %d is not a live root", ErrInvariant, f.Min)
	}

	roots, err := f.checkRing(f.Min, Nil)
	if err != nil {
		return err
	}
	seen := 0
	for _, r := range roots {
		if f.Less(r, f.Min) {
			return fmt.Errorf("%w: root %v below min %v", ErrInvariant, f.nodes[r].Elem, f.nodes[f.Min].Elem)
		}
		if f.nodes[r].Marked {
			return fmt.Errorf("%w: root %v is marked", ErrInvariant, f.nodes[r].Elem)
		}
		size, err := f.checkTree(r)
		if err != nil {
			return err
		}
		seen += size
	}
	if seen != f.n {
		return fmt.Errorf("%w: reachable %d nodes, len %d", ErrInvariant, seen, f.n)
	}

	return f.verifyIndex(seen)
}

// checkTree validates the subtree under root r without recursion and returns
// its node count.
func (f *Forest[E]) checkTree(r int32) (int, error) {
	// post-order sizes: visit children first by pushing a marker
	type frame struct {
		i    int32
		done bool
	}
	stack := []frame{{i: r}}
	count := 0
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd := &f.nodes[top.i]
		if top.done {
			want := 1
			for _, c := range f.Children(top.i) {
				want += f.nodes[c].Size
			}
			if nd.Size != want {
				return 0, fmt.Errorf("%w: node %v size %d, want %d", ErrInvariant, nd.Elem, nd.Size, want)
			}
			continue
		}
		count++
		if count > len(f.nodes) {
			return 0, fmt.Errorf("%w: cycle through node %v", ErrInvariant, nd.Elem)
		}
		stack = append(stack, frame{i: top.i, done: true})

		if nd.Child == Nil {
			if nd.Degree != 0 {
				return 0, fmt.Errorf("%w: node %v degree %d without children", ErrInvariant, nd.Elem, nd.Degree)
			}
			continue
		}
		kids, err := f.checkRing(nd.Child, top.i)
		if err != nil {
			return 0, err
		}
		if len(kids) != nd.Degree {
			return 0, fmt.Errorf("%w: node %v degree %d, %d children", ErrInvariant, nd.Elem, nd.Degree, len(kids))
		}
		for _, c := range kids {
			if f.Less(c, top.i) {
				return 0, fmt.Errorf("%w: child %v below parent %v", ErrInvariant, f.nodes[c].Elem, nd.Elem)
			}
			stack = append(stack, frame{i: c})
		}
	}

	return count, nil
}

// checkRing walks the ring at head, checking links, liveness and parent.
func (f *Forest[E]) checkRing(head, parent int32) ([]int32, error) {
	var members []int32
	for x := head; ; {
		if !f.Live(x) {
			return nil, fmt.Errorf("%w: ring reaches dead slot %d", ErrInvariant, x)
		}
		nd := &f.nodes[x]
		if nd.Parent != parent {
			return nil, fmt.Errorf("%w: node %v parent %d, want %d", ErrInvariant, nd.Elem, nd.Parent, parent)
		}
		if !f.Live(nd.Right) || f.nodes[nd.Right].Left != x {
			return nil, fmt.Errorf("%w: broken sibling link at node %v", ErrInvariant, nd.Elem)
		}
		members = append(members, x)
		if len(members) > len(f.nodes) {
			return nil, fmt.Errorf("%w: ring at %v does not close", ErrInvariant, f.nodes[head].Elem)
		}
		x = nd.Right
		if x == head {
			return members, nil
		}
	}
}

func (f *Forest[E]) verifyIndex(reachable int) error {
	live := 0
	for i := range f.nodes {
		if !f.nodes[i].live {
			continue
		}
		live++
		if !f.Index.Contains(int32(i), f.nodes[i].Elem) {
			return fmt.Errorf("%w: node %v missing from index", ErrInvariant, f.nodes[i].Elem)
		}
	}
	if live != reachable {
		return fmt.Errorf("%w: %d live slots, %d reachable", ErrInvariant, live, reachable)
	}
	if f.Index.Len() != live {
		return fmt.Errorf("%w: index holds %d nodes, %d live", ErrInvariant, f.Index.Len(), live)
	}
	for b, set := range f.Index.m {
		for i := range set {
			if !f.Live(i) || f.Index.Bucket(f.nodes[i].Elem) != b {
				return fmt.Errorf("%w: stale index entry %d in bucket %d", ErrInvariant, i, b)
			}
		}
	}

	return nil
}
