package rrcf

import "fmt"

// Query descends from the root toward the given point, at each branch
// following the side of the cut the point falls into, and returns the
// leaf the descent lands on. This is a fast structural approximation,
// not an exact geometric nearest-neighbor search.
func (t *Tree) Query(point []float64) (Leaf, error) {
	if len(point) != t.dims {
		return Leaf{}, fmt.Errorf("%w: query point has dimension %d, want %d", ErrInvalidOperation, len(point), t.dims)
	}
	return Leaf{tree: t, id: t.descend(point)}, nil
}

// descend returns the handle of the leaf reached by cut traversal.
func (t *Tree) descend(point []float64) int {
	id := t.root
	for t.nodes[id].kind == kindBranch {
		nd := t.nodes[id]
		if point[nd.cutDim] <= nd.cutVal {
			id = nd.left
		} else {
			id = nd.right
		}
	}
	return id
}

// Traverse applies fn to every leaf in the tree in depth-first order.
// Branches are only used for recursion and are never passed to fn.
// fn must not mutate the tree.
func (t *Tree) Traverse(fn func(Leaf)) {
	t.walkLeaves(t.root, func(id int) { fn(Leaf{tree: t, id: id}) })
}

// walkLeaves applies fn to the handle of every leaf under id.
func (t *Tree) walkLeaves(id int, fn func(leaf int)) {
	if t.nodes[id].kind == kindLeaf {
		fn(id)
		return
	}
	t.walkLeaves(t.nodes[id].left, fn)
	t.walkLeaves(t.nodes[id].right, fn)
}
