package rrcf

import (
	"fmt"
	"math"
)

// InsertPoint adds a point to the tree under the given external index,
// which must not already be in use, and returns the new leaf.
//
// The point descends from the root. At each visited subtree a cut is
// sampled as if the point were part of that subtree's bounding box; if
// the cut falls strictly outside the unexpanded box, the point is an
// outlier relative to that subtree and is attached there: a new branch
// takes the subtree's place with the subtree and the new leaf as
// siblings. Otherwise the descent continues into the half-space
// containing the point. Subtree counts and leaf depths are repaired as
// part of the same operation.
//
// With Config.Tolerance > 0, a point within tolerance of an existing
// leaf is collapsed into it instead, incrementing its multiplicity.
func (t *Tree) InsertPoint(point []float64, index int) (Leaf, error) {
	if len(point) != t.dims {
		return Leaf{}, fmt.Errorf("%w: point has dimension %d, want %d", ErrInvalidOperation, len(point), t.dims)
	}
	if _, ok := t.leaves[index]; ok {
		return Leaf{}, fmt.Errorf("%w: %d", ErrDuplicateIndex, index)
	}

	if t.tol > 0 {
		if id, ok := t.duplicate(point); ok {
			t.nodes[id].count++
			for p := t.nodes[id].parent; p != noNode; p = t.nodes[p].parent {
				t.nodes[p].count++
			}
			t.leaves[index] = id
			return Leaf{tree: t, id: id}, nil
		}
	}

	var (
		cur     = t.root
		parent  = noNode
		depth   = 0
		dim     = -1
		val     float64
		newLeft bool
		found   bool
	)
	// The descent visits at most one node per level, so maxLeafDepth+1
	// iterations cover the longest possible root-to-leaf path. The cut at
	// a leaf's degenerate box always stops the descent, so the bound is
	// only a guard.
	maxIter := t.maxLeafDepth() + 1
	for i := 0; i < maxIter && !found; i++ {
		b := t.bbox(cur)
		d, cut, err := t.insertCut(point, b)
		if err != nil {
			return Leaf{}, err
		}
		nd := t.nodes[cur]
		switch {
		case cut < b.Min[d]:
			dim, val, newLeft, found = d, cut, true, true
		case cut > b.Max[d]:
			dim, val, newLeft, found = d, cut, false, true
		case nd.kind == kindLeaf:
			// The cut ties with the leaf's zero-width box (the point
			// duplicates the leaf's along the cut dimension). Place the
			// new leaf on the side its own coordinate falls into.
			dim, val, newLeft, found = d, cut, point[d] <= cut, true
		default:
			depth++
			parent = cur
			if point[nd.cutDim] <= nd.cutVal {
				cur = nd.left
			} else {
				cur = nd.right
			}
		}
	}
	if !found {
		return Leaf{}, fmt.Errorf("%w: insertion descent exceeded the depth bound", ErrInvariant)
	}

	pt := make([]float64, t.dims)
	copy(pt, point)
	leafID := t.alloc(node{
		kind:   kindLeaf,
		parent: noNode,
		left:   noNode,
		right:  noNode,
		index:  index,
		depth:  depth,
		point:  pt,
		count:  1,
	})
	left, right := leafID, cur
	if !newLeft {
		left, right = cur, leafID
	}
	branchID := t.alloc(node{
		kind:   kindBranch,
		parent: parent,
		left:   left,
		right:  right,
		cutDim: dim,
		cutVal: val,
		count:  t.nodes[cur].count + 1,
	})

	// Splice the new branch in where the displaced subtree root used to
	// be, before rewiring the subtree's parent link.
	if parent == noNode {
		t.root = branchID
	} else if t.nodes[parent].left == cur {
		t.nodes[parent].left = branchID
	} else {
		t.nodes[parent].right = branchID
	}
	t.nodes[cur].parent = branchID
	t.nodes[leafID].parent = branchID

	// Everything under the new branch, the new leaf included, now hangs
	// one level deeper than the displaced subtree root used to.
	t.walkLeaves(branchID, func(id int) { t.nodes[id].depth++ })
	for p := parent; p != noNode; p = t.nodes[p].parent {
		t.nodes[p].count++
	}

	t.leaves[index] = leafID
	return Leaf{tree: t, id: leafID}, nil
}

// duplicate reports the leaf whose point matches the given point within
// the configured tolerance, if any. The candidate is the leaf reached by
// cut descent, which is where an exact duplicate would be routed.
func (t *Tree) duplicate(point []float64) (int, bool) {
	id := t.descend(point)
	for j, v := range t.nodes[id].point {
		if math.Abs(point[j]-v) > t.tol {
			return noNode, false
		}
	}
	return id, true
}
