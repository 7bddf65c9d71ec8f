package rrcf

import "math"

// Bounds is a per-dimension [min, max] envelope of a point set.
type Bounds struct {
	Min []float64
	Max []float64
}

// BoundingBox returns the envelope of every point in the tree. It is
// computed by a full traversal; bounds are deliberately not cached on
// branches, keeping mutation operations cheap.
func (t *Tree) BoundingBox() Bounds { return t.bbox(t.root) }

// bbox computes the envelope of all leaf points under the given node.
func (t *Tree) bbox(id int) Bounds {
	b := Bounds{
		Min: make([]float64, t.dims),
		Max: make([]float64, t.dims),
	}
	for j := 0; j < t.dims; j++ {
		b.Min[j] = math.Inf(1)
		b.Max[j] = math.Inf(-1)
	}
	t.walkLeaves(id, func(leaf int) {
		for j, v := range t.nodes[leaf].point {
			if v < b.Min[j] {
				b.Min[j] = v
			}
			if v > b.Max[j] {
				b.Max[j] = v
			}
		}
	})
	return b
}
