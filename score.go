package rrcf

import "fmt"

// Displacement returns the number of points that would spread out to
// fill the gap left by removing the leaf at the given index: the size of
// its sibling subtree. It is undefined for the only leaf in a tree.
func (t *Tree) Displacement(index int) (int, error) {
	id, ok := t.leaves[index]
	if !ok {
		return 0, fmt.Errorf("%w: index %d", ErrNotFound, index)
	}
	if t.nodes[id].parent == noNode {
		return 0, fmt.Errorf("%w: displacement is undefined for the only leaf in the tree", ErrInvalidOperation)
	}
	return t.nodes[t.sibling(id)].count, nil
}

// CoDisplacement returns the collusive displacement of the leaf at the
// given index: the maximum, over every ancestor level, of the ratio
// between the sibling subtree's size and the size of the subtree removed
// along with the leaf. It captures the largest relative disruption the
// leaf's removal could cause at any granularity, which makes it robust
// to colluding duplicates, and is the usual per-tree anomaly score in
// robust random cut forests. It is undefined for the only leaf in a
// tree.
func (t *Tree) CoDisplacement(index int) (float64, error) {
	id, ok := t.leaves[index]
	if !ok {
		return 0, fmt.Errorf("%w: index %d", ErrNotFound, index)
	}
	if t.nodes[id].parent == noNode {
		return 0, fmt.Errorf("%w: co-displacement is undefined for the only leaf in the tree", ErrInvalidOperation)
	}

	best := 0.0
	cur := id
	for i := 0; i < t.nodes[id].depth; i++ {
		parent := t.nodes[cur].parent
		if parent == noNode {
			break
		}
		ratio := float64(t.nodes[t.sibling(cur)].count) / float64(t.nodes[cur].count)
		if ratio > best {
			best = ratio
		}
		cur = parent
	}
	return best, nil
}
