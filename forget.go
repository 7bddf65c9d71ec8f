package rrcf

import "fmt"

// ForgetPoint removes the point registered under the given external
// index.
//
// A leaf holding collapsed duplicates only has its multiplicity
// decremented. Otherwise the leaf and its parent branch are discarded:
// the sibling subtree is spliced up into the grandparent's child slot,
// every ancestor's count drops by one, and every leaf in the spliced-in
// subtree moves up one level. Forgetting the only remaining leaf is
// invalid — the tree always holds at least one point.
func (t *Tree) ForgetPoint(index int) error {
	id, ok := t.leaves[index]
	if !ok {
		return fmt.Errorf("%w: index %d", ErrNotFound, index)
	}

	if t.nodes[id].count > 1 {
		t.nodes[id].count--
		for p := t.nodes[id].parent; p != noNode; p = t.nodes[p].parent {
			t.nodes[p].count--
		}
		delete(t.leaves, index)
		return nil
	}

	parent := t.nodes[id].parent
	if parent == noNode {
		return fmt.Errorf("%w: cannot forget the only leaf in the tree", ErrInvalidOperation)
	}
	sib := t.sibling(id)
	grand := t.nodes[parent].parent

	t.nodes[sib].parent = grand
	if grand == noNode {
		t.root = sib
	} else {
		if t.nodes[grand].left == parent {
			t.nodes[grand].left = sib
		} else {
			t.nodes[grand].right = sib
		}
		for p := grand; p != noNode; p = t.nodes[p].parent {
			t.nodes[p].count--
		}
	}
	// Only the spliced-in sibling subtree moved up a level; the
	// grandparent's other subtree is untouched.
	t.walkLeaves(sib, func(leaf int) { t.nodes[leaf].depth-- })

	delete(t.leaves, index)
	t.release(id)
	t.release(parent)
	return nil
}
