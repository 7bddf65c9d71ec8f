package rrcf

// nodeKind discriminates the two node variants stored in the arena.
type nodeKind uint8

const (
	kindLeaf nodeKind = iota
	kindBranch
)

// noNode is the nil handle.
const noNode = -1

// node is a tagged Branch/Leaf variant stored in the tree's arena.
// Parent/child relations are arena handles rather than pointers, so
// splicing a subtree in or out is a pure index rewrite.
type node struct {
	kind   nodeKind
	parent int // noNode for the root

	// Branch fields.
	left   int
	right  int
	cutDim int     // dimension of the cut, in [0, dims)
	cutVal float64 // value of the cut

	// Leaf fields.
	index int       // external identifier
	depth int       // edges between the leaf and the root
	point []float64 // immutable after creation

	// count is the number of points below a branch (weighted by
	// multiplicity) or the multiplicity of a leaf.
	count int
}

// alloc stores n in the arena, reusing a freed slot when one is
// available, and returns its handle.
func (t *Tree) alloc(n node) int {
	if k := len(t.free); k > 0 {
		id := t.free[k-1]
		t.free = t.free[:k-1]
		t.nodes[id] = n
		return id
	}
	t.nodes = append(t.nodes, n)
	return len(t.nodes) - 1
}

// release returns a node's slot to the free list.
func (t *Tree) release(id int) {
	t.nodes[id] = node{parent: noNode, left: noNode, right: noNode}
	t.free = append(t.free, id)
}

// sibling returns the other child of the node's parent. The node must
// not be the root.
func (t *Tree) sibling(id int) int {
	p := t.nodes[id].parent
	if t.nodes[p].left == id {
		return t.nodes[p].right
	}
	return t.nodes[p].left
}
