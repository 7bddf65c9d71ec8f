package rrcf

import (
	"fmt"
	"math/rand/v2"
)

// Config controls tree construction and insertion behavior.
// The zero value is ready to use.
type Config struct {
	// Indices assigns an external index to each input point. It must have
	// the same length as the point set and contain no duplicates. When
	// nil, points are indexed 0..n-1.
	Indices []int

	// Rand is the random source consumed by construction and insertion
	// cuts. Inject a seeded source for reproducible structure. When nil,
	// a PCG source seeded from the global generator is used.
	Rand *rand.Rand

	// Tolerance enables duplicate collapsing on InsertPoint: a new point
	// within this per-coordinate absolute tolerance of an existing leaf
	// is merged into it, incrementing the leaf's multiplicity instead of
	// growing the tree. 0 disables collapsing. Must be >= 0.
	Tolerance float64
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
}

// validateConfig checks that cfg is valid for n points and returns a
// descriptive error if not.
func validateConfig(cfg *Config, n int) error {
	if cfg.Tolerance < 0 {
		return fmt.Errorf("rrcf: Tolerance must be >= 0, got %v", cfg.Tolerance)
	}
	if cfg.Indices != nil && len(cfg.Indices) != n {
		return fmt.Errorf("rrcf: got %d indices for %d points", len(cfg.Indices), n)
	}
	return nil
}

// Tree is a Robust Random Cut Tree over d-dimensional points.
//
// Nodes live in an arena indexed by stable integer handles. The external
// surface deals in point indices and read-only Leaf views; handles never
// escape the package.
type Tree struct {
	nodes  []node
	free   []int
	root   int
	leaves map[int]int // external index -> leaf handle
	dims   int
	rnd    *rand.Rand
	tol    float64
}

// Leaf is a read-only view of a leaf node. It stays valid until the leaf
// is removed from its tree.
type Leaf struct {
	tree *Tree
	id   int
}

// Index returns the leaf's external index. For a leaf holding collapsed
// duplicates this is the index of the first point merged into it.
func (l Leaf) Index() int { return l.tree.nodes[l.id].index }

// Depth returns the number of edges between the leaf and the root.
func (l Leaf) Depth() int { return l.tree.nodes[l.id].depth }

// Multiplicity returns the number of duplicate points collapsed into the
// leaf. It is 1 unless Config.Tolerance merged inserts into this leaf.
func (l Leaf) Multiplicity() int { return l.tree.nodes[l.id].count }

// Point returns a copy of the leaf's coordinate vector.
func (l Leaf) Point() []float64 {
	p := l.tree.nodes[l.id].point
	out := make([]float64, len(p))
	copy(out, p)
	return out
}

// NewTree builds a Robust Random Cut Tree from the given points. Each
// element is a point (float64 slice); all points must have the same
// dimensionality and at least one point is required.
//
// The point set is partitioned recursively: a cut dimension is drawn with
// probability proportional to the per-dimension span of the remaining
// subset, a cut value is drawn uniformly within that span, and the subset
// is split on the cut until every point is isolated in its own leaf. A
// subset of identical points, which no cut can separate, is peeled apart
// one point at a time with a zero-width cut.
func NewTree(points [][]float64, cfg Config) (*Tree, error) {
	applyDefaults(&cfg)
	n := len(points)
	if n == 0 {
		return nil, fmt.Errorf("rrcf: at least one point is required")
	}
	if err := validateConfig(&cfg, n); err != nil {
		return nil, err
	}
	dims := len(points[0])
	if dims == 0 {
		return nil, fmt.Errorf("rrcf: points must have at least one dimension")
	}
	for i, p := range points {
		if len(p) != dims {
			return nil, fmt.Errorf("rrcf: point %d has dimension %d, want %d", i, len(p), dims)
		}
	}

	indices := cfg.Indices
	if indices == nil {
		indices = make([]int, n)
		for i := range indices {
			indices[i] = i
		}
	} else {
		seen := make(map[int]bool, n)
		for _, idx := range indices {
			if seen[idx] {
				return nil, fmt.Errorf("rrcf: duplicate index %d", idx)
			}
			seen[idx] = true
		}
	}

	t := &Tree{
		nodes:  make([]node, 0, 2*n-1),
		root:   noNode,
		leaves: make(map[int]int, n),
		dims:   dims,
		rnd:    cfg.Rand,
		tol:    cfg.Tolerance,
	}

	subset := make([]int, n)
	for i := range subset {
		subset[i] = i
	}
	t.root = t.build(points, subset, indices, noNode, 0)
	t.countAll(t.root)
	return t, nil
}

// build recursively partitions the point rows in subset and returns the
// handle of the resulting subtree root, which sits at the given depth.
func (t *Tree) build(points [][]float64, subset, indices []int, parent, depth int) int {
	if len(subset) == 1 {
		row := subset[0]
		pt := make([]float64, t.dims)
		copy(pt, points[row])
		id := t.alloc(node{
			kind:   kindLeaf,
			parent: parent,
			left:   noNode,
			right:  noNode,
			index:  indices[row],
			depth:  depth,
			point:  pt,
			count:  1,
		})
		t.leaves[indices[row]] = id
		return id
	}

	dim, val, ok := t.buildCut(points, subset)
	var s1, s2 []int
	if ok {
		for _, row := range subset {
			if points[row][dim] <= val {
				s1 = append(s1, row)
			} else {
				s2 = append(s2, row)
			}
		}
	} else {
		// Every dimension has zero span: all points in the subset
		// coincide. Separate one point with a zero-width cut so the
		// recursion terminates.
		dim, val = 0, points[subset[0]][0]
		s1, s2 = subset[:1], subset[1:]
	}

	id := t.alloc(node{
		kind:   kindBranch,
		parent: parent,
		left:   noNode,
		right:  noNode,
		cutDim: dim,
		cutVal: val,
	})
	left := t.build(points, s1, indices, id, depth+1)
	right := t.build(points, s2, indices, id, depth+1)
	t.nodes[id].left = left
	t.nodes[id].right = right
	return id
}

// countAll sets branch counts bottom-up and returns the subtree total.
func (t *Tree) countAll(id int) int {
	nd := &t.nodes[id]
	if nd.kind == kindLeaf {
		return nd.count
	}
	nd.count = t.countAll(nd.left) + t.countAll(nd.right)
	return nd.count
}

// NumPoints returns the number of points tracked by the tree, counting
// collapsed duplicates individually.
func (t *Tree) NumPoints() int { return len(t.leaves) }

// NumDims returns the dimensionality of the tree's points.
func (t *Tree) NumDims() int { return t.dims }

// Lookup returns the leaf registered under the given external index.
func (t *Tree) Lookup(index int) (Leaf, error) {
	id, ok := t.leaves[index]
	if !ok {
		return Leaf{}, fmt.Errorf("%w: index %d", ErrNotFound, index)
	}
	return Leaf{tree: t, id: id}, nil
}

// maxLeafDepth returns the maximum depth over all leaves.
func (t *Tree) maxLeafDepth() int {
	max := 0
	for _, id := range t.leaves {
		if d := t.nodes[id].depth; d > max {
			max = d
		}
	}
	return max
}
