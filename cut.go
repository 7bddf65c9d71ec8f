package rrcf

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// buildCut samples a construction cut for the points in subset: the cut
// dimension is drawn with probability proportional to its span and the
// cut value uniformly within that span. ok is false when every dimension
// has zero span, i.e. all points in the subset coincide.
func (t *Tree) buildCut(points [][]float64, subset []int) (dim int, val float64, ok bool) {
	lo := make([]float64, t.dims)
	hi := make([]float64, t.dims)
	copy(lo, points[subset[0]])
	copy(hi, points[subset[0]])
	for _, row := range subset[1:] {
		for j, v := range points[row] {
			if v < lo[j] {
				lo[j] = v
			}
			if v > hi[j] {
				hi[j] = v
			}
		}
	}

	spans := make([]float64, t.dims)
	floats.SubTo(spans, hi, lo)
	if floats.Sum(spans) == 0 {
		return 0, 0, false
	}

	w := sampleuv.NewWeighted(spans, t.rnd)
	dim, ok = w.Take()
	if !ok {
		return 0, 0, false
	}
	// Float64 draws from [0, 1), so the cut never lands on the upper
	// bound and both sides of the split stay non-empty.
	val = lo[dim] + t.rnd.Float64()*spans[dim]
	return dim, val, true
}

// insertCut samples a cut for inserting point into a subtree whose
// current bounding box is b. The box is first expanded to cover the
// point; a position is then drawn uniformly along the concatenated
// per-dimension spans of the expanded box and mapped back to a
// (dimension, value) pair via the cumulative span.
func (t *Tree) insertCut(point []float64, b Bounds) (dim int, val float64, err error) {
	lo := make([]float64, t.dims)
	hi := make([]float64, t.dims)
	for j := range lo {
		lo[j] = math.Min(b.Min[j], point[j])
		hi[j] = math.Max(b.Max[j], point[j])
	}

	spans := make([]float64, t.dims)
	floats.SubTo(spans, hi, lo)
	cum := floats.CumSum(make([]float64, t.dims), spans)
	r := t.rnd.Float64() * cum[t.dims-1]
	for j, c := range cum {
		if c >= r {
			return j, lo[j] + c - r, nil
		}
	}
	return 0, 0, fmt.Errorf("%w: no dimension satisfies the cumulative span threshold", ErrInvariant)
}
