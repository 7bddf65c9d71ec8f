package rrcf

import (
	"errors"
	"testing"
)

func TestDisplacement_AtLeastOne(t *testing.T) {
	rnd := testRand(50)
	tree, err := NewTree(randomPoints(16, 2, rnd), Config{Rand: rnd})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 16; i++ {
		disp, err := tree.Displacement(i)
		if err != nil {
			t.Fatalf("Displacement(%d): %v", i, err)
		}
		if disp < 1 {
			t.Errorf("Displacement(%d) = %d, want >= 1", i, disp)
		}
	}
}

func TestDisplacement_FarOutlier(t *testing.T) {
	tree, err := NewTree(unitSquare(), Config{Rand: testRand(51)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := tree.InsertPoint([]float64{1e6, 1e6}, 4); err != nil {
		t.Fatalf("InsertPoint: %v", err)
	}
	// Sibling of the outlier is the entire former tree.
	disp, err := tree.Displacement(4)
	if err != nil {
		t.Fatalf("Displacement: %v", err)
	}
	if disp != 4 {
		t.Errorf("Displacement(outlier) = %d, want 4", disp)
	}
}

func TestCoDisplacement_FlagsOutlier(t *testing.T) {
	tree, err := NewTree(unitSquare(), Config{Rand: testRand(52)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := tree.InsertPoint([]float64{1e6, 1e6}, 4); err != nil {
		t.Fatalf("InsertPoint: %v", err)
	}

	outlierScore, err := tree.CoDisplacement(4)
	if err != nil {
		t.Fatalf("CoDisplacement(4): %v", err)
	}
	if outlierScore != 4 {
		t.Errorf("CoDisplacement(outlier) = %v, want 4", outlierScore)
	}
	for i := 0; i < 4; i++ {
		score, err := tree.CoDisplacement(i)
		if err != nil {
			t.Fatalf("CoDisplacement(%d): %v", i, err)
		}
		if score >= outlierScore {
			t.Errorf("CoDisplacement(%d) = %v, want < outlier score %v", i, score, outlierScore)
		}
	}
}

func TestCoDisplacement_LowerBound(t *testing.T) {
	// The leaf-level ratio displacement/multiplicity is one of the terms
	// the maximum is taken over.
	rnd := testRand(53)
	tree, err := NewTree(randomPoints(24, 3, rnd), Config{Rand: rnd})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 24; i++ {
		disp, err := tree.Displacement(i)
		if err != nil {
			t.Fatalf("Displacement(%d): %v", i, err)
		}
		codisp, err := tree.CoDisplacement(i)
		if err != nil {
			t.Fatalf("CoDisplacement(%d): %v", i, err)
		}
		leaf, err := tree.Lookup(i)
		if err != nil {
			t.Fatalf("Lookup(%d): %v", i, err)
		}
		if bound := float64(disp) / float64(leaf.Multiplicity()); codisp < bound {
			t.Errorf("CoDisplacement(%d) = %v, want >= %v", i, codisp, bound)
		}
	}
}

func TestCoDisplacement_CollapsedDuplicates(t *testing.T) {
	tree, err := NewTree(unitSquare(), Config{Rand: testRand(54), Tolerance: 1e-9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Pile duplicates onto one corner; colluding points should score low
	// relative to their displacement because the removed subtree is heavy.
	for i := 0; i < 3; i++ {
		if _, err := tree.InsertPoint([]float64{1, 1}, 4+i); err != nil {
			t.Fatalf("InsertPoint: %v", err)
		}
	}
	leaf, err := tree.Lookup(4)
	if err != nil {
		t.Fatalf("Lookup(4): %v", err)
	}
	if leaf.Multiplicity() != 4 {
		t.Fatalf("Multiplicity() = %d, want 4", leaf.Multiplicity())
	}
	disp, err := tree.Displacement(4)
	if err != nil {
		t.Fatalf("Displacement: %v", err)
	}
	codisp, err := tree.CoDisplacement(4)
	if err != nil {
		t.Fatalf("CoDisplacement: %v", err)
	}
	if bound := float64(disp) / 4; codisp < bound {
		t.Errorf("CoDisplacement = %v, want >= %v", codisp, bound)
	}
	checkInvariants(t, tree)
}

func TestScores_NotFound(t *testing.T) {
	tree, err := NewTree(unitSquare(), Config{Rand: testRand(55)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := tree.Displacement(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("Displacement error = %v, want ErrNotFound", err)
	}
	if _, err := tree.CoDisplacement(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("CoDisplacement error = %v, want ErrNotFound", err)
	}
}

func TestScores_UndefinedForOnlyLeaf(t *testing.T) {
	tree, err := NewTree([][]float64{{1}}, Config{Rand: testRand(56)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := tree.Displacement(0); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("Displacement error = %v, want ErrInvalidOperation", err)
	}
	if _, err := tree.CoDisplacement(0); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("CoDisplacement error = %v, want ErrInvalidOperation", err)
	}
}
