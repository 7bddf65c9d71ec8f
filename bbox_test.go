package rrcf

import (
	"reflect"
	"testing"
)

func TestBoundingBox_UnitSquare(t *testing.T) {
	tree, err := NewTree(unitSquare(), Config{Rand: testRand(40)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := tree.BoundingBox()
	if want := []float64{0, 0}; !reflect.DeepEqual(b.Min, want) {
		t.Errorf("Min = %v, want %v", b.Min, want)
	}
	if want := []float64{1, 1}; !reflect.DeepEqual(b.Max, want) {
		t.Errorf("Max = %v, want %v", b.Max, want)
	}
}

func TestBoundingBox_SinglePoint(t *testing.T) {
	tree, err := NewTree([][]float64{{-2, 7}}, Config{Rand: testRand(41)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := tree.BoundingBox()
	if want := []float64{-2, 7}; !reflect.DeepEqual(b.Min, want) {
		t.Errorf("Min = %v, want %v", b.Min, want)
	}
	if !reflect.DeepEqual(b.Min, b.Max) {
		t.Errorf("Min = %v, Max = %v, want equal", b.Min, b.Max)
	}
}

func TestBoundingBox_TracksMutations(t *testing.T) {
	tree, err := NewTree(unitSquare(), Config{Rand: testRand(42)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := tree.InsertPoint([]float64{5, -3}, 4); err != nil {
		t.Fatalf("InsertPoint: %v", err)
	}
	b := tree.BoundingBox()
	if want := []float64{0, -3}; !reflect.DeepEqual(b.Min, want) {
		t.Errorf("Min after insert = %v, want %v", b.Min, want)
	}
	if want := []float64{5, 1}; !reflect.DeepEqual(b.Max, want) {
		t.Errorf("Max after insert = %v, want %v", b.Max, want)
	}

	if err := tree.ForgetPoint(4); err != nil {
		t.Fatalf("ForgetPoint: %v", err)
	}
	b = tree.BoundingBox()
	if want := []float64{0, 0}; !reflect.DeepEqual(b.Min, want) {
		t.Errorf("Min after forget = %v, want %v", b.Min, want)
	}
	if want := []float64{1, 1}; !reflect.DeepEqual(b.Max, want) {
		t.Errorf("Max after forget = %v, want %v", b.Max, want)
	}
}
