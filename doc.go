// Package rrcf implements the Robust Random Cut Tree (RCTree) data
// structure for streaming anomaly detection.
//
// An RCTree is a randomized binary space-partitioning tree over a set of
// d-dimensional points. Points can be inserted and forgotten incrementally
// while the tree maintains exact per-node bookkeeping (subtree sizes and
// leaf depths), so the structural anomaly scores — displacement and
// collusive displacement — are available in O(depth) time without
// re-scanning the tree.
//
// Basic usage:
//
//	tree, err := rrcf.NewTree(points, rrcf.Config{})
//	// stream a new observation through the tree
//	_, err = tree.InsertPoint([]float64{9.5, -3.2}, 100)
//	score, err := tree.CoDisplacement(100)
//	err = tree.ForgetPoint(100)
//
// Scores from many independently built trees are typically averaged into
// a forest-level anomaly score; assembling and aggregating a forest is
// left to the caller.
//
// A Tree is not safe for concurrent mutation. Read-only operations
// (Query, Displacement, CoDisplacement, BoundingBox, Traverse and the
// accessors) may run concurrently with each other, but not with
// InsertPoint or ForgetPoint on the same tree. Independent trees share no
// state and may be used fully in parallel.
package rrcf
