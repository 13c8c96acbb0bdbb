// Package geniclust implements the Genie hierarchical clustering linkage
// criterion over a precomputed minimum spanning tree.
//
// Genie augments single-linkage agglomeration with an inequity-correction
// rule: whenever the Gini index of the current cluster-size distribution
// exceeds a threshold, the next merge is forced to involve the currently
// smallest cluster. This prevents the chain-effect pathologies plain
// single linkage is prone to, without sacrificing its near-linear cost.
//
// This package only implements the merge engine: given a sorted MST (edge
// weights ascending) it produces a flat k-cluster labelling. Building the
// MST from raw points, comparing partitions, and any CLI or language
// binding are separate concerns kept in sibling packages
// (internal/mstbuild and partcmp) and cmd/geniclust.
//
// Basic usage:
//
//	eng, err := geniclust.New(weights, edges, n, false)
//	labels := make([]int, n)
//	err = eng.Apply(k, giniThreshold, labels)
//	// labels[i] is the cluster id of point i, or -1 for noise
//
// # Genie threshold
//
// giniThreshold == 1.0 disables the correction entirely: Apply degenerates
// to a pure single-linkage cut of the MST at its (n-k)-th edge.
// giniThreshold == 0.0 applies the correction as aggressively as possible,
// forcing every merge involving an unbalanced size distribution to touch
// the smallest current cluster.
package geniclust
