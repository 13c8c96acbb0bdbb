package mstbuild

import (
	"math"
	"sort"

	"github.com/trevors/geniclust"
)

// Warnf receives a warning when the computed MST is not fully connected
// (some pairwise distance was +Inf). Build's caller supplies this so the
// warning flows through whatever logger the caller already uses; a nil
// Warnf silently drops the warning.
type Warnf func(format string, args ...interface{})

// Build runs Prim's algorithm over the pairwise distances of data (n rows of
// dims columns, flat row-major) and returns the MST in the ascending-weight
// form geniclust.New requires: weights[i] <= weights[i+1] for all i, and
// edges[i] is the pair that weight belongs to. Ties keep Prim's discovery
// order (a stable sort), which matters only for reproducibility of the
// Genie walk on degenerate (equal-weight) inputs, never for correctness.
func Build(data []float64, n, dims int, metric DistanceMetric, warn Warnf) ([]float64, []geniclust.Edge, error) {
	if n < 2 {
		return nil, nil, nil
	}

	distMatrix := ComputePairwiseDistances(data, n, dims, metric)
	raw := primMST(distMatrix, n, warn)

	idx := make([]int, len(raw))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return raw[idx[a]][2] < raw[idx[b]][2] })

	weights := make([]float64, len(raw))
	edges := make([]geniclust.Edge, len(raw))
	for i, j := range idx {
		weights[i] = raw[j][2]
		edges[i] = geniclust.Edge{U: int(raw[j][0]), V: int(raw[j][1])}
	}
	return weights, edges, nil
}

// primMST computes a minimum spanning tree using Prim's algorithm on a dense
// distance matrix. mrMatrix is flat []float64, n×n row-major.
// Returns (n-1) edges as [][3]float64 where each edge is [from, to, weight],
// in discovery order (not yet sorted by weight).
// Calls warn if any MST edge weight is +Inf (disconnected components).
func primMST(mrMatrix []float64, n int, warn Warnf) [][3]float64 {
	if n <= 1 {
		return nil
	}

	inTree := make([]bool, n)
	currentDistances := make([]float64, n)
	nearest := make([]int, n) // nearest[j] is the tree node currentDistances[j] was measured from

	// Start from node 0: seed distances from its row in the matrix.
	inTree[0] = true
	currentDistances[0] = math.Inf(1) // node 0 is in tree, distance irrelevant
	for j := 1; j < n; j++ {
		currentDistances[j] = mrMatrix[j]
	}

	edges := make([][3]float64, 0, n-1)
	hasInf := false

	for i := 0; i < n-1; i++ {
		// Find the nearest node not yet in the tree.
		minDist := math.Inf(1)
		minNode := -1
		for j := 0; j < n; j++ {
			if !inTree[j] && currentDistances[j] < minDist {
				minDist = currentDistances[j]
				minNode = j
			}
		}

		// If no finite-distance node was found, pick the first non-tree node.
		// This handles disconnected components (+Inf edges).
		if minNode == -1 {
			for j := 0; j < n; j++ {
				if !inTree[j] {
					minNode = j
					minDist = currentDistances[j]
					break
				}
			}
		}

		if math.IsInf(minDist, 1) {
			hasInf = true
		}

		// Record edge as (nearest tree node, minNode, weight): the tree
		// edge whose length minDist is.
		edges = append(edges, [3]float64{
			float64(nearest[minNode]),
			float64(minNode),
			minDist,
		})

		inTree[minNode] = true

		// Update distances for remaining non-tree nodes.
		for k := 0; k < n; k++ {
			if !inTree[k] {
				d := mrMatrix[minNode*n+k]
				if d < currentDistances[k] {
					currentDistances[k] = d
					nearest[k] = minNode
				}
			}
		}
	}

	if hasInf && warn != nil {
		warn("mstbuild: MST contains edge(s) with +Inf weight (disconnected components)")
	}

	return edges
}
