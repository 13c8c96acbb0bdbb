package geniclust

// Edge is an MST edge given by its two endpoint vertex ids, each in [0, n).
// A negative endpoint marks the edge slot as absent; vertexDegrees skips
// such slots when counting degrees. The edge skip-list and the merge
// driver do not check for them and index by endpoint directly.
type Edge struct {
	U, V int
}

// vertexDegrees counts, for each vertex in [0, n), how many edges are
// incident to it. Edges with either endpoint negative are silently
// skipped (an absent slot, not a real edge). Any endpoint >= n, or any
// edge with U == V, is a fatal input-shape error: both cannot arise from
// a genuine MST.
func vertexDegrees(edges []Edge, n int) ([]int, error) {
	deg := make([]int, n)

	for i, e := range edges {
		if e.U < 0 || e.V < 0 {
			continue
		}
		if e.U >= n || e.V >= n {
			return nil, domainErrorf("edge %d has an endpoint not in [0, %d)", i, n)
		}
		if e.U == e.V {
			return nil, domainErrorf("edge %d is a self-loop (%d, %d)", i, e.U, e.V)
		}
		deg[e.U]++
		deg[e.V]++
	}

	return deg, nil
}
