package geniclust

// Engine runs the Genie merge algorithm against one fixed MST. It borrows
// the weights and edges slices read-only for the lifetime of Apply and owns everything else
// it allocates; nothing is shared across Engine instances, and nothing it
// touches survives past a single Apply call except the caller's own
// out_labels buffer.
//
// Construct with New, then call Apply as many times as desired with
// different (nClusters, giniThreshold) pairs — construction (degree
// counting, denoise classification) happens once; Apply rebuilds only the
// skip-list and GDS, both O(n) and allocated fresh per call, matching the
// "no incremental reuse" lifecycle in spec §3.
type Engine struct {
	n           int
	noiseLeaves bool
	weights     []float64
	edges       []Edge
	deg         []int
	dn          *denoiseIndex
}

// New validates the MST and builds the vertex-degree and noise
// classification that every Apply call reuses. weights must be sorted
// ascending and edges must have exactly len(weights) == n-1 entries with
// endpoints in [0, n) and no self-loops.
func New(weights []float64, edges []Edge, n int, noiseLeaves bool) (*Engine, error) {
	if n < 2 {
		return nil, domainErrorf("n must be >= 2, got %d", n)
	}
	if len(weights) != n-1 {
		return nil, domainErrorf("expected %d MST weights, got %d", n-1, len(weights))
	}
	if len(edges) != n-1 {
		return nil, domainErrorf("expected %d MST edges, got %d", n-1, len(edges))
	}
	for i := 1; i < len(weights); i++ {
		if weights[i-1] > weights[i] {
			return nil, domainErrorf("mst weights must be sorted ascending, violated at index %d (%g > %g)", i, weights[i-1], weights[i])
		}
	}

	deg, err := vertexDegrees(edges, n)
	if err != nil {
		return nil, err
	}

	dn, err := buildDenoiseIndex(deg, noiseLeaves)
	if err != nil {
		return nil, err
	}

	return &Engine{
		n:           n,
		noiseLeaves: noiseLeaves,
		weights:     weights,
		edges:       edges,
		deg:         deg,
		dn:          dn,
	}, nil
}

// Apply runs the Genie algorithm for the given number of clusters and Gini
// threshold, writing one label per original vertex into outLabels (which
// must have length n). Labels are in {-1, 0, ..., nClusters-1}; -1 only
// appears for MST leaves when noise treatment is enabled.
//
// outLabels is untouched beyond what has already been written if Apply
// returns an error: there is no partial-success contract.
func (e *Engine) Apply(nClusters int, giniThreshold float64, outLabels []int) error {
	if len(outLabels) != e.n {
		return domainErrorf("outLabels must have length %d, got %d", e.n, len(outLabels))
	}
	if nClusters < 1 {
		return domainErrorf("nClusters must be >= 1, got %d", nClusters)
	}
	if giniThreshold < 0 || giniThreshold > 1 {
		return domainErrorf("giniThreshold must be in [0, 1], got %g", giniThreshold)
	}

	N := e.dn.N()
	if nClusters > N {
		return runtimeErrorf("requested %d clusters but only %d non-noise points are available", nClusters, N)
	}

	sl := newEdgeSkipList(e.edges, e.deg, e.noiseLeaves)
	ds := NewGiniDisjointSets(N)

	if _, err := runMerges(e.edges, sl, ds, e.dn, nClusters, giniThreshold); err != nil {
		return err
	}

	return extractLabels(e.dn, ds, outLabels)
}

// N returns the number of non-noise points the engine will partition.
func (e *Engine) N() int { return e.dn.N() }

// NoiseCount returns how many MST leaves were classified as noise. It is
// always 0 when noise treatment was disabled at construction.
func (e *Engine) NoiseCount() int { return e.dn.noiseCount }
