package geniclust

// extractLabels walks the final GDS partition and writes a dense labelling
// into out, one entry per original vertex. Noise vertices (denoise index
// < 0) get -1. Non-noise vertices get a label assigned the first time
// their root is encountered while scanning vertices in ascending original
// id, so the first non-noise vertex always receives label 0.
func extractLabels(dn *denoiseIndex, ds *GiniDisjointSets, out []int) error {
	n := len(dn.rev)
	resClusterID := make([]int, n)
	for i := range resClusterID {
		resClusterID[i] = -1
	}

	c := 0
	for i := 0; i < n; i++ {
		if dn.rev[i] < 0 {
			out[i] = -1
			continue
		}

		root, err := ds.Find(dn.rev[i])
		if err != nil {
			return err
		}
		r := dn.fwd[root]

		if resClusterID[r] < 0 {
			resClusterID[r] = c
			c++
		}
		out[i] = resClusterID[r]
	}

	return nil
}
