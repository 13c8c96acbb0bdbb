package geniclust

// mergeStep records one merge decision, for use by tests that check the
// Genie-correction and single-linkage-equivalence invariants against the
// driver's actual behaviour rather than just the final labelling.
type mergeStep struct {
	U, V           int // original vertex ids merged this step
	Genie          bool
	SmallestBefore int // GDS.GetSmallestCount() immediately before this merge
	SizeU, SizeV   int // set sizes of U's and V's sets immediately before this merge
}

// runMerges performs exactly N-k merges, choosing at each step either the
// skip-list cursor edge (single-linkage) or, once the Gini index exceeds
// gThreshold, the first remaining edge (by ascending weight) touching a
// smallest-sized cluster (the Genie correction). See spec §4.5.
func runMerges(edges []Edge, sl *edgeSkipList, ds *GiniDisjointSets, dn *denoiseIndex, k int, gThreshold float64) ([]mergeStep, error) {
	target := dn.N() - k
	steps := make([]mergeStep, 0, target)

	lastm := 0
	for step := 0; step < target; step++ {
		var i1, i2 int
		genie := ds.GetGini() > gThreshold
		smallestBefore := ds.GetSmallestCount()

		if genie {
			m := smallestBefore
			if m != lastm || sl.lastidx < sl.curidx {
				sl.lastidx = sl.curidx
			}

			for {
				e := edges[sl.lastidx]
				c1, err := ds.GetCount(dn.rev[e.U])
				if err != nil {
					return nil, err
				}
				c2, err := ds.GetCount(dn.rev[e.V])
				if err != nil {
					return nil, err
				}
				if c1 == m || c2 == m {
					break
				}
				sl.lastidx = sl.advance(sl.lastidx)
			}

			i1, i2 = edges[sl.lastidx].U, edges[sl.lastidx].V

			if sl.lastidx == sl.curidx {
				sl.curidx = sl.advance(sl.curidx)
				sl.lastidx = sl.curidx
			} else {
				next := sl.advance(sl.lastidx)
				sl.remove(sl.lastidx)
				sl.lastidx = next
			}
			lastm = m
		} else {
			i1, i2 = edges[sl.curidx].U, edges[sl.curidx].V
			sl.curidx = sl.advance(sl.curidx)
		}

		sizeU, err := ds.GetCount(dn.rev[i1])
		if err != nil {
			return nil, err
		}
		sizeV, err := ds.GetCount(dn.rev[i2])
		if err != nil {
			return nil, err
		}

		if _, err := ds.Merge(dn.rev[i1], dn.rev[i2]); err != nil {
			return nil, err
		}

		steps = append(steps, mergeStep{U: i1, V: i2, Genie: genie, SmallestBefore: smallestBefore, SizeU: sizeU, SizeV: sizeV})
	}

	return steps, nil
}
