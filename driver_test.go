package geniclust

import "testing"

func setupDriver(t *testing.T, edges []Edge, n int, noiseLeaves bool) (*edgeSkipList, *GiniDisjointSets, *denoiseIndex) {
	t.Helper()
	deg, err := vertexDegrees(edges, n)
	if err != nil {
		t.Fatalf("vertexDegrees: %v", err)
	}
	dn, err := buildDenoiseIndex(deg, noiseLeaves)
	if err != nil {
		t.Fatalf("buildDenoiseIndex: %v", err)
	}
	sl := newEdgeSkipList(edges, deg, noiseLeaves)
	ds := NewGiniDisjointSets(dn.N())
	return sl, ds, dn
}

func TestRunMerges_PureSingleLinkage_ConsumesAscendingOrder(t *testing.T) {
	// giniThreshold 1.0 disables the correction: gini never exceeds 1, so
	// every step takes the skip-list cursor edge in order.
	edges := []Edge{{0, 1}, {1, 2}, {2, 3}, {3, 4}}
	sl, ds, dn := setupDriver(t, edges, 5, false)

	steps, err := runMerges(edges, sl, ds, dn, 2, 1.0)
	if err != nil {
		t.Fatalf("runMerges: %v", err)
	}
	want := []Edge{{0, 1}, {1, 2}, {2, 3}}
	if len(steps) != len(want) {
		t.Fatalf("got %d steps, want %d", len(steps), len(want))
	}
	for i, w := range want {
		if steps[i].U != w.U || steps[i].V != w.V {
			t.Errorf("step %d = (%d,%d), want (%d,%d)", i, steps[i].U, steps[i].V, w.U, w.V)
		}
		if steps[i].Genie {
			t.Errorf("step %d: expected single-linkage, got genie", i)
		}
	}
}

func TestRunMerges_GenieThreshold_ExactPathSequence(t *testing.T) {
	// Path graph, giniThreshold 0.0: every merge once the partition is
	// unbalanced must touch the smallest current cluster. Hand-derived
	// against the reference algorithm: (0,1) single-linkage (gini starts
	// at 0 with all singletons), then (1,2) and (2,3) both genie-forced,
	// each immediately eligible at the skip-list's memoised cursor.
	edges := []Edge{{0, 1}, {1, 2}, {2, 3}, {3, 4}}
	sl, ds, dn := setupDriver(t, edges, 5, false)

	steps, err := runMerges(edges, sl, ds, dn, 2, 0.0)
	if err != nil {
		t.Fatalf("runMerges: %v", err)
	}
	if len(steps) != 3 {
		t.Fatalf("got %d steps, want 3", len(steps))
	}

	wantU := []int{0, 1, 2}
	wantV := []int{1, 2, 3}
	wantGenie := []bool{false, true, true}
	for i := range steps {
		if steps[i].U != wantU[i] || steps[i].V != wantV[i] {
			t.Errorf("step %d = (%d,%d), want (%d,%d)", i, steps[i].U, steps[i].V, wantU[i], wantV[i])
		}
		if steps[i].Genie != wantGenie[i] {
			t.Errorf("step %d genie = %v, want %v", i, steps[i].Genie, wantGenie[i])
		}
	}
}

func TestRunMerges_GenieStepsAlwaysTouchSmallestCluster(t *testing.T) {
	edges := []Edge{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 7}, {7, 8}, {8, 9},
	}
	sl, ds, dn := setupDriver(t, edges, 10, false)

	steps, err := runMerges(edges, sl, ds, dn, 1, 0.3)
	if err != nil {
		t.Fatalf("runMerges: %v", err)
	}
	for i, s := range steps {
		if !s.Genie {
			continue
		}
		if s.SizeU != s.SmallestBefore && s.SizeV != s.SmallestBefore {
			t.Errorf("step %d: genie merge sizes (%d,%d) neither equals smallest-before %d",
				i, s.SizeU, s.SizeV, s.SmallestBefore)
		}
	}
}

func TestRunMerges_NoiseMode_SkipsLeafIncidentEdges(t *testing.T) {
	// Star: centre 0, leaves 1..4. In noise mode there is nothing left to
	// merge (N=1), so zero merges are requested and none should occur.
	edges := []Edge{{0, 1}, {0, 2}, {0, 3}, {0, 4}}
	sl, ds, dn := setupDriver(t, edges, 5, true)
	if sl.curidx != sl.end {
		t.Errorf("skip-list head = %d, want end (%d): every star edge touches a leaf", sl.curidx, sl.end)
	}

	steps, err := runMerges(edges, sl, ds, dn, 1, 0.5)
	if err != nil {
		t.Fatalf("runMerges: %v", err)
	}
	if len(steps) != 0 {
		t.Errorf("got %d steps, want 0", len(steps))
	}
}
